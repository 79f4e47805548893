package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamasfe/scaffold/pkg/render"
)

func TestDeclaredBindings(t *testing.T) {
	cases := map[string]struct {
		template string
		keys     []string
	}{
		"index":     {IndexPage, []string{"title"}},
		"project":   {ProjectPage, []string{"networkclass", "title", "network", "writehandlers", "readhandlers", "writesections", "readsections"}},
		"write":     {WriteHandler, []string{"handler", "operation"}},
		"read":      {ReadHandler, []string{"handler", "operation"}},
		"section":   {OperationSection, []string{"handler", "label"}},
		"nextconf":  {NextConfig, []string{}},
		"gitignore": {GitIgnore, []string{}},
		"envlocal":  {EnvLocal, []string{"network"}},
		"launcher":  {Launcher, []string{"envpath", "identifier", "runner", "source"}},
		"env":       {EnvFile, []string{"network", "deployer", "user", "senderprivatekey", "addresskey", "identifier"}},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			keys, err := render.Placeholders(c.template)
			require.NoError(t, err)
			assert.ElementsMatch(t, c.keys, keys)
		})
	}
}

func TestOperationSectionKeepsJSXBraces(t *testing.T) {
	out, err := render.Render(OperationSection, render.Bindings{"handler": "callCreateGame", "label": "Create Game"})
	require.NoError(t, err)
	assert.Equal(t, "<div style={{ margin: '10px 0' }}>\n  <button onClick={callCreateGame}>Create Game</button>\n</div>", out)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "14.1.0", DefaultDependencies()["next"])
	assert.Len(t, DefaultDependencies(), 10)

	c := DefaultTSConfig()
	assert.Equal(t, []string{"./*"}, c.CompilerOptions.Paths["@/*"])
}
