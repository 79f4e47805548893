package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamasfe/scaffold/pkg/errs"
)

func TestRenderKeepsLiteralBraces(t *testing.T) {
	tmpl := `<div style={{ padding: '20px' }}>
  <h1>{% title %}</h1>
  {result && <pre>{JSON.stringify({ a: 1 })}</pre>}
</div>`

	out, err := Render(tmpl, Bindings{"title": "Pro Football Ticketing"})
	require.NoError(t, err)

	assert.Equal(t, `<div style={{ padding: '20px' }}>
  <h1>Pro Football Ticketing</h1>
  {result && <pre>{JSON.stringify({ a: 1 })}</pre>}
</div>`, out)
}

func TestRenderMissingBinding(t *testing.T) {
	_, err := Render("name: '{% title %}', port: {%port%}", Bindings{"title": "Onchain KYB"})
	require.Error(t, err)

	var missing *errs.ErrMissingBinding
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "port", missing.Placeholder)
}

func TestRenderIgnoresUnusedBindings(t *testing.T) {
	out, err := Render("{% title %}", Bindings{"title": "Robotics OEM", "port": "3013"})
	require.NoError(t, err)
	assert.Equal(t, "Robotics OEM", out)
}

func TestRenderNormalizesKeys(t *testing.T) {
	out, err := Render("{%Title%} {% TITLE %}", Bindings{" title ": "KYA"})
	require.NoError(t, err)
	assert.Equal(t, "KYA KYA", out)
}

func TestRenderEscape(t *testing.T) {
	out, err := Render("{%%} title %} = {% title %}", Bindings{"title": "x"})
	require.NoError(t, err)
	assert.Equal(t, "{% title %} = x", out)
}

func TestRenderDoesNotRecurse(t *testing.T) {
	out, err := Render("{% a %}", Bindings{"a": "{% b %}"})
	require.NoError(t, err)
	assert.Equal(t, "{% b %}", out)
}

func TestRenderInvalid(t *testing.T) {
	_, err := Render("{% not closed", Bindings{})
	assert.Error(t, err)

	_, err = Render("{% two words %}", Bindings{})
	assert.Error(t, err)

	_, err = Render("{%   %}", Bindings{})
	assert.Error(t, err)
}

func TestRenderUnclosed(t *testing.T) {
	out, err := Render("<h1>{% title </h1>", Bindings{"title": "Chip ATP Process"})
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), "line 1, column 5")

	_, err = Render("{% title %}\n  {% port", Bindings{"title": "x", "port": "3004"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2, column 3")

	_, err = Placeholders("ok {% title %} then {% broken")
	assert.Error(t, err)

	out, err = Render("{%%} and {% title %}", Bindings{"title": "x"})
	require.NoError(t, err)
	assert.Equal(t, "{% and x", out)
}

func TestRenderBindingsCollide(t *testing.T) {
	_, err := Render("{% title %}", Bindings{"Title": "A", "title": "B"})
	require.Error(t, err)
	assert.Equal(t, `bindings "Title" and "title" have the same key`, err.Error())

	_, err = Render("{% title %}", Bindings{" title ": "A", "title": "B"})
	assert.Error(t, err)
}

func TestRenderWithoutPlaceholders(t *testing.T) {
	out, err := Render("module.exports = {\n  reactStrictMode: true,\n}\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "module.exports = {\n  reactStrictMode: true,\n}\n", out)
}

func TestPlaceholders(t *testing.T) {
	keys, err := Placeholders("{% title %} {%%} {% Port %} {% title %} {{ x }}")
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "port"}, keys)
}

func TestMustRenderPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustRender("{% missing %}", nil)
	})
}
