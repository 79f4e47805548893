package frontend

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamasfe/scaffold/pkg/errs"
	"github.com/tamasfe/scaffold/pkg/generator"
	"github.com/tamasfe/scaffold/pkg/registry"
	"github.com/tamasfe/scaffold/pkg/render"
)

var (
	_ generator.Generator = &Index{}
	_ generator.Generator = &Project{}
)

func TestIndexGenerate(t *testing.T) {
	reg := registry.New([]registry.UseCaseEntry{
		{Identifier: "chip-atp-process", Title: "Chip ATP Process", Template: "testing"},
	}, nil)

	g := &Index{}
	assert.Equal(t, []string{"chip-atp-process"}, g.Identifiers(reg))

	files, err := g.Generate(context.Background(), nil, reg, "chip-atp-process")
	require.NoError(t, err)
	require.Len(t, files, 1)

	page := files[0]
	assert.Equal(t, "chip-atp-process/pages/index.tsx", page.Path)
	assert.Equal(t, render.ModeFile, page.Mode)
	assert.Contains(t, page.Content, "<h1>Chip ATP Process</h1>")
	assert.Contains(t, page.Content, "name: 'Chip ATP Process',")
	assert.Contains(t, page.Content, "style={{ padding: '20px', fontFamily: 'Arial, sans-serif', maxWidth: '1200px', margin: '0 auto' }}")
	assert.Contains(t, page.Content, "useState<Record<string, string>>({});")
	assert.NotContains(t, page.Content, render.StartTag)
	assert.NotContains(t, page.Content, render.EndTag)
}

func TestIndexTemplateVariantDoesNotChangeOutput(t *testing.T) {
	reg := registry.New([]registry.UseCaseEntry{
		{Identifier: "a", Title: "Same", Template: "ticketing"},
		{Identifier: "b", Title: "Same", Template: "batch"},
	}, nil)

	g := &Index{}
	a, err := g.Generate(context.Background(), nil, reg, "a")
	require.NoError(t, err)
	b, err := g.Generate(context.Background(), nil, reg, "b")
	require.NoError(t, err)

	assert.Equal(t, a[0].Content, b[0].Content)
}

func TestIndexOptions(t *testing.T) {
	g := &Index{}
	reg := registry.New([]registry.UseCaseEntry{{Identifier: "onchain-kyb", Title: "Onchain KYB"}}, nil)

	opts := map[string]interface{}{
		"extension":   "jsx",
		"pagePattern": "src/{{ .Identifier }}.{{ .Extension }}",
	}
	require.NoError(t, g.Validate(opts))

	files, err := g.Generate(context.Background(), opts, reg, "onchain-kyb")
	require.NoError(t, err)
	assert.Equal(t, "onchain-kyb/src/onchain-kyb.jsx", files[0].Path)

	assert.Error(t, g.Validate(map[string]interface{}{"unknown": true}))
	assert.Error(t, g.Validate(map[string]interface{}{"extension": " "}))
	assert.Error(t, g.Validate(map[string]interface{}{"pagePattern": "{{ .Nope }}"}))

	_, err = g.Generate(context.Background(), nil, reg, "missing")
	assert.Error(t, err)
}

func testProjects() *registry.Registry {
	return registry.New(nil, []registry.ContractProjectSpec{
		{
			Identifier:      "pro-football-ticketing",
			Title:           "Pro Football Ticketing",
			Port:            3004,
			WriteOperations: []string{"create-game", "purchase-ticket"},
			ReadOperations:  []string{"get-game-info"},
		},
	})
}

func TestProjectGenerate(t *testing.T) {
	g := &Project{}
	reg := testProjects()

	files, err := g.Generate(context.Background(), nil, reg, "pro-football-ticketing")
	require.NoError(t, err)

	paths := make([]string, 0, len(files))
	byName := make(map[string]string, len(files))
	for _, f := range files {
		require.NoError(t, f.CheckRooted("pro-football-ticketing"))
		paths = append(paths, f.Path)
		byName[strings.TrimPrefix(f.Path, "pro-football-ticketing/")] = f.Content
	}

	assert.Equal(t, []string{
		"pro-football-ticketing/pages/index.tsx",
		"pro-football-ticketing/package.json",
		"pro-football-ticketing/.env.local",
		"pro-football-ticketing/.gitignore",
		"pro-football-ticketing/tsconfig.json",
		"pro-football-ticketing/next.config.js",
	}, paths)

	var manifest struct {
		Name         string            `json:"name"`
		Version      string            `json:"version"`
		Private      bool              `json:"private"`
		Scripts      map[string]string `json:"scripts"`
		Dependencies map[string]string `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal([]byte(byName["package.json"]), &manifest))
	assert.Equal(t, "pro-football-ticketing-frontend", manifest.Name)
	assert.True(t, manifest.Private)
	assert.Equal(t, "next dev -p 3004", manifest.Scripts["dev"])
	assert.Equal(t, "next start -p 3004", manifest.Scripts["start"])
	assert.Equal(t, "next build", manifest.Scripts["build"])
	assert.Equal(t, "14.1.0", manifest.Dependencies["next"])

	var tsconfig map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(byName["tsconfig.json"]), &tsconfig))
	assert.Contains(t, tsconfig, "compilerOptions")

	assert.Equal(t, "NEXT_PUBLIC_CONTRACT_ADDRESS=\nNEXT_PUBLIC_NETWORK=mainnet\n", byName[".env.local"])
	assert.Equal(t, "module.exports = {\n  reactStrictMode: true,\n}\n", byName["next.config.js"])
	assert.Contains(t, byName[".gitignore"], "node_modules\n")

	page := byName["pages/index.tsx"]
	assert.Contains(t, page, "<h1>Pro Football Ticketing</h1>")
	assert.Contains(t, page, "const callCreateGame = () => callContract('create-game', []);")
	assert.Contains(t, page, "const callPurchaseTicket = () => callContract('purchase-ticket', []);")
	assert.Contains(t, page, "const queryGetGameInfo = () => queryContract('get-game-info', []);")
	assert.Contains(t, page, "<button onClick={callCreateGame}>Create Game</button>")
	assert.Contains(t, page, "<button onClick={queryGetGameInfo}>Get Game Info</button>")
	assert.Contains(t, page, "import { StacksMainnet } from '@stacks/network';")
	assert.Contains(t, page, "style={{ whiteSpace: 'pre-wrap'")
	assert.NotContains(t, page, render.StartTag)

	// Write operations are listed before read operations, in registry order.
	assert.Less(t, strings.Index(page, "callCreateGame}"), strings.Index(page, "callPurchaseTicket}"))
	assert.Less(t, strings.Index(page, "callPurchaseTicket}"), strings.Index(page, "queryGetGameInfo}"))
}

func TestProjectTSConfig(t *testing.T) {
	files, err := (&Project{}).Generate(context.Background(), nil, testProjects(), "pro-football-ticketing")
	require.NoError(t, err)
	require.Equal(t, "pro-football-ticketing/tsconfig.json", files[4].Path)

	assert.Equal(t, `{
  "compilerOptions": {
    "target": "es5",
    "lib": [
      "dom",
      "dom.iterable",
      "esnext"
    ],
    "allowJs": true,
    "skipLibCheck": true,
    "strict": true,
    "forceConsistentCasingInFileNames": true,
    "noEmit": true,
    "esModuleInterop": true,
    "module": "esnext",
    "moduleResolution": "bundler",
    "resolveJsonModule": true,
    "isolatedModules": true,
    "jsx": "preserve",
    "incremental": true,
    "paths": {
      "@/*": [
        "./*"
      ]
    }
  },
  "include": [
    "next-env.d.ts",
    "**/*.ts",
    "**/*.tsx"
  ],
  "exclude": [
    "node_modules"
  ]
}
`, files[4].Content)
}

func TestUnsafeTitles(t *testing.T) {
	reg := registry.New(
		[]registry.UseCaseEntry{{Identifier: "owners-club", Title: "Pro Owner's Club"}},
		[]registry.ContractProjectSpec{{Identifier: "owners-club", Title: "Pro Owner's Club", Port: 3004}},
	)

	_, err := (&Index{}).Generate(context.Background(), nil, reg, "owners-club")
	assert.Error(t, err)

	_, err = (&Project{}).Generate(context.Background(), nil, reg, "owners-club")
	assert.Error(t, err)
}

func TestProjectIsDeterministic(t *testing.T) {
	g := &Project{}
	reg := testProjects()

	first, err := g.Generate(context.Background(), nil, reg, "pro-football-ticketing")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := g.Generate(context.Background(), nil, reg, "pro-football-ticketing")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestProjectOptions(t *testing.T) {
	g := &Project{}
	reg := testProjects()

	opts := map[string]interface{}{
		"network": "testnet",
		"dependencies": map[string]interface{}{
			"next": "14.2.0",
		},
	}
	require.NoError(t, g.Validate(opts))

	files, err := g.Generate(context.Background(), opts, reg, "pro-football-ticketing")
	require.NoError(t, err)

	assert.Contains(t, files[0].Content, "new StacksTestnet()")
	assert.Contains(t, files[0].Content, "userData.profile.stxAddress.testnet")
	assert.Equal(t, "{\n  \"name\": \"pro-football-ticketing-frontend\",\n  \"version\": \"0.1.0\",\n  \"private\": true,\n  \"scripts\": {\n    \"dev\": \"next dev -p 3004\",\n    \"build\": \"next build\",\n    \"start\": \"next start -p 3004\"\n  },\n  \"dependencies\": {\n    \"next\": \"14.2.0\"\n  }\n}\n", files[1].Content)
	assert.Equal(t, "NEXT_PUBLIC_CONTRACT_ADDRESS=\nNEXT_PUBLIC_NETWORK=testnet\n", files[2].Content)

	assert.Error(t, g.Validate(map[string]interface{}{"network": "devnet"}))
	assert.Error(t, g.Validate(map[string]interface{}{"dependencies": map[string]interface{}{"next": "not a version"}}))
}

func TestProjectErrors(t *testing.T) {
	g := &Project{}

	reg := registry.New(nil, []registry.ContractProjectSpec{
		{Identifier: "untitled", Port: 3000},
		{Identifier: "clash", Title: "Clash", Port: 3001, WriteOperations: []string{"create-game", "create_game"}},
	})

	_, err := g.Generate(context.Background(), nil, reg, "untitled")
	var missing *errs.ErrMissingValue
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "title", missing.Kind)

	_, err = g.Generate(context.Background(), nil, reg, "clash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same handler name")

	_, err = g.Generate(context.Background(), nil, reg, "missing")
	assert.Error(t, err)
}

func TestDescriptionMarkdown(t *testing.T) {
	for _, g := range []interface{ DescriptionMarkdown() string }{&Index{}, &Project{}} {
		md := g.DescriptionMarkdown()
		assert.Contains(t, md, "# Options")
		assert.Contains(t, md, "pagePattern")
		assert.Contains(t, md, "generators:")
	}
}
