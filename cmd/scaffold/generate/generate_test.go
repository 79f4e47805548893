package generate

import (
	"context"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamasfe/scaffold/cmd/scaffold/config"
	"github.com/tamasfe/scaffold/pkg/errs"
	"github.com/tamasfe/scaffold/pkg/registry"
	"github.com/tamasfe/scaffold/pkg/util/cli"
)

func init() {
	cli.Silent = true
}

func testRegistry() *registry.Registry {
	return registry.New(
		[]registry.UseCaseEntry{
			{Identifier: "chip-atp-process", Title: "Chip ATP Process", Template: "testing"},
			{Identifier: "pro-football-ticketing", Title: "Pro Football Ticketing"},
		},
		[]registry.ContractProjectSpec{
			{
				Identifier:      "chip-atp-process",
				Port:            3009,
				WriteOperations: []string{"start-test-process"},
				ReadOperations:  []string{"get-test-info"},
			},
			{
				Identifier:      "robotics-oem",
				Port:            3013,
				WriteOperations: []string{"register-component"},
			},
		},
	)
}

func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		files[filepath.ToSlash(rel)] = string(b)
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestGenerateIndex(t *testing.T) {
	root := t.TempDir()

	state, err := Generate(context.Background(), config.DefaultOptions(), "index", testRegistry(), root, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"chip-atp-process", "pro-football-ticketing"}, state.Processed())

	files := snapshot(t, root)
	assert.Len(t, files, 2)
	assert.Contains(t, files["chip-atp-process/pages/index.tsx"], "Chip ATP Process")
	assert.Contains(t, files["pro-football-ticketing/pages/index.tsx"], "Pro Football Ticketing")
}

func TestGenerateProjectCompleteAndIdempotent(t *testing.T) {
	root := t.TempDir()
	opts := config.DefaultOptions()

	_, err := Generate(context.Background(), opts, "project", testRegistry(), root, false)
	require.NoError(t, err)
	first := snapshot(t, root)

	for _, id := range []string{"chip-atp-process", "robotics-oem"} {
		for _, name := range []string{"pages/index.tsx", "package.json", ".env.local", ".gitignore", "tsconfig.json", "next.config.js"} {
			assert.Contains(t, first, id+"/"+name)
		}
	}
	assert.Len(t, first, 12)

	// Titles are filled in before generation.
	assert.Contains(t, first["robotics-oem/pages/index.tsx"], "Robotics Oem")
	assert.Contains(t, first["chip-atp-process/pages/index.tsx"], "Chip ATP Process")

	_, err = Generate(context.Background(), opts, "project", testRegistry(), root, false)
	require.NoError(t, err)
	assert.Equal(t, first, snapshot(t, root))
}

func TestGenerateDryRun(t *testing.T) {
	root := t.TempDir()

	state, err := Generate(context.Background(), config.DefaultOptions(), "project", testRegistry(), root, true)
	require.NoError(t, err)
	assert.Len(t, state.Written("robotics-oem"), 6)
	assert.Empty(t, snapshot(t, root))
}

func TestGenerateInvalidRegistryWritesNothing(t *testing.T) {
	root := t.TempDir()
	reg := registry.New(nil, []registry.ContractProjectSpec{
		{Identifier: "first", Port: 3004},
		{Identifier: "second", Port: 3004},
	})

	_, err := Generate(context.Background(), config.DefaultOptions(), "project", reg, root, false)
	require.Error(t, err)

	var invalid *errs.ErrInvalidRegistry
	assert.True(t, errors.As(err, &invalid))
	assert.Empty(t, snapshot(t, root))
}

func TestGenerateInvalidOptionsWritesNothing(t *testing.T) {
	root := t.TempDir()
	opts := config.DefaultOptions()
	opts.Generators["project"].Options = map[string]interface{}{"network": "regtest"}

	_, err := Generate(context.Background(), opts, "project", testRegistry(), root, false)
	require.Error(t, err)
	assert.Empty(t, snapshot(t, root))
}

func TestGenerateUnknown(t *testing.T) {
	_, err := Generate(context.Background(), config.DefaultOptions(), "golang", testRegistry(), t.TempDir(), false)
	assert.Error(t, err)
}

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Projects())

	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("useCases:\n  - identifier: foo\n    title: Foo\n"), 0644))

	reg, err = LoadRegistry(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, reg.UseCaseIdentifiers())
}

func TestScripts(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "foo")
	require.NoError(t, os.MkdirAll(dir, os.ModePerm))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "foo_batch-call_with-no-event-fetching.ts"), nil, 0644))

	res, err := Scripts(config.DefaultOptions(), root, false)
	require.NoError(t, err)
	require.Len(t, res.Pairs, 1)

	files := snapshot(t, root)
	assert.Contains(t, files["foo/.env"], "FOO_CONTRACT_ADDRESS=SP1V95DB4JK47QVPJBXCEN6MT35JK84CQ4CWS15DQ.foo")
}
