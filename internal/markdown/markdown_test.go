package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tamasfe/scaffold/pkg/registry"
)

type options struct {
	Root string `yaml:"root" description:"Output directory"`
	Port int    `yaml:"port,omitempty" description:"First port"`
}

func TestOptionsTable(t *testing.T) {
	table := OptionsTable(&options{Root: "frontend", Port: 3004})

	assert.Equal(t, `| Option | Description | Type | Default Value |
|:------:|-------------|:----:|:--------------|
|port|First port.|int|<pre lang="yaml">3004</pre>|
|root|Output directory.|string|<pre lang="yaml">frontend</pre>|
`, table)
}

func TestRegistryTables(t *testing.T) {
	reg := registry.New(
		[]registry.UseCaseEntry{{Identifier: "onchain-kyb", Title: "Onchain KYB", Template: "kyb"}},
		[]registry.ContractProjectSpec{{Identifier: "onchain-kyb", Title: "A | B", Port: 3023, WriteOperations: []string{"approve-verification"}, ReadOperations: []string{"get-verification-status", "is-business-verified"}}},
	)

	assert.Contains(t, UseCasesTable(reg.UseCases()), "|`onchain-kyb`|Onchain KYB|kyb|\n")
	assert.Contains(t, ProjectsTable(reg.Projects()), "|`onchain-kyb`|A \\| B|3023|`approve-verification`|`get-verification-status`, `is-business-verified`|\n")
}

func TestGenTOC(t *testing.T) {
	md := "# index\n## Options\n```yaml\n# not a heading\n```\n# project\n## Options\n"

	out := GenTOC("# Generators\n", md)

	assert.Equal(t, "# Generators\n"+
		"* [index](#index)\n"+
		"   * [Options](#options)\n"+
		"* [project](#project)\n"+
		"   * [Options](#options-1)\n"+
		"\n"+md, out)
}

func TestAnchor(t *testing.T) {
	assert.Equal(t, "example-usage-in-the-configuration", Anchor("Example usage in the configuration"))
	assert.Equal(t, "pathvalues", Anchor("`PathValues`"))
}
