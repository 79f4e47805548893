package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/tamasfe/scaffold/cmd/scaffold/config"
	"github.com/tamasfe/scaffold/pkg/registry"
	"github.com/tamasfe/scaffold/pkg/util"
	"github.com/tamasfe/scaffold/pkg/util/cli"
	"gopkg.in/yaml.v3"
)

// registryDocument is the layout read by the yaml parser.
type registryDocument struct {
	UseCases []registry.UseCaseEntry        `yaml:"useCases"`
	Projects []registry.ContractProjectSpec `yaml:"projects"`
}

func init() {
	getCmd := &cobra.Command{
		Use:          "get [target]",
		Short:        "Get available values",
		SilenceUsage: false,
	}

	getOpts := &config.GetOptions{}

	getConfigCmd := &cobra.Command{
		Use:          "configuration",
		Short:        "Provides an example configuration",
		Aliases:      []string{"c", "conf", "config"},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if getOpts.NoComments {
				util.DisableYAMLMarshalComments = true
			}

			b, err := marshalYAML(config.DefaultOptions())
			if err != nil {
				return err
			}

			return output(getOpts, "# Generated config file for Scaffold.\n\n"+string(b))
		},
	}

	getConfigCmd.Flags().BoolVarP(&getOpts.NoComments, "no-comments", "", false, "Disables all comments")
	getConfigCmd.Flags().StringVarP(&getOpts.OutPath, "out", "o", "", "the output file")
	getConfigCmd.Flags().BoolVarP(&getOpts.Force, "force", "f", false, "overwrite existing files without asking")

	regOpts := &config.GetOptions{}

	getRegistryCmd := &cobra.Command{
		Use:          "registry",
		Short:        "Provides the built-in registry",
		Aliases:      []string{"r", "reg"},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.Default()

			b, err := marshalYAML(&registryDocument{
				UseCases: reg.UseCases(),
				Projects: reg.Projects(),
			})
			if err != nil {
				return err
			}

			return output(regOpts, string(b))
		},
	}

	getRegistryCmd.Flags().StringVarP(&regOpts.OutPath, "out", "o", "", "the output file")
	getRegistryCmd.Flags().BoolVarP(&regOpts.Force, "force", "f", false, "overwrite existing files without asking")

	getTransformersCmd := &cobra.Command{
		Use:          "transformers",
		Short:        "List all transformers",
		Aliases:      []string{"t", "trans", "transform"},
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			printTransformers()
		},
	}

	getGeneratorsCmd := &cobra.Command{
		Use:          "generators",
		Short:        "List all generators",
		Aliases:      []string{"g", "gen", "generator"},
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			printGenerators()
		},
	}

	getCmd.AddCommand(getGeneratorsCmd)
	getCmd.AddCommand(getTransformersCmd)
	getCmd.AddCommand(getRegistryCmd)
	getCmd.AddCommand(getConfigCmd)

	rootCmd.AddCommand(getCmd)
}

// output writes content to the output path, or to stdout.
func output(getOpts *config.GetOptions, content string) error {
	if getOpts.OutPath == "" || getOpts.OutPath == "-" {
		fmt.Fprint(cli.Output, content)
		return nil
	}

	info, err := os.Stat(getOpts.OutPath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if info != nil {
		if info.IsDir() {
			return fmt.Errorf("output path should be a file, not a directory")
		}

		if !getOpts.Force {
			overwrite := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf(`the file "%v" already exists, overwrite it?`, getOpts.OutPath),
			}
			if err := survey.AskOne(prompt, &overwrite); err != nil {
				return err
			}
			if !overwrite {
				return fmt.Errorf("aborted")
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(getOpts.OutPath), os.ModePerm); err != nil {
		return err
	}

	if err := os.WriteFile(getOpts.OutPath, []byte(content), 0644); err != nil {
		return err
	}

	cli.Successf("%v written.\n", getOpts.OutPath)
	return nil
}

func printTransformers() {
	w := tabwriter.NewWriter(cli.Output, 0, 0, 4, ' ', 0)

	cli.Infof("Available transformers:\n")
	for _, p := range config.Transformers {
		fmt.Fprintf(w, "\t%v\t%v\n", p.Name(), p.Description())
	}
	w.Flush()
}

func printGenerators() {
	cli.Infof("Available generators:\n")
	w := tabwriter.NewWriter(cli.Output, 0, 0, 4, ' ', 0)

	for _, p := range config.Generators {
		fmt.Fprintf(w, "\t%v\t%v\n", p.Name(), p.Description())
	}
	fmt.Fprintf(w, "\t%v\t%v\n", "scripts", "Creates the launcher and environment files of the batch-call scripts")
	w.Flush()
}

// marshalYAML formats the output YAML properly.
func marshalYAML(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}

	e := yaml.NewEncoder(buf)

	e.SetIndent(2)

	err := e.Encode(v)
	if err != nil {
		return nil, err
	}

	return []byte(strings.ReplaceAll(buf.String(), "\n\n\n", "\n\n")), nil
}
