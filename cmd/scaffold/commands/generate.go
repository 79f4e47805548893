package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/tamasfe/scaffold/cmd/scaffold/config"
	"github.com/tamasfe/scaffold/cmd/scaffold/generate"
	"github.com/tamasfe/scaffold/pkg/registry"
)

func init() {
	for _, g := range config.Generators {
		rootCmd.AddCommand(generatorCmd(g.Name(), g.Description()))
	}

	scriptOpts := &config.GenerateOptions{}

	scriptsCmd := &cobra.Command{
		Use:          "scripts",
		Short:        "Create the launcher and environment files of the batch-call scripts",
		Aliases:      []string{"script"},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(scriptOpts)
			if err != nil {
				return err
			}

			_, err = generate.Scripts(opts, scriptOpts.Root, scriptOpts.DryRun)
			return err
		},
	}
	scriptsCmd.Flags().StringVarP(&scriptOpts.ConfigPath, "config", "c", "", "path to the configuration file, defaults to "+config.DefaultConfigName+" if it exists")
	scriptsCmd.Flags().StringVarP(&scriptOpts.Root, "root", "r", "", "directory containing the contract directories, overrides the configuration")
	scriptsCmd.Flags().BoolVarP(&scriptOpts.DryRun, "dry-run", "n", false, "only print what would be written")

	rootCmd.AddCommand(scriptsCmd)
}

func generatorCmd(name, description string) *cobra.Command {
	genOpts := &config.GenerateOptions{}

	cmd := &cobra.Command{
		Use:          name,
		Short:        description,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			opts, reg, err := load(ctx, genOpts)
			if err != nil {
				return err
			}

			_, err = generate.Generate(ctx, opts, name, reg, genOpts.Root, genOpts.DryRun)
			return err
		},
	}
	addGenerateFlags(cmd, genOpts)
	cmd.Flags().StringVarP(&genOpts.Root, "root", "r", "", "output directory, overrides the configuration")
	cmd.Flags().BoolVarP(&genOpts.DryRun, "dry-run", "n", false, "only print what would be written")

	return cmd
}

func addGenerateFlags(cmd *cobra.Command, genOpts *config.GenerateOptions) {
	cmd.Flags().StringVarP(&genOpts.ConfigPath, "config", "c", "", "path to the configuration file, defaults to "+config.DefaultConfigName+" if it exists")
	cmd.Flags().StringVarP(&genOpts.RegistryPath, "registry", "", "", "path to a registry file, overrides the configuration")
}

func loadOptions(genOpts *config.GenerateOptions) (*config.Options, error) {
	opts, err := config.Load(genOpts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if genOpts.RegistryPath != "" {
		opts.Registry = genOpts.RegistryPath
	}

	if err := config.ValidateOptions(opts); err != nil {
		return nil, err
	}

	return opts, nil
}

func load(ctx context.Context, genOpts *config.GenerateOptions) (*config.Options, *registry.Registry, error) {
	opts, err := loadOptions(genOpts)
	if err != nil {
		return nil, nil, err
	}

	reg, err := generate.LoadRegistry(ctx, opts.Registry)
	if err != nil {
		return nil, nil, err
	}

	return opts, reg, nil
}
