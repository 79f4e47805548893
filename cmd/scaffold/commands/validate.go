package commands

import (
	"context"
	"sort"

	"github.com/spf13/cobra"
	"github.com/tamasfe/scaffold/cmd/scaffold/config"
	"github.com/tamasfe/scaffold/cmd/scaffold/generate"
	"github.com/tamasfe/scaffold/pkg/util/cli"
)

func init() {
	genOpts := &config.GenerateOptions{}

	validateCmd := &cobra.Command{
		Use:          "validate",
		Short:        "Validate the configuration and the registry without writing anything",
		Aliases:      []string{"check"},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			opts, reg, err := load(ctx, genOpts)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(opts.Generators))
			for name := range opts.Generators {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				if _, err := generate.Prepare(ctx, opts, name, reg); err != nil {
					return err
				}
			}

			cli.Successf("Configuration and registry are valid, %v use cases and %v projects.\n",
				len(reg.UseCases()), len(reg.Projects()))
			return nil
		},
	}
	addGenerateFlags(validateCmd, genOpts)

	rootCmd.AddCommand(validateCmd)
}
