package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/directory/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and config.yaml",
		Long: `Init creates the configuration directory with a default config.yaml.
Files given with --file are recorded as import_files. An existing
config.yaml is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := types.Config{
				ImportFiles:    a.flags.files,
				SearchStrategy: defaultSearchStrategy,
			}
			if cfg.ImportFiles == nil {
				cfg.ImportFiles = []string{}
			}

			wrote, err := writeConfigIfMissing(a.configDir, cfg)
			if err != nil {
				return err
			}
			if wrote {
				fmt.Fprintln(out(cmd), "Directory initialized successfully")
			} else {
				fmt.Fprintln(out(cmd), "Directory already initialized")
			}
			fmt.Fprintln(out(cmd), "  config:", a.configDir)
			return nil
		},
	}
}
