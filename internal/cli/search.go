package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/directory/internal/directory"
	"github.com/mesh-intelligence/directory/pkg/types"
)

func newSearchCmd(a *app) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Find a contact by exact name",
		Long: `Search looks up a contact whose name equals <name> exactly (case-sensitive).

The strategy defaults to search_strategy from config.yaml or the
DIRECTORY_SEARCH_STRATEGY environment variable (binary unless set).

Example:
  directory search -f entries.csv Bill
  directory search -f entries.csv --strategy linear Sally
  directory search -f entries.csv Bob --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if strategy == "" {
				strategy = a.v.GetString(cfgKeySearchStrategy)
			}
			search, err := searchFunc(strategy)
			if err != nil {
				return err
			}

			d, err := a.loadDirectory()
			if err != nil {
				return err
			}

			c, ok := search(d, name)
			a.log.Debug("search", "strategy", strategy, "name", name, "found", ok, "size", d.Len())
			if !ok {
				return fmt.Errorf("contact %q: %w", name, types.ErrNotFound)
			}

			if a.flags.jsonMode {
				return printJSON(out(cmd), c)
			}
			printContactTable(out(cmd), []types.Contact{c})
			return nil
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "", "search strategy: linear or binary")
	return cmd
}

// searchFunc returns the directory method implementing strategy.
func searchFunc(strategy string) (func(*directory.Directory, string) (types.Contact, bool), error) {
	switch strategy {
	case types.StrategyLinear:
		return (*directory.Directory).LinearSearch, nil
	case types.StrategyBinary, "":
		return (*directory.Directory).BinarySearch, nil
	default:
		return nil, fmt.Errorf("strategy %q: %w", strategy, types.ErrStrategyUnknown)
	}
}
