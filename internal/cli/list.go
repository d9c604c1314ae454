package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var sorted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all contacts",
		Long: `List prints every imported contact in import order.

Example:
  directory list -f entries.csv
  directory list -f entries.csv --sorted
  directory list -f entries.csv --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.loadDirectory()
			if err != nil {
				return err
			}

			contacts := d.Entries()
			if sorted {
				contacts = d.Sorted()
			}

			if a.flags.jsonMode {
				return printJSON(out(cmd), contacts)
			}
			printContactTable(out(cmd), contacts)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sorted, "sorted", false, "order by name instead of import order")
	return cmd
}
