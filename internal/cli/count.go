package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of imported contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.loadDirectory()
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return printJSON(out(cmd), map[string]int{"count": d.Len()})
			}
			fmt.Fprintln(out(cmd), d.Len())
			return nil
		},
	}
}
