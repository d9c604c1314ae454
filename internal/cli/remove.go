package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/directory/pkg/types"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name> <phone> <email>",
		Short: "Remove a contact and print the remaining entries",
		Long: `Remove deletes the first imported contact whose name, phone number and
email all match exactly, then prints what remains. Import files are not
modified. A miss is reported but is not an error.

Example:
  directory remove -f entries.csv Bob 555-555-5415 bob@blocmail.com`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.loadDirectory()
			if err != nil {
				return err
			}

			removed := d.Remove(args[0], args[1], args[2])

			if a.flags.jsonMode {
				return printJSON(out(cmd), struct {
					Removed bool            `json:"removed"`
					Entries []types.Contact `json:"entries"`
				}{removed, d.Entries()})
			}
			if removed {
				fmt.Fprintf(out(cmd), "Removed contact: %s\n", args[0])
			} else {
				fmt.Fprintln(out(cmd), "No matching contact")
			}
			printContactTable(out(cmd), d.Entries())
			return nil
		},
	}
}
