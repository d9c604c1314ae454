package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/directory/pkg/types"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(w, string(output))
	return nil
}

// printContactTable prints contacts in a human-readable table format.
func printContactTable(w io.Writer, contacts []types.Contact) {
	if len(contacts) == 0 {
		fmt.Fprintln(w, "No contacts found.")
		return
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tPHONE\tEMAIL")
	fmt.Fprintln(tw, "----\t-----\t-----")
	for _, c := range contacts {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.PhoneNumber, c.Email)
	}
	tw.Flush()

	// Trim trailing padding from each line.
	for line := range strings.Lines(sb.String()) {
		fmt.Fprintln(w, strings.TrimRight(line, " \n"))
	}

	fmt.Fprintf(w, "Total: %d contact(s)\n", len(contacts))
}
