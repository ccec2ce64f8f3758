package commands

import (
	"fmt"
	"text/tabwriter"
)

// Help implements the help built-in: list every registered command
// with its one line description.
func Help(inv *Invocation) error {
	fmt.Fprintln(inv.Out, "Available commands:")

	tw := tabwriter.NewWriter(inv.Out, 0, 0, 2, ' ', 0)
	for _, cmd := range ListBuiltinCommands() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Use, cmd.Short)
	}
	return tw.Flush()
}

func init() {
	mustRegister(&Command{
		Name:  "help",
		Use:   "help",
		Short: "Show available commands.",
		Run:   Help,
	})
}
