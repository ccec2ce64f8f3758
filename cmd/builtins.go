package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"microsh.dev/microsh/commands"
)

// builtinsCmd lists the shell's built-in commands.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the shell's built-in commands.",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, builtin := range commands.ListBuiltinCommands() {
			fmt.Fprintf(tw, "%s\t%s\n", builtin.Name, builtin.Short)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
