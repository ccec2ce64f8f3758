package cmd

import (
	"github.com/spf13/cobra"
)

// execCmd runs a script from the shell filesystem without starting an
// interactive session.
var execCmd = &cobra.Command{
	Use:   "exec SCRIPT",
	Short: "Run a script file and exit.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		sh, toClose, err := newShell(configuration, nil, cmd.OutOrStdout(), false)
		if err != nil {
			return err
		}
		defer toClose.Close()

		return sh.RunScript(sh.Session().Resolve(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
