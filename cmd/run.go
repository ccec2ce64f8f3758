package cmd

import (
	"io"

	"github.com/abiosoft/readline"
	"github.com/spf13/cobra"
)

// readlineReader adapts a readline instance to the shell's LineReader.
// Interrupt cancels the current line rather than the session.
type readlineReader struct {
	rl *readline.Instance
}

func (r readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)

	line, err := r.rl.Readline()
	switch {
	case err == readline.ErrInterrupt:
		return "", nil
	case err == io.EOF:
		return "", io.EOF
	case err != nil:
		return "", err
	}
	return line, nil
}

// runCmd starts an interactive shell on the local terminal.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive shell.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		rl, err := readline.NewEx(&readline.Config{
			HistoryFile: configuration.HistoryFile,
			Stdout:      cmd.OutOrStdout(),
			Stderr:      cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		sh, toClose, err := newShell(configuration, readlineReader{rl}, cmd.OutOrStdout(), true)
		if err != nil {
			return err
		}
		defer toClose.Close()

		return sh.Run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
