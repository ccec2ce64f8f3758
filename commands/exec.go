package commands

import (
	"fmt"
)

// Exec implements the exec built-in: run commands from a script file
// through the normal tokenize/dispatch pipeline. Comment and blank
// lines are skipped and exit is ignored, handled by the engine's
// script runner.
func Exec(inv *Invocation) error {
	if len(inv.Args) != 2 {
		return fmt.Errorf("usage: exec <script>")
	}
	if inv.Runner == nil {
		return fmt.Errorf("script execution is not available")
	}

	return inv.Runner.RunScript(inv.Resolve(inv.Args[1]))
}

func init() {
	mustRegister(&Command{
		Name:  "exec",
		Use:   "exec script",
		Short: "Execute commands from a script file.",
		Run:   Exec,
	})
}
