package commands

import (
	"fmt"
)

// Exit implements the exit built-in. It only marks the session; the
// REPL loop notices after the current line finishes.
func Exit(inv *Invocation) error {
	if len(inv.Args) != 1 {
		return fmt.Errorf("usage: exit")
	}
	inv.Session.RequestExit()
	return nil
}

func init() {
	mustRegister(&Command{
		Name:  "exit",
		Use:   "exit",
		Short: "Exit the shell.",
		Run:   Exit,
	})
}
