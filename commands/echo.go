package commands

import (
	"fmt"
	"strings"
)

// Echo implements the echo built-in: arguments joined by single
// spaces, terminated by a newline. Redirection is handled entirely by
// the dispatcher; echo itself only ever writes to its output buffer.
func Echo(inv *Invocation) error {
	fmt.Fprintln(inv.Out, strings.Join(inv.Args[1:], " "))
	return nil
}

func init() {
	mustRegister(&Command{
		Name:  "echo",
		Use:   "echo [args...]",
		Short: "Display a line of text.",
		Run:   Echo,
	})
}
