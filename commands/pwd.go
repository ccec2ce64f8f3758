package commands

import (
	"fmt"
)

// Pwd implements the pwd built-in. It cannot fail.
func Pwd(inv *Invocation) error {
	fmt.Fprintln(inv.Out, inv.Session.Getwd())
	return nil
}

func init() {
	mustRegister(&Command{
		Name:  "pwd",
		Use:   "pwd",
		Short: "Print the current working directory.",
		Run:   Pwd,
	})
}
