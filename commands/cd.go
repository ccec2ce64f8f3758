package commands

import (
	"fmt"
)

// Cd implements the cd built-in. With no argument it prints the
// current directory, matching the original device shell. A failed
// change leaves the working directory untouched.
func Cd(inv *Invocation) error {
	switch len(inv.Args) {
	case 1:
		fmt.Fprintln(inv.Out, inv.Session.Getwd())
		return nil
	case 2:
		return inv.Session.Chdir(inv.Args[1])
	default:
		return fmt.Errorf("too many arguments")
	}
}

func init() {
	mustRegister(&Command{
		Name:  "cd",
		Use:   "cd [path]",
		Short: "Change the current working directory.",
		Run:   Cd,
	})
}
