package commands

import (
	"fmt"
)

// Clear implements the clear built-in. Assumes VT100 compatibility,
// like the serial consoles the original shell targeted.
func Clear(inv *Invocation) error {
	if inv.Interactive {
		fmt.Fprint(inv.Out, "\x1b[2J\x1b[H")
	}
	return nil
}

func init() {
	mustRegister(&Command{
		Name:  "clear",
		Use:   "clear",
		Short: "Clear the terminal screen.",
		Run:   Clear,
	})
}
