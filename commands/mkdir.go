package commands

import (
	"fmt"
)

// Mkdir implements the mkdir built-in.
func Mkdir(inv *Invocation) error {
	cmd := &SimpleCommand{
		Use:   "mkdir [OPTION...] DIRECTORY...",
		Short: "Create directories.",
	}

	makeParents := cmd.Flags().BoolLong("parents", 'p', "make parent directories as needed")

	return cmd.Run(inv, func() error {
		directories := cmd.Flags().Args()
		if len(directories) == 0 {
			return fmt.Errorf("missing operand")
		}

		op := inv.FS.Mkdir
		if *makeParents {
			op = inv.FS.MkdirAll
		}

		var firstErr error
		for _, dir := range directories {
			if err := op(inv.Resolve(dir)); err != nil && firstErr == nil {
				firstErr = err
			}
		}

		return firstErr
	})
}

func init() {
	mustRegister(&Command{
		Name:  "mkdir",
		Use:   "mkdir [-p] path...",
		Short: "Create directories.",
		Run:   Mkdir,
	})
}
