package commands

import (
	"fmt"
	"strings"

	"microsh.dev/microsh/core/vfs"
)

// Touch implements the touch built-in: create an empty file. An
// existing path is reported as AlreadyExists; the error is informative
// and never escalates past the dispatcher.
func Touch(inv *Invocation) error {
	if len(inv.Args) < 2 {
		return fmt.Errorf("missing operand")
	}

	var firstErr error
	for _, arg := range inv.Args[1:] {
		resolved := inv.Resolve(arg)

		var err error
		if inv.FS.Exists(resolved) {
			err = &vfs.Error{Op: "touch", Path: resolved, Kind: vfs.AlreadyExists}
		} else {
			err = inv.FS.Write(resolved, strings.NewReader(""), vfs.WriteOverwrite)
		}

		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

func init() {
	mustRegister(&Command{
		Name:  "touch",
		Use:   "touch path...",
		Short: "Create empty files.",
		Run:   Touch,
	})
}
