package commands

import (
	"fmt"

	"microsh.dev/microsh/core/vfs"
)

// Rmdir implements the rmdir built-in: remove empty directories.
func Rmdir(inv *Invocation) error {
	if len(inv.Args) < 2 {
		return fmt.Errorf("missing operand")
	}

	var firstErr error
	for _, arg := range inv.Args[1:] {
		resolved := inv.Resolve(arg)

		err := func() error {
			entry, err := inv.FS.Stat(resolved)
			if err != nil {
				return err
			}
			if !entry.IsDir() {
				return &vfs.Error{Op: "rmdir", Path: resolved, Kind: vfs.NotADirectory}
			}
			return inv.FS.Delete(resolved)
		}()

		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

func init() {
	mustRegister(&Command{
		Name:  "rmdir",
		Use:   "rmdir path...",
		Short: "Remove empty directories.",
		Run:   Rmdir,
	})
}
