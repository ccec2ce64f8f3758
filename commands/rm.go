package commands

import (
	"fmt"

	"microsh.dev/microsh/core/vfs"
)

// Rm implements the rm built-in. Plain rm refuses directories; -r
// removes them with their contents, matching the original shell's
// rm -rf.
func Rm(inv *Invocation) error {
	cmd := &SimpleCommand{
		Use:   "rm [OPTION...] PATH...",
		Short: "Remove files or directories.",
	}

	recursive := cmd.Flags().BoolLong("recursive", 'r', "remove directories and their contents recursively")

	return cmd.Run(inv, func() error {
		paths := cmd.Flags().Args()
		if len(paths) == 0 {
			return fmt.Errorf("missing operand")
		}

		var firstErr error
		for _, arg := range paths {
			resolved := inv.Resolve(arg)

			err := func() error {
				entry, err := inv.FS.Stat(resolved)
				if err != nil {
					return err
				}
				if entry.IsDir() {
					if !*recursive {
						return &vfs.Error{Op: "rm", Path: resolved, Kind: vfs.IsADirectory}
					}
					return inv.FS.DeleteAll(resolved)
				}
				return inv.FS.Delete(resolved)
			}()

			if err != nil && firstErr == nil {
				firstErr = err
			}
		}

		return firstErr
	})
}

func init() {
	mustRegister(&Command{
		Name:  "rm",
		Use:   "rm [-r] path...",
		Short: "Remove files.",
		Run:   Rm,
	})
}
