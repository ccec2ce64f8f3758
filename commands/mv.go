package commands

import (
	"fmt"
	"path"
)

// Mv implements the mv built-in: move or rename a file or directory.
// When the destination is an existing directory the source moves into
// it under its own name, like the original device shell.
func Mv(inv *Invocation) error {
	if len(inv.Args) != 3 {
		return fmt.Errorf("usage: mv <source> <destination>")
	}

	src := inv.Resolve(inv.Args[1])
	dst := inv.Resolve(inv.Args[2])

	if entry, err := inv.FS.Stat(dst); err == nil && entry.IsDir() {
		dst = path.Join(dst, path.Base(src))
	}

	return inv.FS.Rename(src, dst)
}

func init() {
	mustRegister(&Command{
		Name:  "mv",
		Use:   "mv src dst",
		Short: "Move or rename a file or directory.",
		Run:   Mv,
	})
}
