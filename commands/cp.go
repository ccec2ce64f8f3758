package commands

import (
	"fmt"
	"path"

	"microsh.dev/microsh/core/vfs"
)

// Cp implements the cp built-in. Directories require -r. Contents are
// streamed through the adapter's chunked writes rather than buffered
// wholesale.
func Cp(inv *Invocation) error {
	cmd := &SimpleCommand{
		Use:   "cp [-r] SOURCE DEST",
		Short: "Copy a file or directory.",
	}

	recursive := cmd.Flags().BoolLong("recursive", 'r', "copy directories recursively")

	return cmd.Run(inv, func() error {
		args := cmd.Flags().Args()
		if len(args) != 2 {
			return fmt.Errorf("usage: cp [-r] <source> <destination>")
		}

		src := inv.Resolve(args[0])
		dst := inv.Resolve(args[1])

		srcEntry, err := inv.FS.Stat(src)
		if err != nil {
			return err
		}

		// An existing directory destination receives the source under
		// its own name.
		if entry, err := inv.FS.Stat(dst); err == nil && entry.IsDir() {
			dst = path.Join(dst, path.Base(src))
		}

		if srcEntry.IsDir() && !*recursive {
			return &vfs.Error{Op: "cp", Path: src, Kind: vfs.IsADirectory}
		}

		return copyPath(inv.FS, src, dst, srcEntry.IsDir())
	})
}

func copyPath(fs vfs.Filesystem, src, dst string, isDir bool) error {
	if !isDir {
		return copyFile(fs, src, dst)
	}

	if err := fs.MkdirAll(dst); err != nil {
		return err
	}
	entries, err := fs.List(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcChild := path.Join(src, entry.Name)
		dstChild := path.Join(dst, entry.Name)
		if err := copyPath(fs, srcChild, dstChild, entry.IsDir()); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(fs vfs.Filesystem, src, dst string) error {
	fd, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer fd.Close()

	return fs.Write(dst, fd, vfs.WriteOverwrite)
}

func init() {
	mustRegister(&Command{
		Name:  "cp",
		Use:   "cp [-r] src dst",
		Short: "Copy files and directories.",
		Run:   Cp,
	})
}
