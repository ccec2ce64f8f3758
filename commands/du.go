package commands

import (
	"fmt"
	"path"
)

// Du implements the du built-in: summarize the bytes used under a
// path, defaulting to the working directory.
func Du(inv *Invocation) error {
	target := "."
	switch len(inv.Args) {
	case 1:
	case 2:
		target = inv.Args[1]
	default:
		return fmt.Errorf("usage: du [path]")
	}

	resolved := inv.Resolve(target)
	size, err := duTotal(inv, resolved)
	if err != nil {
		return err
	}

	fmt.Fprintf(inv.Out, "%6s\t%s\n", BytesToHuman(size), resolved)
	return nil
}

func duTotal(inv *Invocation, name string) (int64, error) {
	entry, err := inv.FS.Stat(name)
	if err != nil {
		return 0, err
	}
	if !entry.IsDir() {
		return entry.Size, nil
	}

	var total int64
	entries, err := inv.FS.List(name)
	if err != nil {
		return 0, err
	}
	for _, child := range entries {
		sub, err := duTotal(inv, path.Join(name, child.Name))
		if err != nil {
			return 0, err
		}
		total += sub
	}
	return total, nil
}

func init() {
	mustRegister(&Command{
		Name:  "du",
		Use:   "du [path]",
		Short: "Summarize disk usage of a directory or file.",
		Run:   Du,
	})
}
