package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Ls implements the ls built-in: list directory entries.
func Ls(inv *Invocation) error {
	cmd := &SimpleCommand{
		Use:   "ls [OPTION...] [PATH...]",
		Short: "List directory contents.",
	}

	listAll := cmd.Flags().Bool('a', "don't ignore entries starting with .")
	longListing := cmd.Flags().Bool('l', "use a long listing format")
	humanSize := cmd.Flags().BoolLong("human-readable", 'H', "print human readable sizes")

	var color ColorPrinter
	color.Init(cmd.Flags(), inv)

	return cmd.Run(inv, func() error {
		paths := cmd.Flags().Args()
		if len(paths) == 0 {
			paths = append(paths, ".")
		}

		sizeFmt := func(bytes int64) string {
			return fmt.Sprintf("%d", bytes)
		}
		if *humanSize {
			sizeFmt = BytesToHuman
		}

		showNames := len(paths) > 1

		var firstErr error
		for i, dir := range paths {
			entries, err := inv.FS.List(inv.Resolve(dir))
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}

			if showNames {
				if i > 0 {
					fmt.Fprintln(inv.Out)
				}
				fmt.Fprintf(inv.Out, "%s:\n", dir)
			}

			if *longListing {
				tw := tabwriter.NewWriter(inv.Out, 0, 0, 1, ' ', 0)
				for _, entry := range entries {
					if !*listAll && strings.HasPrefix(entry.Name, ".") {
						continue
					}
					kind := "-"
					if entry.IsDir() {
						kind = "d"
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
						kind,
						sizeFmt(entry.Size),
						entry.ModTime.Format("Jan _2 15:04"),
						entryName(&color, entry.Name, entry.IsDir()))
				}
				tw.Flush()
			} else {
				for _, entry := range entries {
					if !*listAll && strings.HasPrefix(entry.Name, ".") {
						continue
					}
					suffix := ""
					if entry.IsDir() {
						suffix = "/"
					}
					fmt.Fprintf(inv.Out, "%s%s\n", entryName(&color, entry.Name, entry.IsDir()), suffix)
				}
			}
		}

		return firstErr
	})
}

func entryName(color *ColorPrinter, name string, isDir bool) string {
	if isDir {
		return color.Sprintf(ColorBoldBlue, "%s", name)
	}
	return name
}

func init() {
	mustRegister(&Command{
		Name:  "ls",
		Use:   "ls [path]",
		Short: "List directory contents.",
		Run:   Ls,
	})
}
