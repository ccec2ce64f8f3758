package commands

import (
	"fmt"
	"io"
)

// catChunkSize bounds the copy buffer so large files stream instead of
// loading wholesale.
const catChunkSize = 512

// Cat implements the cat built-in: concatenate files in argument
// order. It stops at the first unreadable file; output already emitted
// for earlier files stays visible and is not rolled back.
func Cat(inv *Invocation) error {
	if len(inv.Args) < 2 {
		return fmt.Errorf("missing operand")
	}

	for _, arg := range inv.Args[1:] {
		fd, err := inv.FS.Open(inv.Resolve(arg))
		if err != nil {
			return err
		}

		_, err = io.CopyBuffer(inv.Out, fd, make([]byte, catChunkSize))
		fd.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

func init() {
	mustRegister(&Command{
		Name:  "cat",
		Use:   "cat path...",
		Short: "Concatenate and print file contents.",
		Run:   Cat,
	})
}
