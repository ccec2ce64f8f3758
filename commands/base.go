// Package commands holds the shell's built-in command set. The
// registry is populated once by init() functions and is read-only for
// the process lifetime; there is no runtime plugin loading.
package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	getopt "github.com/pborman/getopt/v2"

	"microsh.dev/microsh/core/session"
	"microsh.dev/microsh/core/vfs"
)

// Runner lets built-ins feed work back into the shell engine without
// importing it. Only exec uses this today.
type Runner interface {
	// RunScript executes the script at the given absolute path line by
	// line through the normal tokenize/dispatch pipeline.
	RunScript(path string) error
}

// Invocation is the ephemeral per-command execution context. It is
// created by the dispatcher for a single line and discarded afterward.
type Invocation struct {
	// Args is the argument vector; Args[0] is the command name.
	Args []string
	// Session carries the working directory and aliases.
	Session *session.Session
	// FS is the filesystem adapter, identical to Session.FS().
	FS vfs.Filesystem
	// Out collects the command's normal output. The dispatcher decides
	// whether it reaches the console or a redirection target, handlers
	// stay agnostic.
	Out io.Writer
	// Runner re-enters the shell engine, see Runner.
	Runner Runner
	// Interactive is true when output goes to a live console rather
	// than a redirection target or a test buffer.
	Interactive bool
}

// Resolve maps a user-supplied path to an absolute one against the
// session's working directory.
func (inv *Invocation) Resolve(name string) string {
	return inv.Session.Resolve(name)
}

// SimpleCommand is a harness for flag parsing and help output shared
// by most built-ins.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses flags and, if parsing succeeded and help wasn't
// requested, calls the callback.
func (s *SimpleCommand) Run(inv *Invocation, callback func() error) error {
	opts := s.Flags()
	showHelp := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(inv.Args, nil); err != nil {
		return err
	}

	if *showHelp {
		s.PrintHelp(inv.Out)
		return nil
	}

	return callback()
}

// BytesToHuman formats a byte count the way the original device shell
// did: multiples above ten drop the decimal.
func BytesToHuman(bytes int64) string {
	for _, e := range []struct {
		unit  string
		power int64
	}{
		{"P", 1e15},
		{"T", 1e12},
		{"G", 1e9},
		{"M", 1e6},
		{"K", 1e3},
	} {
		quotient := bytes / e.power
		switch {
		case quotient == 0:
			continue
		case quotient > 10:
			return fmt.Sprintf("%d%s", quotient, e.unit)
		default:
			return fmt.Sprintf("%0.1f%s", float64(bytes)/float64(e.power), e.unit)
		}
	}

	return fmt.Sprintf("%d", bytes)
}

const (
	colorAlways = "always"
	colorAuto   = "auto"
	colorNever  = "never"
)

var (
	ColorBoldBlue = color.New(color.FgBlue, color.Bold)
)

// ColorPrinter colorizes output behind a --color enum flag.
type ColorPrinter struct {
	value *string
	inv   *Invocation
}

// Init sets up the flag used to determine the color output.
func (c *ColorPrinter) Init(flags *getopt.Set, inv *Invocation) {
	c.inv = inv
	c.value = flags.EnumLong(
		"color",
		rune(0), // No short flag.
		[]string{colorAlways, colorAuto, colorNever},
		colorAuto,
		"colorize the output (always|auto|never)")
}

func (c *ColorPrinter) ShouldColor() bool {
	switch {
	case *c.value == colorNever:
		return false
	case *c.value == colorAlways:
		return true
	default:
		return c.inv.Interactive
	}
}

func (c *ColorPrinter) Sprintf(color *color.Color, format string, a ...interface{}) string {
	if c.ShouldColor() {
		return color.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}
