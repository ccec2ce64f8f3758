package core

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"microsh.dev/microsh/core/logger"
	"microsh.dev/microsh/core/session"
	"microsh.dev/microsh/core/vfs"
)

// DefaultPrompt is used when the configuration doesn't set one. \h
// expands to the hostname, \w to the working directory.
const DefaultPrompt = `\h:\w$ `

// LineReader supplies complete input lines. Echo, line editing, and
// backspace handling belong to the console collaborator behind this
// interface, not to the shell core.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Options configures a Shell.
type Options struct {
	// FS is the filesystem adapter the session operates on. Required.
	FS vfs.Filesystem
	// Console receives all shell output. Required.
	Console io.Writer
	// Reader supplies input lines. Required for Run, optional when
	// only RunLine/RunScript are used.
	Reader LineReader
	// Prompt is the prompt template. Empty means DefaultPrompt.
	Prompt string
	// Hostname is substituted for \h in the prompt.
	Hostname string
	// Motd is printed once before the first prompt.
	Motd string
	// Aliases seeds the session's alias table.
	Aliases map[string]string
	// StartupScript, if non-empty, is run before the first prompt.
	// Failures are reported but don't prevent the shell starting.
	StartupScript string
	// Interactive marks the console as a live terminal.
	Interactive bool
	// Log receives session events; nil disables logging.
	Log *logger.Logger
}

// Shell is one interactive session: a REPL loop over the dispatcher.
// It is single-threaded; one line is fully executed before the next is
// read.
type Shell struct {
	session     *session.Session
	console     io.Writer
	reader      LineReader
	prompt      string
	hostname    string
	motd        string
	startup     string
	interactive bool
	log         *logger.Logger

	scriptDepth int
}

func NewShell(opts Options) *Shell {
	sess := session.New(opts.FS)
	for name, body := range opts.Aliases {
		sess.SetAlias(name, body)
	}

	prompt := opts.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	return &Shell{
		session:     sess,
		console:     opts.Console,
		reader:      opts.Reader,
		prompt:      prompt,
		hostname:    opts.Hostname,
		motd:        opts.Motd,
		startup:     opts.StartupScript,
		interactive: opts.Interactive,
		log:         opts.Log,
	}
}

// Session exposes the shell's session state, mainly for tests.
func (s *Shell) Session() *session.Session {
	return s.session
}

// Prompt renders the prompt template against the current session.
func (s *Shell) Prompt() string {
	prompt := strings.ReplaceAll(s.prompt, `\h`, s.hostname)
	prompt = strings.ReplaceAll(prompt, `\w`, s.session.Getwd())
	return prompt
}

// Run is the REPL loop: prompt, read one line, execute, repeat. It
// returns nil when input is exhausted or an exit was requested; no
// command outcome ever terminates it.
func (s *Shell) Run() error {
	if s.motd != "" {
		fmt.Fprintln(s.console, s.motd)
	}

	s.log.Record(logger.Entry{
		Event: logger.EventSessionStart,
		Dir:   s.session.Getwd(),
	})
	defer s.log.Record(logger.Entry{Event: logger.EventSessionEnd})

	if s.startup != "" {
		if err := s.RunScript(s.session.Resolve(s.startup)); err != nil {
			fmt.Fprintf(s.console, "microsh: startup script: %v\n", err)
		}
	}

	for !s.session.ExitRequested() {
		line, err := s.reader.ReadLine(s.Prompt())
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		s.RunLine(line)
	}

	return nil
}
