// Package core wires the tokenizer, command registry, session, and
// filesystem adapter into the shell engine: a dispatcher that executes
// one line at a time and a REPL loop that feeds it.
package core

import (
	"bytes"
	"fmt"

	"github.com/anmitsu/go-shlex"

	"microsh.dev/microsh/commands"
	"microsh.dev/microsh/core/logger"
	"microsh.dev/microsh/core/shell"
	"microsh.dev/microsh/core/vfs"
)

// RunLine tokenizes and executes a single console line. All failures
// resolve here into a one-line report on the console; nothing
// propagates to the caller, so a bad line can never take down the
// loop.
func (s *Shell) RunLine(line string) {
	tokens, err := shell.Tokenize(line)
	if err != nil {
		s.log.Record(logger.Entry{
			Event: logger.EventSyntaxError,
			Dir:   s.session.Getwd(),
			Error: err.Error(),
		})
		fmt.Fprintf(s.console, "microsh: syntax error: %v\n", err)
		return
	}

	s.dispatch(tokens)
}

// dispatch executes an already-tokenized line: identify the command,
// strip out the redirection target, run the handler against its output
// buffer, then route the buffer to the console or the target file.
func (s *Shell) dispatch(tokens []shell.Token) {
	if len(tokens) == 0 {
		return // no-op line
	}

	tokens = s.expandAlias(tokens)

	// The redirection token is removed from the argument list no
	// matter where it appeared in the original line. The tokenizer
	// guarantees there is at most one.
	var redirect *shell.Token
	var words []string
	for i, tok := range tokens {
		if tok.IsRedirect() {
			redirect = &tokens[i]
			continue
		}
		words = append(words, tok.Text)
	}

	if len(words) == 0 {
		fmt.Fprintln(s.console, "microsh: missing command")
		return
	}

	name := words[0]
	cmd, ok := commands.Resolve(name)
	if !ok {
		s.log.Record(logger.Entry{
			Event:   logger.EventUnknownCommand,
			Command: name,
			Dir:     s.session.Getwd(),
		})
		fmt.Fprintf(s.console, "%s: command not found\n", name)
		return
	}

	buf := &bytes.Buffer{}
	inv := &commands.Invocation{
		Args:        words,
		Session:     s.session,
		FS:          s.session.FS(),
		Out:         buf,
		Runner:      s,
		Interactive: s.interactive && redirect == nil,
	}

	runErr := cmd.Run(inv)

	entry := logger.Entry{
		Event:   logger.EventCommand,
		Command: name,
		Args:    words[1:],
		Dir:     s.session.Getwd(),
	}
	if runErr != nil {
		entry.Error = runErr.Error()
	}
	s.log.Record(entry)

	if runErr != nil {
		// Partial output already produced stays visible on the
		// console, it is not rolled back. Nothing reaches a
		// redirection target unless the handler succeeded.
		if redirect == nil && buf.Len() > 0 {
			s.console.Write(buf.Bytes())
		}
		fmt.Fprintf(s.console, "%s: %v\n", name, runErr)
		return
	}

	if redirect != nil {
		mode := vfs.WriteOverwrite
		if redirect.Kind == shell.RedirectAppend {
			mode = vfs.WriteAppend
		}
		target := s.session.Resolve(redirect.Text)
		if err := s.session.FS().Write(target, bytes.NewReader(buf.Bytes()), mode); err != nil {
			fmt.Fprintf(s.console, "%s: %v\n", name, err)
		}
		return
	}

	s.console.Write(buf.Bytes())
}

// expandAlias substitutes the alias body for the first word, once.
// Bodies are plain argument lists; they carry no operators, so shlex
// is enough to split them.
func (s *Shell) expandAlias(tokens []shell.Token) []shell.Token {
	if tokens[0].Kind != shell.Word {
		return tokens
	}

	body, ok := s.session.Alias(tokens[0].Text)
	if !ok {
		return tokens
	}

	parts, err := shlex.Split(body, true)
	if err != nil || len(parts) == 0 {
		return tokens
	}

	out := make([]shell.Token, 0, len(parts)+len(tokens)-1)
	for _, part := range parts {
		out = append(out, shell.Token{Kind: shell.Word, Text: part})
	}
	return append(out, tokens[1:]...)
}
