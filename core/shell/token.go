// Package shell turns raw console lines into tokens. It is a pure
// lexer: no filesystem access, no command knowledge.
package shell

// TokenKind classifies a lexical token.
type TokenKind int

const (
	// Word is a command name or argument.
	Word TokenKind = iota
	// RedirectOut sends command output to the file named by Text,
	// replacing its contents.
	RedirectOut
	// RedirectAppend sends command output to the file named by Text,
	// keeping its contents.
	RedirectAppend
)

func (k TokenKind) String() string {
	switch k {
	case RedirectOut:
		return ">"
	case RedirectAppend:
		return ">>"
	default:
		return "word"
	}
}

// Token is one classified unit of input. Order within a line is
// significant: the first Word is the command name.
type Token struct {
	Kind TokenKind
	Text string
}

// IsRedirect reports whether the token designates a redirection target.
func (t Token) IsRedirect() bool {
	return t.Kind == RedirectOut || t.Kind == RedirectAppend
}
