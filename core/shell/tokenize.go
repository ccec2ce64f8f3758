package shell

import (
	"errors"
)

// Syntax errors reported by Tokenize. The line is discarded when any of
// these occur; nothing downstream runs.
var (
	ErrUnterminatedQuote     = errors.New("unterminated quote")
	ErrMissingRedirectTarget = errors.New("missing redirect target")
	ErrDuplicateRedirect     = errors.New("duplicate redirect")
)

type lexState int

const (
	stateOutside lexState = iota
	stateSingleQuote
	stateDoubleQuote
)

// rawToken is an intermediate lexeme: either a word or a bare
// redirection operator found outside quotes.
type rawToken struct {
	text string
	op   TokenKind // Word unless the token is a bare > or >>.
}

// Tokenize splits a line into tokens, honoring single and double
// quoting and the > and >> redirection operators. Quoted content is
// taken literally; a backslash escapes the next rune outside single
// quotes. An empty or all-whitespace line yields an empty token
// sequence and no error.
func Tokenize(line string) ([]Token, error) {
	raw, err := lex(line)
	if err != nil {
		return nil, err
	}

	// Pair each operator with the word that follows it. At most one
	// redirection is allowed per line; a second one is a syntax error
	// rather than a silent override.
	var tokens []Token
	haveRedirect := false
	for i := 0; i < len(raw); i++ {
		tok := raw[i]
		if tok.op == Word {
			tokens = append(tokens, Token{Kind: Word, Text: tok.text})
			continue
		}

		if haveRedirect {
			return nil, ErrDuplicateRedirect
		}
		if i+1 >= len(raw) || raw[i+1].op != Word {
			return nil, ErrMissingRedirectTarget
		}
		tokens = append(tokens, Token{Kind: tok.op, Text: raw[i+1].text})
		haveRedirect = true
		i++
	}

	return tokens, nil
}

func lex(line string) ([]rawToken, error) {
	var out []rawToken
	var cur []rune
	st := stateOutside
	escaping := false

	flush := func() {
		if len(cur) == 0 {
			return
		}
		out = append(out, rawToken{text: string(cur), op: Word})
		cur = cur[:0]
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch st {
		case stateSingleQuote:
			if r == '\'' {
				st = stateOutside
				continue
			}
			cur = append(cur, r)

		case stateDoubleQuote:
			if escaping {
				// Only the closing quote and the backslash itself are
				// escapable inside double quotes.
				if r != '"' && r != '\\' {
					cur = append(cur, '\\')
				}
				cur = append(cur, r)
				escaping = false
				continue
			}
			switch r {
			case '"':
				st = stateOutside
			case '\\':
				escaping = true
			default:
				cur = append(cur, r)
			}

		default: // stateOutside
			if escaping {
				cur = append(cur, r)
				escaping = false
				continue
			}
			switch {
			case r == '\\':
				escaping = true
			case r == '\'':
				st = stateSingleQuote
			case r == '"':
				st = stateDoubleQuote
			case r == ' ' || r == '\t' || r == '\n' || r == '\r':
				flush()
			case r == '>':
				flush()
				if i+1 < len(runes) && runes[i+1] == '>' {
					out = append(out, rawToken{op: RedirectAppend})
					i++
				} else {
					out = append(out, rawToken{op: RedirectOut})
				}
			default:
				cur = append(cur, r)
			}
		}
	}

	if st != stateOutside {
		return nil, ErrUnterminatedQuote
	}
	if escaping {
		// A dangling backslash is taken literally, the grammar is
		// deliberately minimal.
		cur = append(cur, '\\')
	}
	flush()

	return out, nil
}
