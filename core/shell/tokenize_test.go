package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func word(text string) Token {
	return Token{Kind: Word, Text: text}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
		wantErr  error
	}{
		{
			name:     "simple command",
			input:    "echo hello",
			expected: []Token{word("echo"), word("hello")},
		},
		{
			name:     "multiple arguments",
			input:    "ls -la /data/logs",
			expected: []Token{word("ls"), word("-la"), word("/data/logs")},
		},
		{
			name:     "single quoted string",
			input:    "echo 'hello world'",
			expected: []Token{word("echo"), word("hello world")},
		},
		{
			name:     "double quoted string",
			input:    `echo "hello world"`,
			expected: []Token{word("echo"), word("hello world")},
		},
		{
			name:     "mixed quotes",
			input:    `echo "hello" 'world'`,
			expected: []Token{word("echo"), word("hello"), word("world")},
		},
		{
			name:     "escaped space outside quotes",
			input:    `echo hello\ world`,
			expected: []Token{word("echo"), word("hello world")},
		},
		{
			name:     "escaped quote in double quotes",
			input:    `echo "hello \"world\""`,
			expected: []Token{word("echo"), word(`hello "world"`)},
		},
		{
			name:     "single quotes preserve backslashes",
			input:    `echo 'hello\nworld'`,
			expected: []Token{word("echo"), word(`hello\nworld`)},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "only whitespace",
			input:    "   \t   ",
			expected: nil,
		},
		{
			name:     "multiple spaces between arguments",
			input:    "echo    hello     world",
			expected: []Token{word("echo"), word("hello"), word("world")},
		},
		{
			name:     "redirection",
			input:    "echo hi > out.txt",
			expected: []Token{word("echo"), word("hi"), {Kind: RedirectOut, Text: "out.txt"}},
		},
		{
			name:     "redirection without spaces",
			input:    "echo hi>out.txt",
			expected: []Token{word("echo"), word("hi"), {Kind: RedirectOut, Text: "out.txt"}},
		},
		{
			name:     "append redirection",
			input:    "echo hi >> out.txt",
			expected: []Token{word("echo"), word("hi"), {Kind: RedirectAppend, Text: "out.txt"}},
		},
		{
			name:     "quoted redirect operator is a word",
			input:    `echo ">"`,
			expected: []Token{word("echo"), word(">")},
		},
		{
			name:     "quoted redirect target",
			input:    `echo hi > "my file.txt"`,
			expected: []Token{word("echo"), word("hi"), {Kind: RedirectOut, Text: "my file.txt"}},
		},
		{
			name:    "unterminated single quote",
			input:   "echo 'hello",
			wantErr: ErrUnterminatedQuote,
		},
		{
			name:    "unterminated double quote",
			input:   `echo "hello`,
			wantErr: ErrUnterminatedQuote,
		},
		{
			name:    "redirect with no target",
			input:   "echo hi >",
			wantErr: ErrMissingRedirectTarget,
		},
		{
			name:    "redirect followed by redirect",
			input:   "echo hi > >",
			wantErr: ErrMissingRedirectTarget,
		},
		{
			name:    "two redirections",
			input:   "echo hi > a.txt > b.txt",
			wantErr: ErrDuplicateRedirect,
		},
		{
			name:    "overwrite then append",
			input:   "echo hi > a.txt >> b.txt",
			wantErr: ErrDuplicateRedirect,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Tokenize(tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, tokens)
		})
	}
}

// Joining the tokenized words with single spaces reproduces the
// quote-stripped argument list for lines without redirection.
func TestTokenize_rejoin(t *testing.T) {
	tests := map[string]string{
		`echo hello world`:       "echo hello world",
		`echo  'a b'  c`:         "echo a b c",
		`cat "one file" another`: "cat one file another",
	}

	for input, expected := range tests {
		tokens, err := Tokenize(input)
		assert.NoError(t, err)

		var words []string
		for _, tok := range tokens {
			words = append(words, tok.Text)
		}
		assert.Equal(t, expected, strings.Join(words, " "))
	}
}
