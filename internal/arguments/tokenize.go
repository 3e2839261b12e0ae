package arguments

import (
	"strings"
	"unicode"
)

// Token is a word of the input string.
type Token struct {
	Value string
	// Quoted is true if any part of the word was quoted or escaped. A quoted
	// separator is a plain value.
	Quoted bool
}

// Tokenize splits input in words, like a shell.
//
// Words are separated by unquoted whitespace. Single quotes preserve every
// character. Double quotes preserve whitespace, backslash escapes the next
// character outside single quotes. An unterminated quote extends to the end
// of input.
func Tokenize(input string) (tokens []Token) {
	var (
		word    strings.Builder
		inWord  bool
		quoted  bool
		quote   rune
		escaped bool
	)

	flush := func() {
		if inWord {
			tokens = append(tokens, Token{Value: word.String(), Quoted: quoted})
		}
		word.Reset()
		inWord = false
		quoted = false
	}

	for _, c := range input {
		switch {
		case escaped:
			word.WriteRune(c)
			escaped = false
		case quote == '\'':
			if c == '\'' {
				quote = 0
			} else {
				word.WriteRune(c)
			}
		case c == '\\':
			// a\ b -> "a b"
			escaped = true
			inWord = true
			quoted = true
		case quote == '"':
			if c == '"' {
				quote = 0
			} else {
				word.WriteRune(c)
			}
		case c == '\'' || c == '"':
			quote = c
			inWord = true
			quoted = true
		case unicode.IsSpace(c):
			flush()
		default:
			word.WriteRune(c)
			inWord = true
		}
	}
	flush()
	return
}
