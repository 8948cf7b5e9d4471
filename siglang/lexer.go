package siglang

import (
	"strings"
	"unicode"
)

const (
	operatorRunes = "+-*/<>="
	punctRunes    = "(){};,"
)

// Lex splits the script into a flat token stream. Whitespace is
// discarded; identifiers, numbers, operator runs (runs of operator
// characters lex as one token), and single punctuation characters are
// kept in order. No comments, no strings. The stream always ends with
// an EOF token.
func Lex(source *Source) []Token {
	var tokens []Token
	runes := []rune(source.Content)
	line, column := 1, 1
	i := 0

	pos := func() Pos {
		return Pos{
			Source: source,
			Line:   line,
			Column: column,
		}
	}
	advance := func() {
		if runes[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
		i++
	}

	for i < len(runes) {
		r := runes[i]
		switch {

		case unicode.IsSpace(r):
			advance()

		case r == '_' || unicode.IsLetter(r):
			start := pos()
			var sb strings.Builder
			for i < len(runes) && (runes[i] == '_' || unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i])) {
				sb.WriteRune(runes[i])
				advance()
			}
			tokens = append(tokens, Token{
				Kind: TokenIdentifier,
				Text: sb.String(),
				Pos:  start,
			})

		case unicode.IsDigit(r):
			start := pos()
			var sb strings.Builder
			hasDot := false
			for i < len(runes) {
				r := runes[i]
				if r == '.' && !hasDot {
					hasDot = true
				} else if !unicode.IsDigit(r) {
					break
				}
				sb.WriteRune(r)
				advance()
			}
			tokens = append(tokens, Token{
				Kind: TokenNumber,
				Text: sb.String(),
				Pos:  start,
			})

		case strings.ContainsRune(operatorRunes, r):
			start := pos()
			var sb strings.Builder
			for i < len(runes) && strings.ContainsRune(operatorRunes, runes[i]) {
				sb.WriteRune(runes[i])
				advance()
			}
			tokens = append(tokens, Token{
				Kind: TokenOperator,
				Text: sb.String(),
				Pos:  start,
			})

		case strings.ContainsRune(punctRunes, r):
			tokens = append(tokens, Token{
				Kind: TokenPunct,
				Text: string(r),
				Pos:  pos(),
			})
			advance()

		default:
			tokens = append(tokens, Token{
				Kind: TokenInvalid,
				Text: string(r),
				Pos:  pos(),
			})
			advance()

		}
	}

	tokens = append(tokens, Token{
		Kind: TokenEOF,
		Pos:  pos(),
	})
	return tokens
}
