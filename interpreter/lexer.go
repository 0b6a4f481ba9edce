// Package interpreter — lexer: source text to a token stream with byte
// offsets for error reporting.
package interpreter

import (
	"fmt"
	"unicode"
)

// tokKind classifies a token.
type tokKind int

const (
	tokEOF tokKind = iota
	tokWord        // field names, keywords, bare literals
	tokNumber
	tokOp // == != < <= > >=
	tokLParen
	tokRParen
)

// token is one lexeme with its byte offset in the source.
type token struct {
	kind tokKind
	text string
	off  int
}

// lex splits the source into tokens. The only lexical errors are stray
// runes and a lone "=" or "!".
func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", off: i})
			i++

		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", off: i})
			i++

		case c == '=' || c == '!':
			if i+1 >= len(src) || src[i+1] != '=' {
				return nil, fmt.Errorf("%w: lone %q at offset %d", ErrSyntax, string(c), i)
			}
			toks = append(toks, token{kind: tokOp, text: src[i : i+2], off: i})
			i += 2

		case c == '<' || c == '>':
			if i+1 < len(src) && src[i+1] == '=' {
				toks = append(toks, token{kind: tokOp, text: src[i : i+2], off: i})
				i += 2
				break
			}
			toks = append(toks, token{kind: tokOp, text: string(c), off: i})
			i++

		case c >= '0' && c <= '9':
			start := i
			for i < len(src) && src[i] >= '0' && src[i] <= '9' {
				i++
			}
			toks = append(toks, token{kind: tokNumber, text: src[start:i], off: start})

		case isWordStart(rune(c)):
			start := i
			for i < len(src) && isWordRune(rune(src[i])) {
				i++
			}
			toks = append(toks, token{kind: tokWord, text: src[start:i], off: start})

		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, string(c), i)
		}
	}
	toks = append(toks, token{kind: tokEOF, text: "", off: len(src)})

	return toks, nil
}

func isWordStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.'
}
