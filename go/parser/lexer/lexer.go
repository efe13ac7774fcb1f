/*
 * minisql Lexer - Driver
 *
 * The driver walks the source left to right. At each position it tries the
 * recognizers in priority order (numeric, keyword, string, symbol,
 * identifier), merges the winner's cursor delta into the running cursor and
 * starts over at the new position. Spaces are skipped; newlines and tabs are
 * matched as layout symbols that move the cursor without producing a token.
 */

package lexer

import "fmt"

// Lexer produces tokens from a single source string. A Lexer is not safe for
// concurrent use; independent Lexers share no state.
type Lexer struct {
	source string
	cur    Cursor
	err    error
}

// NewLexer creates a lexer positioned at the start of source.
func NewLexer(source string) *Lexer {
	return &Lexer{source: source}
}

// NextToken returns the next token. ok is false once the input is exhausted.
// After an error every further call returns the same error.
func (l *Lexer) NextToken() (tok Token, ok bool, err error) {
	if l.err != nil {
		return Token{}, false, l.err
	}

scan:
	for l.cur.Offset < uint(len(l.source)) {
		rest := l.source[l.cur.Offset:]

		for _, recognize := range recognizers {
			tok, delta, matched := recognize(rest)
			if !matched {
				continue
			}

			start := l.cur.Loc
			l.cur = Merge(l.cur, delta)
			if tok.Kind.isLayout() {
				continue scan
			}

			tok.Loc = start
			return tok, true, nil
		}

		if rest[0] == ' ' {
			l.cur = Merge(l.cur, columns(1))
			continue
		}

		l.err = newLexError(InvalidToken, l.source, l.cur)
		return Token{}, false, l.err
	}

	return Token{}, false, nil
}

// Position returns the cursor after the last consumed byte.
func (l *Lexer) Position() Cursor {
	return l.cur
}

// Lex splits source into tokens. It either consumes the whole input or
// returns a *LexError and no tokens.
func Lex(source string) ([]Token, error) {
	l := NewLexer(source)

	var tokens []Token
	for {
		tok, ok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// String returns a string representation of the lexer for debugging
func (l *Lexer) String() string {
	return fmt.Sprintf("Lexer{Offset: %d, Loc: %s, Len: %d}", l.cur.Offset, l.cur.Loc, len(l.source))
}
