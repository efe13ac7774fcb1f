/*
 * minisql Lexer - String Literals
 *
 * Strings are delimited by single quotes. Inside a string a doubled quote
 * ('') stands for one literal quote, so 'it''s' is a single token.
 */

package lexer

const stringDelimiter = '\''

// stringState is the state of the quoted-string scanner.
type stringState int

const (
	stateInString stringState = iota // Inside the literal
	stateSawQuote                    // Just read a quote: closer, or first half of ''
	stateDone                        // Read the closing quote
)

// lexString recognizes a single-quoted string literal at the start of source.
// The token value is the literal as written, outer quotes included.
// An unterminated literal does not match.
func lexString(source string) (Token, Cursor, bool) {
	if len(source) == 0 || source[0] != stringDelimiter {
		return Token{}, Cursor{}, false
	}

	var cur Cursor
	cur.advance(source[0])

	state := stateInString
	for i := 1; i < len(source) && state != stateDone; i++ {
		c := source[i]

		switch state {
		case stateInString:
			if c == stringDelimiter {
				state = stateSawQuote
			}
		case stateSawQuote:
			if c != stringDelimiter {
				// The previous quote closed the literal; c is not part of it.
				state = stateDone
				continue
			}
			state = stateInString
		}

		cur.advance(c)
	}

	// A quote as the very last byte closes the literal too.
	if state == stateSawQuote {
		state = stateDone
	}
	if state != stateDone {
		return Token{}, Cursor{}, false
	}

	return Token{
		Value: source[:cur.Offset],
		Kind:  StringKind,
	}, cur, true
}
