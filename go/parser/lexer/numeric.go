/*
 * minisql Lexer - Numeric Literals
 *
 * Accepted shapes: digits with at most one period and at most one exponent
 * marker, e.g. 226, 1.1, .1, 6., 1e3, 1e-21, 1.42e-321. No leading sign.
 */

package lexer

// lexNumeric recognizes the longest numeric literal at the start of source.
//
// Scanning stops without failing at the first character that cannot extend
// the literal, so "1a1" yields "1". Malformed shapes fail the whole attempt:
// a second period ("1.."), a second exponent marker ("1ee7"), a period after
// the exponent ("1e2.5") and an exponent marker that ends the input ("1e").
func lexNumeric(source string) (Token, Cursor, bool) {
	var (
		cur            Cursor
		periodFound    bool
		expMarkerFound bool
	)

scan:
	for i := 0; i < len(source); i++ {
		c := source[i]

		if i == 0 && !isDigit(c) && c != '.' {
			return Token{}, Cursor{}, false
		}

		switch {
		case c == '.':
			if periodFound {
				return Token{}, Cursor{}, false
			}
			periodFound = true

		case c == 'e':
			if expMarkerFound {
				return Token{}, Cursor{}, false
			}
			expMarkerFound = true
			// No periods after the exponent marker.
			periodFound = true

			if i == len(source)-1 {
				return Token{}, Cursor{}, false
			}

			// A sign directly after the marker belongs to the exponent.
			if next := source[i+1]; next == '+' || next == '-' {
				cur = Merge(cur, columns(1))
				i++
			}

		case !isDigit(c):
			break scan
		}

		cur = Merge(cur, columns(1))
	}

	return Token{
		Value: source[:cur.Offset],
		Kind:  NumericKind,
	}, cur, true
}
