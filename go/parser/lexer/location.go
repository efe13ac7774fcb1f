/*
 * minisql Lexer - Location Tracking
 *
 * Every recognizer reports how far it advanced as a Cursor delta measured
 * from the start of the text it was handed. The driver folds each delta into
 * the running cursor with Merge, so recognizers never need to know where in
 * the source they are.
 */

package lexer

import "fmt"

// Location is a zero-based line/column position in the source text.
type Location struct {
	Line   uint
	Column uint
}

// String renders the location as "line:column".
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Cursor tracks the number of consumed bytes together with the Location
// reached after consuming them.
type Cursor struct {
	Offset uint     // Bytes consumed
	Loc    Location // Position after the consumed bytes
}

// Merge returns base advanced by delta.
//
// Offsets and line counts are added. When delta crossed a newline the column
// restarts, so delta's column replaces base's; otherwise the columns add up.
func Merge(base, delta Cursor) Cursor {
	merged := Cursor{
		Offset: base.Offset + delta.Offset,
		Loc: Location{
			Line: base.Loc.Line + delta.Loc.Line,
		},
	}

	if delta.Loc.Line > 0 {
		merged.Loc.Column = delta.Loc.Column
	} else {
		merged.Loc.Column = base.Loc.Column + delta.Loc.Column
	}

	return merged
}

// advance moves the cursor over a single byte, starting a new line on '\n'.
func (c *Cursor) advance(b byte) {
	c.Offset++
	if b == '\n' {
		c.Loc.Line++
		c.Loc.Column = 0
		return
	}
	c.Loc.Column++
}

// columns returns a same-line delta covering n bytes.
func columns(n int) Cursor {
	return Cursor{Offset: uint(n), Loc: Location{Column: uint(n)}}
}
