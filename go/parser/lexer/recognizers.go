/*
 * minisql Lexer - Keyword, Symbol and Identifier Recognizers
 */

package lexer

import "strings"

// recognizer attempts to match one token at the start of source. It returns
// the token, the cursor delta it consumed and whether it matched at all. The
// returned token has no location; the driver stamps it.
type recognizer func(source string) (Token, Cursor, bool)

// recognizers in priority order. The first one that matches wins.
var recognizers = [...]recognizer{
	lexNumeric,
	lexKeyword,
	lexString,
	lexSymbol,
	lexIdentifier,
}

// lexKeyword matches the first keyword in the table whose spelling prefixes
// source, ignoring case. It does not look at what follows the spelling, so
// "selectable" lexes as the keyword select followed by "able".
func lexKeyword(source string) (Token, Cursor, bool) {
	for _, kw := range keywordTable {
		n := len(kw.Name)
		if len(source) < n || !strings.EqualFold(source[:n], kw.Name) {
			continue
		}
		return Token{
			Value: kw.Name,
			Kind:  KeywordKind(kw.Type),
		}, columns(n), true
	}
	return Token{}, Cursor{}, false
}

// lexSymbol matches the first symbol in the table that prefixes source.
// A newline resets the column and bumps the line.
func lexSymbol(source string) (Token, Cursor, bool) {
	for _, sym := range symbolTable {
		if !strings.HasPrefix(source, sym.Name) {
			continue
		}

		delta := columns(len(sym.Name))
		if sym.Type == SymbolNewline {
			delta = Cursor{Offset: 1, Loc: Location{Line: 1}}
		}

		return Token{
			Value: sym.Name,
			Kind:  SymbolKind(sym.Type),
		}, delta, true
	}
	return Token{}, Cursor{}, false
}

// lexIdentifier matches [A-Za-z][A-Za-z0-9_]* and folds it to lowercase.
func lexIdentifier(source string) (Token, Cursor, bool) {
	if len(source) == 0 || !isAlpha(source[0]) {
		return Token{}, Cursor{}, false
	}

	n := 1
	for n < len(source) && isIdentCont(source[n]) {
		n++
	}

	return Token{
		Value: strings.ToLower(source[:n]),
		Kind:  IdentifierKind,
	}, columns(n), true
}

// isDigit checks if a byte is a decimal digit
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isAlpha checks if a byte is an ASCII letter
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isIdentCont checks if a byte can continue an identifier
func isIdentCont(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_'
}
