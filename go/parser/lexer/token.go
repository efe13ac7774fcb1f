/*
 * minisql Lexer - Token Model
 *
 * Tokens are the immutable output of Lex: a value, a kind and the location
 * the value started at.
 */

package lexer

import "fmt"

// TokenClass is the coarse category of a token.
type TokenClass int

const (
	KeywordClass TokenClass = iota
	SymbolClass
	IdentifierClass
	StringClass
	NumericClass
	NullClass
)

// String returns the name of the class.
func (c TokenClass) String() string {
	switch c {
	case KeywordClass:
		return "Keyword"
	case SymbolClass:
		return "Symbol"
	case IdentifierClass:
		return "Identifier"
	case StringClass:
		return "String"
	case NumericClass:
		return "Numeric"
	case NullClass:
		return "Null"
	default:
		return fmt.Sprintf("TokenClass(%d)", int(c))
	}
}

// TokenKind identifies a token exactly. Keyword and symbol tokens also carry
// which keyword or symbol they are; the unused field is always its zero value,
// so two kinds can be compared with ==.
type TokenKind struct {
	Class   TokenClass
	Keyword KeywordType // Set only for KeywordClass
	Symbol  SymbolType  // Set only for SymbolClass
}

var (
	IdentifierKind = TokenKind{Class: IdentifierClass}
	StringKind     = TokenKind{Class: StringClass}
	NumericKind    = TokenKind{Class: NumericClass}
	NullKind       = TokenKind{Class: NullClass}
)

// KeywordKind returns the kind of a keyword token.
func KeywordKind(k KeywordType) TokenKind {
	return TokenKind{Class: KeywordClass, Keyword: k}
}

// SymbolKind returns the kind of a symbol token.
func SymbolKind(s SymbolType) TokenKind {
	return TokenKind{Class: SymbolClass, Symbol: s}
}

// String renders keyword and symbol kinds with their spelling, e.g.
// Keyword(select) or Symbol(",").
func (k TokenKind) String() string {
	switch k.Class {
	case KeywordClass:
		return fmt.Sprintf("Keyword(%s)", k.Keyword)
	case SymbolClass:
		return fmt.Sprintf("Symbol(%q)", k.Symbol.String())
	default:
		return k.Class.String()
	}
}

// isLayout reports whether the kind is a newline or tab symbol. Layout
// symbols move the cursor but are never emitted.
func (k TokenKind) isLayout() bool {
	return k.Class == SymbolClass && (k.Symbol == SymbolNewline || k.Symbol == SymbolTab)
}

// Token is a classified, located lexeme.
type Token struct {
	Value string
	Kind  TokenKind
	Loc   Location
}

// String returns a debugging representation such as Identifier("users")@0:14.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Value, t.Loc)
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind TokenKind) bool {
	return t.Kind == kind
}

// IsKeyword reports whether the token is the keyword k.
func (t Token) IsKeyword(k KeywordType) bool {
	return t.Kind == KeywordKind(k)
}

// IsSymbol reports whether the token is the symbol s.
func (t Token) IsSymbol(s SymbolType) bool {
	return t.Kind == SymbolKind(s)
}
