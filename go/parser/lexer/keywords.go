/*
 * minisql Lexer - Keyword and Symbol Tables
 *
 * The keyword and symbol tables are ordered: recognizers walk them front to
 * back and the first entry that prefixes the input wins. Both tables are
 * built once at package initialization and never modified afterwards.
 */

package lexer

import (
	"fmt"
	"strings"
)

// KeywordType enumerates the reserved words of the dialect.
type KeywordType int

const (
	KeywordNone KeywordType = iota // Zero value, never produced by the lexer
	KeywordSelect
	KeywordFrom
	KeywordCreate
	KeywordInsert
	KeywordAs
	KeywordTable
	KeywordValues
	KeywordInto
	KeywordInt
	KeywordText
	KeywordWhere
	KeywordAnd
	KeywordOr
)

// SymbolType enumerates punctuation and operators, plus the newline and tab
// layout symbols.
type SymbolType int

const (
	SymbolNone SymbolType = iota // Zero value, never produced by the lexer
	SymbolSemicolon
	SymbolComma
	SymbolLeftParen
	SymbolRightParen
	SymbolEquals
	SymbolNotEquals
	SymbolPlus
	SymbolLessThan
	SymbolLessEquals
	SymbolGreaterThan
	SymbolGreaterEquals
	SymbolNewline
	SymbolTab
)

// KeywordInfo pairs a keyword with its canonical spelling.
type KeywordInfo struct {
	Name string
	Type KeywordType
}

// SymbolInfo pairs a symbol with its spelling.
type SymbolInfo struct {
	Name string
	Type SymbolType
}

// keywordTable is in match order. "into" precedes "int" so that the longer
// spelling is reachable.
var keywordTable = [...]KeywordInfo{
	{"select", KeywordSelect},
	{"from", KeywordFrom},
	{"create", KeywordCreate},
	{"insert", KeywordInsert},
	{"as", KeywordAs},
	{"table", KeywordTable},
	{"values", KeywordValues},
	{"into", KeywordInto},
	{"int", KeywordInt},
	{"text", KeywordText},
	{"where", KeywordWhere},
	{"and", KeywordAnd},
	{"or", KeywordOr},
}

// symbolTable is in match order. Two-character operators precede their
// one-character prefixes.
var symbolTable = [...]SymbolInfo{
	{";", SymbolSemicolon},
	{",", SymbolComma},
	{"(", SymbolLeftParen},
	{")", SymbolRightParen},
	{"=", SymbolEquals},
	{"!=", SymbolNotEquals},
	{"+", SymbolPlus},
	{"<=", SymbolLessEquals},
	{"<", SymbolLessThan},
	{">=", SymbolGreaterEquals},
	{">", SymbolGreaterThan},
	{"\n", SymbolNewline},
	{"\t", SymbolTab},
}

var (
	keywordLookupMap map[string]KeywordType
	keywordSpellings map[KeywordType]string
	symbolLookupMap  map[string]SymbolType
	symbolSpellings  map[SymbolType]string
)

func init() {
	keywordLookupMap = make(map[string]KeywordType, len(keywordTable))
	keywordSpellings = make(map[KeywordType]string, len(keywordTable))
	for _, kw := range keywordTable {
		keywordLookupMap[kw.Name] = kw.Type
		keywordSpellings[kw.Type] = kw.Name
	}

	symbolLookupMap = make(map[string]SymbolType, len(symbolTable))
	symbolSpellings = make(map[SymbolType]string, len(symbolTable))
	for _, sym := range symbolTable {
		symbolLookupMap[sym.Name] = sym.Type
		symbolSpellings[sym.Type] = sym.Name
	}
}

// String returns the canonical lowercase spelling of the keyword.
func (k KeywordType) String() string {
	if name, ok := keywordSpellings[k]; ok {
		return name
	}
	return fmt.Sprintf("KeywordType(%d)", int(k))
}

// String returns the spelling of the symbol.
func (s SymbolType) String() string {
	if name, ok := symbolSpellings[s]; ok {
		return name
	}
	return fmt.Sprintf("SymbolType(%d)", int(s))
}

// LookupKeyword returns the keyword spelled exactly as name, ignoring case.
func LookupKeyword(name string) (KeywordType, bool) {
	k, ok := keywordLookupMap[strings.ToLower(name)]
	return k, ok
}

// LookupSymbol returns the symbol spelled exactly as name.
func LookupSymbol(name string) (SymbolType, bool) {
	s, ok := symbolLookupMap[name]
	return s, ok
}

// Keywords returns the keyword table in match order.
func Keywords() []KeywordInfo {
	return append([]KeywordInfo(nil), keywordTable[:]...)
}

// Symbols returns the symbol table in match order.
func Symbols() []SymbolInfo {
	return append([]SymbolInfo(nil), symbolTable[:]...)
}
