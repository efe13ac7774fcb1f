/*
 * minisql Parser - SELECT
 *
 *   select_stmt := SELECT item [, item]... FROM identifier
 *   item        := (identifier | numeric) [AS name]
 */

package parser

import (
	"github.com/multigres/minisql/go/parser/ast"
	"github.com/multigres/minisql/go/parser/lexer"
)

// ParseSelect parses a SELECT statement. It returns (nil, nil) when tokens
// do not start with SELECT.
//
// The select list is read one token at a time. Identifiers and numerics
// start a new item and must be separated from the previous item by a comma.
// AS attaches the token after it, whatever its kind, as the alias of the most
// recent item. Any other token ends the list and must be FROM.
func ParseSelect(tokens []lexer.Token) (*ast.SelectStatement, error) {
	if !leading(tokens, lexer.KeywordSelect) {
		return nil, nil
	}
	s := newTokenStream(tokens[1:])

	var (
		items    []ast.SelectItem
		sawComma bool
	)

	for {
		tok, ok := s.next()
		if !ok {
			return nil, newParseError(tok, ok, MissingTableName)
		}

		switch {
		case tok.Is(lexer.IdentifierKind), tok.Is(lexer.NumericKind):
			if len(items) > 0 && !sawComma {
				return nil, newParseError(tok, ok, ExpectedComma)
			}
			items = append(items, ast.SelectItem{Name: tok})
			sawComma = false

		case tok.IsKeyword(lexer.KeywordAs):
			if len(items) == 0 {
				return nil, newParseError(tok, ok, UnexpectedAsKeyword)
			}
			alias, ok := s.next()
			if !ok {
				return nil, newParseError(alias, ok, ExpectedNameAfterAs)
			}
			items[len(items)-1].Alias = &alias

		case tok.IsSymbol(lexer.SymbolComma):
			sawComma = true

		default:
			if !tok.IsKeyword(lexer.KeywordFrom) {
				return nil, newParseError(tok, ok, MissingTableName)
			}
			table, err := s.expect(lexer.IdentifierKind, MissingTableName)
			if err != nil {
				return nil, err
			}
			return ast.NewSelectStatement(tokens[0].Loc, table, items), nil
		}
	}
}
