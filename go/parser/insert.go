/*
 * minisql Parser - INSERT
 *
 *   insert_stmt := INSERT INTO identifier VALUES ( value [, value]... )
 *   value       := identifier | numeric | string
 */

package parser

import (
	"github.com/multigres/minisql/go/parser/ast"
	"github.com/multigres/minisql/go/parser/lexer"
)

// ParseInsert parses an INSERT statement. It returns (nil, nil) when tokens
// do not start with INSERT. Commas in the value list are separators only, so
// repeated or missing commas are tolerated.
func ParseInsert(tokens []lexer.Token) (*ast.InsertStatement, error) {
	if !leading(tokens, lexer.KeywordInsert) {
		return nil, nil
	}
	s := newTokenStream(tokens[1:])

	if _, err := s.expect(lexer.KeywordKind(lexer.KeywordInto), MissingIntoKeyword); err != nil {
		return nil, err
	}
	table, err := s.expect(lexer.IdentifierKind, MissingTableName)
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(lexer.KeywordKind(lexer.KeywordValues), MissingValuesKeyword); err != nil {
		return nil, err
	}
	if _, err := s.expect(lexer.SymbolKind(lexer.SymbolLeftParen), MissingLeftParen); err != nil {
		return nil, err
	}

	var values []lexer.Token
	for {
		tok, ok := s.next()
		if !ok {
			return nil, newParseError(tok, ok, MissingRightParens)
		}

		switch {
		case tok.Is(lexer.IdentifierKind), tok.Is(lexer.NumericKind), tok.Is(lexer.StringKind):
			values = append(values, tok)
		case tok.IsSymbol(lexer.SymbolComma):
			continue
		default:
			if _, err := expectToken(tok, ok, lexer.SymbolKind(lexer.SymbolRightParen), MissingRightParens); err != nil {
				return nil, err
			}
			return ast.NewInsertStatement(tokens[0].Loc, table, values), nil
		}
	}
}
