/*
 * minisql Parser - CREATE TABLE
 *
 *   create_stmt := CREATE TABLE identifier ( column [, column]... )
 *   column      := identifier (INT | TEXT)
 */

package parser

import (
	"github.com/multigres/minisql/go/parser/ast"
	"github.com/multigres/minisql/go/parser/lexer"
)

// ParseCreate parses a CREATE TABLE statement. It returns (nil, nil) when
// tokens do not start with CREATE. The column list must hold at least one
// column and every column needs a type.
func ParseCreate(tokens []lexer.Token) (*ast.CreateStatement, error) {
	if !leading(tokens, lexer.KeywordCreate) {
		return nil, nil
	}
	s := newTokenStream(tokens[1:])

	if _, err := s.expect(lexer.KeywordKind(lexer.KeywordTable), ExpectedTableNameAfterCreate); err != nil {
		return nil, err
	}
	table, err := s.expect(lexer.IdentifierKind, ExpectedTableNameAfterCreate)
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(lexer.SymbolKind(lexer.SymbolLeftParen), MissingLeftParen); err != nil {
		return nil, err
	}

	var columns []ast.Column
	for {
		col, err := parseColumn(s)
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)

		sep, ok := s.next()
		switch {
		case ok && sep.IsSymbol(lexer.SymbolComma):
			continue
		case ok && sep.IsSymbol(lexer.SymbolRightParen):
			return ast.NewCreateStatement(tokens[0].Loc, table, columns), nil
		default:
			return nil, newParseError(sep, ok, ExpectedCommaOrRightParen)
		}
	}
}

// parseColumn reads one "name type" pair.
func parseColumn(s *tokenStream) (ast.Column, error) {
	name, err := s.expect(lexer.IdentifierKind, ExpectedCommaOrRightParen)
	if err != nil {
		return ast.Column{}, err
	}

	dataType, ok := s.next()
	if !ok {
		return ast.Column{}, newParseError(dataType, ok, ExpectedColumnType)
	}
	if !dataType.IsKeyword(lexer.KeywordInt) && !dataType.IsKeyword(lexer.KeywordText) {
		return ast.Column{}, newParseError(dataType, ok, InvalidType)
	}

	return ast.Column{Name: name, DataType: dataType}, nil
}
