/*
 * minisql Parser - End-to-End Tests
 */

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multigres/minisql/go/parser/ast"
	"github.com/multigres/minisql/go/parser/lexer"
)

func mustLex(t *testing.T, source string) []lexer.Token {
	t.Helper()
	tokens, err := lexer.Lex(source)
	require.NoError(t, err, "lexing %q", source)
	return tokens
}

func identAt(value string, col uint) lexer.Token {
	return lexer.Token{Value: value, Kind: lexer.IdentifierKind, Loc: lexer.Location{Column: col}}
}

func keywordAt(k lexer.KeywordType, col uint) lexer.Token {
	return lexer.Token{Value: k.String(), Kind: lexer.KeywordKind(k), Loc: lexer.Location{Column: col}}
}

func stringAt(value string, col uint) lexer.Token {
	return lexer.Token{Value: value, Kind: lexer.StringKind, Loc: lexer.Location{Column: col}}
}

func numericAt(value string, col uint) lexer.Token {
	return lexer.Token{Value: value, Kind: lexer.NumericKind, Loc: lexer.Location{Column: col}}
}

func requireParseError(t *testing.T, err error, kind ParseErrorKind) *ParseError {
	t.Helper()
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, kind, parseErr.Kind, "got %v", parseErr)
	return parseErr
}

func TestEndToEndCreate(t *testing.T) {
	stmt, err := ParseCreate(mustLex(t, "create table mytable (id text , name text)"))
	require.NoError(t, err)
	require.NotNil(t, stmt)

	assert.Equal(t, ast.NewCreateStatement(lexer.Location{}, identAt("mytable", 13), []ast.Column{
		{Name: identAt("id", 22), DataType: keywordAt(lexer.KeywordText, 25)},
		{Name: identAt("name", 32), DataType: keywordAt(lexer.KeywordText, 37)},
	}), stmt)
}

func TestEndToEndInsert(t *testing.T) {
	stmt, err := ParseInsert(mustLex(t, "insert into mytable values ('one' , 'two')"))
	require.NoError(t, err)
	require.NotNil(t, stmt)

	assert.Equal(t, ast.NewInsertStatement(lexer.Location{}, identAt("mytable", 12), []lexer.Token{
		stringAt("'one'", 28),
		stringAt("'two'", 36),
	}), stmt)
}

func TestEndToEndSelect(t *testing.T) {
	stmt, err := ParseSelect(mustLex(t, "select something as somethingelse from sometable"))
	require.NoError(t, err)
	require.NotNil(t, stmt)

	alias := identAt("somethingelse", 20)
	assert.Equal(t, ast.NewSelectStatement(lexer.Location{}, identAt("sometable", 39), []ast.SelectItem{
		{Name: identAt("something", 7), Alias: &alias},
	}), stmt)
}

func TestEndToEndSelectMissingComma(t *testing.T) {
	stmt, err := ParseSelect(mustLex(t, "select a b from t"))
	assert.Nil(t, stmt)
	parseErr := requireParseError(t, err, ExpectedComma)
	assert.Equal(t, identAt("b", 9), parseErr.Token)
}

func TestEndToEndCreateInvalidType(t *testing.T) {
	stmt, err := ParseCreate(mustLex(t, "create table t (id foo)"))
	assert.Nil(t, stmt)
	parseErr := requireParseError(t, err, InvalidType)
	assert.Equal(t, identAt("foo", 19), parseErr.Token)
}

func TestParseDispatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ast.StatementKind
	}{
		{"create", "create table t (id int)", ast.CreateKind},
		{"insert", "insert into t values (1)", ast.InsertKind},
		{"select", "select a from t", ast.SelectKind},
		{"trailing semicolon", "select a from t;", ast.SelectKind},
		{"uppercase", "INSERT INTO T VALUES ('X')", ast.InsertKind},
		{"multi line", "select a,\n\tb\nfrom t", ast.SelectKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := Parse(mustLex(t, tt.input))
			require.NoError(t, err)
			require.NotNil(t, stmt)
			assert.Equal(t, tt.kind, stmt.StatementKind())
		})
	}
}

func TestParseUnrecognized(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"only semicolon", ";"},
		{"identifier", "drop t"},
		{"where", "where a = 1"},
		{"numeric", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := Parse(mustLex(t, tt.input))
			assert.Nil(t, stmt)
			assert.ErrorIs(t, err, ErrUnrecognizedStatement)
		})
	}
}

func TestParseReturnsUntypedNilOnError(t *testing.T) {
	stmt, err := Parse(mustLex(t, "insert t"))
	requireParseError(t, err, MissingIntoKeyword)
	assert.True(t, stmt == nil)
}

func TestParseString(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stmt, err := ParseString("select a as b, c from t")
		require.NoError(t, err)
		assert.Equal(t, "select a as b, c from t", stmt.SqlString())
	})

	t.Run("lex error", func(t *testing.T) {
		stmt, err := ParseString("select * from t")
		assert.Nil(t, stmt)
		var lexErr *lexer.LexError
		require.ErrorAs(t, err, &lexErr)
		assert.Equal(t, lexer.Location{Column: 7}, lexErr.Loc)
	})

	t.Run("parse error", func(t *testing.T) {
		_, err := ParseString("create table t (id)")
		requireParseError(t, err, InvalidType)
	})
}

func TestStatementLocation(t *testing.T) {
	stmt, err := ParseString("\n\n  select a from t")
	require.NoError(t, err)
	assert.Equal(t, lexer.Location{Line: 2, Column: 2}, stmt.Location())
}
