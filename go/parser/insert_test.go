package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multigres/minisql/go/parser/lexer"
)

func symbolAt(s lexer.SymbolType, col uint) lexer.Token {
	return lexer.Token{Value: s.String(), Kind: lexer.SymbolKind(s), Loc: lexer.Location{Column: col}}
}

func TestParseInsert(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		table  string
		values []lexer.Token
	}{
		{
			name:  "mixed values",
			input: "insert into t values (a, 1, 'x')",
			table: "t",
			values: []lexer.Token{
				identAt("a", 22),
				numericAt("1", 25),
				stringAt("'x'", 28),
			},
		},
		{
			name:   "empty list",
			input:  "insert into t values ()",
			table:  "t",
			values: nil,
		},
		{
			name:  "repeated commas",
			input: "insert into t values (a,,b)",
			table: "t",
			values: []lexer.Token{
				identAt("a", 22),
				identAt("b", 25),
			},
		},
		{
			name:  "missing commas",
			input: "insert into t values (a b)",
			table: "t",
			values: []lexer.Token{
				identAt("a", 22),
				identAt("b", 24),
			},
		},
		{
			name:   "trailing tokens are ignored",
			input:  "insert into users values (1) junk",
			table:  "users",
			values: []lexer.Token{numericAt("1", 26)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := ParseInsert(mustLex(t, tt.input))
			require.NoError(t, err)
			require.NotNil(t, stmt)
			assert.Equal(t, tt.table, stmt.TableName.Value)
			assert.Equal(t, tt.values, stmt.Values)
		})
	}
}

func TestParseInsertDeclines(t *testing.T) {
	for _, input := range []string{"", "select a from t", "into t values (1)", "create table t (a int)"} {
		t.Run(input, func(t *testing.T) {
			stmt, err := ParseInsert(mustLex(t, input))
			assert.NoError(t, err)
			assert.Nil(t, stmt)
		})
	}
}

func TestParseInsertErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ParseErrorKind
		token lexer.Token
	}{
		{"insert alone", "insert", MissingIntoKeyword, endOfInput},
		{"missing into", "insert t values (1)", MissingIntoKeyword, identAt("t", 7)},
		{"missing table", "insert into", MissingTableName, endOfInput},
		{"numeric table", "insert into 1 values (1)", MissingTableName, numericAt("1", 12)},
		{"missing values", "insert into t (1)", MissingValuesKeyword, symbolAt(lexer.SymbolLeftParen, 14)},
		{"values at end", "insert into t", MissingValuesKeyword, endOfInput},
		{"missing left paren", "insert into t values 1", MissingLeftParen, numericAt("1", 21)},
		{"left paren at end", "insert into t values", MissingLeftParen, endOfInput},
		{"unclosed list", "insert into t values (1", MissingRightParens, endOfInput},
		{"list ended by semicolon", "insert into t values (1;", MissingRightParens, symbolAt(lexer.SymbolSemicolon, 23)},
		{"keyword in list", "insert into t values (select)", MissingRightParens, keywordAt(lexer.KeywordSelect, 22)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := ParseInsert(mustLex(t, tt.input))
			assert.Nil(t, stmt)
			parseErr := requireParseError(t, err, tt.kind)
			assert.Equal(t, tt.token, parseErr.Token)
		})
	}
}
