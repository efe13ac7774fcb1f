package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multigres/minisql/go/parser/ast"
	"github.com/multigres/minisql/go/parser/lexer"
)

// roundTripStatements parse successfully and deparse to text that parses
// back to the same statement.
var roundTripStatements = []string{
	"create table mytable (id text , name text)",
	"create table t (a int)",
	"CREATE TABLE Users (Id INT, Email TEXT)",
	"insert into mytable values ('one' , 'two')",
	"insert into t values (a, 1, 2.5e-3, 'it''s')",
	"insert into t values ()",
	"select something as somethingelse from sometable",
	"select a as b, c from t",
	"select 1, 2 as two from numbers",
	"select from t",
	"select a as from from t",
	"select\n\ta,\n\tb\nfrom\n\tt",
}

// stripLocations returns a copy of stmt with every location zeroed.
func stripLocations(stmt ast.Statement) ast.Statement {
	strip := func(tok lexer.Token) lexer.Token {
		tok.Loc = lexer.Location{}
		return tok
	}

	switch s := stmt.(type) {
	case *ast.CreateStatement:
		columns := make([]ast.Column, len(s.Columns))
		for i, col := range s.Columns {
			columns[i] = ast.Column{Name: strip(col.Name), DataType: strip(col.DataType), IsPrimaryKey: col.IsPrimaryKey}
		}
		return ast.NewCreateStatement(lexer.Location{}, strip(s.TableName), columns)
	case *ast.InsertStatement:
		var values []lexer.Token
		for _, v := range s.Values {
			values = append(values, strip(v))
		}
		return ast.NewInsertStatement(lexer.Location{}, strip(s.TableName), values)
	case *ast.SelectStatement:
		var items []ast.SelectItem
		for _, item := range s.Items {
			stripped := ast.SelectItem{Name: strip(item.Name)}
			if item.Alias != nil {
				alias := strip(*item.Alias)
				stripped.Alias = &alias
			}
			items = append(items, stripped)
		}
		return ast.NewSelectStatement(lexer.Location{}, strip(s.TableName), items)
	}
	return stmt
}

func TestRoundTrip(t *testing.T) {
	for _, input := range roundTripStatements {
		t.Run(input, func(t *testing.T) {
			first, err := ParseString(input)
			require.NoError(t, err)

			text := first.SqlString()
			second, err := ParseString(text)
			require.NoError(t, err, "reparsing %q", text)

			assert.Equal(t, stripLocations(first), stripLocations(second))
			assert.Equal(t, text, second.SqlString(), "deparse is not stable")
		})
	}
}

func TestCanonicalText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"create table mytable (id text , name text)", "create table mytable (id text, name text)"},
		{"insert into mytable values ('one' , 'two')", "insert into mytable values ('one', 'two')"},
		{"select something as somethingelse from sometable", "select something as somethingelse from sometable"},
		{"SELECT A AS B,C FROM T;", "select a as b, c from t"},
		{"insert into t values (a b)", "insert into t values (a, b)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stmt, err := ParseString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stmt.SqlString())
		})
	}
}
