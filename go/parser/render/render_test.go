/*
 * minisql Render - Tests
 */

package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/multigres/minisql/go/parser"
	"github.com/multigres/minisql/go/parser/ast"
	"github.com/multigres/minisql/go/parser/lexer"
)

func mustParse(t *testing.T, sql string) ast.Statement {
	t.Helper()
	stmt, err := parser.ParseString(sql)
	require.NoError(t, err)
	require.NotNil(t, stmt)
	return stmt
}

func mustLex(t *testing.T, sql string) []lexer.Token {
	t.Helper()
	tokens, err := lexer.Lex(sql)
	require.NoError(t, err)
	return tokens
}

func TestWriteTokensText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTokens(&buf, mustLex(t, "select a from t"), FormatText))

	expected := "0:0\tKeyword(select)\tselect\n" +
		"0:7\tIdentifier\ta\n" +
		"0:9\tKeyword(from)\tfrom\n" +
		"0:14\tIdentifier\tt\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteTokensSQL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTokens(&buf, mustLex(t, "insert into t values ('it''s',1)"), FormatSQL))
	assert.Equal(t, "insert into t values ( 'it''s' , 1 )\n", buf.String())
}

func TestWriteTokensJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTokens(&buf, mustLex(t, "select 1.5"), FormatJSON))

	assert.JSONEq(t, `[
		{"value": "select", "kind": "Keyword(select)", "class": "Keyword", "line": 0, "column": 0},
		{"value": "1.5", "kind": "Numeric", "class": "Numeric", "line": 0, "column": 7}
	]`, buf.String())
}

func TestWriteTokensYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTokens(&buf, mustLex(t, "from\n  x"), FormatYAML))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, map[string]any{
		"value": "from", "kind": "Keyword(from)", "class": "Keyword", "line": 0, "column": 0,
	}, decoded[0])
	assert.Equal(t, map[string]any{
		"value": "x", "kind": "Identifier", "class": "Identifier", "line": 1, "column": 2,
	}, decoded[1])
}

func TestWriteTokensEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTokens(&buf, nil, FormatText))
	assert.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, WriteTokens(&buf, nil, FormatJSON))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestWriteStatementText(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected string
	}{
		{
			name: "create",
			sql:  "create table users (id int, name TEXT)",
			expected: "CREATE table=users @0:0\n" +
				"  column name=id type=int @0:20\n" +
				"  column name=name type=text @0:28\n",
		},
		{
			name: "insert",
			sql:  "insert into t values ('one', 2)",
			expected: "INSERT table=t @0:0\n" +
				"  value String 'one' @0:22\n" +
				"  value Numeric 2 @0:29\n",
		},
		{
			name: "select",
			sql:  "select a as b, 1 from t",
			expected: "SELECT table=t @0:0\n" +
				"  item name=a alias=b @0:7\n" +
				"  item name=1 @0:15\n",
		},
		{
			name:     "empty select list",
			sql:      "select from t",
			expected: "SELECT table=t @0:0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteStatement(&buf, mustParse(t, tt.sql), FormatText, Options{}))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteStatementSQL(t *testing.T) {
	stmt := mustParse(t, "SELECT a AS b FROM limit")

	var buf bytes.Buffer
	require.NoError(t, WriteStatement(&buf, stmt, FormatSQL, Options{}))
	assert.Equal(t, "select a as b from limit\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteStatement(&buf, stmt, FormatSQL, Options{Deparse: ast.DeparseOptions{QuoteIdentifiers: true}}))
	assert.Equal(t, `select "a" as "b" from "limit"`+"\n", buf.String())
}

func TestWriteStatementJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStatement(&buf, mustParse(t, "select a as b from t"), FormatJSON, Options{}))

	assert.JSONEq(t, `{
		"statement": "SELECT",
		"line": 0,
		"column": 0,
		"table": {"value": "t", "kind": "Identifier", "class": "Identifier", "line": 0, "column": 19},
		"items": [
			{
				"name": {"value": "a", "kind": "Identifier", "class": "Identifier", "line": 0, "column": 7},
				"alias": {"value": "b", "kind": "Identifier", "class": "Identifier", "line": 0, "column": 12}
			}
		]
	}`, buf.String())
}

func TestWriteStatementYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStatement(&buf, mustParse(t, "create table t (id int)"), FormatYAML, Options{}))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "CREATE", decoded["statement"])

	columns, ok := decoded["columns"].([]any)
	require.True(t, ok)
	require.Len(t, columns, 1)
	assert.Equal(t, map[string]any{
		"name":        map[string]any{"value": "id", "kind": "Identifier", "class": "Identifier", "line": 0, "column": 16},
		"type":        map[string]any{"value": "int", "kind": "Keyword(int)", "class": "Keyword", "line": 0, "column": 19},
		"primary_key": false,
	}, columns[0])
}

func TestStatementDocInsert(t *testing.T) {
	doc := StatementDoc(mustParse(t, "insert into t values (x, 'y')"))

	assert.Equal(t, "INSERT", doc["statement"])
	values, ok := doc["values"].([]any)
	require.True(t, ok)
	require.Len(t, values, 2)
	assert.Equal(t, "x", values[0].(map[string]any)["value"])
	assert.Equal(t, "String", values[1].(map[string]any)["class"])
}

func TestUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorContains(t, WriteTokens(&buf, nil, Format("xml")), `unsupported format "xml"`)
	assert.ErrorContains(t, WriteStatement(&buf, mustParse(t, "select from t"), Format("xml"), Options{}), `unsupported format "xml"`)
}
