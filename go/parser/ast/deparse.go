// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
 * Statement Deparsing
 *
 * Converts statement nodes back to SQL text. The default rendering is
 * canonical minisql: lowercase keywords, single spaces and ", " separators,
 * with every token written exactly as it was lexed. With QuoteIdentifiers set
 * the output targets PostgreSQL instead: identifiers and aliases are
 * double-quoted so that names which are keywords there stay names.
 */

package ast

import (
	"strings"

	"github.com/lib/pq"

	"github.com/multigres/minisql/go/parser/lexer"
)

// DeparseOptions controls how Deparse renders identifiers.
type DeparseOptions struct {
	// QuoteIdentifiers double-quotes table names, column names, identifier
	// values and aliases using PostgreSQL quoting rules.
	QuoteIdentifiers bool
}

// Deparse renders stmt as SQL text. Unknown statement types render as "".
func Deparse(stmt Statement, opts DeparseOptions) string {
	d := &deparser{opts: opts}

	switch s := stmt.(type) {
	case *CreateStatement:
		d.create(s)
	case *InsertStatement:
		d.insert(s)
	case *SelectStatement:
		d.selectStmt(s)
	}

	return d.buf.String()
}

// SqlString returns the canonical minisql text of the statement.
func (c *CreateStatement) SqlString() string {
	return Deparse(c, DeparseOptions{})
}

// SqlString returns the canonical minisql text of the statement.
func (i *InsertStatement) SqlString() string {
	return Deparse(i, DeparseOptions{})
}

// SqlString returns the canonical minisql text of the statement.
func (s *SelectStatement) SqlString() string {
	return Deparse(s, DeparseOptions{})
}

type deparser struct {
	opts DeparseOptions
	buf  strings.Builder
}

func (d *deparser) create(c *CreateStatement) {
	d.buf.WriteString("create table ")
	d.buf.WriteString(d.ident(c.TableName))
	d.buf.WriteString(" (")
	for i, col := range c.Columns {
		if i > 0 {
			d.buf.WriteString(", ")
		}
		d.buf.WriteString(d.ident(col.Name))
		d.buf.WriteByte(' ')
		d.buf.WriteString(strings.ToLower(col.DataType.Value))
	}
	d.buf.WriteByte(')')
}

func (d *deparser) insert(i *InsertStatement) {
	d.buf.WriteString("insert into ")
	d.buf.WriteString(d.ident(i.TableName))
	d.buf.WriteString(" values (")
	for n, v := range i.Values {
		if n > 0 {
			d.buf.WriteString(", ")
		}
		d.buf.WriteString(d.value(v))
	}
	d.buf.WriteByte(')')
}

func (d *deparser) selectStmt(s *SelectStatement) {
	d.buf.WriteString("select")
	for n, item := range s.Items {
		if n > 0 {
			d.buf.WriteByte(',')
		}
		d.buf.WriteByte(' ')
		d.buf.WriteString(d.value(item.Name))
		if item.Alias != nil {
			d.buf.WriteString(" as ")
			d.buf.WriteString(d.ident(*item.Alias))
		}
	}
	d.buf.WriteString(" from ")
	d.buf.WriteString(d.ident(s.TableName))
}

// ident renders a token that names something.
func (d *deparser) ident(tok lexer.Token) string {
	if !d.opts.QuoteIdentifiers {
		return tok.Value
	}
	return pq.QuoteIdentifier(LiteralValue(tok))
}

// value renders a token in value position. Only identifiers are quoted;
// numeric and string literals are written as lexed.
func (d *deparser) value(tok lexer.Token) string {
	if tok.Is(lexer.IdentifierKind) {
		return d.ident(tok)
	}
	return tok.Value
}

// LiteralValue returns the text a token stands for. String tokens lose their
// outer quotes and have doubled quotes collapsed; every other token is
// returned as lexed.
func LiteralValue(tok lexer.Token) string {
	if !tok.Is(lexer.StringKind) || len(tok.Value) < 2 {
		return tok.Value
	}
	inner := tok.Value[1 : len(tok.Value)-1]
	return strings.ReplaceAll(inner, "''", "'")
}
