// Package ast provides the statement nodes produced by the minisql parser.
//
// Nodes keep the tokens they were built from, so every part of a statement
// can be traced back to its location in the source text.
package ast

import (
	"fmt"

	"github.com/multigres/minisql/go/parser/lexer"
)

// ==============================================================================
// STATEMENT FRAMEWORK
// ==============================================================================

// StatementKind identifies which statement a node represents.
type StatementKind int

const (
	CreateKind StatementKind = iota // CREATE TABLE
	InsertKind                      // INSERT INTO ... VALUES
	SelectKind                      // SELECT ... FROM
)

func (k StatementKind) String() string {
	switch k {
	case CreateKind:
		return "CREATE"
	case InsertKind:
		return "INSERT"
	case SelectKind:
		return "SELECT"
	default:
		return fmt.Sprintf("StatementKind(%d)", int(k))
	}
}

// Statement is implemented by every top-level statement node. The set of
// implementations is closed: CreateStatement, InsertStatement and
// SelectStatement.
type Statement interface {
	// StatementKind returns which statement this is.
	StatementKind() StatementKind

	// Location returns where the statement's leading keyword starts.
	Location() lexer.Location

	// String returns a debugging representation.
	String() string

	// SqlString renders the statement as canonical minisql text that lexes
	// and parses back to an equal statement.
	SqlString() string

	statementNode()
}

// BaseStatement carries the fields shared by all statements.
type BaseStatement struct {
	Kind StatementKind
	Loc  lexer.Location
}

// StatementKind returns the statement's kind.
func (b *BaseStatement) StatementKind() StatementKind {
	return b.Kind
}

// Location returns the statement's source location.
func (b *BaseStatement) Location() lexer.Location {
	return b.Loc
}

func (b *BaseStatement) statementNode() {}

// ==============================================================================
// CREATE TABLE
// ==============================================================================

// Column is one column definition of a CREATE TABLE statement.
type Column struct {
	Name     lexer.Token // Identifier
	DataType lexer.Token // Keyword int or text
	// IsPrimaryKey is part of the model but the grammar has no way to set it.
	IsPrimaryKey bool
}

// CreateStatement represents CREATE TABLE name (column type, ...).
type CreateStatement struct {
	BaseStatement
	TableName lexer.Token
	Columns   []Column
}

// NewCreateStatement creates a CREATE TABLE node located at loc.
func NewCreateStatement(loc lexer.Location, table lexer.Token, columns []Column) *CreateStatement {
	return &CreateStatement{
		BaseStatement: BaseStatement{Kind: CreateKind, Loc: loc},
		TableName:     table,
		Columns:       columns,
	}
}

func (c *CreateStatement) String() string {
	return fmt.Sprintf("CreateStatement(%s, %d columns)@%s", c.TableName.Value, len(c.Columns), c.Loc)
}

// ==============================================================================
// INSERT
// ==============================================================================

// InsertStatement represents INSERT INTO name VALUES (value, ...). Values are
// identifier, numeric or string tokens, in source order.
type InsertStatement struct {
	BaseStatement
	TableName lexer.Token
	Values    []lexer.Token
}

// NewInsertStatement creates an INSERT node located at loc.
func NewInsertStatement(loc lexer.Location, table lexer.Token, values []lexer.Token) *InsertStatement {
	return &InsertStatement{
		BaseStatement: BaseStatement{Kind: InsertKind, Loc: loc},
		TableName:     table,
		Values:        values,
	}
}

func (i *InsertStatement) String() string {
	return fmt.Sprintf("InsertStatement(%s, %d values)@%s", i.TableName.Value, len(i.Values), i.Loc)
}

// ==============================================================================
// SELECT
// ==============================================================================

// SelectItem is one entry of a select list. Alias is nil unless the item was
// followed by AS, in which case it holds the token after AS whatever its kind.
type SelectItem struct {
	Name  lexer.Token
	Alias *lexer.Token
}

// AliasName returns the alias value, or "" when the item has none.
func (s SelectItem) AliasName() string {
	if s.Alias == nil {
		return ""
	}
	return s.Alias.Value
}

// SelectStatement represents SELECT item, ... FROM name.
type SelectStatement struct {
	BaseStatement
	TableName lexer.Token
	Items     []SelectItem
}

// NewSelectStatement creates a SELECT node located at loc.
func NewSelectStatement(loc lexer.Location, table lexer.Token, items []SelectItem) *SelectStatement {
	return &SelectStatement{
		BaseStatement: BaseStatement{Kind: SelectKind, Loc: loc},
		TableName:     table,
		Items:         items,
	}
}

func (s *SelectStatement) String() string {
	return fmt.Sprintf("SelectStatement(%s, %d items)@%s", s.TableName.Value, len(s.Items), s.Loc)
}
