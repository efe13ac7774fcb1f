/*
 * minisql Render - Tokens and Statements
 *
 * Writes lexer output and statement trees in one of the supported formats.
 * JSON and YAML share one document model: a token becomes
 *
 *   {value, kind, class, line, column}
 *
 * and a statement becomes {statement, line, column, table, ...} with its
 * columns, values or items holding token documents.
 */

package render

import (
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/multigres/minisql/go/parser/ast"
	"github.com/multigres/minisql/go/parser/lexer"
)

// Options adjusts statement output.
type Options struct {
	// Deparse applies to FormatSQL.
	Deparse ast.DeparseOptions
}

// WriteTokens writes tokens to w in the given format. FormatSQL writes the
// token values separated by single spaces.
func WriteTokens(w io.Writer, tokens []lexer.Token, format Format) error {
	switch format {
	case FormatText:
		for _, tok := range tokens {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", tok.Loc, tok.Kind, tok.Value); err != nil {
				return err
			}
		}
		return nil
	case FormatSQL:
		values := make([]string, len(tokens))
		for i, tok := range tokens {
			values[i] = tok.Value
		}
		_, err := fmt.Fprintln(w, strings.Join(values, " "))
		return err
	case FormatJSON, FormatYAML:
		docs := make([]any, len(tokens))
		for i, tok := range tokens {
			docs[i] = tokenDoc(tok)
		}
		return writeDoc(w, docs, format)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// WriteStatement writes stmt to w in the given format.
func WriteStatement(w io.Writer, stmt ast.Statement, format Format, opts Options) error {
	switch format {
	case FormatText:
		_, err := io.WriteString(w, statementText(stmt))
		return err
	case FormatSQL:
		_, err := fmt.Fprintln(w, ast.Deparse(stmt, opts.Deparse))
		return err
	case FormatJSON, FormatYAML:
		return writeDoc(w, StatementDoc(stmt), format)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// StatementDoc returns the document model of stmt.
func StatementDoc(stmt ast.Statement) map[string]any {
	loc := stmt.Location()
	doc := map[string]any{
		"statement": stmt.StatementKind().String(),
		"line":      int64(loc.Line),
		"column":    int64(loc.Column),
	}

	switch s := stmt.(type) {
	case *ast.CreateStatement:
		doc["table"] = tokenDoc(s.TableName)
		columns := make([]any, len(s.Columns))
		for i, col := range s.Columns {
			columns[i] = map[string]any{
				"name":        tokenDoc(col.Name),
				"type":        tokenDoc(col.DataType),
				"primary_key": col.IsPrimaryKey,
			}
		}
		doc["columns"] = columns
	case *ast.InsertStatement:
		doc["table"] = tokenDoc(s.TableName)
		values := make([]any, len(s.Values))
		for i, v := range s.Values {
			values[i] = tokenDoc(v)
		}
		doc["values"] = values
	case *ast.SelectStatement:
		doc["table"] = tokenDoc(s.TableName)
		items := make([]any, len(s.Items))
		for i, item := range s.Items {
			entry := map[string]any{"name": tokenDoc(item.Name)}
			if item.Alias != nil {
				entry["alias"] = tokenDoc(*item.Alias)
			}
			items[i] = entry
		}
		doc["items"] = items
	}

	return doc
}

func tokenDoc(tok lexer.Token) map[string]any {
	return map[string]any{
		"value":  tok.Value,
		"kind":   tok.Kind.String(),
		"class":  tok.Kind.Class.String(),
		"line":   int64(tok.Loc.Line),
		"column": int64(tok.Loc.Column),
	}
}

func statementText(stmt ast.Statement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s table=%s @%s\n", stmt.StatementKind(), tableName(stmt), stmt.Location())

	switch s := stmt.(type) {
	case *ast.CreateStatement:
		for _, col := range s.Columns {
			fmt.Fprintf(&b, "  column name=%s type=%s @%s\n", col.Name.Value, strings.ToLower(col.DataType.Value), col.Name.Loc)
		}
	case *ast.InsertStatement:
		for _, v := range s.Values {
			fmt.Fprintf(&b, "  value %s %s @%s\n", v.Kind, v.Value, v.Loc)
		}
	case *ast.SelectStatement:
		for _, item := range s.Items {
			if item.Alias != nil {
				fmt.Fprintf(&b, "  item name=%s alias=%s @%s\n", item.Name.Value, item.Alias.Value, item.Name.Loc)
				continue
			}
			fmt.Fprintf(&b, "  item name=%s @%s\n", item.Name.Value, item.Name.Loc)
		}
	}

	return b.String()
}

func tableName(stmt ast.Statement) string {
	switch s := stmt.(type) {
	case *ast.CreateStatement:
		return s.TableName.Value
	case *ast.InsertStatement:
		return s.TableName.Value
	case *ast.SelectStatement:
		return s.TableName.Value
	}
	return ""
}

func writeDoc(w io.Writer, doc any, format Format) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	value, err := structpb.NewValue(doc)
	if err != nil {
		return fmt.Errorf("building json document: %w", err)
	}
	marshaler := protojson.MarshalOptions{
		Multiline:     true,
		Indent:        "  ",
		UseProtoNames: true,
	}
	data, err := marshaler.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
