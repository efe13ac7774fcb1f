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

package command

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/multigres/minisql/go/parser"
	"github.com/multigres/minisql/go/parser/ast"
	"github.com/multigres/minisql/go/parser/render"
)

// MinisqlParseCmd holds the parse command configuration
type MinisqlParseCmd struct {
	mc               *MinisqlCommand
	quoteIdentifiers bool
}

// AddParseCommand adds the parse subcommand to the root command
func AddParseCommand(root *cobra.Command, mc *MinisqlCommand) {
	parseCmd := &MinisqlParseCmd{mc: mc}
	root.AddCommand(parseCmd.createCommand())
}

func (p *MinisqlParseCmd) createCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <sql>...",
		Short: "Print the statement tree of a statement",
		Long: `Parse one CREATE TABLE, INSERT or SELECT statement and print its tree.

Arguments are joined with single spaces. A single trailing semicolon is
accepted. With --format sql the statement is printed back as SQL text, and
--quote-identifiers double-quotes every name so the text is valid PostgreSQL.

Examples:
  # Show the statement tree
  minisql parse "select id as key, name from users"

  # Print PostgreSQL text
  minisql parse --format sql --quote-identifiers "select a from limit"`,
		Args: cobra.MinimumNArgs(1),
		RunE: p.runParse,
	}
	cmd.Flags().BoolVar(&p.quoteIdentifiers, "quote-identifiers", false, "Double-quote identifiers in sql output")
	return cmd
}

func (p *MinisqlParseCmd) runParse(cmd *cobra.Command, args []string) error {
	stmt, err := parser.ParseString(strings.Join(args, " "))
	if err != nil {
		p.mc.lg.GetLogger().Warn("statement rejected", "error", err)
		return statementError(err)
	}
	p.mc.lg.GetLogger().Debug("parsed statement", "kind", stmt.StatementKind().String())

	opts := render.Options{Deparse: ast.DeparseOptions{QuoteIdentifiers: p.quoteIdentifiers}}
	return render.WriteStatement(cmd.OutOrStdout(), stmt, p.mc.GetFormat(), opts)
}
