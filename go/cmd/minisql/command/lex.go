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

	"github.com/multigres/minisql/go/parser/lexer"
	"github.com/multigres/minisql/go/parser/render"
)

// MinisqlLexCmd holds the lex command configuration
type MinisqlLexCmd struct {
	mc *MinisqlCommand
}

// AddLexCommand adds the lex subcommand to the root command
func AddLexCommand(root *cobra.Command, mc *MinisqlCommand) {
	lexCmd := &MinisqlLexCmd{mc: mc}
	root.AddCommand(lexCmd.createCommand())
}

func (l *MinisqlLexCmd) createCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lex <sql>...",
		Short: "Print the tokens of a statement",
		Long: `Lex the statement and print one token per line with its location and kind.

Arguments are joined with single spaces, so the statement does not have to be
quoted as a whole. Locations are zero-based line:column pairs.

Examples:
  # Show tokens as text
  minisql lex "insert into users values ('one', 2)"

  # Show tokens as JSON
  minisql lex --format json select a from t`,
		Args: cobra.MinimumNArgs(1),
		RunE: l.runLex,
	}
}

func (l *MinisqlLexCmd) runLex(cmd *cobra.Command, args []string) error {
	source := strings.Join(args, " ")

	tokens, err := lexer.Lex(source)
	if err != nil {
		return statementError(err)
	}
	l.mc.lg.GetLogger().Debug("lexed statement", "tokens", len(tokens))

	return render.WriteTokens(cmd.OutOrStdout(), tokens, l.mc.GetFormat())
}
