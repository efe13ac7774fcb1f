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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/multigres/minisql/go/parser"
	"github.com/multigres/minisql/go/parser/render"
	"github.com/multigres/minisql/go/viperutil"
)

// quitCommand ends a repl session.
const quitCommand = `\q`

// MinisqlReplCmd holds the repl command configuration
type MinisqlReplCmd struct {
	mc     *MinisqlCommand
	prompt viperutil.Value[string]
}

// AddReplCommand adds the repl subcommand to the root command
func AddReplCommand(root *cobra.Command, mc *MinisqlCommand) {
	replCmd := &MinisqlReplCmd{
		mc: mc,
		prompt: viperutil.Configure(mc.reg, "repl.prompt", viperutil.Options[string]{
			Default:  "minisql> ",
			FlagName: "prompt",
			EnvVars:  []string{"MINISQL_PROMPT"},
		}),
	}
	root.AddCommand(replCmd.createCommand())
}

func (r *MinisqlReplCmd) createCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse statements interactively",
		Long: `Read one statement per line and print its tree, or the error.

Errors do not end the session. Enter \q or end the input to quit. The prompt
can be set with --prompt, the MINISQL_PROMPT environment variable or the
repl.prompt config key.`,
		Args: cobra.NoArgs,
		RunE: r.runRepl,
	}
	cmd.Flags().String("prompt", r.prompt.Default(), "Prompt printed before each statement")
	viperutil.BindFlags(cmd.Flags(), r.prompt)
	return cmd
}

func (r *MinisqlReplCmd) runRepl(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	logger := r.mc.lg.GetLogger()
	format := r.mc.GetFormat()
	prompt := r.prompt.Get()

	// Lines have no length limit.
	reader := bufio.NewReader(cmd.InOrStdin())
	for {
		fmt.Fprint(out, prompt)
		text, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if err != nil && text == "" {
			fmt.Fprintln(out)
			return nil
		}

		line := strings.TrimSpace(text)
		switch line {
		case "":
			continue
		case quitCommand:
			return nil
		}

		stmt, err := parser.ParseString(line)
		if err != nil {
			logger.Debug("statement rejected", "error", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %v\n", statementError(err))
			continue
		}
		if err := render.WriteStatement(out, stmt, format, render.Options{}); err != nil {
			return err
		}
	}
}
