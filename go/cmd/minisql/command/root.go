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
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/multigres/minisql/go/parser/render"
	"github.com/multigres/minisql/go/servenv"
	"github.com/multigres/minisql/go/viperutil"
)

// MinisqlCommand holds the configuration shared by minisql commands
type MinisqlCommand struct {
	reg    *viperutil.Registry
	vc     *viperutil.ViperConfig
	lg     *servenv.Logger
	format viperutil.Value[render.Format]
	fs     afero.Fs
}

// GetRootCommand creates and returns the root command for minisql with all subcommands
func GetRootCommand() (*cobra.Command, *MinisqlCommand) {
	reg := viperutil.NewRegistry()
	mc := &MinisqlCommand{
		reg: reg,
		vc:  viperutil.NewViperConfig(reg),
		lg:  servenv.NewLogger(reg),
		format: viperutil.Configure(reg, "format", viperutil.Options[render.Format]{
			Default:  render.FormatText,
			FlagName: "format",
			EnvVars:  []string{"MINISQL_FORMAT"},
			GetFunc:  render.GetFormatValue,
		}),
	}
	mc.SetFs(afero.NewOsFs())

	root := &cobra.Command{
		Use:   "minisql",
		Short: "Lex, parse and check minisql statements",
		Long: `minisql is a developer tool for the minisql dialect: CREATE TABLE, INSERT and SELECT.

It never executes a statement. It shows how a statement is tokenized and
parsed, and reports the location of the first error.

Get started with:
  minisql lex "select a from t"          # Show the tokens
  minisql parse "select a as b from t"   # Show the statement tree
  minisql check queries/*.sql            # Check one statement per file
  minisql repl                           # Parse statements interactively

Configuration:
  minisql searches for a config file named 'minisql' with a supported
  extension (.yaml, .yml, .json, .toml) in the directories given by
  --config-path, which defaults to the working directory and the minisql
  directory under the user config directory. --config-file names the file
  directly. Missing config files are ignored unless
  --config-file-not-found-handling says otherwise.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Silence usage for application errors, but allow it for flag errors
			// This gets called after flag parsing, so flag errors will still show usage
			cmd.SilenceUsage = true

			mc.lg.SetWriters(cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err := mc.vc.LoadConfig(mc.reg); err != nil {
				return err
			}
			mc.lg.SetupLogging()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return mc.lg.Close()
		},
	}

	format := mc.format.Default()
	root.PersistentFlags().Var(&format, "format", "Output format (text, json, yaml, sql)")
	mc.vc.RegisterFlags(root.PersistentFlags())
	mc.lg.RegisterFlags(root.PersistentFlags())
	viperutil.BindFlags(root.PersistentFlags(), mc.format)

	// Add all subcommands
	AddLexCommand(root, mc)
	AddParseCommand(root, mc)
	AddCheckCommand(root, mc)
	AddReplCommand(root, mc)
	AddConfigCommand(root, mc)
	AddVersionCommand(root, mc)

	return root, mc
}

// SetFs sets the filesystem that config files and checked files are read from.
func (mc *MinisqlCommand) SetFs(fs afero.Fs) {
	mc.fs = fs
	mc.reg.SetFs(fs)
}

// GetFormat returns the configured output format.
func (mc *MinisqlCommand) GetFormat() render.Format {
	return mc.format.Get()
}
