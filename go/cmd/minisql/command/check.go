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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/multigres/minisql/go/mterrors"
	"github.com/multigres/minisql/go/parser"
)

// MinisqlCheckCmd holds the check command configuration
type MinisqlCheckCmd struct {
	mc    *MinisqlCommand
	watch bool
}

// AddCheckCommand adds the check subcommand to the root command
func AddCheckCommand(root *cobra.Command, mc *MinisqlCommand) {
	checkCmd := &MinisqlCheckCmd{mc: mc}
	root.AddCommand(checkCmd.createCommand())
}

func (c *MinisqlCheckCmd) createCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check that files hold valid statements",
		Long: `Lex and parse each file, which must hold exactly one statement.

Each file is reported on its own line, either as "path: ok (KIND)" or as
"path:line:column: message" with one-based line and column numbers. Files may
use LF or CRLF line endings. The command fails when any file does not parse.

With --watch the files are checked again every time they are written, until
the command is interrupted. Failures do not stop watching.

Examples:
  # Check a set of files
  minisql check queries/*.sql

  # Re-check a file on every save
  minisql check --watch schema.sql`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.runCheck,
	}
	cmd.Flags().BoolVar(&c.watch, "watch", false, "Check files again whenever they change")
	return cmd
}

func (c *MinisqlCheckCmd) runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	logger := c.mc.lg.GetLogger()

	failed := 0
	for _, path := range args {
		if !c.checkFile(out, path) {
			failed++
		}
	}
	logger.Debug("checked files", "files", len(args), "failed", failed)

	if !c.watch {
		if failed > 0 {
			return mterrors.MS10004(failed, len(args))
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(out, "watching %d files for changes\n", len(args))
	return watchFiles(ctx, args, logger, func(path string) {
		c.checkFile(out, path)
	})
}

// checkFile reports the result of parsing path to w and returns whether the
// file holds a valid statement.
func (c *MinisqlCheckCmd) checkFile(w io.Writer, path string) bool {
	data, err := afero.ReadFile(c.mc.fs, path)
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", path, err)
		return false
	}

	// CRLF files lex like LF files; line and column numbers are unchanged.
	source := strings.ReplaceAll(string(data), "\r\n", "\n")

	stmt, err := parser.ParseString(source)
	if err != nil {
		c.mc.lg.GetLogger().Warn("check failed", "path", path, "error", err)
		if loc, ok := errorLocation(err); ok {
			fmt.Fprintf(w, "%s:%d:%d: %s\n", path, loc.Line+1, loc.Column+1, errorSummary(err))
		} else {
			fmt.Fprintf(w, "%s: %s\n", path, errorSummary(err))
		}
		return false
	}

	fmt.Fprintf(w, "%s: ok (%s)\n", path, stmt.StatementKind())
	return true
}

// watchFiles calls onChange with the original argument each time one of
// paths is written or recreated. It watches the parent directories so that
// editors replacing a file are seen. It returns when ctx is done.
func watchFiles(ctx context.Context, paths []string, logger *slog.Logger, onChange func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", path, err)
		}
		watched[abs] = path

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			path, ok := watched[filepath.Clean(event.Name)]
			if !ok {
				continue
			}
			logger.Debug("file changed", "path", path, "op", event.Op.String())
			onChange(path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error", "error", err)
		}
	}
}
