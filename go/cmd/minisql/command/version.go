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
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is the minisql release, set at build time with
// -ldflags "-X github.com/multigres/minisql/go/cmd/minisql/command.Version=...".
var Version = "dev"

// AddVersionCommand adds the version subcommand to the root command
func AddVersionCommand(root *cobra.Command, mc *MinisqlCommand) {
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show the minisql version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "minisql %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return err
		},
	})
}
