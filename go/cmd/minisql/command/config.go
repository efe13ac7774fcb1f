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

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// AddConfigCommand adds the config subcommand to the root command
func AddConfigCommand(root *cobra.Command, mc *MinisqlCommand) {
	root.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print every setting as YAML, after merging defaults, the config file,
environment variables and flags. The config file in use, if any, is printed
first as a comment.

The output can be saved as a starting point for a minisql.yaml config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if used := mc.reg.ConfigFileUsed(); used != "" {
				fmt.Fprintf(out, "# config file: %s\n", used)
			}

			data, err := yaml.Marshal(mc.reg.AllSettings())
			if err != nil {
				return fmt.Errorf("failed to marshal settings: %w", err)
			}
			_, err = out.Write(data)
			return err
		},
	})
}
