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

package viperutil

import (
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Registry holds the viper instance backing a set of configuration values.
// Each command gets its own isolated registry instead of sharing viper's
// global instance, so tests can build as many as they like.
//
// Values never change after LoadConfig is called, except through Set.
type Registry struct {
	static *viper.Viper
}

// NewRegistry creates a new isolated configuration registry.
//
// Example usage:
//
//	reg := viperutil.NewRegistry()
//	prompt := viperutil.Configure(reg, "repl.prompt", viperutil.Options[string]{
//	    Default:  "minisql> ",
//	    FlagName: "prompt",
//	})
func NewRegistry() *Registry {
	return &Registry{
		static: viper.New(),
	}
}

// SetFs sets the filesystem config files are read from.
func (reg *Registry) SetFs(fs afero.Fs) {
	reg.static.SetFs(fs)
}

// AllSettings returns every configured key with its effective value, merged
// from defaults, config file, environment and flags.
func (reg *Registry) AllSettings() map[string]any {
	return reg.static.AllSettings()
}

// ConfigFileUsed returns the path of the loaded config file, or "" if none
// was loaded.
func (reg *Registry) ConfigFileUsed() string {
	return reg.static.ConfigFileUsed()
}
