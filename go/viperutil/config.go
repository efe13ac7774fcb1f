// Copyright 2023 The Vitess Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Modifications Copyright 2025 Supabase, Inc.

package viperutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mitchellh/mapstructure"
)

// ViperConfig holds the values that control how a config file is located.
type ViperConfig struct {
	configPaths                Value[[]string]
	configType                 Value[string]
	configName                 Value[string]
	configFile                 Value[string]
	configFileNotFoundHandling Value[ConfigFileNotFoundHandling]
}

// NewViperConfig registers the config-loading values in reg.
//
// Config files are searched for in the working directory and in the
// minisql directory under the user's config directory.
func NewViperConfig(reg *Registry) *ViperConfig {
	return &ViperConfig{
		configPaths: Configure(
			reg,
			"config.paths",
			Options[[]string]{
				Default:  defaultConfigPaths(),
				GetFunc:  getPath,
				EnvVars:  []string{"MINISQL_CONFIG_PATH"},
				FlagName: "config-path",
			},
		),
		configType: Configure(
			reg,
			"config.type",
			Options[string]{
				EnvVars:  []string{"MINISQL_CONFIG_TYPE"},
				FlagName: "config-type",
			},
		),
		configName: Configure(
			reg,
			"config.name",
			Options[string]{
				Default:  "minisql",
				EnvVars:  []string{"MINISQL_CONFIG_NAME"},
				FlagName: "config-name",
			},
		),
		configFile: Configure(
			reg,
			"config.file",
			Options[string]{
				EnvVars:  []string{"MINISQL_CONFIG_FILE"},
				FlagName: "config-file",
			},
		),
		configFileNotFoundHandling: Configure(
			reg,
			"config.notfound.handling",
			Options[ConfigFileNotFoundHandling]{
				Default:  IgnoreConfigFileNotFound,
				GetFunc:  getHandlingValue,
				FlagName: "config-file-not-found-handling",
			},
		),
	}
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "minisql"))
	}
	return paths
}

// getPath reads a path list that may come from a flag (a slice) or from the
// environment (a single string using the OS list separator).
func getPath(v *viper.Viper) func(key string) []string {
	return func(key string) (paths []string) {
		for _, val := range v.GetStringSlice(key) {
			if val == "" {
				continue
			}
			for _, path := range strings.Split(val, string(os.PathListSeparator)) {
				if path != "" {
					paths = append(paths, path)
				}
			}
		}
		return paths
	}
}

// RegisterFlags installs the flags that control viper config-loading behavior.
// Commands call it on their persistent flag set before flags are parsed.
func (vc *ViperConfig) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringSlice("config-path", vc.configPaths.Default(), "Paths to search for config files in.")
	fs.String("config-type", vc.configType.Default(), "Config file type (omit to infer config type from file extension).")
	fs.String("config-name", vc.configName.Default(), "Name of the config file (without extension) to search for.")
	fs.String("config-file", vc.configFile.Default(), "Full path of the config file (with extension) to use. If set, --config-path, --config-type, and --config-name are ignored.")

	h := vc.configFileNotFoundHandling.Default()
	fs.Var(&h, "config-file-not-found-handling", fmt.Sprintf("Behavior when a config file is not found. (Options: %s)", strings.Join(handlingNames, ", ")))

	BindFlags(fs, vc.configPaths, vc.configType, vc.configName, vc.configFile, vc.configFileNotFoundHandling)
}

// LoadConfig attempts to find, and then load, a config file for viper-backed
// config values to use.
//
// Config searching follows the behavior used by viper [1], namely:
//   - --config-file (full path, including extension) if set will be used to the
//     exclusion of all other flags.
//   - --config-type is required if the config file does not have one of viper's
//     supported extensions (.yaml, .yml, .json, and so on)
//
// An additional --config-file-not-found-handling flag controls how to treat the
// situation where viper cannot find any config files in any of the provided
// paths (for ex, users may want to fail immediately if a config file that
// should exist doesn't for some reason, or may wish to operate with flags and
// environment variables alone, and not use config files at all).
//
// [1]: https://github.com/spf13/viper#reading-config-files.
func (vc *ViperConfig) LoadConfig(reg *Registry) error {
	var err error
	switch file := vc.configFile.Get(); file {
	case "":
		if name := vc.configName.Get(); name != "" {
			reg.static.SetConfigName(name)

			for _, path := range vc.configPaths.Get() {
				reg.static.AddConfigPath(path)
			}

			if cfgType := vc.configType.Get(); cfgType != "" {
				reg.static.SetConfigType(cfgType)
			}

			err = reg.static.ReadInConfig()
		}
	default:
		reg.static.SetConfigFile(file)
		if cfgType := vc.configType.Get(); cfgType != "" {
			reg.static.SetConfigType(cfgType)
		}
		err = reg.static.ReadInConfig()
	}

	if err == nil {
		if used := reg.static.ConfigFileUsed(); used != "" {
			slog.Debug("loaded config file", "file", used)
		}
		return nil
	}

	if !isConfigFileNotFoundError(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	msg := "Failed to read in config %s: %s"
	switch vc.configFileNotFoundHandling.Get() {
	case IgnoreConfigFileNotFound:
		return nil
	case WarnOnConfigFileNotFound:
		slog.Warn(fmt.Sprintf(msg, reg.static.ConfigFileUsed(), err.Error()))
		return nil
	case ErrorOnConfigFileNotFound, ExitOnConfigFileNotFound:
		slog.Error(fmt.Sprintf(msg, reg.static.ConfigFileUsed(), err.Error()))
	}

	return err
}

// isConfigFileNotFoundError checks if the error is caused because the file wasn't found.
func isConfigFileNotFoundError(err error) bool {
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return true
	}
	return errors.Is(err, os.ErrNotExist)
}

// ConfigFileNotFoundHandling is an enum to control how LoadConfig treats errors
// of type viper.ConfigFileNotFoundError when loading a config.
type ConfigFileNotFoundHandling int

const (
	// IgnoreConfigFileNotFound causes LoadConfig to completely ignore a
	// ConfigFileNotFoundError (i.e. not even logging it).
	IgnoreConfigFileNotFound ConfigFileNotFoundHandling = iota
	// WarnOnConfigFileNotFound causes LoadConfig to log a warning with details
	// about the failed config load, but otherwise proceeds with the given
	// process, which will get config values entirely from defaults,
	// envirnoment variables, and flags.
	WarnOnConfigFileNotFound
	// ErrorOnConfigFileNotFound causes LoadConfig to return the
	// ConfigFileNotFoundError after logging an error.
	ErrorOnConfigFileNotFound
	// ExitOnConfigFileNotFound behaves like ErrorOnConfigFileNotFound; the
	// command exits non-zero with the returned error.
	ExitOnConfigFileNotFound
)

var (
	handlingNames         []string
	handlingNamesToValues = map[string]int{
		"ignore": int(IgnoreConfigFileNotFound),
		"warn":   int(WarnOnConfigFileNotFound),
		"error":  int(ErrorOnConfigFileNotFound),
		"exit":   int(ExitOnConfigFileNotFound),
	}
	handlingValuesToNames map[int]string
)

func getHandlingValue(v *viper.Viper) func(key string) ConfigFileNotFoundHandling {
	return func(key string) (h ConfigFileNotFoundHandling) {
		if err := v.UnmarshalKey(key, &h, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(decodeHandlingValue))); err != nil {
			h = IgnoreConfigFileNotFound
			slog.Warn(fmt.Sprintf("failed to unmarshal %s: %s; defaulting to %s", key, err.Error(), h.String()))
		}

		return h
	}
}

func decodeHandlingValue(from, to reflect.Type, data any) (any, error) {
	var h ConfigFileNotFoundHandling
	if to != reflect.TypeOf(h) {
		return data, nil
	}

	switch {
	case from == reflect.TypeOf(h):
		return data.(ConfigFileNotFoundHandling), nil
	case from.Kind() == reflect.Int:
		return ConfigFileNotFoundHandling(data.(int)), nil
	case from.Kind() == reflect.String:
		if err := h.Set(data.(string)); err != nil {
			return h, err
		}

		return h, nil
	}

	return data, fmt.Errorf("invalid value for ConfigHandlingType: %v", data)
}

func init() {
	handlingNames = make([]string, 0, len(handlingNamesToValues))
	handlingValuesToNames = make(map[int]string, len(handlingNamesToValues))

	for name, val := range handlingNamesToValues {
		handlingValuesToNames[val] = name
		handlingNames = append(handlingNames, name)
	}

	sort.Slice(handlingNames, func(i, j int) bool {
		return handlingNames[i] < handlingNames[j]
	})
}

func (h *ConfigFileNotFoundHandling) Set(arg string) error {
	larg := strings.ToLower(arg)
	if v, ok := handlingNamesToValues[larg]; ok {
		*h = ConfigFileNotFoundHandling(v)
		return nil
	}

	return fmt.Errorf("unknown handling name %s", arg)
}

func (h *ConfigFileNotFoundHandling) String() string {
	if name, ok := handlingValuesToNames[int(*h)]; ok {
		return name
	}

	return "<UNKNOWN>"
}

func (h *ConfigFileNotFoundHandling) Type() string { return "ConfigFileNotFoundHandling" }
