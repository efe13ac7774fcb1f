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
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Registerable is the part of a Value that BindFlags needs.
type Registerable interface {
	// Key returns the viper key of the value.
	Key() string
	// Flag returns the flag bound to the value from fs.
	Flag(fs *pflag.FlagSet) (*pflag.Flag, error)

	registry() *Registry
}

// Value is a typed configuration value resolved, in increasing order of
// precedence, from its default, the config file, environment variables,
// flags and explicit calls to Set.
type Value[T any] interface {
	Registerable

	// Get returns the current value.
	Get() T
	// Set overrides the value.
	Set(v T)
	// Default returns the value used when no other source provides one.
	Default() T
}

// Options configures a Value.
type Options[T any] struct {
	// Default is used when no other source provides the value.
	Default T
	// FlagName is the flag BindFlags binds the value to. Empty means the
	// value cannot be set from the command line.
	FlagName string
	// EnvVars are consulted, in order, before falling back to the default.
	EnvVars []string
	// GetFunc builds the typed accessor for the value. When nil an accessor
	// is picked based on T.
	GetFunc func(v *viper.Viper) func(key string) T
}

type staticValue[T any] struct {
	reg        *Registry
	key        string
	flagName   string
	defaultVal T
	get        func(key string) T
}

// Configure registers key in reg and returns a Value bound to it.
func Configure[T any](reg *Registry, key string, options Options[T]) Value[T] {
	reg.static.SetDefault(key, options.Default)

	if len(options.EnvVars) > 0 {
		// BindEnv only fails when called without a key.
		_ = reg.static.BindEnv(append([]string{key}, options.EnvVars...)...)
	}

	getFunc := options.GetFunc
	if getFunc == nil {
		getFunc = GetFuncForType[T]()
	}

	return &staticValue[T]{
		reg:        reg,
		key:        key,
		flagName:   options.FlagName,
		defaultVal: options.Default,
		get:        getFunc(reg.static),
	}
}

func (val *staticValue[T]) Key() string {
	return val.key
}

func (val *staticValue[T]) Default() T {
	return val.defaultVal
}

func (val *staticValue[T]) registry() *Registry {
	return val.reg
}

func (val *staticValue[T]) Get() T {
	return val.get(val.key)
}

func (val *staticValue[T]) Set(v T) {
	val.reg.static.Set(val.key, v)
}

func (val *staticValue[T]) Flag(fs *pflag.FlagSet) (*pflag.Flag, error) {
	if val.flagName == "" {
		return nil, fmt.Errorf("value %s has no flag name", val.key)
	}
	flag := fs.Lookup(val.flagName)
	if flag == nil {
		return nil, fmt.Errorf("flag %s for value %s not found in flag set %s", val.flagName, val.key, fs.Name())
	}
	return flag, nil
}

// BindFlags binds each value to its flag in fs, so that a flag set on the
// command line takes precedence over the config file and environment. It
// panics if a value's flag was not defined on fs.
func BindFlags(fs *pflag.FlagSet, values ...Registerable) {
	for _, val := range values {
		flag, err := val.Flag(fs)
		if err != nil {
			panic(err)
		}
		if err := val.registry().static.BindPFlag(val.Key(), flag); err != nil {
			panic(fmt.Errorf("binding %s: %w", val.Key(), err))
		}
	}
}

// GetFuncForType returns the viper accessor matching T. Types viper has no
// dedicated accessor for are decoded with UnmarshalKey.
func GetFuncForType[T any]() func(v *viper.Viper) func(key string) T {
	var zero T

	var f any
	switch any(zero).(type) {
	case string:
		f = func(v *viper.Viper) func(key string) string { return v.GetString }
	case bool:
		f = func(v *viper.Viper) func(key string) bool { return v.GetBool }
	case int:
		f = func(v *viper.Viper) func(key string) int { return v.GetInt }
	case int64:
		f = func(v *viper.Viper) func(key string) int64 { return v.GetInt64 }
	case float64:
		f = func(v *viper.Viper) func(key string) float64 { return v.GetFloat64 }
	case time.Duration:
		f = func(v *viper.Viper) func(key string) time.Duration { return v.GetDuration }
	case []string:
		f = func(v *viper.Viper) func(key string) []string { return v.GetStringSlice }
	default:
		return func(v *viper.Viper) func(key string) T {
			return func(key string) (t T) {
				_ = v.UnmarshalKey(key, &t)
				return t
			}
		}
	}

	return f.(func(v *viper.Viper) func(key string) T)
}
