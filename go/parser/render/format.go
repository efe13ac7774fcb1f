/*
 * minisql Render - Output Formats
 */

package render

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Format selects how tokens and statements are written.
type Format string

const (
	FormatText Format = "text" // Human readable, one entry per line
	FormatJSON Format = "json" // Indented JSON document
	FormatYAML Format = "yaml" // YAML document
	FormatSQL  Format = "sql"  // SQL text
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatSQL}

// ParseFormat returns the format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (expected one of %s)", s, formatNames())
}

func formatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Set implements pflag.Value.
func (f *Format) Set(arg string) error {
	parsed, err := ParseFormat(arg)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// String implements pflag.Value.
func (f *Format) String() string { return string(*f) }

// Type implements pflag.Value.
func (f *Format) Type() string { return "format" }

// GetFormatValue returns a viper accessor decoding a Format from flags,
// environment or config file. Invalid values fall back to FormatText.
func GetFormatValue(v *viper.Viper) func(key string) Format {
	return func(key string) (f Format) {
		if err := v.UnmarshalKey(key, &f, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(DecodeFormat))); err != nil || f == "" {
			slog.Warn("invalid output format, defaulting to text", "key", key, "error", err)
			f = FormatText
		}
		return f
	}
}

// DecodeFormat is a mapstructure decode hook producing a Format from a string.
func DecodeFormat(from, to reflect.Type, data any) (any, error) {
	var f Format
	if to != reflect.TypeOf(f) {
		return data, nil
	}

	switch {
	case from == reflect.TypeOf(f):
		return data.(Format), nil
	case from.Kind() == reflect.String:
		return ParseFormat(reflect.ValueOf(data).String())
	}

	return data, fmt.Errorf("invalid value for Format: %v", data)
}
