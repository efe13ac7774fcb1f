/*
 * minisql Render - Format Tests
 */

package render

import (
	"reflect"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "text", expected: FormatText},
		{input: "JSON", expected: FormatJSON},
		{input: " yaml ", expected: FormatYAML},
		{input: "sql", expected: FormatSQL},
		{input: "xml", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorContains(t, err, "expected one of text, json, yaml, sql")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestFormatFlag(t *testing.T) {
	f := FormatText
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&f, "format", "output format")

	require.NoError(t, fs.Parse([]string{"--format", "yaml"}))
	assert.Equal(t, FormatYAML, f)
	assert.Equal(t, "format", fs.Lookup("format").Value.Type())

	assert.Error(t, fs.Parse([]string{"--format", "xml"}))
	assert.Equal(t, FormatYAML, f)
}

func TestDecodeFormat(t *testing.T) {
	to := reflect.TypeOf(Format(""))

	out, err := DecodeFormat(reflect.TypeOf(""), to, "Json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, out)

	out, err = DecodeFormat(to, to, FormatSQL)
	require.NoError(t, err)
	assert.Equal(t, FormatSQL, out)

	_, err = DecodeFormat(reflect.TypeOf(0), to, 3)
	assert.Error(t, err)

	out, err = DecodeFormat(reflect.TypeOf(0), reflect.TypeOf(0), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, out)
}

func TestGetFormatValue(t *testing.T) {
	v := viper.New()
	get := GetFormatValue(v)

	v.SetDefault("format", FormatSQL)
	assert.Equal(t, FormatSQL, get("format"))

	v.Set("format", "YAML")
	assert.Equal(t, FormatYAML, get("format"))

	v.Set("format", "xml")
	assert.Equal(t, FormatText, get("format"))

	assert.Equal(t, FormatText, get("missing"))
}
