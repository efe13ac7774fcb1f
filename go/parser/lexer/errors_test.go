/*
 * minisql Lexer - Error Reporting Tests
 */

package lexer

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeNearText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{name: "empty", input: "", maxLen: 20, expected: ""},
		{name: "short", input: "@abc", maxLen: 20, expected: "@abc"},
		{name: "control characters", input: "a\x00b\rc", maxLen: 20, expected: "a.b.c"},
		{name: "tab kept", input: "a\tb", maxLen: 20, expected: "a\tb"},
		{name: "ascii truncated", input: "abcdefghij", maxLen: 4, expected: "abcd..."},
		{name: "cut backs up to rune start", input: "!éééé", maxLen: 4, expected: "!é..."},
		{name: "cut on rune start", input: "!éééé", maxLen: 3, expected: "!é..."},
		{name: "three byte runes", input: "€€€", maxLen: 4, expected: "€..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeNearText(tt.input, tt.maxLen)
			assert.Equal(t, tt.expected, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestLexErrorExcerptIsValidUTF8(t *testing.T) {
	_, err := Lex("!éééééééééééééééé")
	require.Error(t, err)

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "!ééééééééé...", lexErr.Near)
	assert.True(t, utf8.ValidString(lexErr.Near))
	assert.True(t, utf8.ValidString(lexErr.Error()))
}
