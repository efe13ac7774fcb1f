/*
 * minisql Lexer - Numeric Literal Tests
 */

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		matches  bool
	}{
		{"basic number", "226", "226", true},
		{"one digit", "8", "8", true},
		{"exponential one digit", "1e3", "1e3", true},
		{"exponential negative", "1e-21", "1e-21", true},
		{"exponential positive sign", "2e+5", "2e+5", true},
		{"exponential floating", "1.1e32", "1.1e32", true},
		{"exponential floating negative", "1.42e-321", "1.42e-321", true},
		{"floating", "1.1", "1.1", true},
		{"leading period", ".1", ".1", true},
		{"trailing period", "6.", "6.", true},
		{"stops at letter", "1a1", "1", true},
		{"stops at space", "42 from", "42", true},
		{"stops at comma", "7,8", "7", true},
		{"sign only after exponent", "1+2", "1", true},
		{"exponent without digits", "1e", "", false},
		{"exponent without base", "e8", "", false},
		{"two exponent markers", "1ee7", "", false},
		{"two periods", "1..", "", false},
		{"period after exponent", "1e2.5", "", false},
		{"second period later", "1.2.3", "", false},
		{"leading whitespace", " 1", "", false},
		{"letter", "abc", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, cur, ok := lexNumeric(tt.input)
			require.Equal(t, tt.matches, ok)
			if !tt.matches {
				return
			}
			assert.Equal(t, tt.expected, tok.Value)
			assert.Equal(t, NumericKind, tok.Kind)
			assert.Equal(t, uint(len(tt.expected)), cur.Offset)
			assert.Equal(t, Location{Column: uint(len(tt.expected))}, cur.Loc)
		})
	}
}

func TestLexNumericThroughDriver(t *testing.T) {
	tests := []struct {
		input    string
		expected []Token
	}{
		{
			input:    "226",
			expected: []Token{{Value: "226", Kind: NumericKind}},
		},
		{
			input:    "1e-21",
			expected: []Token{{Value: "1e-21", Kind: NumericKind}},
		},
		{
			input:    "1.1e32",
			expected: []Token{{Value: "1.1e32", Kind: NumericKind}},
		},
		{
			input: "1a1",
			expected: []Token{
				{Value: "1", Kind: NumericKind},
				{Value: "a1", Kind: IdentifierKind, Loc: Location{Column: 1}},
			},
		},
		{
			// The numeric rule declines, the identifier rule takes over.
			input:    "e8",
			expected: []Token{{Value: "e8", Kind: IdentifierKind}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestLexNumericInvalidShapesFailLexing(t *testing.T) {
	for _, input := range []string{"1..", "1.2.3", "1e"} {
		t.Run(input, func(t *testing.T) {
			tokens, err := Lex(input)
			require.Error(t, err)
			assert.Nil(t, tokens)

			var lexErr *LexError
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, InvalidToken, lexErr.Kind)
			assert.Equal(t, Location{}, lexErr.Loc)
		})
	}
}
