/*
 * minisql Lexer - Error Reporting
 */

package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxNearText bounds the source excerpt quoted in error messages.
const maxNearText = 20

// LexErrorKind categorizes lexer failures.
type LexErrorKind int

const (
	InvalidToken LexErrorKind = iota // No recognizer matched at the position
)

// String returns the name of the error kind.
func (k LexErrorKind) String() string {
	switch k {
	case InvalidToken:
		return "InvalidToken"
	default:
		return fmt.Sprintf("LexErrorKind(%d)", int(k))
	}
}

// LexError reports where lexing stopped. Lexing never resumes after an error.
type LexError struct {
	Kind   LexErrorKind
	Loc    Location // Position of the offending text
	Offset uint     // Byte offset of the offending text
	Near   string   // Excerpt of the offending text, sanitized for display
}

// Error implements the error interface.
func (e *LexError) Error() string {
	if e.Near == "" {
		return fmt.Sprintf("invalid token at line %d, column %d", e.Loc.Line, e.Loc.Column)
	}
	return fmt.Sprintf("invalid token at or near %q (line %d, column %d)", e.Near, e.Loc.Line, e.Loc.Column)
}

// newLexError builds a LexError for the text at cur.
func newLexError(kind LexErrorKind, source string, cur Cursor) *LexError {
	rest := source[cur.Offset:]
	if i := strings.IndexAny(rest, " \t\n"); i > 0 {
		rest = rest[:i]
	}
	return &LexError{
		Kind:   kind,
		Loc:    cur.Loc,
		Offset: cur.Offset,
		Near:   SanitizeNearText(rest, maxNearText),
	}
}

// SanitizeNearText sanitizes text for display in error messages
// Removes/replaces control characters and limits length
func SanitizeNearText(text string, maxLen int) string {
	if text == "" {
		return ""
	}

	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\t' {
			return '.'
		}
		return r
	}, text)

	if len(sanitized) > maxLen {
		// Cut on a rune boundary so the excerpt stays valid UTF-8.
		cut := maxLen
		for cut > 0 && !utf8.RuneStart(sanitized[cut]) {
			cut--
		}
		sanitized = sanitized[:cut] + "..."
	}

	return sanitized
}
