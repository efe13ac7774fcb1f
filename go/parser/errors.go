/*
 * minisql Parser - Error Handling
 *
 * Statement parsers report the first expectation they find violated as a
 * *ParseError carrying the offending token. When the token stream ends early
 * the error carries an empty String token with a zero location instead, and
 * AtEOF reports true.
 */

package parser

import (
	"errors"
	"fmt"

	"github.com/multigres/minisql/go/parser/lexer"
)

// ErrUnrecognizedStatement is returned by Parse when the tokens do not start
// any known statement.
var ErrUnrecognizedStatement = errors.New("unrecognized statement")

// ParseErrorKind identifies which expectation of the grammar was violated.
type ParseErrorKind int

const (
	MissingIntoKeyword           ParseErrorKind = iota // INSERT not followed by INTO
	MissingTableName                                   // No table name where one is required
	MissingValuesKeyword                               // INSERT INTO name not followed by VALUES
	MissingLeftParen                                   // List does not open with (
	MissingRightParens                                 // Value list not closed with )
	UnexpectedAsKeyword                                // AS before any select item
	ExpectedNameAfterAs                                // AS at the end of the input
	ExpectedComma                                      // Two select items without a comma
	ExpectedTableNameAfterCreate                       // CREATE not followed by TABLE name
	ExpectedColumnType                                 // Column name at the end of the input
	ExpectedCommaOrRightParen                          // Column list neither continued nor closed
	InvalidType                                        // Column type other than INT or TEXT
)

var parseErrorKindNames = map[ParseErrorKind]string{
	MissingIntoKeyword:           "MissingIntoKeyword",
	MissingTableName:             "MissingTableName",
	MissingValuesKeyword:         "MissingValuesKeyword",
	MissingLeftParen:             "MissingLeftParen",
	MissingRightParens:           "MissingRightParens",
	UnexpectedAsKeyword:          "UnexpectedAsKeyword",
	ExpectedNameAfterAs:          "ExpectedNameAfterAs",
	ExpectedComma:                "ExpectedComma",
	ExpectedTableNameAfterCreate: "ExpectedTableNameAfterCreate",
	ExpectedColumnType:           "ExpectedColumnType",
	ExpectedCommaOrRightParen:    "ExpectedCommaOrRightParen",
	InvalidType:                  "InvalidType",
}

var parseErrorMessages = map[ParseErrorKind]string{
	MissingIntoKeyword:           "expected INTO after INSERT",
	MissingTableName:             "expected table name",
	MissingValuesKeyword:         "expected VALUES after table name",
	MissingLeftParen:             `expected "("`,
	MissingRightParens:           `expected ")" to close the value list`,
	UnexpectedAsKeyword:          "unexpected AS before any select item",
	ExpectedNameAfterAs:          "expected name after AS",
	ExpectedComma:                `expected "," between select items`,
	ExpectedTableNameAfterCreate: "expected TABLE and a table name after CREATE",
	ExpectedColumnType:           "expected column type",
	ExpectedCommaOrRightParen:    `expected "," or ")" in column list`,
	InvalidType:                  "invalid column type, expected INT or TEXT",
}

// String returns the name of the error kind.
func (k ParseErrorKind) String() string {
	if name, ok := parseErrorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ParseErrorKind(%d)", int(k))
}

// Message returns a human-readable description of the error kind.
func (k ParseErrorKind) Message() string {
	if msg, ok := parseErrorMessages[k]; ok {
		return msg
	}
	return "syntax error"
}

// ParseError reports a violated grammar expectation.
type ParseError struct {
	Token lexer.Token // Offending token, or the end-of-input sentinel
	Kind  ParseErrorKind
}

// endOfInput is the token reported when the stream ends early.
var endOfInput = lexer.Token{Value: "", Kind: lexer.StringKind}

// AtEOF reports whether the error was caused by running out of tokens.
// Real String tokens always include their quotes, so an empty value can
// only be the sentinel.
func (e *ParseError) AtEOF() bool {
	return e.Token == endOfInput
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.AtEOF() {
		return fmt.Sprintf("%s at end of input", e.Kind.Message())
	}
	return fmt.Sprintf("%s at or near %q (line %d, column %d)",
		e.Kind.Message(), e.Token.Value, e.Token.Loc.Line, e.Token.Loc.Column)
}

// newParseError builds the error for tok, or for the end of input when ok is
// false.
func newParseError(tok lexer.Token, ok bool, kind ParseErrorKind) *ParseError {
	if !ok {
		return &ParseError{Token: endOfInput, Kind: kind}
	}
	return &ParseError{Token: tok, Kind: kind}
}
