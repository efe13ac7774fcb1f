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
	"errors"
	"fmt"

	"github.com/multigres/minisql/go/mterrors"
	"github.com/multigres/minisql/go/parser"
	"github.com/multigres/minisql/go/parser/lexer"
)

// statementError attaches the matching minisql error code to a lex or parse
// failure. Other errors are returned unchanged.
func statementError(err error) error {
	var (
		lexErr   *lexer.LexError
		parseErr *parser.ParseError
	)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, parser.ErrUnrecognizedStatement):
		return mterrors.MS10001(err)
	case errors.As(err, &lexErr):
		return mterrors.MS10002(err)
	case errors.As(err, &parseErr):
		return mterrors.MS10003(err)
	}
	return err
}

// errorLocation returns the source location of a lex or parse failure. It
// reports false when the error has no position, such as a statement that
// ended early.
func errorLocation(err error) (lexer.Location, bool) {
	var (
		lexErr   *lexer.LexError
		parseErr *parser.ParseError
	)
	switch {
	case errors.As(err, &lexErr):
		return lexErr.Loc, true
	case errors.As(err, &parseErr) && !parseErr.AtEOF():
		return parseErr.Token.Loc, true
	}
	return lexer.Location{}, false
}

// errorSummary describes a lex or parse failure without its location, for
// output that prints the location separately.
func errorSummary(err error) string {
	var (
		lexErr   *lexer.LexError
		parseErr *parser.ParseError
	)
	switch {
	case errors.As(err, &lexErr):
		if lexErr.Near == "" {
			return "invalid token"
		}
		return fmt.Sprintf("invalid token %q", lexErr.Near)
	case errors.As(err, &parseErr):
		if parseErr.AtEOF() {
			return parseErr.Kind.Message() + " at end of input"
		}
		return fmt.Sprintf("%s at or near %q", parseErr.Kind.Message(), parseErr.Token.Value)
	}
	return err.Error()
}
