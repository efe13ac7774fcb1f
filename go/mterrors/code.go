// Copyright 2022 The Vitess Authors.
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
// Modifications Copyright 2025 Supabase, Inc.

// Package mterrors defines the coded errors reported by the minisql command.
package mterrors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
)

// Errors added to the list of variables below must be added to the Errors slice a little below in this same file.
// This keeps the documented list of error codes complete.

var (
	// MS10001 Unrecognized statement
	MS10001 = errorWithCode("MS10001", codes.InvalidArgument, "unrecognized statement: %w", "The input does not start with CREATE, INSERT or SELECT.")

	// MS10002 Lex error
	MS10002 = errorWithCode("MS10002", codes.InvalidArgument, "lex error: %w", "The input contains a character sequence that is not a minisql token.")

	// MS10003 Parse error
	MS10003 = errorWithCode("MS10003", codes.InvalidArgument, "parse error: %w", "The statement starts with a known keyword but does not follow its grammar.")

	// MS10004 Check failed
	MS10004 = errorWithCode("MS10004", codes.InvalidArgument, "check failed: %d of %d files have errors", "At least one checked file did not lex or parse. Each failure is reported with its location.")

	// Errors is a list of errors that must match all the variables
	// defined above.
	Errors = []func(args ...any) *MinisqlError{
		MS10001,
		MS10002,
		MS10003,
		MS10004,
	}
)

type MinisqlError struct {
	Err         error
	Description string
	ID          string
	Code        codes.Code
}

func (o *MinisqlError) Error() string {
	return o.Err.Error()
}

func (o *MinisqlError) Cause() error {
	return o.Err
}

func (o *MinisqlError) Unwrap() error {
	return o.Err
}

var _ error = (*MinisqlError)(nil)

// errorWithCode builds an error constructor for one error ID. A %w verb in
// short wraps the matching argument.
func errorWithCode(id string, code codes.Code, short, long string) func(args ...any) *MinisqlError {
	return func(args ...any) *MinisqlError {
		var err error
		if len(args) != 0 {
			err = fmt.Errorf(id+": "+short, args...)
		} else {
			err = errors.New(id + ": " + short)
		}

		return &MinisqlError{
			Err:         err,
			Description: long,
			ID:          id,
			Code:        code,
		}
	}
}

// Code returns the code of the first MinisqlError in err's chain. It returns
// codes.OK for a nil error and codes.Unknown for an uncoded one.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	var me *MinisqlError
	if errors.As(err, &me) {
		return me.Code
	}
	return codes.Unknown
}

// IsError reports whether err's chain holds a MinisqlError with the given ID.
func IsError(err error, id string) bool {
	var me *MinisqlError
	for err != nil {
		if !errors.As(err, &me) {
			return false
		}
		if me.ID == id {
			return true
		}
		err = me.Err
	}
	return false
}
