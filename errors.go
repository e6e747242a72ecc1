/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package evcode

import (
	"errors"
	"fmt"

	"dirpx.dev/evcode/code"
)

// Kind classifies why a code could not be resolved.
type Kind string

const (
	// KindUnknownCode marks input that parsed as a number for which no name
	// is registered. Numbers outside the 16-bit range land here too: the
	// registry simply has no entry for them.
	KindUnknownCode Kind = "unknown_code"

	// KindMalformedInput marks input that does not contain a hexadecimal
	// number at all.
	KindMalformedInput Kind = "malformed_input"
)

var (
	// ErrUnknownCode matches (errors.Is) every *Error of KindUnknownCode.
	ErrUnknownCode = errors.New("evcode: unknown code")
	// ErrMalformedInput matches (errors.Is) every *Error of KindMalformedInput.
	ErrMalformedInput = errors.New("evcode: malformed input")
)

// Error describes a failed lookup.
//
// It is only produced by Registry.Lookup. The sentinel-style accessors
// (Resolve, ResolveCode, Display) never surface it: a console decoding a log
// must keep going when one token is bad, so those collapse every failure into
// "not found".
type Error struct {
	// Kind is the failure class.
	Kind Kind

	// Input is the raw text that was looked up, verbatim.
	Input string

	// Code is the parsed code. It is meaningful only for KindUnknownCode
	// when Cause is nil.
	Code code.Code

	// Message is a human-readable explanation.
	Message string

	// Cause holds the parse error, if any (code.ErrMalformed or
	// code.ErrOutOfRange).
	Cause error
}

// newError builds an *Error with a message derived from the kind.
func newError(k Kind, input string, c code.Code, cause error) *Error {
	e := &Error{Kind: k, Input: input, Code: c, Cause: cause}
	switch {
	case k == KindMalformedInput:
		e.Message = fmt.Sprintf("%q is not a hexadecimal code", input)
	case cause != nil:
		e.Message = fmt.Sprintf("%q does not fit into a 16-bit code", input)
	default:
		e.Message = fmt.Sprintf("no name registered for code %s", c)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>: <message>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying parse error, enabling errors.Is / errors.As
// chains down to the code package sentinels.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnknownCode:
		return e.Kind == KindUnknownCode
	case ErrMalformedInput:
		return e.Kind == KindMalformedInput
	}
	return false
}

// KindOf extracts the Kind from err. ok is false when err is not (and does
// not wrap) an *Error.
func KindOf(err error) (k Kind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
