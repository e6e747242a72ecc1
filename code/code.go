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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Code is the canonical representation of a firmware event code.
//
// Codes are 16-bit unsigned integers. The firmware and the console agree on
// them through a shared table in which every code is written as four
// uppercase hexadecimal digits, e.g. "0050" or "00D7".
type Code uint16

const (
	// Min is the smallest representable code.
	Min Code = 0x0000

	// Max is the largest representable code.
	Max Code = 0xFFFF

	// Width is the number of hex digits in the canonical text form.
	Width = 4
)

var (
	// ErrMalformed is returned when the input contains no hexadecimal digits
	// where a code is expected.
	ErrMalformed = errors.New("evcode: malformed code")

	// ErrOutOfRange is returned when the input parses as a number that does
	// not fit into 16 bits (negative values included).
	ErrOutOfRange = errors.New("evcode: code out of range")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
	_ fmt.Stringer             = Code(0)
)

// Parse reads a code the way the device console always has: leniently.
//
// The accepted shape is:
//
//	[whitespace] [+|-] [0x|0X] hexdigits [anything]
//
// Leading whitespace is skipped, a single sign is accepted, the "0x" prefix
// is optional, and parsing stops at the first non-hex character. Hex digits
// are case-insensitive, so "00d7" and "00D7" are the same code.
//
// Parse returns ErrMalformed when no digit is found and ErrOutOfRange when the
// number does not fit into a Code. "-0" is zero.
func Parse(s string) (Code, error) {
	s = strings.TrimLeftFunc(s, isSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	s = trimHexPrefix(s)

	var (
		v        uint32
		n        int
		overflow bool
	)
	for n < len(s) {
		d, ok := hexDigit(s[n])
		if !ok {
			break
		}
		// keep consuming digits after an overflow so that the whole run is
		// classified as one out-of-range number
		if !overflow {
			v = v<<4 | uint32(d)
			if v > uint32(Max) {
				overflow = true
			}
		}
		n++
	}

	switch {
	case n == 0:
		return 0, ErrMalformed
	case overflow, neg && v != 0:
		return 0, ErrOutOfRange
	}
	return Code(v), nil
}

// ParseStrict parses a code that must consist entirely of one to four hex
// digits, optionally prefixed with "0x". Surrounding spaces are ignored.
//
// Use it where the input is authored by hand (configuration files, API
// payloads) and trailing garbage indicates a mistake rather than log noise.
func ParseStrict(s string) (Code, error) {
	s = trimHexPrefix(strings.TrimSpace(s))
	if s == "" {
		return 0, ErrMalformed
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, ErrMalformed
		}
		v = v<<4 | uint64(d)
	}
	if len(s) > Width {
		return 0, ErrOutOfRange
	}
	return Code(v), nil
}

// MustParse is the panic-on-error variant of ParseStrict. It is useful for
// declaring package-level tables.
func MustParse(s string) Code {
	c, err := ParseStrict(s)
	if err != nil {
		panic(fmt.Errorf("%w: %q", err, s))
	}
	return c
}

// FromUint converts an already-parsed integer into a Code.
func FromUint(v uint64) (Code, error) {
	if v > uint64(Max) {
		return 0, ErrOutOfRange
	}
	return Code(v), nil
}

// String returns the canonical four-digit uppercase form, e.g. "00D7".
func (c Code) String() string {
	return fmt.Sprintf("%04X", uint16(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It uses the strict grammar: text coming from structured documents should
// be exact.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := ParseStrict(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// isSpace mirrors the whitespace skipped in front of a number by the console,
// which also treats the byte order mark as space but not NEL.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\uFEFF' || unicode.IsSpace(r)
}
