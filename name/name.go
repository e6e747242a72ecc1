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

package name

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Name is the canonical, validated symbolic identifier of an event code.
//
// Names are upper-case words joined by underscores. The first word names the
// firmware subsystem that emitted the event, the rest describe the operation
// and the outcome:
//
//   - "WIFI_CONNECTED"
//   - "OTA_SUCCESSFULLY_COMPLETED"
//   - "SPIFFS_FLASH_READ_TIMEOUT"
//   - "WIFI_TRUNCATING_STRING_TO_31_CHAR"
type Name string

// MinLength and MaxLength define the allowed length range for a name.
const (
	// MinLength is the minimum length of a name. Single-letter identifiers
	// are accepted; the firmware tables never produce them but nothing
	// breaks if they do.
	MinLength = 1

	// MaxLength is the maximum length of a name. The longest name in the
	// shipped table is well below this.
	MaxLength = 64
)

const (
	// nameFmt is the canonical regular expression used to validate names.
	//
	// The first segment starts with an upper-case letter; following
	// segments may start with a digit ("TO_31_CHAR"). Segments are never
	// empty, so "__" and a trailing "_" are rejected.
	nameFmt = `^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`

	// Separator joins the words of a name.
	Separator = "_"
)

var (
	// nameRe is the compiled regexp for the above pattern.
	nameRe = regexp.MustCompile(nameFmt)
)

var (
	// ErrNameEmpty is returned when an empty string is given where a name is
	// required.
	ErrNameEmpty = errors.New("evcode: empty name")
	// ErrNameInvalidFormat is returned when a name does not conform to the
	// expected format.
	ErrNameInvalidFormat = errors.New("evcode: invalid name format")
	// ErrNameInvalidLength is returned when a name is too long.
	ErrNameInvalidLength = errors.New("evcode: invalid name length")
)

// Ensure Name implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Name)(nil)
	_ encoding.TextUnmarshaler = (*Name)(nil)
)

// Empty is the zero-value name. Resolvers return it together with false when
// a code has no registered name.
var Empty Name = ""

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical name form:
//
//   - trim spaces
//   - upper-case
//   - convert "-", "." and inner spaces to "_"
//
// It does NOT guarantee validity; callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '.', ' ':
			return '_'
		}
		return r
	}, s)
}

// Parse takes a user-provided string, normalizes it and validates it.
func Parse(s string) (Name, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Name(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Name {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Validate checks whether the provided Name is in canonical form.
// Unlike Parse it does not normalize: "wifi_connected" is invalid here.
func Validate(n Name) error {
	return validate(string(n))
}

// String returns the name as a plain string.
func (n Name) String() string {
	return string(n)
}

// Segments splits the name into its underscore-separated words.
// The empty name has no segments.
func (n Name) Segments() []string {
	if n == Empty {
		return nil
	}
	return strings.Split(string(n), Separator)
}

// Prefix returns the first word of the name, which by convention identifies
// the emitting subsystem ("WIFI" for "WIFI_CONNECTED").
func (n Name) Prefix() string {
	head, _, _ := strings.Cut(string(n), Separator)
	return head
}

// MarshalText implements encoding.TextMarshaler.
//
// Marshaling a non-canonical name fails rather than leaking it into a
// document that other tools will parse.
func (n Name) MarshalText() ([]byte, error) {
	if err := Validate(n); err != nil {
		return nil, err
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// validate is the internal helper that checks emptiness, length and format.
func validate(s string) error {
	if s == "" {
		return ErrNameEmpty
	}
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrNameInvalidLength
	}
	if !nameRe.MatchString(s) {
		return ErrNameInvalidFormat
	}
	return nil
}
