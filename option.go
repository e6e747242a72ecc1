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
	"fmt"
	"strings"
)

// Unknown is the placeholder Display renders for codes without a name.
const Unknown = "UNKNOWN"

// Fallback selects what Display renders for a code it cannot resolve.
type Fallback int

const (
	// FallbackUnknown renders the Unknown placeholder.
	FallbackUnknown Fallback = iota
	// FallbackRaw renders the input itself (trimmed), so the operator still
	// sees the number the device reported.
	FallbackRaw
)

// String returns the configuration spelling of f.
func (f Fallback) String() string {
	switch f {
	case FallbackRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// ParseFallback reads "unknown" or "raw" (case-insensitive).
func ParseFallback(s string) (Fallback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unknown":
		return FallbackUnknown, nil
	case "raw":
		return FallbackRaw, nil
	}
	return FallbackUnknown, fmt.Errorf("evcode: unknown fallback %q (want \"unknown\" or \"raw\")", s)
}

// Option configures a Registry at construction time.
type Option func(*options)

type options struct {
	fallback Fallback
}

// WithFallback sets the placeholder policy used by Display.
func WithFallback(f Fallback) Option {
	return func(o *options) { o.fallback = f }
}
