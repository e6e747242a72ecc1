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
	"slices"
	"strings"
	"sync"

	"dirpx.dev/evcode/code"
	"dirpx.dev/evcode/name"
)

// Entry is one line of a code table: a code and the name assigned to it.
type Entry struct {
	Code code.Code `json:"code" yaml:"code"`
	Name name.Name `json:"name" yaml:"name"`
}

// String returns "CODE NAME", e.g. "0050 WIFI_CONNECTED".
func (e Entry) String() string {
	return e.Code.String() + " " + e.Name.String()
}

// Registry is an immutable code -> name mapping.
//
// A Registry is built once from an ordered listing and never changes
// afterwards, so every method is safe for concurrent use without locking.
type Registry struct {
	names map[code.Code]name.Name

	// entries is the post-collision view, sorted by code.
	entries []Entry

	// shadowed holds the assignments that a later entry overwrote, in the
	// order they were overwritten.
	shadowed []Entry

	fallback Fallback
}

// New builds a Registry from entries, inserted in slice order.
//
// When several entries share a code the last one wins. This mirrors how the
// firmware table has always been read and must not be "fixed" here: consumers
// depend on the final assignment. The losing entries stay visible through
// Shadowed.
//
// New fails only when an entry carries an invalid name.
func New(entries []Entry, opts ...Option) (*Registry, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	names := make(map[code.Code]name.Name, len(entries))
	var shadowed []Entry
	for i, e := range entries {
		if err := name.Validate(e.Name); err != nil {
			return nil, fmt.Errorf("evcode: entry %d (code %s): %w", i, e.Code, err)
		}
		if prev, ok := names[e.Code]; ok {
			shadowed = append(shadowed, Entry{Code: e.Code, Name: prev})
		}
		names[e.Code] = e.Name
	}

	sorted := make([]Entry, 0, len(names))
	for c, n := range names {
		sorted = append(sorted, Entry{Code: c, Name: n})
	}
	slices.SortFunc(sorted, func(a, b Entry) int { return int(a.Code) - int(b.Code) })

	return &Registry{
		names:    names,
		entries:  sorted,
		shadowed: shadowed,
		fallback: o.fallback,
	}, nil
}

// MustNew panics on construction error. Useful for package-level tables.
func MustNew(entries []Entry, opts ...Option) *Registry {
	r, err := New(entries, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry { return MustNew(table) })

// Default returns the process-wide registry built from the canonical table.
// It is constructed on first use and shared afterwards.
func Default() *Registry { return defaultRegistry() }

// Table returns a copy of the canonical listing in source order, collisions
// included.
func Table() []Entry { return slices.Clone(table) }

// Resolve resolves s against the Default registry.
func Resolve(s string) (name.Name, bool) { return Default().Resolve(s) }

// Resolve parses s as a hex code (see code.Parse) and returns its name.
//
// Unknown, out-of-range and malformed inputs all yield (name.Empty, false).
// Resolve never panics and never allocates on the hit path.
func (r *Registry) Resolve(s string) (name.Name, bool) {
	c, err := code.Parse(s)
	if err != nil {
		return name.Empty, false
	}
	return r.ResolveCode(c)
}

// ResolveCode returns the name registered for c.
func (r *Registry) ResolveCode(c code.Code) (name.Name, bool) {
	n, ok := r.names[c]
	return n, ok
}

// ResolveUint resolves an already-parsed integer of any width. Values that do
// not fit into a code are simply not found.
func (r *Registry) ResolveUint(v uint64) (name.Name, bool) {
	c, err := code.FromUint(v)
	if err != nil {
		return name.Empty, false
	}
	return r.ResolveCode(c)
}

// Lookup is Resolve with the failure explained. The returned error is always
// an *Error.
func (r *Registry) Lookup(s string) (Entry, error) {
	c, err := code.Parse(s)
	switch {
	case errors.Is(err, code.ErrMalformed):
		return Entry{}, newError(KindMalformedInput, s, 0, err)
	case err != nil:
		return Entry{}, newError(KindUnknownCode, s, 0, err)
	}
	n, ok := r.names[c]
	if !ok {
		return Entry{}, newError(KindUnknownCode, s, c, nil)
	}
	return Entry{Code: c, Name: n}, nil
}

// Display returns the text a console should show for s: the resolved name,
// or a placeholder chosen by the registry's Fallback.
func (r *Registry) Display(s string) string {
	if n, ok := r.Resolve(s); ok {
		return n.String()
	}
	if r.fallback == FallbackRaw {
		if raw := strings.TrimSpace(s); raw != "" {
			return raw
		}
	}
	return Unknown
}

// WithFallback returns a registry sharing r's data but rendering misses with
// f. r itself is not modified.
func (r *Registry) WithFallback(f Fallback) *Registry {
	cp := *r
	cp.fallback = f
	return &cp
}

// Fallback reports the placeholder policy used by Display.
func (r *Registry) Fallback() Fallback { return r.fallback }

// Len reports the number of distinct codes.
func (r *Registry) Len() int { return len(r.entries) }

// Entries returns the reachable assignments sorted by code.
// The slice is a copy.
func (r *Registry) Entries() []Entry { return slices.Clone(r.entries) }

// Shadowed returns the assignments that are unreachable because a later
// entry reused their code. The slice is a copy.
func (r *Registry) Shadowed() []Entry { return slices.Clone(r.shadowed) }
