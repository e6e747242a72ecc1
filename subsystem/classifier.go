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

package subsystem

import (
	"fmt"
	"strings"

	"dirpx.dev/evcode/name"
	"dirpx.dev/evcode/subsystem/internal/segmenttrie"
)

// New constructs an immutable Classifier snapshot.
//
// Build process overview:
//
//  1. Seed the builder with the library prefix rules (unless WithoutDefaults).
//  2. Apply user-provided options (prefix rules, overrides, fallback).
//  3. Normalize and validate every prefix and override name.
//  4. Build a segment trie supporting longest-prefix-match with '*' as a
//     single-segment wildcard.
//  5. Freeze overrides into a fresh map.
//
// Errors indicate invalid prefixes, names or subsystems in the options.
func New(opts ...Option) (*Classifier, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	if !b.fallback.Valid() {
		return nil, fmt.Errorf("subsystem: invalid fallback %q: %w", b.fallback, ErrUnknownSubsystem)
	}

	rules := b.prefixes
	if b.defaults {
		rules = append(append(make([]prefixRule, 0, len(defaultPrefixes)+len(b.prefixes)), defaultPrefixes...), b.prefixes...)
	}

	t := segmenttrie.New[Subsystem]()
	for _, r := range rules {
		if !r.val.Valid() {
			return nil, fmt.Errorf("subsystem: prefix %q: %w: %q", r.prefix, ErrUnknownSubsystem, r.val)
		}
		p, err := normalizeAndValidatePrefix(r.prefix)
		if err != nil {
			return nil, fmt.Errorf("subsystem: invalid name prefix %q: %w", r.prefix, err)
		}
		if err := t.Insert(p, r.val); err != nil {
			return nil, fmt.Errorf("subsystem: cannot insert prefix %q: %w", p, err)
		}
	}

	overrides := make(map[name.Name]Subsystem, len(b.overrides))
	for _, o := range b.overrides {
		if !o.val.Valid() {
			return nil, fmt.Errorf("subsystem: override %q: %w: %q", o.name, ErrUnknownSubsystem, o.val)
		}
		n, err := name.Parse(o.name)
		if err != nil {
			return nil, fmt.Errorf("subsystem: invalid override name %q: %w", o.name, err)
		}
		overrides[n] = o.val
	}

	return &Classifier{
		override: overrides,
		trie:     t,
		fallback: b.fallback,
	}, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(opts ...Option) *Classifier {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Classifier assigns event names to subsystems. It combines exact overrides
// with a segment-aware prefix trie. Lookups are O(depth) and safe for
// concurrent use once constructed.
type Classifier struct {
	// override holds exact per-name assignments.
	override map[name.Name]Subsystem

	// trie resolves subsystems by name prefix (underscore-separated, with "*"
	// for one-segment wildcards).
	trie *segmenttrie.Trie[Subsystem]

	// fallback is returned when nothing matches.
	fallback Subsystem
}

// Classify returns the subsystem for n.
//
// Resolution order (highest to lowest):
//  1. exact override;
//  2. longest-prefix-match rule on the name;
//  3. fallback (Other unless configured).
func (c *Classifier) Classify(n name.Name) Subsystem {
	if v, ok := c.override[n]; ok {
		return v
	}
	if v, ok := c.trie.Match(string(n)); ok {
		return v
	}
	return c.fallback
}

// Explain produces a textual trace of how Classify resolved n: which tier
// matched and, for prefix matches, which pattern was used.
//
// Example output:
//
//	name="WIFI_SAVE_CFG_HEAP_EXHAUSTED"
//	subsystem: source=prefix pattern="*_SAVE_CFG" -> configuration
//
// source is one of override, prefix or fallback. The output is meant for
// people, not for parsing.
func (c *Classifier) Explain(n name.Name) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "name=%q\n", n)
	_, _ = fmt.Fprint(&b, c.explain(n))
	return b.String()
}

func (c *Classifier) explain(n name.Name) string {
	if v, ok := c.override[n]; ok {
		return fmt.Sprintf("subsystem: source=override -> %s", v)
	}
	if v, ok, pat := c.trie.MatchWithPattern(string(n)); ok {
		return fmt.Sprintf("subsystem: source=prefix pattern=%q -> %s", pat, v)
	}
	return fmt.Sprintf("subsystem: source=fallback -> %s", c.fallback)
}

// Fallback returns the subsystem used for unmatched names.
func (c *Classifier) Fallback() Subsystem {
	return c.fallback
}

// normalizeAndValidatePrefix ensures a name prefix is canonical and valid.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := name.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	segs := strings.Split(p, name.Separator)
	allWild := true
	for _, seg := range segs {
		if !validPrefixSegment(seg) {
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != segmenttrie.Wildcard {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}

// validPrefixSegment reports whether seg is "*" or matches [A-Z0-9]+.
func validPrefixSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == segmenttrie.Wildcard {
		return true
	}
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			continue
		}
		return false
	}
	return true
}
