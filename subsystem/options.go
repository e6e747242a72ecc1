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

// Option configures the Classifier at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Classifier.
type Option func(*builder)

// WithPrefix adds a longest-prefix-match rule. The prefix is matched against
// the underscore-separated words of a name; a more specific prefix wins and
// "*" matches exactly one word. A rule with the same pattern as a library
// default replaces it.
func WithPrefix(prefix string, s Subsystem) Option {
	return func(b *builder) { b.prefixes = append(b.prefixes, prefixRule{prefix, s}) }
}

// WithOverride assigns the exact name n to s. Overrides take precedence
// over every prefix rule.
func WithOverride(n string, s Subsystem) Option {
	return func(b *builder) { b.overrides = append(b.overrides, overrideRule{n, s}) }
}

// WithFallback sets the subsystem returned when no rule matches.
// The default is Other.
func WithFallback(s Subsystem) Option {
	return func(b *builder) { b.fallback = s }
}

// WithoutDefaults drops the library prefix rules, leaving only the rules
// given by other options.
func WithoutDefaults() Option {
	return func(b *builder) { b.defaults = false }
}
