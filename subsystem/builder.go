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

type prefixRule struct {
	// prefix is the raw, underscore-separated name prefix (may contain "*").
	// It is normalized and validated when the trie is built.
	prefix string
	// val is the subsystem to assign when this prefix matches.
	val Subsystem
}

type overrideRule struct {
	// name is the raw name; it is parsed when the classifier is built.
	name string
	val  Subsystem
}

type builder struct {
	// defaults controls whether the library rules seed the trie.
	defaults bool

	// prefixes are user rules, applied after the defaults so that a user
	// rule with the same pattern replaces the library one.
	prefixes []prefixRule

	// overrides are exact per-name assignments (highest precedence).
	overrides []overrideRule

	// fallback is used when nothing matches.
	fallback Subsystem
}

// newBuilder creates a builder seeded with library behavior.
func newBuilder() *builder {
	return &builder{
		defaults: true,
		fallback: Other,
	}
}
