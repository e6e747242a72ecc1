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

package apis

import (
	"dirpx.dev/evcode/code"
	"dirpx.dev/evcode/name"
	"dirpx.dev/evcode/subsystem"
)

// Resolver turns codes into names.
//
// Implementations must be safe for concurrent use and must never fail:
// a miss is reported through the boolean (or the Display placeholder), not
// through a panic or an error.
type Resolver interface {
	// Resolve parses s as a hex code and returns its name.
	Resolve(s string) (name.Name, bool)

	// ResolveCode returns the name registered for an already-parsed code.
	ResolveCode(c code.Code) (name.Name, bool)

	// Display returns the resolved name or a placeholder for misses.
	Display(s string) string
}

// Classifier assigns a name to the firmware subsystem that emits it.
type Classifier interface {
	// Classify returns the subsystem for n. Unclassified names map to
	// subsystem.Other.
	Classify(n name.Name) subsystem.Subsystem

	// Explain returns a human-readable description of which rule matched.
	Explain(n name.Name) string
}
