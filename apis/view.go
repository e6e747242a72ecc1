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

// CodeView is the wire shape of one resolved (or unresolved) code.
//
// Keeping it here lets the HTTP and gRPC surfaces produce identical payloads.
type CodeView struct {
	// Input is the text the caller asked about, verbatim.
	Input string `json:"input,omitempty"`
	// Code is the canonical four-digit form. Empty when the input was not
	// a number.
	Code string `json:"code,omitempty"`
	// Name is the resolved name. Empty on a miss.
	Name string `json:"name,omitempty"`
	// Subsystem is the classifier's verdict for Name.
	Subsystem string `json:"subsystem,omitempty"`
	// Found reports whether Name is set.
	Found bool `json:"found"`
}

// ToMap returns the view as a generic map, ready for structpb.NewStruct.
// Empty optional fields are omitted, mirroring the JSON tags.
func (v CodeView) ToMap() map[string]any {
	m := map[string]any{"found": v.Found}
	put(m, "input", v.Input)
	put(m, "code", v.Code)
	put(m, "name", v.Name)
	put(m, "subsystem", v.Subsystem)
	return m
}

// ErrorView is the wire shape of a failed lookup.
type ErrorView struct {
	// Kind is the failure class, e.g. "unknown_code" or "malformed_input".
	Kind string `json:"kind"`
	// Message is a human-friendly explanation.
	Message string `json:"message,omitempty"`
	// Input is the text that failed to resolve.
	Input string `json:"input,omitempty"`
	// Code is the parsed code when the input was a number.
	Code string `json:"code,omitempty"`
}

// ToMap returns the view as a generic map, ready for structpb.NewStruct.
func (v ErrorView) ToMap() map[string]any {
	m := map[string]any{"kind": v.Kind}
	put(m, "message", v.Message)
	put(m, "input", v.Input)
	put(m, "code", v.Code)
	return m
}

func put(m map[string]any, k, v string) {
	if v != "" {
		m[k] = v
	}
}
