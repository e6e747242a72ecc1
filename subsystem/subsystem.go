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
	"errors"
	"fmt"
	"strings"
)

// Subsystem identifies the firmware component that emits an event.
type Subsystem string

// Known subsystems.
const (
	Networking    Subsystem = "networking"
	Filesystem    Subsystem = "filesystem"
	Configuration Subsystem = "configuration"
	OTA           Subsystem = "ota"
	PeripheralIO  Subsystem = "peripheral_io"
	Scheduling    Subsystem = "scheduling"
	Timekeeping   Subsystem = "timekeeping"
	Diagnostics   Subsystem = "diagnostics"
	System        Subsystem = "system"

	// Other is the fallback for names no rule matches.
	Other Subsystem = "other"
)

// ErrUnknownSubsystem is returned by Parse for identifiers outside All().
var ErrUnknownSubsystem = errors.New("evcode: unknown subsystem")

var all = []Subsystem{
	Networking,
	Filesystem,
	Configuration,
	OTA,
	PeripheralIO,
	Scheduling,
	Timekeeping,
	Diagnostics,
	System,
	Other,
}

// All returns every known subsystem, Other last.
func All() []Subsystem {
	out := make([]Subsystem, len(all))
	copy(out, all)
	return out
}

// Parse returns the known subsystem named by s. Matching ignores case and
// surrounding space; "-" is accepted for "_".
func Parse(s string) (Subsystem, error) {
	v := Subsystem(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, k := range all {
		if k == v {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSubsystem, s)
}

// String returns the subsystem identifier.
func (s Subsystem) String() string {
	return string(s)
}

// Valid reports whether s is one of All().
func (s Subsystem) Valid() bool {
	for _, k := range all {
		if k == s {
			return true
		}
	}
	return false
}
