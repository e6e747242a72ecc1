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

// Package evcode resolves firmware event codes to their symbolic names.
//
// The device firmware writes compact 16-bit codes into its diagnostic log.
// The console translates them with a static table that mirrors the
// firmware's own assignments:
//
//	n, ok := evcode.Resolve("0050") // "WIFI_CONNECTED", true
//	n, ok = evcode.Resolve("zz")    // "", false
//
// # Misses are values, not errors
//
// Resolve, ResolveCode, ResolveUint and Display never fail. Unknown codes,
// numbers that do not fit into 16 bits and text that is not a number at all
// are reported as "not found" so that decoding a log never stops on one bad
// token. Lookup returns the same answer with an *Error that tells the cases
// apart, for API surfaces that want to report them.
//
// # Collisions
//
// The canonical table assigns some codes twice (0100-0105 are used by the
// web client and again by the DHT/MAX6675 drivers). The registry keeps the
// last assignment in listing order, exactly as the original console did.
// Overwritten assignments are reported by Registry.Shadowed.
//
// # Concurrency
//
// A Registry is immutable after New returns. Default builds the canonical
// registry once per process.
package evcode
