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

// Package code provides parsing and formatting for firmware event codes.
//
// A "code" is a 16-bit unsigned integer the device firmware writes into its
// diagnostic log instead of a symbolic name. In the shared code table every
// code is spelled as four uppercase hex digits ("0050", "00D7", "0100").
//
// Two grammars are offered:
//
//   - Parse is lenient and matches how the device console has always read
//     codes out of log lines: leading space, sign and "0x" prefix are
//     accepted and anything after the hex digits is ignored;
//   - ParseStrict accepts exactly one to four hex digits (with an optional
//     "0x" prefix) and is used for hand-written input.
//
// Neither function panics. Callers that need "unknown instead of error"
// semantics should use the registry in the root package.
package code
