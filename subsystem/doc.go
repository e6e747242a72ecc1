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

// Package subsystem assigns firmware event names (dirpx.dev/evcode/name) to
// the subsystem that emits them: networking, filesystem, OTA and so on.
//
// # Resolution model
//
// A Classifier resolves a name in the following order:
//
//  1. exact override for the name;
//  2. longest-prefix-match (LPM) over the name's "_"-separated words;
//  3. fallback (Other).
//
// Prefix rules are segment-aware, and "*" matches exactly one word:
//
//	WithPrefix("WEB_CLIENT", Networking)
//	WithPrefix("*_SAVE_CFG", Configuration)
//
// The more specific prefix wins, so "WIFI_SAVE_CFG_HEAP_EXHAUSTED" is a
// configuration event while "WIFI_CONNECTED" is a networking one.
//
// # Building a classifier
//
//	c, err := subsystem.New(
//	    subsystem.WithPrefix("ESPCONN", subsystem.Networking),
//	    subsystem.WithOverride("ESPOT_SET_NAME_TRUNCATED", subsystem.System),
//	)
//	if err != nil {
//	    // invalid prefix, etc.
//	}
//	s := c.Classify(name.MustParse("WIFI_CONNECTED")) // subsystem.Networking
//
// Classifier.Explain returns a trace of which tier matched, for
// inspection and logging.
//
// All inputs are copied during New; a Classifier is safe to share across
// goroutines.
package subsystem
