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

// Package apis defines the public Go-level contracts shared by the evcode
// surfaces.
//
// The console, the HTTP handler and the gRPC service all need "something
// that resolves codes" and "something that classifies names". They depend
// on the small interfaces declared here rather than on the concrete
// registry and classifier, which keeps them easy to test with fakes.
//
// This package must remain lightweight: interfaces, a status pair and the
// view types that go over the wire.
package apis
