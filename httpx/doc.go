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

// Package httpx exposes a registry over HTTP as a small JSON API.
//
// Routes:
//
//	GET  /v1/codes/{code}         one code, 404/400 error view on a miss
//	GET  /v1/codes[?shadowed=true] the table sorted by code
//	POST /v1/resolve              {"codes": ["0050", "zz"]}, never fails per token
//	GET  /healthz                 liveness
//
// Bodies are produced with protojson over structpb values, so the HTTP and
// gRPC surfaces share one JSON dialect.
package httpx
