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

package httpx

import (
	"net/http"

	"dirpx.dev/evcode"
	"dirpx.dev/evcode/adapter"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Writer turns a lookup error into an HTTP response. The status is resolved
// with evcode.StatusOf.
type Writer struct{}

// Write serializes the error view of err and writes it with the mapped
// status. A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	st := evcode.StatusOf(err)
	writeJSON(rw, st.HTTP, adapter.ToErrorView(err).ToMap())
}

// writeJSON marshals body through structpb and protojson.
func writeJSON(rw http.ResponseWriter, status int, body map[string]any) {
	s, err := structpb.NewStruct(body)
	if err != nil {
		http.Error(rw, "internal error", http.StatusInternalServerError)
		return
	}
	b, err := protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(s)
	if err != nil {
		http.Error(rw, "internal error", http.StatusInternalServerError)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, _ = rw.Write(b)
}
