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

package evcode

import (
	"net/http"

	"dirpx.dev/evcode/apis"
	"google.golang.org/grpc/codes"
)

// defaultStatus maps lookup failures to transport statuses. Surfaces use it
// to answer API callers; the console itself never shows these.
var defaultStatus = map[Kind]apis.Status{
	// Well-formed code without a name.
	KindUnknownCode: {HTTP: http.StatusNotFound, GRPC: codes.NotFound},
	// No hex number in the input.
	KindMalformedInput: {HTTP: http.StatusBadRequest, GRPC: codes.InvalidArgument},
}

// fallbackStatus is used for errors that are not lookup failures.
var fallbackStatus = apis.Status{HTTP: http.StatusInternalServerError, GRPC: codes.Internal}

// StatusOf resolves the HTTP and gRPC status for err.
//
// A nil error maps to 200 / OK. Errors that do not carry a Kind map to
// 500 / Internal.
func StatusOf(err error) apis.Status {
	if err == nil {
		return apis.Status{HTTP: http.StatusOK, GRPC: codes.OK}
	}
	if k, ok := KindOf(err); ok {
		if st, ok := defaultStatus[k]; ok {
			return st
		}
	}
	return fallbackStatus
}
