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

// Package adapter converts lookup outcomes into the wire views shared by
// the HTTP and gRPC surfaces.
package adapter

import (
	"errors"

	"dirpx.dev/evcode"
	"dirpx.dev/evcode/apis"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToCodeView converts a successful lookup into a CodeView. The classifier
// may be nil, in which case Subsystem is left empty.
func ToCodeView(input string, e evcode.Entry, cls apis.Classifier) apis.CodeView {
	v := apis.CodeView{
		Input: input,
		Code:  e.Code.String(),
		Name:  e.Name.String(),
		Found: true,
	}
	if cls != nil {
		v.Subsystem = cls.Classify(e.Name).String()
	}
	return v
}

// ToMissView converts a failed lookup into a CodeView with Found unset.
// The canonical code is kept when the input was a number.
func ToMissView(input string, err error) apis.CodeView {
	v := apis.CodeView{Input: input}
	var le *evcode.Error
	if errors.As(err, &le) && le.Kind == evcode.KindUnknownCode && le.Cause == nil {
		v.Code = le.Code.String()
	}
	return v
}

// ToErrorView converts a lookup error into a public ErrorView. Errors that
// are not *evcode.Error are rendered with kind "internal" and no detail.
func ToErrorView(err error) apis.ErrorView {
	var le *evcode.Error
	if !errors.As(err, &le) || le == nil {
		return apis.ErrorView{Kind: "internal", Message: "internal error"}
	}
	v := apis.ErrorView{
		Kind:    string(le.Kind),
		Message: le.Message,
		Input:   le.Input,
	}
	if le.Kind == evcode.KindUnknownCode && le.Cause == nil {
		v.Code = le.Code.String()
	}
	return v
}

// ToDescriptor converts a lookup error together with its resolved transport
// status into a portable structpb descriptor.
//
// The descriptor is attached to gRPC statuses and can be logged as-is. It
// carries the error view plus the concrete transport statuses.
func ToDescriptor(err error, st apis.Status) (*structpb.Struct, error) {
	m := ToErrorView(err).ToMap()
	m["http_status"] = st.HTTP
	m["grpc_code"] = int(st.GRPC)
	return structpb.NewStruct(m)
}
