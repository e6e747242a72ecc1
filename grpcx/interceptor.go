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

package grpcx

import (
	"context"
	"errors"
	"log/slog"

	"dirpx.dev/evcode"
	"dirpx.dev/evcode/adapter"
	"dirpx.dev/evcode/apis"
	"dirpx.dev/evcode/internal/ctxlog"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// StatusFunc maps an error to transport statuses.
type StatusFunc func(err error) apis.Status

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *evcode.Error into gRPC errors carrying a structpb descriptor detail.
//
// statusOf resolves the gRPC code; nil means evcode.StatusOf. logger is put
// into the handler context (see ctxlog); nil keeps whatever the context
// already carries.
func UnaryServerInterceptor(statusOf StatusFunc, logger *slog.Logger) grpc.UnaryServerInterceptor {
	if statusOf == nil {
		statusOf = evcode.StatusOf
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if logger != nil {
			ctx = ctxlog.WithLogger(ctx, logger)
		}
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var le *evcode.Error
		if !errors.As(err, &le) {
			// Not ours; return as-is.
			return nil, err
		}

		st := statusOf(err)
		base := gstatus.New(st.GRPC, le.Message)

		// Try to attach the descriptor as a detail. If it fails, return base.
		desc, derr := adapter.ToDescriptor(err, st)
		if derr != nil {
			return nil, base.Err()
		}
		// WithDetails wraps each message in an Any itself.
		if with, werr := base.WithDetails(desc); werr == nil {
			return nil, with.Err()
		}
		return nil, base.Err()
	}
}

// ExtractDescriptor pulls the structpb descriptor out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractDescriptor(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return s, true
		}
	}
	return nil, false
}
