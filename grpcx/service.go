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

	"dirpx.dev/evcode"
	"dirpx.dev/evcode/adapter"
	"dirpx.dev/evcode/apis"
	"dirpx.dev/evcode/internal/ctxlog"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// ServiceName is the fully-qualified gRPC service name.
	ServiceName = "evcode.v1.Resolver"

	resolveMethod = "/" + ServiceName + "/Resolve"
)

// ResolverServer is the server API for the evcode.v1.Resolver service.
type ResolverServer interface {
	Resolve(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error)
}

// ServiceDesc is the grpc.ServiceDesc for evcode.v1.Resolver.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ResolverServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Resolve",
			Handler:    resolveHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "evcode/v1/resolver.proto",
}

// Register registers srv on s.
func Register(s grpc.ServiceRegistrar, srv ResolverServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func resolveHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ResolverServer).Resolve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: resolveMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ResolverServer).Resolve(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Registry is what the service needs from a code registry.
// *evcode.Registry satisfies it.
type Registry interface {
	Lookup(s string) (evcode.Entry, error)
}

// Server implements ResolverServer on top of a Registry.
type Server struct {
	reg Registry
	cls apis.Classifier
}

var _ ResolverServer = (*Server)(nil)

// NewServer returns a Server for reg. cls may be nil.
func NewServer(reg Registry, cls apis.Classifier) *Server {
	return &Server{reg: reg, cls: cls}
}

// Resolve looks up the code in the request. A miss is returned as the
// *evcode.Error produced by the registry; install UnaryServerInterceptor to
// map it onto a gRPC status.
func (s *Server) Resolve(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	code := in.GetValue()
	e, err := s.reg.Lookup(code)
	if err != nil {
		ctxlog.FromContext(ctx).Debug("Code lookup missed.", "input", code, "error", err)
		return nil, err
	}
	return structpb.NewStruct(adapter.ToCodeView(code, e, s.cls).ToMap())
}
