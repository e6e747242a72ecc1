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

// Package grpcx serves a registry over gRPC as the evcode.v1.Resolver
// service and provides the matching client.
//
// The service has a single unary method:
//
//	rpc Resolve(google.protobuf.StringValue) returns (google.protobuf.Struct)
//
// It is declared with a hand-written grpc.ServiceDesc over well-known
// types, so no generated code is needed. Misses travel as *evcode.Error
// until UnaryServerInterceptor turns them into a status carrying a
// structpb descriptor; ExtractDescriptor reads it back on the client.
package grpcx
