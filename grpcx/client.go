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

	"dirpx.dev/evcode/apis"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client calls the evcode.v1.Resolver service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Resolve asks the server for code. Misses come back as gRPC status errors;
// use ExtractDescriptor to read the details.
func (c *Client) Resolve(ctx context.Context, code string, opts ...grpc.CallOption) (apis.CodeView, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, resolveMethod, wrapperspb.String(code), out, opts...); err != nil {
		return apis.CodeView{}, err
	}
	f := out.GetFields()
	return apis.CodeView{
		Input:     f["input"].GetStringValue(),
		Code:      f["code"].GetStringValue(),
		Name:      f["name"].GetStringValue(),
		Subsystem: f["subsystem"].GetStringValue(),
		Found:     f["found"].GetBoolValue(),
	}, nil
}
