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

package mapper

import (
	"dirpx.dev/securityhub/code"
	"google.golang.org/grpc/codes"
)

// Option adjusts the builder before New freezes it.
type Option func(*builder)

// WithHTTPDefault replaces the HTTP status for a classification code.
func WithHTTPDefault(c code.Code, status int) Option {
	return func(b *builder) { b.httpDefault[c] = status }
}

// WithGRPCDefault replaces the gRPC code for a classification code.
func WithGRPCDefault(c code.Code, grpc codes.Code) Option {
	return func(b *builder) { b.grpcDefault[c] = grpc }
}

// WithHTTPErrorCode pins the HTTP status for one AWS error code. It wins
// over the classification default.
func WithHTTPErrorCode(errorCode string, status int) Option {
	return func(b *builder) { b.httpErrorCode[errorCode] = status }
}

// WithGRPCErrorCode pins the gRPC code for one AWS error code.
func WithGRPCErrorCode(errorCode string, grpc codes.Code) Option {
	return func(b *builder) { b.grpcErrorCode[errorCode] = grpc }
}

// WithFallback sets the statuses used when nothing else matches.
func WithFallback(status int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = status
		b.fallbackGRPC = grpc
	}
}
