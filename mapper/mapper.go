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
	"fmt"
	"maps"
	"net/http"
	"sync"

	"dirpx.dev/securityhub/apis"
	"dirpx.dev/securityhub/code"
	"google.golang.org/grpc/codes"
)

type builder struct {
	httpDefault   map[code.Code]int
	grpcDefault   map[code.Code]codes.Code
	httpErrorCode map[string]int
	grpcErrorCode map[string]codes.Code
	fallbackHTTP  int
	fallbackGRPC  codes.Code
}

// New seeds a builder with the library defaults, applies opts, validates
// the result and freezes it into an immutable apis.Mapper.
func New(opts ...Option) (apis.Mapper, error) {
	b := &builder{
		httpDefault:   maps.Clone(defaultHTTP),
		grpcDefault:   maps.Clone(defaultGRPC),
		httpErrorCode: maps.Clone(defaultErrorCodeHTTP),
		grpcErrorCode: maps.Clone(defaultErrorCodeGRPC),
		fallbackHTTP:  http.StatusInternalServerError,
		fallbackGRPC:  codes.Internal,
	}
	for _, opt := range opts {
		opt(b)
	}

	for c, v := range b.httpDefault {
		if err := code.Validate(c); err != nil {
			return nil, fmt.Errorf("mapper: HTTP default for %q: %w", c, err)
		}
		if !validHTTP(v) {
			return nil, fmt.Errorf("mapper: HTTP default for %q: status %d out of range", c, v)
		}
	}
	for c := range b.grpcDefault {
		if err := code.Validate(c); err != nil {
			return nil, fmt.Errorf("mapper: gRPC default for %q: %w", c, err)
		}
	}
	for ec, v := range b.httpErrorCode {
		if ec == "" {
			return nil, fmt.Errorf("mapper: HTTP rule with empty error code")
		}
		if !validHTTP(v) {
			return nil, fmt.Errorf("mapper: HTTP rule for %q: status %d out of range", ec, v)
		}
	}
	for ec := range b.grpcErrorCode {
		if ec == "" {
			return nil, fmt.Errorf("mapper: gRPC rule with empty error code")
		}
	}
	for _, c := range code.All() {
		if _, ok := b.httpDefault[c]; !ok {
			return nil, fmt.Errorf("mapper: no HTTP default for declared code %q", c)
		}
		if _, ok := b.grpcDefault[c]; !ok {
			return nil, fmt.Errorf("mapper: no gRPC default for declared code %q", c)
		}
	}
	if !validHTTP(b.fallbackHTTP) {
		return nil, fmt.Errorf("mapper: fallback status %d out of range", b.fallbackHTTP)
	}

	// The builder is discarded here, so its maps become the snapshot.
	return &mapper{
		httpDefault:   b.httpDefault,
		grpcDefault:   b.grpcDefault,
		httpErrorCode: b.httpErrorCode,
		grpcErrorCode: b.grpcErrorCode,
		fallbackHTTP:  b.fallbackHTTP,
		fallbackGRPC:  b.fallbackGRPC,
	}, nil
}

// Default returns the shared mapper built from the library defaults only.
func Default() apis.Mapper { return defaultMapper() }

var defaultMapper = sync.OnceValue(func() apis.Mapper {
	m, err := New()
	if err != nil {
		panic(err)
	}
	return m
})

type mapper struct {
	httpDefault   map[code.Code]int
	grpcDefault   map[code.Code]codes.Code
	httpErrorCode map[string]int
	grpcErrorCode map[string]codes.Code
	fallbackHTTP  int
	fallbackGRPC  codes.Code
}

// HTTPStatus resolves the HTTP status: an error-code rule first, then the
// class default, then the fallback.
func (m *mapper) HTTPStatus(c code.Code, errorCode string) int {
	if v, ok := m.httpErrorCode[errorCode]; ok {
		return v
	}
	if v, ok := m.httpDefault[c]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves the gRPC code with the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code, errorCode string) codes.Code {
	if v, ok := m.grpcErrorCode[errorCode]; ok {
		return v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both statuses at once.
func (m *mapper) Status(c code.Code, errorCode string) apis.Status {
	return apis.Status{HTTP: m.HTTPStatus(c, errorCode), GRPC: m.GRPCStatus(c, errorCode)}
}

func validHTTP(v int) bool { return v >= 100 && v <= 599 }
