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

package apis

import (
	"dirpx.dev/securityhub/code"
	"google.golang.org/grpc/codes"
)

// Mapper resolves an error's classification and AWS error code into
// transport statuses. Implementations must be safe for concurrent use.
type Mapper interface {
	// HTTPStatus never returns 0.
	HTTPStatus(c code.Code, errorCode string) int

	GRPCStatus(c code.Code, errorCode string) codes.Code

	// Status resolves both with the same precedence.
	Status(c code.Code, errorCode string) Status
}

// Status is a resolved pair of transport statuses.
type Status struct {
	HTTP int
	GRPC codes.Code
}
