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
	"net/http"

	"dirpx.dev/securityhub/code"
	"google.golang.org/grpc/codes"
)

var defaultHTTP = map[code.Code]int{
	code.Invalid:          http.StatusBadRequest,
	code.Missing:          http.StatusBadRequest,
	code.NotFound:         http.StatusNotFound,
	code.Conflict:         http.StatusConflict,
	code.Unauthenticated:  http.StatusUnauthorized,
	code.PermissionDenied: http.StatusForbidden,
	code.QuotaExceeded:    http.StatusTooManyRequests,
	code.Throttled:        http.StatusTooManyRequests,
	code.Internal:         http.StatusInternalServerError,
	code.Unavailable:      http.StatusServiceUnavailable,
}

var defaultGRPC = map[code.Code]codes.Code{
	code.Invalid:          codes.InvalidArgument,
	code.Missing:          codes.InvalidArgument,
	code.NotFound:         codes.NotFound,
	code.Conflict:         codes.AlreadyExists,
	code.Unauthenticated:  codes.Unauthenticated,
	code.PermissionDenied: codes.PermissionDenied,
	code.QuotaExceeded:    codes.ResourceExhausted,
	code.Throttled:        codes.ResourceExhausted,
	code.Internal:         codes.Internal,
	code.Unavailable:      codes.Unavailable,
}

// Error codes the service returns without modeling them as exceptions.
var defaultErrorCodeHTTP = map[string]int{
	"ThrottlingException":         http.StatusTooManyRequests,
	"ServiceUnavailable":          http.StatusServiceUnavailable,
	"UnrecognizedClientException": http.StatusForbidden,
}

var defaultErrorCodeGRPC = map[string]codes.Code{
	"ThrottlingException":         codes.ResourceExhausted,
	"ServiceUnavailable":          codes.Unavailable,
	"UnrecognizedClientException": codes.Unauthenticated,
}
