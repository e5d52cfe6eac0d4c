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

package securityhub

import (
	"dirpx.dev/securityhub/apis"
	"dirpx.dev/securityhub/reason"
)

// Option transforms an *Error under construction. Used with E.
type Option func(*Error) *Error

// WithReasonOption sets the reason.
func WithReasonOption(r reason.Reason) Option {
	return func(e *Error) *Error { return e.WithReason(r) }
}

// WithDetailOption appends one detail.
func WithDetailOption(d apis.Detail) Option {
	return func(e *Error) *Error { return e.WithDetail(d) }
}

// WithCauseOption wraps err. A nil err is ignored.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error { return e.WithCause(err) }
}

// WithRequestIDOption records the x-amzn-RequestId of the call.
func WithRequestIDOption(id string) Option {
	return func(e *Error) *Error { return e.WithRequestID(id) }
}

// WithStatusCodeOption records the HTTP status the service answered with.
func WithStatusCodeOption(status int) Option {
	return func(e *Error) *Error { return e.WithStatusCode(status) }
}

// WithErrorCodeOption sets the AWS error code. Combine with Wrap to get the
// matching exception type.
func WithErrorCodeOption(errorCode string) Option {
	return func(e *Error) *Error {
		cp := *e
		cp.ErrorCode = errorCode
		return &cp
	}
}
