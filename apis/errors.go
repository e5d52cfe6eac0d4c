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
	"dirpx.dev/securityhub/reason"
)

// ClassifiedError is an error with a classification code. Adapters use it
// to pick transport statuses. Errors that do not implement it are treated
// as code.Internal.
type ClassifiedError interface {
	error

	// ErrorClass returns the classification. It should be canonical.
	ErrorClass() code.Code
}

// ReasonedError refines the classification with a reason.
type ReasonedError interface {
	error

	// ErrorReason may return reason.Empty.
	ErrorReason() reason.Reason
}

// DetailedError exposes structured details. ErrorDetails may return nil
// and the caller must not modify the slice.
type DetailedError interface {
	error

	ErrorDetails() []Detail
}

// ServiceException is a modeled error returned by the service: it carries
// the AWS error code that names its shape plus an optional short code
// member set by the transport.
type ServiceException interface {
	ClassifiedError

	// ErrorCode is the AWS error code, e.g. "InvalidInputException".
	ErrorCode() string

	// Message returns the message supplied at construction.
	Message() string

	// Code returns the short code member and whether it was set.
	Code() (string, bool)

	// SetCode stores the short code member verbatim.
	SetCode(code string)

	// RequestID returns the request id reported by the service, if any.
	RequestID() string

	// Retryable reports whether sending the identical request again can
	// succeed.
	Retryable() bool
}
