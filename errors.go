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
	"fmt"
	"strings"

	"dirpx.dev/securityhub/apis"
	"dirpx.dev/securityhub/code"
	"dirpx.dev/securityhub/reason"
	"go.uber.org/zap/zapcore"
)

// ServiceName is reported on every error built by this package.
const ServiceName = "SecurityHub"

// ErrorType tells who is at fault.
type ErrorType string

const (
	ErrorTypeClient  ErrorType = "Client"
	ErrorTypeService ErrorType = "Service"
	ErrorTypeUnknown ErrorType = "Unknown"
)

// Error is the service-error base.
//
// All WithX helpers return a shallow copy, so an *Error can be shared and
// refined without affecting other holders.
type Error struct {
	// Code classifies the failure. Adapters treat an empty or
	// non-canonical code as code.Internal.
	Code code.Code

	// Reason refines Code and may be empty.
	Reason reason.Reason

	// Message is the human-readable description.
	Message string

	// ErrorCode is the AWS error code that names the error shape, e.g.
	// "LimitExceededException". Empty for errors raised locally.
	ErrorCode string

	ErrorType ErrorType

	// RequestID is the x-amzn-RequestId of the failed call.
	RequestID string

	// StatusCode is the HTTP status the service answered with, 0 if none.
	StatusCode int

	ServiceName string

	// Details is treated as immutable; WithDetail copies it.
	Details []apis.Detail

	// Cause is the wrapped underlying error, if any.
	Cause error
}

var (
	_ apis.ClassifiedError    = (*Error)(nil)
	_ apis.ReasonedError      = (*Error)(nil)
	_ apis.DetailedError      = (*Error)(nil)
	_ zapcore.ObjectMarshaler = (*Error)(nil)
)

// E builds an *Error and applies opts in order.
//
//	return securityhub.E(code.Invalid, "MaxResults out of range",
//	    securityhub.WithReasonOption(reason.InvalidInput),
//	    securityhub.WithRequestIDOption(id),
//	)
func E(c code.Code, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Message: msg, ServiceName: ServiceName}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error renders
//
//	<ErrorCode>: <message> (Service: <name>; Status Code: <n>; Request ID: <id>)
//
// for service errors, or "<code>[:<reason>]: <message>" for local ones.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	switch {
	case e.ErrorCode != "":
		fmt.Fprintf(&b, "%s: %s", e.ErrorCode, e.Message)
	case e.Reason != "":
		fmt.Fprintf(&b, "%s:%s: %s", e.Code, e.Reason, e.Message)
	default:
		fmt.Fprintf(&b, "%s: %s", e.Code, e.Message)
	}

	var meta []string
	if e.ServiceName != "" && e.ErrorCode != "" {
		meta = append(meta, "Service: "+e.ServiceName)
	}
	if e.StatusCode != 0 {
		meta = append(meta, fmt.Sprintf("Status Code: %d", e.StatusCode))
	}
	if e.RequestID != "" {
		meta = append(meta, "Request ID: "+e.RequestID)
	}
	if len(meta) > 0 {
		b.WriteString(" (" + strings.Join(meta, "; ") + ")")
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) ErrorClass() code.Code { return e.Code.OrInternal() }

func (e *Error) ErrorReason() reason.Reason { return e.Reason }

func (e *Error) ErrorDetails() []apis.Detail { return e.Details }

// WithReason returns a copy of e with Reason set.
func (e *Error) WithReason(r reason.Reason) *Error {
	cp := *e
	cp.Reason = r
	return &cp
}

// WithMessage returns a copy of e with a replaced message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithRequestID returns a copy of e carrying the request id.
func (e *Error) WithRequestID(id string) *Error {
	cp := *e
	cp.RequestID = id
	return &cp
}

// WithStatusCode returns a copy of e carrying the HTTP status.
func (e *Error) WithStatusCode(status int) *Error {
	cp := *e
	cp.StatusCode = status
	return &cp
}

// WithDetail returns a copy of e with d appended to Details. The original
// slice is never written to.
func (e *Error) WithDetail(d apis.Detail) *Error {
	return e.WithDetails(d)
}

// WithDetails returns a copy of e with ds appended to Details.
func (e *Error) WithDetails(ds ...apis.Detail) *Error {
	if len(ds) == 0 {
		return e
	}
	cp := *e
	merged := make([]apis.Detail, 0, len(e.Details)+len(ds))
	merged = append(merged, e.Details...)
	cp.Details = append(merged, ds...)
	return &cp
}

// WithCause returns a copy of e wrapping err. A nil err returns e.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("class", string(e.ErrorClass()))
	if e.Reason != "" {
		enc.AddString("reason", string(e.Reason))
	}
	enc.AddString("message", e.Message)
	if e.ErrorCode != "" {
		enc.AddString("error_code", e.ErrorCode)
	}
	if e.ErrorType != "" {
		enc.AddString("error_type", string(e.ErrorType))
	}
	if e.RequestID != "" {
		enc.AddString("request_id", e.RequestID)
	}
	if e.StatusCode != 0 {
		enc.AddInt("status_code", e.StatusCode)
	}
	if e.ServiceName != "" {
		enc.AddString("service", e.ServiceName)
	}
	if e.Cause != nil {
		enc.AddString("cause", e.Cause.Error())
	}
	return nil
}
