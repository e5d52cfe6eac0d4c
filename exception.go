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
	"errors"
	"regexp"

	"dirpx.dev/securityhub/apis"
	"dirpx.dev/securityhub/code"
	"dirpx.dev/securityhub/reason"
	"go.uber.org/zap/zapcore"
)

// ErrCodeBlank is returned by ValidateCode when the code member is set but
// holds no non-whitespace character.
var ErrCodeBlank = errors.New("securityhub: exception code must contain a non-whitespace character")

// codeMemberRe is the documented pattern of the Code member.
var codeMemberRe = regexp.MustCompile(`\S`)

// shape describes one modeled exception.
type shape struct {
	errorCode string
	class     code.Code
	reason    reason.Reason
	status    int
	errType   ErrorType
	retryable bool
}

// kind ties an exception type to its shape, so a zero value still knows
// which exception it is.
type kind interface {
	shape() shape
}

// exception is the part every modeled exception shares: an immutable base
// error plus the optional Code member. A nil base reads as the shape
// defaults with an empty message.
type exception[K kind] struct {
	err  *Error
	code *string
}

// newException fills the zero fields of base from K's shape. base is copied.
func newException[K kind](base *Error) exception[K] {
	var k K
	return exception[K]{err: withShape(k.shape(), base)}
}

func withShape(sh shape, base *Error) *Error {
	cp := *base
	cp.ErrorCode = sh.errorCode
	if cp.Code == code.Empty {
		cp.Code = sh.class
	}
	if cp.Reason == reason.Empty {
		cp.Reason = sh.reason
	}
	if cp.StatusCode == 0 {
		cp.StatusCode = sh.status
	}
	if cp.ErrorType == "" {
		cp.ErrorType = sh.errType
	}
	if cp.ServiceName == "" {
		cp.ServiceName = ServiceName
	}
	return &cp
}

func (e *exception[K]) shape() shape {
	var k K
	return k.shape()
}

func (e *exception[K]) base() *Error {
	if e.err == nil {
		return withShape(e.shape(), &Error{})
	}
	return e.err
}

func (e *exception[K]) Error() string { return e.base().Error() }

// Unwrap exposes the base so errors.As(err, new(*Error)) works.
func (e *exception[K]) Unwrap() error { return e.base() }

// Message returns the message given at construction.
func (e *exception[K]) Message() string { return e.base().Message }

// ErrorCode returns the AWS error code, e.g. "InvalidInputException".
func (e *exception[K]) ErrorCode() string { return e.shape().errorCode }

// ErrorClass returns the classification of the base error.
func (e *exception[K]) ErrorClass() code.Code { return e.base().ErrorClass() }

// ErrorReason returns the reason of the base error.
func (e *exception[K]) ErrorReason() reason.Reason { return e.base().Reason }

// ErrorDetails returns the details of the base error.
func (e *exception[K]) ErrorDetails() []apis.Detail { return e.base().Details }

// RequestID returns the x-amzn-RequestId of the failed call, if known.
func (e *exception[K]) RequestID() string { return e.base().RequestID }

// Code returns the Code member and whether it has been set.
func (e *exception[K]) Code() (string, bool) {
	if e.code == nil {
		return "", false
	}
	return *e.code, true
}

// SetCode stores c verbatim. The documented constraint (at least one
// non-whitespace character) is not checked here; see ValidateCode.
func (e *exception[K]) SetCode(c string) { e.code = &c }

// ValidateCode checks the Code member against its documented pattern. An
// unset code is valid.
func (e *exception[K]) ValidateCode() error {
	if e.code != nil && !codeMemberRe.MatchString(*e.code) {
		return ErrCodeBlank
	}
	return nil
}

// ServiceError returns a copy of the base error.
func (e *exception[K]) ServiceError() *Error {
	cp := *e.base()
	return &cp
}

// Retryable reports whether the identical request may succeed later.
func (e *exception[K]) Retryable() bool { return e.shape().retryable }

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e *exception[K]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := e.base().MarshalLogObject(enc); err != nil {
		return err
	}
	if c, ok := e.Code(); ok {
		enc.AddString("code", c)
	}
	enc.AddBool("retryable", e.Retryable())
	return nil
}
