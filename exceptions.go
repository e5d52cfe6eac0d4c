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
	"net/http"

	"dirpx.dev/securityhub/apis"
	"dirpx.dev/securityhub/code"
	"dirpx.dev/securityhub/reason"
)

// AWS error codes of the modeled exceptions.
const (
	ErrCodeInvalidInputException     = "InvalidInputException"
	ErrCodeLimitExceededException    = "LimitExceededException"
	ErrCodeAccessDeniedException     = "AccessDeniedException"
	ErrCodeInvalidAccessException    = "InvalidAccessException"
	ErrCodeResourceConflictException = "ResourceConflictException"
	ErrCodeResourceNotFoundException = "ResourceNotFoundException"
	ErrCodeInternalException         = "InternalException"
)

var (
	invalidInputShape = shape{
		errorCode: ErrCodeInvalidInputException, class: code.Invalid, reason: reason.InvalidInput,
		status: http.StatusBadRequest, errType: ErrorTypeClient,
	}
	limitExceededShape = shape{
		errorCode: ErrCodeLimitExceededException, class: code.QuotaExceeded, reason: reason.LimitExceeded,
		status: http.StatusTooManyRequests, errType: ErrorTypeClient,
	}
	accessDeniedShape = shape{
		errorCode: ErrCodeAccessDeniedException, class: code.PermissionDenied, reason: reason.AccessDenied,
		status: http.StatusForbidden, errType: ErrorTypeClient,
	}
	invalidAccessShape = shape{
		errorCode: ErrCodeInvalidAccessException, class: code.Unauthenticated, reason: reason.InvalidAccess,
		status: http.StatusUnauthorized, errType: ErrorTypeClient,
	}
	resourceConflictShape = shape{
		errorCode: ErrCodeResourceConflictException, class: code.Conflict, reason: reason.ResourceConflict,
		status: http.StatusConflict, errType: ErrorTypeClient,
	}
	resourceNotFoundShape = shape{
		errorCode: ErrCodeResourceNotFoundException, class: code.NotFound, reason: reason.ResourceNotFound,
		status: http.StatusNotFound, errType: ErrorTypeClient,
	}
	internalShape = shape{
		errorCode: ErrCodeInternalException, class: code.Internal, reason: reason.InternalFailure,
		status: http.StatusInternalServerError, errType: ErrorTypeService, retryable: true,
	}
)

type invalidInputKind struct{}

func (invalidInputKind) shape() shape { return invalidInputShape }

// InvalidInputException: a parameter value was invalid or out of range.
// Fix the request before sending it again.
//
// The zero value is usable and carries an empty message.
type InvalidInputException struct{ exception[invalidInputKind] }

// NewInvalidInputException returns an InvalidInputException with no code set.
func NewInvalidInputException(message string) *InvalidInputException {
	return &InvalidInputException{newException[invalidInputKind](&Error{Message: message})}
}

// WithCode sets the Code member and returns e.
func (e *InvalidInputException) WithCode(c string) *InvalidInputException {
	e.SetCode(c)
	return e
}

type limitExceededKind struct{}

func (limitExceededKind) shape() shape { return limitExceededShape }

// LimitExceededException: the request would exceed an account or service
// quota. Only reducing the scope of the request or raising the quota helps.
//
// The zero value is usable and carries an empty message.
type LimitExceededException struct{ exception[limitExceededKind] }

// NewLimitExceededException returns a LimitExceededException with no code set.
func NewLimitExceededException(message string) *LimitExceededException {
	return &LimitExceededException{newException[limitExceededKind](&Error{Message: message})}
}

// WithCode sets the Code member and returns e.
func (e *LimitExceededException) WithCode(c string) *LimitExceededException {
	e.SetCode(c)
	return e
}

type accessDeniedKind struct{}

func (accessDeniedKind) shape() shape { return accessDeniedShape }

// AccessDeniedException: the caller lacks permission for the action.
type AccessDeniedException struct{ exception[accessDeniedKind] }

// NewAccessDeniedException returns an AccessDeniedException with no code set.
func NewAccessDeniedException(message string) *AccessDeniedException {
	return &AccessDeniedException{newException[accessDeniedKind](&Error{Message: message})}
}

// WithCode sets the Code member and returns e.
func (e *AccessDeniedException) WithCode(c string) *AccessDeniedException {
	e.SetCode(c)
	return e
}

type invalidAccessKind struct{}

func (invalidAccessKind) shape() shape { return invalidAccessShape }

// InvalidAccessException: the account is not subscribed to Security Hub.
type InvalidAccessException struct{ exception[invalidAccessKind] }

// NewInvalidAccessException returns an InvalidAccessException with no code set.
func NewInvalidAccessException(message string) *InvalidAccessException {
	return &InvalidAccessException{newException[invalidAccessKind](&Error{Message: message})}
}

// WithCode sets the Code member and returns e.
func (e *InvalidAccessException) WithCode(c string) *InvalidAccessException {
	e.SetCode(c)
	return e
}

type resourceConflictKind struct{}

func (resourceConflictKind) shape() shape { return resourceConflictShape }

// ResourceConflictException: the resource already exists or is in use.
type ResourceConflictException struct{ exception[resourceConflictKind] }

// NewResourceConflictException returns a ResourceConflictException with no code set.
func NewResourceConflictException(message string) *ResourceConflictException {
	return &ResourceConflictException{newException[resourceConflictKind](&Error{Message: message})}
}

// WithCode sets the Code member and returns e.
func (e *ResourceConflictException) WithCode(c string) *ResourceConflictException {
	e.SetCode(c)
	return e
}

type resourceNotFoundKind struct{}

func (resourceNotFoundKind) shape() shape { return resourceNotFoundShape }

// ResourceNotFoundException: the referenced resource does not exist.
type ResourceNotFoundException struct{ exception[resourceNotFoundKind] }

// NewResourceNotFoundException returns a ResourceNotFoundException with no code set.
func NewResourceNotFoundException(message string) *ResourceNotFoundException {
	return &ResourceNotFoundException{newException[resourceNotFoundKind](&Error{Message: message})}
}

// WithCode sets the Code member and returns e.
func (e *ResourceNotFoundException) WithCode(c string) *ResourceNotFoundException {
	e.SetCode(c)
	return e
}

type internalKind struct{}

func (internalKind) shape() shape { return internalShape }

// InternalException: the service failed. It is the only modeled exception
// worth retrying as-is.
type InternalException struct{ exception[internalKind] }

// NewInternalException returns an InternalException with no code set.
func NewInternalException(message string) *InternalException {
	return &InternalException{newException[internalKind](&Error{Message: message})}
}

// WithCode sets the Code member and returns e.
func (e *InternalException) WithCode(c string) *InternalException {
	e.SetCode(c)
	return e
}

var (
	_ apis.ServiceException = (*InvalidInputException)(nil)
	_ apis.ServiceException = (*LimitExceededException)(nil)
	_ apis.ServiceException = (*AccessDeniedException)(nil)
	_ apis.ServiceException = (*InvalidAccessException)(nil)
	_ apis.ServiceException = (*ResourceConflictException)(nil)
	_ apis.ServiceException = (*ResourceNotFoundException)(nil)
	_ apis.ServiceException = (*InternalException)(nil)
)

// wrappers builds the exception for a known AWS error code around a
// prepared base.
var wrappers = map[string]func(*Error) apis.ServiceException{
	ErrCodeInvalidInputException: func(b *Error) apis.ServiceException {
		return &InvalidInputException{newException[invalidInputKind](b)}
	},
	ErrCodeLimitExceededException: func(b *Error) apis.ServiceException {
		return &LimitExceededException{newException[limitExceededKind](b)}
	},
	ErrCodeAccessDeniedException: func(b *Error) apis.ServiceException {
		return &AccessDeniedException{newException[accessDeniedKind](b)}
	},
	ErrCodeInvalidAccessException: func(b *Error) apis.ServiceException {
		return &InvalidAccessException{newException[invalidAccessKind](b)}
	},
	ErrCodeResourceConflictException: func(b *Error) apis.ServiceException {
		return &ResourceConflictException{newException[resourceConflictKind](b)}
	},
	ErrCodeResourceNotFoundException: func(b *Error) apis.ServiceException {
		return &ResourceNotFoundException{newException[resourceNotFoundKind](b)}
	},
	ErrCodeInternalException: func(b *Error) apis.ServiceException {
		return &InternalException{newException[internalKind](b)}
	},
}

// IsModeled reports whether errorCode names one of the modeled exceptions.
func IsModeled(errorCode string) bool {
	_, ok := wrappers[errorCode]
	return ok
}

// Wrap returns the modeled exception matching base.ErrorCode, built around
// a copy of base, or base itself when the code is not modeled. Zero fields
// of base are filled from the exception's defaults.
func Wrap(base *Error) error {
	if base == nil {
		return nil
	}
	if w, ok := wrappers[base.ErrorCode]; ok {
		return w(base)
	}
	return base
}

// New is Wrap for a bare error code and message. Unknown codes yield an
// *Error classified as code.Internal.
func New(errorCode, message string) error {
	base := &Error{ErrorCode: errorCode, Message: message, ServiceName: ServiceName}
	if IsModeled(errorCode) {
		return Wrap(base)
	}
	base.Code = code.Internal
	base.Reason = reason.Unmodeled
	base.ErrorType = ErrorTypeUnknown
	return base
}
