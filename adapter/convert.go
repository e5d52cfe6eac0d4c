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

// Package adapter projects arbitrary errors onto the apis view types.
//
// It only relies on the apis interfaces, so errors from other packages are
// rendered as well as they can be: anything that is not classified becomes
// code.Internal with its Error() text as the message.
package adapter

import (
	"errors"

	"dirpx.dev/securityhub"
	"dirpx.dev/securityhub/apis"
	"dirpx.dev/securityhub/code"
	"dirpx.dev/securityhub/mapper"
	"dirpx.dev/securityhub/reason"
)

// Class returns the classification of err, searching the wrap chain.
// Errors without one are code.Internal.
func Class(err error) code.Code {
	var ce apis.ClassifiedError
	if errors.As(err, &ce) {
		return ce.ErrorClass().OrInternal()
	}
	return code.Internal
}

// Reason returns the reason of err, or reason.Empty.
func Reason(err error) reason.Reason {
	var re apis.ReasonedError
	if errors.As(err, &re) {
		return re.ErrorReason()
	}
	return reason.Empty
}

// ServiceException returns the first modeled exception in err's chain.
func ServiceException(err error) (apis.ServiceException, bool) {
	var se apis.ServiceException
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// ErrorCode returns the AWS error code of err, or "".
func ErrorCode(err error) string {
	if se, ok := ServiceException(err); ok {
		return se.ErrorCode()
	}
	var base *securityhub.Error
	if errors.As(err, &base) {
		return base.ErrorCode
	}
	return ""
}

// Status resolves err through m. A nil m means mapper.Default().
func Status(m apis.Mapper, err error) apis.Status {
	if m == nil {
		m = mapper.Default()
	}
	return m.Status(Class(err), ErrorCode(err))
}

// ToView renders err for clients. Details are copied as-is; redaction is
// the caller's business.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	if vp, ok := err.(apis.ViewProvider); ok {
		return vp.ErrorView()
	}
	v := apis.ErrorView{
		Type:    ErrorCode(err),
		Class:   string(Class(err)),
		Reason:  string(Reason(err)),
		Message: err.Error(),
	}
	if se, ok := ServiceException(err); ok {
		v.Message = se.Message()
		v.RequestID = se.RequestID()
		if c, ok := se.Code(); ok {
			v.Code = c
		}
	} else {
		var base *securityhub.Error
		if errors.As(err, &base) {
			v.Message = base.Message
			v.RequestID = base.RequestID
		}
	}
	var de apis.DetailedError
	if errors.As(err, &de) {
		if ds := de.ErrorDetails(); len(ds) > 0 {
			v.Details = ds
		}
	}
	return v
}

// ToDescriptor flattens err together with its resolved statuses.
func ToDescriptor(err error, st apis.Status) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	v := ToView(err)
	d := apis.ErrorDescriptor{
		Type:       v.Type,
		Class:      v.Class,
		Reason:     v.Reason,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    v.Message,
	}
	if se, ok := ServiceException(err); ok {
		d.Retryable = se.Retryable()
	}
	return d
}
