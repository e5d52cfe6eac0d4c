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

package awsjson

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"dirpx.dev/securityhub"
	"dirpx.dev/securityhub/adapter"
	"dirpx.dev/securityhub/apis"
	"dirpx.dev/securityhub/code"
	"dirpx.dev/securityhub/reason"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	HeaderErrorType = "x-amzn-ErrorType"
	HeaderRequestID = "x-amzn-RequestId"

	ContentType = "application/x-amz-json-1.1"
)

// MaxBodySize caps how much of an error body ResponseFromHTTP reads.
const MaxBodySize = 1 << 20

// Response is the part of an HTTP error response the decoder looks at.
type Response struct {
	StatusCode int
	RequestID  string
	// ErrorType is the raw x-amzn-ErrorType header.
	ErrorType string
	Body      []byte
}

// ResponseFromHTTP reads r's body (up to MaxBodySize) and headers. The
// body is not closed.
func ResponseFromHTTP(r *http.Response) (Response, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize))
	if err != nil {
		return Response{}, fmt.Errorf("awsjson: read error body: %w", err)
	}
	return Response{
		StatusCode: r.StatusCode,
		RequestID:  r.Header.Get(HeaderRequestID),
		ErrorType:  r.Header.Get(HeaderErrorType),
		Body:       body,
	}, nil
}

// UnmarshalError decodes resp into an error. It never returns nil.
//
// Modeled error codes yield the matching exception with its Code member
// populated from the body; anything else yields a *securityhub.Error
// classified from the HTTP status. A body that cannot be decoded gets
// reason.MalformedBody and the decode error as Cause, but a modeled
// x-amzn-ErrorType still selects the exception.
func UnmarshalError(resp Response) error {
	base := &securityhub.Error{
		RequestID:   resp.RequestID,
		StatusCode:  resp.StatusCode,
		ServiceName: securityhub.ServiceName,
	}

	fields, err := decodeBody(resp.Body)
	if err != nil {
		// The header alone still names the exception.
		base.Reason = reason.MalformedBody
		base.ErrorCode = sanitizeErrorType(resp.ErrorType)
		base.Message = http.StatusText(resp.StatusCode)
		base.Cause = err
		if securityhub.IsModeled(base.ErrorCode) {
			return securityhub.Wrap(base)
		}
		base.Code = classFromStatus(resp.StatusCode)
		base.ErrorType = errorTypeFromStatus(resp.StatusCode)
		return base
	}

	base.ErrorCode = sanitizeErrorType(firstNonEmpty(resp.ErrorType, fields["__type"], fields["code"]))
	base.Message = firstNonEmpty(fields["message"], fields["Message"], fields["errorMessage"])
	if base.Message == "" {
		base.Message = http.StatusText(resp.StatusCode)
	}

	if securityhub.IsModeled(base.ErrorCode) {
		out := securityhub.Wrap(base)
		if c, ok := fields["Code"]; ok {
			if se, ok := out.(apis.ServiceException); ok {
				se.SetCode(c)
			}
		}
		return out
	}

	base.Code = classFromStatus(resp.StatusCode)
	base.Reason = reason.Unmodeled
	base.ErrorType = errorTypeFromStatus(resp.StatusCode)
	return base
}

// MarshalError renders err as an error body and returns it with the HTTP
// status resolved by m.
func MarshalError(m apis.Mapper, err error) ([]byte, int, error) {
	if err == nil {
		return nil, 0, errors.New("awsjson: nil error")
	}
	v := adapter.ToView(err)
	fields := map[string]any{"message": v.Message}
	if v.Type != "" {
		fields["__type"] = v.Type
	}
	if v.Code != "" {
		fields["Code"] = v.Code
	}
	s, serr := structpb.NewStruct(fields)
	if serr != nil {
		return nil, 0, fmt.Errorf("awsjson: build body: %w", serr)
	}
	b, merr := protojson.Marshal(s)
	if merr != nil {
		return nil, 0, fmt.Errorf("awsjson: marshal body: %w", merr)
	}
	return b, adapter.Status(m, err).HTTP, nil
}

// decodeBody returns the top-level string members of a JSON object body.
// An empty body yields no fields.
func decodeBody(body []byte) (map[string]string, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return map[string]string{}, nil
	}
	var s structpb.Struct
	if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("awsjson: decode error body: %w", err)
	}
	out := make(map[string]string, len(s.GetFields()))
	for k, v := range s.GetFields() {
		if sv, ok := v.GetKind().(*structpb.Value_StringValue); ok {
			out[k] = sv.StringValue
		}
	}
	return out, nil
}

// sanitizeErrorType strips the "namespace#" prefix and the ":uri" suffix
// the service may add to an error type.
func sanitizeErrorType(t string) string {
	t = strings.TrimSpace(t)
	if i := strings.IndexByte(t, ':'); i >= 0 {
		t = t[:i]
	}
	if i := strings.LastIndexByte(t, '#'); i >= 0 {
		t = t[i+1:]
	}
	return t
}

func classFromStatus(status int) code.Code {
	switch {
	case status == http.StatusUnauthorized:
		return code.Unauthenticated
	case status == http.StatusForbidden:
		return code.PermissionDenied
	case status == http.StatusNotFound:
		return code.NotFound
	case status == http.StatusConflict:
		return code.Conflict
	case status == http.StatusTooManyRequests:
		return code.Throttled
	case status == http.StatusServiceUnavailable:
		return code.Unavailable
	case status >= 400 && status < 500:
		return code.Invalid
	default:
		return code.Internal
	}
}

func errorTypeFromStatus(status int) securityhub.ErrorType {
	switch {
	case status >= 500:
		return securityhub.ErrorTypeService
	case status >= 400:
		return securityhub.ErrorTypeClient
	default:
		return securityhub.ErrorTypeUnknown
	}
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}
