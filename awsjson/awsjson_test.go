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
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"dirpx.dev/securityhub"
	"dirpx.dev/securityhub/code"
	"dirpx.dev/securityhub/mapper"
	"dirpx.dev/securityhub/model"
	"dirpx.dev/securityhub/reason"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalError_InvalidInput(t *testing.T) {
	err := UnmarshalError(Response{
		StatusCode: 400,
		RequestID:  "req-1",
		Body:       []byte(`{"__type":"InvalidInputException","message":"MaxResults must be <= 100","Code":"InvalidInput"}`),
	})

	var ex *securityhub.InvalidInputException
	require.True(t, errors.As(err, &ex))
	assert.Equal(t, "MaxResults must be <= 100", ex.Message())
	assert.Equal(t, "req-1", ex.RequestID())
	c, ok := ex.Code()
	require.True(t, ok)
	assert.Equal(t, "InvalidInput", c)
}

func TestUnmarshalError_LimitExceededFromHeader(t *testing.T) {
	err := UnmarshalError(Response{
		StatusCode: 429,
		ErrorType:  "LimitExceededException:http://internal.amazon.com/coral/com.amazonaws.securityhub/",
		Body:       []byte(`{"Message":"Insight quota reached"}`),
	})

	var ex *securityhub.LimitExceededException
	require.True(t, errors.As(err, &ex))
	assert.Equal(t, "Insight quota reached", ex.Message())
	_, ok := ex.Code()
	assert.False(t, ok, "no Code member in body")
}

func TestUnmarshalError_AllModeled(t *testing.T) {
	tests := []struct {
		errorCode string
		target    any
	}{
		{"InvalidInputException", new(*securityhub.InvalidInputException)},
		{"LimitExceededException", new(*securityhub.LimitExceededException)},
		{"AccessDeniedException", new(*securityhub.AccessDeniedException)},
		{"InvalidAccessException", new(*securityhub.InvalidAccessException)},
		{"ResourceConflictException", new(*securityhub.ResourceConflictException)},
		{"ResourceNotFoundException", new(*securityhub.ResourceNotFoundException)},
		{"InternalException", new(*securityhub.InternalException)},
	}
	for _, tt := range tests {
		t.Run(tt.errorCode, func(t *testing.T) {
			body := `{"__type":"com.amazonaws.securityhub#` + tt.errorCode + `","message":"m"}`
			err := UnmarshalError(Response{StatusCode: 400, Body: []byte(body)})
			assert.True(t, errors.As(err, tt.target))
		})
	}
}

func TestUnmarshalError_Unmodeled(t *testing.T) {
	err := UnmarshalError(Response{
		StatusCode: 429,
		Body:       []byte(`{"code":"ThrottlingException","message":"Rate exceeded"}`),
	})
	var base *securityhub.Error
	require.True(t, errors.As(err, &base))
	assert.Equal(t, "ThrottlingException", base.ErrorCode)
	assert.Equal(t, code.Throttled, base.Code)
	assert.Equal(t, reason.Unmodeled, base.Reason)
	assert.Equal(t, securityhub.ErrorTypeClient, base.ErrorType)
}

func TestUnmarshalError_EmptyBody(t *testing.T) {
	err := UnmarshalError(Response{StatusCode: 503})
	var base *securityhub.Error
	require.True(t, errors.As(err, &base))
	assert.Equal(t, code.Unavailable, base.Code)
	assert.Equal(t, "Service Unavailable", base.Message)
	assert.Equal(t, securityhub.ErrorTypeService, base.ErrorType)
}

func TestUnmarshalError_MalformedBody(t *testing.T) {
	err := UnmarshalError(Response{
		StatusCode: 429,
		RequestID:  "req-9",
		ErrorType:  "LimitExceededException",
		Body:       []byte(`<html>Too many</html>`),
	})

	var ex *securityhub.LimitExceededException
	require.True(t, errors.As(err, &ex), "modeled header must survive a bad body")
	assert.Equal(t, reason.MalformedBody, ex.ErrorReason())
	assert.Equal(t, code.QuotaExceeded, ex.ErrorClass())
	assert.Equal(t, "Too Many Requests", ex.Message())
	assert.Equal(t, "req-9", ex.RequestID())
	assert.False(t, ex.Retryable())
	require.Error(t, ex.ServiceError().Cause)

	internal := UnmarshalError(Response{StatusCode: 500, ErrorType: "InternalException", Body: []byte(`{"message":`)})
	var ie *securityhub.InternalException
	require.True(t, errors.As(internal, &ie))
	assert.True(t, ie.Retryable())
}

func TestUnmarshalError_MalformedBodyUnmodeled(t *testing.T) {
	err := UnmarshalError(Response{StatusCode: 503, ErrorType: "ServiceUnavailable", Body: []byte(`<html>oops</html>`)})
	var base *securityhub.Error
	require.True(t, errors.As(err, &base))
	assert.Equal(t, reason.MalformedBody, base.Reason)
	assert.Equal(t, "ServiceUnavailable", base.ErrorCode)
	assert.Equal(t, code.Unavailable, base.Code)
	assert.Equal(t, securityhub.ErrorTypeService, base.ErrorType)
	require.Error(t, base.Cause)
}

func TestSanitizeErrorType(t *testing.T) {
	tests := map[string]string{
		"InvalidInputException":                         "InvalidInputException",
		"aws.securityhub#InvalidInputException":         "InvalidInputException",
		"InvalidInputException:http://internal.example": "InvalidInputException",
		"a#b#LimitExceededException:uri":                "LimitExceededException",
		"  ":                                            "",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeErrorType(in), "input %q", in)
	}
}

func TestMarshalError_RoundTrip(t *testing.T) {
	m := mapper.Default()
	ex := securityhub.NewLimitExceededException("too many members").WithCode("LimitExceeded")

	body, status, err := MarshalError(m, ex)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.JSONEq(t, `{"__type":"LimitExceededException","message":"too many members","Code":"LimitExceeded"}`, string(body))

	back := UnmarshalError(Response{StatusCode: status, Body: body})
	var got *securityhub.LimitExceededException
	require.True(t, errors.As(back, &got))
	assert.Equal(t, ex.Message(), got.Message())
	c, _ := got.Code()
	assert.Equal(t, "LimitExceeded", c)
}

func TestMarshalError_EnumError(t *testing.T) {
	_, perr := model.ParsePartition("aws-mars")
	body, status, err := MarshalError(mapper.Default(), perr)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "aws-mars")
	assert.NotContains(t, string(body), "__type")
}

func TestMarshalError_Nil(t *testing.T) {
	_, _, err := MarshalError(mapper.Default(), nil)
	require.Error(t, err)
}

func TestResponseFromHTTP(t *testing.T) {
	r := &http.Response{
		StatusCode: 404,
		Header: http.Header{
			http.CanonicalHeaderKey(HeaderRequestID): {"req-7"},
			http.CanonicalHeaderKey(HeaderErrorType): {"ResourceNotFoundException"},
		},
		Body: io.NopCloser(strings.NewReader(`{"message":"no insight"}`)),
	}
	resp, err := ResponseFromHTTP(r)
	require.NoError(t, err)
	assert.Equal(t, "req-7", resp.RequestID)

	var nf *securityhub.ResourceNotFoundException
	require.True(t, errors.As(UnmarshalError(resp), &nf))
	assert.Equal(t, "no insight", nf.Message())
	assert.Equal(t, "req-7", nf.RequestID())
}
