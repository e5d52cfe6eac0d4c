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
	"testing"

	"dirpx.dev/securityhub/apis"
	"dirpx.dev/securityhub/code"
	"dirpx.dev/securityhub/reason"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestError_Basics(t *testing.T) {
	e := E(code.Unavailable, "endpoint unreachable",
		WithReasonOption(reason.Reason("securityhub.transport.dial")),
		WithDetailOption(apis.Detail{Type: "endpoint", Info: map[string]string{"host": "securityhub.us-east-1.amazonaws.com"}}),
	)
	assert.Equal(t, code.Unavailable, e.Code)
	assert.Equal(t, ServiceName, e.ServiceName)
	require.Len(t, e.Details, 1)
	assert.Equal(t, "unavailable:securityhub.transport.dial: endpoint unreachable", e.Error())
}

func TestError_ServiceFormat(t *testing.T) {
	e := E(code.Invalid, "bad filter",
		WithErrorCodeOption("InvalidInputException"),
		WithStatusCodeOption(400),
		WithRequestIDOption("req-1"),
	)
	assert.Equal(t,
		"InvalidInputException: bad filter (Service: SecurityHub; Status Code: 400; Request ID: req-1)",
		e.Error())
}

func TestError_Nil(t *testing.T) {
	var e *Error
	assert.Equal(t, "<nil>", e.Error())
}

func TestError_CopyOnWrite(t *testing.T) {
	e1 := E(code.Invalid, "bad").WithDetail(apis.Detail{Field: "a"})
	e2 := e1.WithDetail(apis.Detail{Field: "b"})
	assert.Len(t, e1.Details, 1)
	assert.Len(t, e2.Details, 2)

	e3 := e1.WithReason(reason.InvalidInput).WithRequestID("r").WithStatusCode(400).WithMessage("other")
	assert.Equal(t, reason.Empty, e1.Reason)
	assert.Equal(t, "bad", e1.Message)
	assert.Equal(t, "other", e3.Message)
	assert.Equal(t, "r", e3.RequestID)

	assert.Same(t, e1, e1.WithDetails())
	assert.Same(t, e1, e1.WithCause(nil))
}

func TestError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := E(code.Internal, "x", WithCauseOption(root))
	assert.ErrorIs(t, e, root)
	assert.Equal(t, root, errors.Unwrap(e))
}

func TestError_ErrorClass(t *testing.T) {
	assert.Equal(t, code.Conflict, E(code.Conflict, "x").ErrorClass())
	assert.Equal(t, code.Internal, E(code.Empty, "x").ErrorClass())
	assert.Equal(t, code.Internal, E("Not Canonical", "x").ErrorClass())
}

func TestError_MarshalLogObject(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	e := E(code.QuotaExceeded, "too many insights",
		WithErrorCodeOption(ErrCodeLimitExceededException),
		WithRequestIDOption("req-9"),
		WithStatusCodeOption(429),
		WithCauseOption(errors.New("boom")),
	)
	require.NoError(t, e.MarshalLogObject(enc))
	assert.Equal(t, "quota_exceeded", enc.Fields["class"])
	assert.Equal(t, "LimitExceededException", enc.Fields["error_code"])
	assert.Equal(t, "req-9", enc.Fields["request_id"])
	assert.Equal(t, 429, enc.Fields["status_code"])
	assert.Equal(t, "boom", enc.Fields["cause"])
	assert.NotContains(t, enc.Fields, "reason")
}
