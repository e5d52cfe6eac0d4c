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

// Package httpx writes securityhub errors as AWS-style HTTP error
// responses. It is the server-side mirror of awsjson.UnmarshalError and is
// handy for local test doubles of the service.
package httpx

import (
	"net/http"

	"dirpx.dev/securityhub/adapter"
	"dirpx.dev/securityhub/apis"
	"dirpx.dev/securityhub/awsjson"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Writer renders errors using Mapper for the status. A nil Mapper means
// mapper.Default() and a nil Logger discards logs.
type Writer struct {
	Mapper apis.Mapper
	Logger *zap.Logger
}

// Write serializes err and writes it to rw. Nothing is written for a nil
// error. The x-amzn-RequestId header is set when the error carries a
// request id.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	log := w.Logger
	if log == nil {
		log = zap.NewNop()
	}

	body, status, merr := awsjson.MarshalError(w.Mapper, err)
	if merr != nil {
		log.Error("encode error response", zap.Error(merr), zap.NamedError("original", err))
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := adapter.ToView(err)
	h := rw.Header()
	h.Set("Content-Type", awsjson.ContentType)
	if view.Type != "" {
		h.Set(awsjson.HeaderErrorType, view.Type)
	}
	if view.RequestID != "" {
		h.Set(awsjson.HeaderRequestID, view.RequestID)
	}
	rw.WriteHeader(status)
	_, _ = rw.Write(body)

	level := zapcore.WarnLevel
	if status >= 500 {
		level = zapcore.ErrorLevel
	}
	if ce := log.Check(level, "error response"); ce != nil {
		fields := []zap.Field{zap.Int("status", status), zap.String("class", view.Class)}
		if om, ok := err.(zapcore.ObjectMarshaler); ok {
			fields = append(fields, zap.Object("error", om))
		} else {
			fields = append(fields, zap.Error(err))
		}
		ce.Write(fields...)
	}
}
