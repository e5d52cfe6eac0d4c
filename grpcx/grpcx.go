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

// Package grpcx carries securityhub errors across gRPC.
//
// On the server, UnaryServerInterceptor turns classified errors into a
// status with google.rpc error details:
//
//   - ErrorInfo (always): domain "securityhub.amazonaws.com", reason set
//     to the AWS error code, metadata with class, reason, code and
//     request id;
//   - BadRequest for invalid or missing input, one violation per detail;
//   - QuotaFailure for quota errors.
//
// On the client, FromError rebuilds the modeled exception from such a
// status.
package grpcx

import (
	"context"
	"errors"
	"strings"

	"dirpx.dev/securityhub"
	"dirpx.dev/securityhub/adapter"
	"dirpx.dev/securityhub/apis"
	"dirpx.dev/securityhub/code"
	"dirpx.dev/securityhub/reason"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// Domain is the ErrorInfo domain used for securityhub errors.
const Domain = "securityhub.amazonaws.com"

// ErrorInfo metadata keys.
const (
	MetaClass     = "class"
	MetaReason    = "reason"
	MetaErrorCode = "error_code"
	MetaCode      = "code"
	MetaRequestID = "request_id"
)

type options struct {
	logger *zap.Logger
}

// Option configures the interceptor.
type Option func(*options)

// WithLogger logs every converted error. 5xx-class errors log at Error,
// the rest at Warn.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// UnaryServerInterceptor converts classified handler errors with ToStatus.
// Errors that carry no classification are returned unchanged.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		var ce apis.ClassifiedError
		if !errors.As(err, &ce) {
			return nil, err
		}
		st := ToStatus(m, err)

		level := zapcore.WarnLevel
		if adapter.Status(m, err).HTTP >= 500 {
			level = zapcore.ErrorLevel
		}
		if e := o.logger.Check(level, "rpc failed"); e != nil {
			e.Write(
				zap.String("method", info.FullMethod),
				zap.Stringer("grpc_code", st.Code()),
				zap.String("class", string(adapter.Class(err))),
				zap.Error(err),
			)
		}
		return nil, st.Err()
	}
}

// ToStatus converts err into a status carrying error details. A failure
// to attach details degrades to the bare status. A nil m means
// mapper.Default().
func ToStatus(m apis.Mapper, err error) *status.Status {
	v := adapter.ToView(err)
	st := adapter.Status(m, err)
	base := status.New(st.GRPC, v.Message)

	info := &errdetails.ErrorInfo{
		Reason:   v.Type,
		Domain:   Domain,
		Metadata: map[string]string{MetaClass: v.Class},
	}
	if info.Reason == "" {
		info.Reason = strings.ToUpper(v.Class)
	}
	setIf(info.Metadata, MetaReason, v.Reason)
	setIf(info.Metadata, MetaErrorCode, v.Type)
	setIf(info.Metadata, MetaCode, v.Code)
	setIf(info.Metadata, MetaRequestID, v.RequestID)

	details := []protoadapt.MessageV1{info}
	switch code.Code(v.Class) {
	case code.Invalid, code.Missing:
		details = append(details, badRequest(v))
	case code.QuotaExceeded:
		details = append(details, &errdetails.QuotaFailure{
			Violations: []*errdetails.QuotaFailure_Violation{{Subject: securityhub.ServiceName, Description: v.Message}},
		})
	}

	with, derr := base.WithDetails(details...)
	if derr != nil {
		return base
	}
	return with
}

// FromError rebuilds a securityhub error from a status produced by
// ToStatus. Anything else is returned unchanged.
func FromError(err error) error {
	st, ok := status.FromError(err)
	if !ok || st == nil {
		return err
	}
	var (
		info *errdetails.ErrorInfo
		bad  *errdetails.BadRequest
	)
	for _, d := range st.Details() {
		switch t := d.(type) {
		case *errdetails.ErrorInfo:
			if t.GetDomain() == Domain {
				info = t
			}
		case *errdetails.BadRequest:
			bad = t
		}
	}
	if info == nil {
		return err
	}

	md := info.GetMetadata()
	// Metadata comes off the wire; values that do not parse are dropped.
	class, cerr := code.Parse(md[MetaClass])
	if cerr != nil {
		class = code.Empty
	}
	rsn, rerr := reason.Parse(md[MetaReason])
	if rerr != nil {
		rsn = reason.Empty
	}
	base := &securityhub.Error{
		Code:        class,
		Reason:      rsn,
		Message:     st.Message(),
		ErrorCode:   md[MetaErrorCode],
		RequestID:   md[MetaRequestID],
		ServiceName: securityhub.ServiceName,
		Cause:       err,
	}
	for _, fv := range bad.GetFieldViolations() {
		base.Details = append(base.Details, apis.Detail{Type: "field", Field: fv.GetField(), Reason: fv.GetDescription()})
	}

	out := securityhub.Wrap(base)
	if c, ok := md[MetaCode]; ok {
		if se, ok := out.(apis.ServiceException); ok {
			se.SetCode(c)
		}
	}
	return out
}

func badRequest(v apis.ErrorView) *errdetails.BadRequest {
	br := &errdetails.BadRequest{}
	for _, d := range v.Details {
		field := d.Field
		if field == "" {
			field = d.Info["enum"]
		}
		desc := d.Reason
		if in, ok := d.Info["input"]; ok {
			desc += ": " + in
		}
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{Field: field, Description: desc})
	}
	if len(br.FieldViolations) == 0 {
		br.FieldViolations = []*errdetails.BadRequest_FieldViolation{{Description: v.Message}}
	}
	return br
}

func setIf(m map[string]string, k, v string) {
	if v != "" {
		m[k] = v
	}
}
