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

// Package grpcx exposes the same failure classification to gRPC servers.
//
// The interceptor resolves handler errors and panics with an apis.Mapper and
// answers with a gRPC status carrying google.rpc.ErrorInfo and, for
// validation failures, google.rpc.BadRequest details.
package grpcx

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/internal/logger"
	"dirpx.dev/outcome/mapper"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// DefaultDomain is the ErrorInfo domain used when WithDomain is not given.
const DefaultDomain = "outcome.dirpx.dev"

// Reasons used in ErrorInfo for failures without a recognized kind.
const (
	ReasonValidation   = "VALIDATION_FAILED"
	ReasonUnrecognized = "INTERNAL"
	ReasonNonError     = "UNEXPECTED"
)

// Option configures the interceptor.
type Option func(*options)

type options struct {
	domain   string
	logger   *zap.Logger
	recorder apis.FailureRecorder
}

// WithDomain sets the ErrorInfo domain.
func WithDomain(domain string) Option {
	return func(o *options) { o.domain = domain }
}

// WithLogger sets the logger used for failure diagnostics.
func WithLogger(lg *zap.Logger) Option {
	return func(o *options) { o.logger = lg }
}

// WithRecorder sets a recorder notified of every resolved failure.
func WithRecorder(r apis.FailureRecorder) Option {
	return func(o *options) { o.recorder = r }
}

// detailsCarrier is implemented by errors exposing a details map, such as
// *outcome.Error.
type detailsCarrier interface {
	ErrorDetails() map[string]any
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// handler failures through m.
//
// Errors that already carry a gRPC status and are neither recognized
// conditions nor validation failures are returned as-is.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	o := options{domain: DefaultDomain, logger: logger.Named("grpcx")}
	for _, opt := range opts {
		opt(&o)
	}
	m = mapper.Guard(m)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			res := m.ResolvePanic(v)
			var perr error
			if e, ok := v.(error); ok {
				perr = e
			}
			resp, err = nil, Status(res, perr, o.domain).Err()

			// The status is already set; diagnostics must not re-panic.
			defer func() { _ = recover() }()
			o.logger.Error("grpc handler panicked",
				zap.String("method", info.FullMethod),
				zap.String("source", string(res.Source)),
				zap.Any("panic_value", v),
			)
			o.record(res)
		}()

		resp, err = handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		res := m.Resolve(err)
		if res.Source == apis.SourceUnrecognized {
			if _, ok := gstatus.FromError(err); ok {
				return nil, err
			}
		}
		log := o.logger.Warn
		if res.HTTP >= 500 {
			log = o.logger.Error
		}
		log("grpc handler failed",
			zap.String("method", info.FullMethod),
			zap.String("source", string(res.Source)),
			zap.Error(err),
		)
		o.record(res)
		return nil, Status(res, err, o.domain).Err()
	}
}

func (o *options) record(res apis.Resolution) {
	if o.recorder != nil {
		o.recorder.RecordFailure(apis.TransportGRPC, res)
	}
}

// Status builds the gRPC status for a resolution. err is the original
// failure and may be nil; it is only inspected for details and violations.
// If inspecting err panics, the status is returned without details.
func Status(res apis.Resolution, err error, domain string) (st *gstatus.Status) {
	base := gstatus.New(res.GRPC, res.Message)
	defer func() {
		if recover() != nil {
			st = base
		}
	}()

	info := &errdetails.ErrorInfo{
		Reason:   reasonOf(res),
		Domain:   domain,
		Metadata: map[string]string{"http_status": fmt.Sprint(res.HTTP)},
	}
	var dc detailsCarrier
	if err != nil && errors.As(err, &dc) {
		for k, v := range dc.ErrorDetails() {
			info.Metadata[k] = fmt.Sprint(v)
		}
	}

	details := []protoadapt.MessageV1{info}
	var ve apis.ViolatedError
	if res.Source == apis.SourceValidation && errors.As(err, &ve) {
		if br := badRequest(ve.Violations()); br != nil {
			details = append(details, br)
		}
	}

	with, derr := base.WithDetails(details...)
	if derr != nil {
		return base
	}
	return with
}

func reasonOf(res apis.Resolution) string {
	switch res.Source {
	case apis.SourceTaxonomy:
		return strings.ToUpper(res.Kind.String())
	case apis.SourceValidation:
		return ReasonValidation
	case apis.SourceNonError:
		return ReasonNonError
	default:
		return ReasonUnrecognized
	}
}

func badRequest(vs []apis.Violation) *errdetails.BadRequest {
	if len(vs) == 0 {
		return nil
	}
	br := &errdetails.BadRequest{}
	for _, v := range vs {
		desc := v.Description
		if desc == "" {
			desc = v.Reason
		}
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       v.Field,
			Description: desc,
			Reason:      v.Reason,
		})
	}
	sort.SliceStable(br.FieldViolations, func(i, j int) bool {
		return br.FieldViolations[i].Field < br.FieldViolations[j].Field
	})
	return br
}

// ExtractErrorInfo pulls google.rpc.ErrorInfo out of a gRPC error, if present.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := gstatus.FromError(err)
	if !ok || err == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, true
		}
	}
	return nil, false
}

// ExtractBadRequest pulls google.rpc.BadRequest out of a gRPC error, if present.
func ExtractBadRequest(err error) (*errdetails.BadRequest, bool) {
	st, ok := gstatus.FromError(err)
	if !ok || err == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			return br, true
		}
	}
	return nil, false
}
