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

// Package adapter wraps request handlers so that every outcome, including a
// panic, ends as a JSON response envelope.
//
// Handlers format their own success envelopes with the response package and
// report failures by returning an error (usually one of the conditions from
// the root outcome package). Wrap centralizes failure formatting:
//
//	h := adapter.Wrap(getPost, adapter.WithProduction(cfg.IsProduction()))
//	env, _ := h(ctx, req) // the error is always nil
//
// The adapter imposes no timeout, cancellation or backpressure policy; those
// belong to the runtime that invokes the handler.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/internal/logger"
	"dirpx.dev/outcome/mapper"
	"dirpx.dev/outcome/response"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Handler processes one API Gateway proxy request. The context carries the
// Lambda invocation metadata when running inside Lambda and is otherwise
// passed through unexamined.
type Handler func(ctx context.Context, req events.APIGatewayProxyRequest) (apis.Envelope, error)

// Option configures Wrap.
type Option func(*options)

type options struct {
	production bool
	mapper     apis.Mapper
	logger     *zap.Logger
	recorder   apis.FailureRecorder
	transport  string
}

// WithProduction enables message sanitization for unrecognized errors.
// It is ignored when WithMapper is given.
func WithProduction(production bool) Option {
	return func(o *options) { o.production = production }
}

// WithMapper replaces the classifier.
func WithMapper(m apis.Mapper) Option {
	return func(o *options) { o.mapper = m }
}

// WithLogger sets the logger used for failure diagnostics. A logger stored
// in the request context (see logger.WrapInCtx) takes precedence.
func WithLogger(lg *zap.Logger) Option {
	return func(o *options) { o.logger = lg }
}

// WithRecorder sets a recorder notified of every resolved failure.
func WithRecorder(r apis.FailureRecorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithTransport names the transport reported to the recorder. The default
// is apis.TransportLambda.
func WithTransport(transport string) Option {
	return func(o *options) { o.transport = transport }
}

// Wrap returns a Handler that invokes h and never returns an error or
// panics. Successful envelopes are passed through unchanged; failures are
// classified by the mapper, formatted with response.Error and logged once.
func Wrap(h Handler, opts ...Option) Handler {
	o := options{transport: apis.TransportLambda}
	for _, opt := range opts {
		opt(&o)
	}
	m := o.mapper
	if m == nil {
		m = mapper.MustNew(mapper.WithProduction(o.production))
	}
	m = mapper.Guard(m)
	base := o.logger
	if base == nil {
		base = logger.Named("outcome")
	}

	return func(ctx context.Context, req events.APIGatewayProxyRequest) (env apis.Envelope, _ error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			res := m.ResolvePanic(v)
			env = response.Error(res.HTTP, res.Message)

			// The envelope is already set; diagnostics must not re-panic.
			defer func() { _ = recover() }()
			report(ctx, base, req, res, panicFields(v)...)
			o.record(res)
		}()

		out, err := h(ctx, req)
		if err == nil {
			return out, nil
		}
		res := m.Resolve(err)
		env = response.Error(res.HTTP, res.Message)
		report(ctx, base, req, res, errorFields(err)...)
		o.record(res)
		return env, nil
	}
}

func (o *options) record(res apis.Resolution) {
	if o.recorder != nil {
		o.recorder.RecordFailure(o.transport, res)
	}
}

// report writes the single diagnostic entry of a failed invocation.
// 5xx outcomes are logged at error level, everything else at warn.
func report(ctx context.Context, base *zap.Logger, req events.APIGatewayProxyRequest, res apis.Resolution, extra ...zap.Field) {
	lg := logger.FromCtx(ctx, base)

	lvl := zapcore.WarnLevel
	if res.HTTP >= http.StatusInternalServerError {
		lvl = zapcore.ErrorLevel
	}
	ce := lg.Check(lvl, "handler failed")
	if ce == nil {
		return
	}

	fields := make([]zap.Field, 0, 8+len(extra))
	fields = append(fields,
		zap.Int("status", res.HTTP),
		zap.String("source", string(res.Source)),
		zap.String("method", req.HTTPMethod),
		zap.String("path", req.Path),
	)
	if res.Kind != "" {
		fields = append(fields, zap.String("kind", res.Kind.String()))
	}
	if id := req.RequestContext.RequestID; id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		fields = append(fields, zap.String("aws_request_id", lc.AwsRequestID))
	}
	fields = append(fields, extra...)
	ce.Write(fields...)
}

func errorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}
	var dc interface{ ErrorDetails() map[string]any }
	if errors.As(err, &dc) {
		if d := dc.ErrorDetails(); len(d) > 0 {
			fields = append(fields, zap.Any("details", d))
		}
	}
	return fields
}

func panicFields(v any) []zap.Field {
	fields := []zap.Field{zap.Bool("panic", true), zap.StackSkip("panic_stack", 2)}
	if err, ok := v.(error); ok {
		return append(fields, zap.Error(err))
	}
	return append(fields, zap.String("panic_value", fmt.Sprintf("%v", v)))
}
