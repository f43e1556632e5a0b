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

package mapper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/kind"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper.
//
// Errors returned from this function indicate an option that names an
// unknown kind.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}

	grpc := make(map[kind.Kind]codes.Code, len(b.grpc))
	for k, v := range b.grpc {
		grpc[k] = v
	}
	return &mapper{production: b.production, grpc: grpc}, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

type mapper struct {
	production bool
	grpc       map[kind.Kind]codes.Code
}

// Resolve classifies err. A nil err is treated like a non-error failure: the
// caller reached the failure path without anything to report.
func (m *mapper) Resolve(err error) apis.Resolution {
	if err == nil {
		return m.nonError()
	}

	var ke apis.KindedError
	if errors.As(err, &ke) && !isNil(ke) && kind.Validate(ke.ErrorKind()) == nil {
		k := ke.ErrorKind()
		msg := ke.ErrorMessage()
		if msg == "" {
			msg = k.DefaultMessage()
		}
		return apis.Resolution{
			HTTP:    k.HTTPStatus(),
			GRPC:    m.grpcCode(k),
			Message: msg,
			Source:  apis.SourceTaxonomy,
			Kind:    k,
		}
	}

	var ve apis.ViolatedError
	if errors.As(err, &ve) && !isNil(ve) {
		return apis.Resolution{
			HTTP:    http.StatusBadRequest,
			GRPC:    codes.InvalidArgument,
			Message: ve.ErrorMessage(),
			Source:  apis.SourceValidation,
		}
	}

	msg := errorText(err)
	if m.production {
		msg = SanitizedMessage
	}
	return apis.Resolution{
		HTTP:    http.StatusInternalServerError,
		GRPC:    contextCode(err),
		Message: msg,
		Source:  apis.SourceUnrecognized,
	}
}

// ResolvePanic classifies a value recovered from a panic. Error values go
// through Resolve; everything else, including panic(nil), is a non-error
// failure.
func (m *mapper) ResolvePanic(v any) apis.Resolution {
	var pn *runtime.PanicNilError
	switch x := v.(type) {
	case nil:
		return m.nonError()
	case error:
		if errors.As(x, &pn) {
			return m.nonError()
		}
		return m.Resolve(x)
	default:
		return m.nonError()
	}
}

// Explain produces a textual trace of how err was resolved.
//
// Example output:
//
//	error="not_found: Post with ID 4 not found"
//	http: source=taxonomy kind="not_found" -> 404
//	grpc: source=taxonomy kind="not_found" -> NOTFOUND(5)
//	message: "Post with ID 4 not found"
func (m *mapper) Explain(err error) string {
	res := m.Resolve(err)

	var b strings.Builder
	if err == nil {
		_, _ = fmt.Fprintln(&b, "error=<nil>")
	} else {
		_, _ = fmt.Fprintf(&b, "error=%q\n", errorText(err))
	}

	label := fmt.Sprintf("source=%s", res.Source)
	if res.Kind != kind.Empty {
		label += fmt.Sprintf(" kind=%q", res.Kind)
	}
	if res.Source == apis.SourceUnrecognized {
		label += fmt.Sprintf(" production=%t", m.production)
	}
	_, _ = fmt.Fprintf(&b, "http: %s -> %d\n", label, res.HTTP)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s(%d)\n", label, strings.ToUpper(res.GRPC.String()), int(res.GRPC))
	_, _ = fmt.Fprintf(&b, "message: %q", res.Message)
	return b.String()
}

func (m *mapper) nonError() apis.Resolution {
	return fallback()
}

func (m *mapper) grpcCode(k kind.Kind) codes.Code {
	if c, ok := m.grpc[k]; ok {
		return c
	}
	return codes.Internal
}

// contextCode keeps cancellation and deadline information for gRPC callers.
// The HTTP status of an unrecognized error is always 500.
func contextCode(err error) codes.Code {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	default:
		return codes.Internal
	}
}
