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

// Package outcome provides the recognized failure conditions a request
// handler can raise, and the validation failure raised by input validators.
//
// A handler reports a specific non-200 outcome by returning one of these
// errors; the adapter package translates it into a JSON response envelope.
// Any other error is treated as unrecognized and answered with 500.
//
//	post, ok := store.Get(id)
//	if !ok {
//	    return apis.Envelope{}, outcome.NotFound(fmt.Sprintf("Post with ID %d not found", id))
//	}
package outcome

import (
	"fmt"

	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/kind"
)

// Error is a recognized failure condition.
//
// It carries:
//   - Kind: one of the recognized kinds (required), which alone fixes the
//     HTTP status;
//   - Message: user-safe description, always shown to the client;
//   - Details: optional key/value payload for logs and gRPC error info;
//   - Cause: wrapped underlying error for debugging and unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error values can be
// shared between goroutines.
type Error struct {
	// Kind is the classification of the failure.
	Kind kind.Kind

	// Message is what ends up in the "message" field of the error body.
	Message string

	// Details is treated as immutable: WithDetail/WithDetails copy it.
	Details map[string]any

	// Cause is never exposed to clients.
	Cause error
}

var _ apis.KindedError = (*Error)(nil)

// E builds a condition of kind k. An empty msg is replaced by the kind's
// default message. Options are applied in order.
func E(k kind.Kind, msg string, opts ...Option) *Error {
	if msg == "" {
		msg = k.DefaultMessage()
	}
	e := &Error{Kind: k, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// BadRequest returns a 400 condition. Default message: "Bad Request".
func BadRequest(msg string, opts ...Option) *Error { return E(kind.BadRequest, msg, opts...) }

// Unauthorized returns a 401 condition. Default message: "Unauthorized".
func Unauthorized(msg string, opts ...Option) *Error { return E(kind.Unauthorized, msg, opts...) }

// Forbidden returns a 403 condition. Default message: "Forbidden".
func Forbidden(msg string, opts ...Option) *Error { return E(kind.Forbidden, msg, opts...) }

// NotFound returns a 404 condition. Default message: "Resource not found".
func NotFound(msg string, opts ...Option) *Error { return E(kind.NotFound, msg, opts...) }

// Conflict returns a 409 condition. Default message: "Conflict".
func Conflict(msg string, opts ...Option) *Error { return E(kind.Conflict, msg, opts...) }

// UnprocessableEntity returns a 422 condition. Default message:
// "Unprocessable Entity".
func UnprocessableEntity(msg string, opts ...Option) *Error {
	return E(kind.UnprocessableEntity, msg, opts...)
}

// InternalServer returns a 500 condition. Its message is shown to clients
// even in production, so it must not carry internal details.
func InternalServer(msg string, opts ...Option) *Error {
	return E(kind.InternalServer, msg, opts...)
}

// BadGateway returns a 502 condition. Default message: "Bad Gateway".
func BadGateway(msg string, opts ...Option) *Error { return E(kind.BadGateway, msg, opts...) }

// ServiceUnavailable returns a 503 condition. Default message:
// "Service Unavailable".
func ServiceUnavailable(msg string, opts ...Option) *Error {
	return E(kind.ServiceUnavailable, msg, opts...)
}

// Error implements the built-in error interface as "<kind>: <message>".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// ErrorKind implements apis.KindedError. A nil *Error has no kind, so it is
// not a recognized condition.
func (e *Error) ErrorKind() kind.Kind {
	if e == nil {
		return kind.Empty
	}
	return e.Kind
}

// ErrorMessage implements apis.KindedError.
func (e *Error) ErrorMessage() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// StatusCode returns the HTTP status fixed by the condition's kind.
func (e *Error) StatusCode() int { return e.ErrorKind().HTTPStatus() }

// ErrorDetails returns the structured context attached to the error.
func (e *Error) ErrorDetails() map[string]any {
	if e == nil {
		return nil
	}
	return e.Details
}

// WithMessage returns a copy of e with a replaced message. An empty msg
// restores the kind's default message. The kind is never changed.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	if msg == "" {
		msg = cp.Kind.DefaultMessage()
	}
	cp.Message = msg
	return &cp
}

// WithDetail returns a copy of e with one extra key/value in Details.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a copy of e with kv merged into Details; kv wins on
// key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a copy of e wrapping err. A nil err returns e unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
