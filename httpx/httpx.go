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

// Package httpx serves adapter handlers over net/http, translating between
// *http.Request and the API Gateway proxy request, and writing envelopes to
// http.ResponseWriter.
//
// It is meant for local development and tests of Lambda handlers, and for
// deployments that run the same handlers behind a plain HTTP server.
package httpx

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"dirpx.dev/outcome/adapter"
	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/mapper"
	"dirpx.dev/outcome/response"
	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-Id"

// DefaultMaxBodyBytes bounds request bodies when WithMaxBodyBytes is not used.
const DefaultMaxBodyBytes int64 = 1 << 20

// Option configures Handler.
type Option func(*options)

type options struct {
	maxBodyBytes int64
}

// WithMaxBodyBytes bounds the request body. Non-positive values restore the
// default.
func WithMaxBodyBytes(n int64) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultMaxBodyBytes
		}
		o.maxBodyBytes = n
	}
}

// Write copies env to rw. The JSON content type is always declared and an
// out-of-range status is written as 500.
func Write(rw http.ResponseWriter, env apis.Envelope) {
	h := rw.Header()
	for k, v := range env.Headers {
		h.Set(k, v)
	}
	if h.Get(apis.HeaderContentType) == "" {
		h.Set(apis.HeaderContentType, apis.ContentTypeJSON)
	}
	h.Set("Content-Length", strconv.Itoa(len(env.Body)))

	status := env.StatusCode
	if status < 100 || status > 999 {
		status = http.StatusInternalServerError
	}
	rw.WriteHeader(status)
	_, _ = io.WriteString(rw, env.Body)
}

// Handler serves h over net/http. h should already be wrapped with
// adapter.Wrap; an error it still returns is answered with a generic 500.
//
// Bodies that exceed the limit or cannot be read are answered with 400
// without calling h.
func Handler(h adapter.Handler, opts ...Option) http.Handler {
	o := options{maxBodyBytes: DefaultMaxBodyBytes}
	for _, opt := range opts {
		opt(&o)
	}

	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		rw.Header().Set(HeaderRequestID, reqID)

		body, err := io.ReadAll(http.MaxBytesReader(rw, r.Body, o.maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				Write(rw, response.Error(http.StatusBadRequest, "Request body too large"))
				return
			}
			Write(rw, response.Error(http.StatusBadRequest, "Request body could not be read"))
			return
		}

		env, err := h(r.Context(), ToProxyRequest(r, string(body), reqID))
		if err != nil {
			Write(rw, response.Error(http.StatusInternalServerError, mapper.UnexpectedMessage))
			return
		}
		Write(rw, env)
	})
}

// ToProxyRequest builds the API Gateway proxy request for r. Path parameters
// come from the chi route context when r was routed by chi.
func ToProxyRequest(r *http.Request, body, requestID string) events.APIGatewayProxyRequest {
	req := events.APIGatewayProxyRequest{
		HTTPMethod:        r.Method,
		Path:              r.URL.Path,
		Headers:           firstValues(r.Header),
		MultiValueHeaders: copyValues(r.Header),
		Body:              body,
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:  requestID,
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
			Identity:   events.APIGatewayRequestIdentity{SourceIP: r.RemoteAddr, UserAgent: r.UserAgent()},
		},
	}

	if q := r.URL.Query(); len(q) > 0 {
		req.QueryStringParameters = firstValues(q)
		req.MultiValueQueryStringParameters = copyValues(q)
	}

	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		req.Resource = rctx.RoutePattern()
		req.RequestContext.ResourcePath = req.Resource
		if n := len(rctx.URLParams.Keys); n > 0 {
			req.PathParameters = make(map[string]string, n)
			for i, k := range rctx.URLParams.Keys {
				if k == "*" {
					k = "proxy"
				}
				req.PathParameters[k] = rctx.URLParams.Values[i]
			}
		}
	}
	return req
}

func firstValues(src map[string][]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		if len(v) > 0 {
			dst[k] = v[0]
		}
	}
	return dst
}

func copyValues(src map[string][]string) map[string][]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string][]string, len(src))
	for k, v := range src {
		dst[k] = append([]string(nil), v...)
	}
	return dst
}
