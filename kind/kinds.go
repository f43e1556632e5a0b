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

package kind

import "net/http"

// Client-side failure kinds (4xx).
const (
	// BadRequest indicates that the request is malformed or misses a required
	// parameter. Maps to HTTP 400.
	BadRequest Kind = "bad_request"

	// Unauthorized indicates that the caller is not authenticated.
	// Maps to HTTP 401.
	Unauthorized Kind = "unauthorized"

	// Forbidden indicates that the caller is authenticated but not allowed to
	// perform the operation. Maps to HTTP 403.
	Forbidden Kind = "forbidden"

	// NotFound indicates that the addressed resource does not exist.
	// Maps to HTTP 404.
	NotFound Kind = "not_found"

	// Conflict indicates that the request clashes with the current state of
	// the resource. Maps to HTTP 409.
	Conflict Kind = "conflict"

	// UnprocessableEntity indicates a well-formed request whose content is
	// semantically wrong. Maps to HTTP 422.
	UnprocessableEntity Kind = "unprocessable_entity"
)

// Server-side failure kinds (5xx).
const (
	// InternalServer indicates a failure inside the service itself.
	// Maps to HTTP 500.
	InternalServer Kind = "internal_server"

	// BadGateway indicates that an upstream dependency answered with an
	// invalid response. Maps to HTTP 502.
	BadGateway Kind = "bad_gateway"

	// ServiceUnavailable indicates that the service or one of its
	// dependencies is temporarily unable to serve. Maps to HTTP 503.
	ServiceUnavailable Kind = "service_unavailable"
)

var ordered = []Kind{
	BadRequest,
	Unauthorized,
	Forbidden,
	NotFound,
	Conflict,
	UnprocessableEntity,
	InternalServer,
	BadGateway,
	ServiceUnavailable,
}

// table is the single source of truth for status codes and default messages.
var table = map[Kind]descriptor{
	BadRequest:          {status: http.StatusBadRequest, message: "Bad Request"},
	Unauthorized:        {status: http.StatusUnauthorized, message: "Unauthorized"},
	Forbidden:           {status: http.StatusForbidden, message: "Forbidden"},
	NotFound:            {status: http.StatusNotFound, message: "Resource not found"},
	Conflict:            {status: http.StatusConflict, message: "Conflict"},
	UnprocessableEntity: {status: http.StatusUnprocessableEntity, message: "Unprocessable Entity"},
	InternalServer:      {status: http.StatusInternalServerError, message: "Internal Server Error"},
	BadGateway:          {status: http.StatusBadGateway, message: "Bad Gateway"},
	ServiceUnavailable:  {status: http.StatusServiceUnavailable, message: "Service Unavailable"},
}
