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
	"dirpx.dev/outcome/kind"
	"google.golang.org/grpc/codes"
)

// Messages used when the failure itself carries no user-safe message.
const (
	// SanitizedMessage replaces the text of unrecognized errors in production.
	SanitizedMessage = "Internal Server Error"

	// UnexpectedMessage is used for failures that are not error values.
	UnexpectedMessage = "An unexpected error occurred"
)

// defaultGRPC maps each recognized kind to the closest canonical gRPC code.
var defaultGRPC = map[kind.Kind]codes.Code{
	// 4xx.
	kind.BadRequest:          codes.InvalidArgument,
	kind.Unauthorized:        codes.Unauthenticated,
	kind.Forbidden:           codes.PermissionDenied,
	kind.NotFound:            codes.NotFound,
	kind.Conflict:            codes.Aborted,
	kind.UnprocessableEntity: codes.InvalidArgument, // gRPC has no semantic-vs-syntax split.

	// 5xx.
	kind.InternalServer:     codes.Internal,
	kind.BadGateway:         codes.Unavailable, // Upstream answered badly; the caller may retry.
	kind.ServiceUnavailable: codes.Unavailable,
}
