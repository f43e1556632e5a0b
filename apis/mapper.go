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

package apis

import (
	"dirpx.dev/outcome/kind"
	"google.golang.org/grpc/codes"
)

// Source names the classification tier that produced a Resolution.
type Source string

const (
	// SourceTaxonomy means the error was a recognized condition (KindedError).
	SourceTaxonomy Source = "taxonomy"
	// SourceValidation means the error reported input violations (ViolatedError).
	SourceValidation Source = "validation"
	// SourceUnrecognized means the error was some other Go error.
	SourceUnrecognized Source = "unrecognized"
	// SourceNonError means the failure was not an error value at all, e.g. a
	// panic with a string.
	SourceNonError Source = "non_error"
)

// Mapper is an immutable, concurrency-safe classifier that turns a handler
// failure into transport statuses and a client-safe message.
type Mapper interface {
	// Resolve classifies a returned error.
	Resolve(err error) Resolution

	// ResolvePanic classifies a value recovered from a panic.
	ResolvePanic(v any) Resolution

	// Explain returns a human-readable description of which tier matched.
	Explain(err error) string
}

// Resolution is the output of a Mapper for a single failure.
type Resolution struct {
	HTTP    int        // HTTP status code written to the envelope.
	GRPC    codes.Code // gRPC status code used by grpc adapters.
	Message string     // Client-facing message, already sanitized.
	Source  Source     // Tier that matched.
	Kind    kind.Kind  // Set only for SourceTaxonomy.
}
