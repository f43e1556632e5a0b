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

import "dirpx.dev/outcome/kind"

// KindedError is an error classified into one of the recognized failure
// kinds. The kind alone determines the HTTP status of the response.
type KindedError interface {
	error

	// ErrorKind returns the failure kind. Implementations MUST return a
	// recognized kind; anything else is treated as an unrecognized failure.
	ErrorKind() kind.Kind

	// ErrorMessage returns the user-safe message. It is shown to clients in
	// every environment. An empty message is replaced by the kind default.
	ErrorMessage() string
}

// ViolatedError is an error that reports one or more input violations.
// Validation collaborators return it so that the transport layer can answer
// with 400 without inspecting error names or messages.
type ViolatedError interface {
	error

	// ErrorMessage returns the user-safe message shown to clients.
	ErrorMessage() string

	// Violations returns the offending fields. May return nil.
	Violations() []Violation
}
