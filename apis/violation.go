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

// Violation describes a single input field that failed validation.
//
// It is a view type: small, transport-friendly and safe to marshal into a
// log entry or a gRPC BadRequest detail.
type Violation struct {
	// Field is the logical path of the offending field, e.g. "title" or
	// "author.id".
	Field string `json:"field"`

	// Reason is a short machine-friendly explanation, e.g. "required" or
	// "too_long".
	Reason string `json:"reason,omitempty"`

	// Description is an optional human-friendly explanation.
	Description string `json:"description,omitempty"`
}
