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

package outcome

import "dirpx.dev/outcome/apis"

// DefaultValidationMessage is used by Validation when no message is given.
const DefaultValidationMessage = "Validation failed"

// ValidationError is raised by input validators. It is always answered
// with 400 and its message is always shown to the client.
type ValidationError struct {
	Message string
	Fields  []apis.Violation
	Cause   error
}

var _ apis.ViolatedError = (*ValidationError)(nil)

// Validation builds a ValidationError. An empty msg is replaced by
// DefaultValidationMessage.
func Validation(msg string, violations ...apis.Violation) *ValidationError {
	if msg == "" {
		msg = DefaultValidationMessage
	}
	var fields []apis.Violation
	if len(violations) > 0 {
		fields = make([]apis.Violation, len(violations))
		copy(fields, violations)
	}
	return &ValidationError{Message: msg, Fields: fields}
}

// Error implements the built-in error interface.
func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "validation: " + e.Message
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// ErrorMessage implements apis.ViolatedError.
func (e *ValidationError) ErrorMessage() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Violations implements apis.ViolatedError. The returned slice is a copy.
func (e *ValidationError) Violations() []apis.Violation {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	out := make([]apis.Violation, len(e.Fields))
	copy(out, e.Fields)
	return out
}

// WithCause returns a copy of e wrapping err.
func (e *ValidationError) WithCause(err error) *ValidationError {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
