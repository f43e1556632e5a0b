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

// Package response formats success data and error conditions into
// apis.Envelope values.
//
// All functions are pure: they read nothing but their arguments and identical
// inputs produce byte-identical envelopes. Classification of failures lives in
// the mapper package; this package trusts its callers with status codes and
// messages.
package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"dirpx.dev/outcome/apis"
)

// SerializationError is returned when success data cannot be encoded as JSON.
type SerializationError struct {
	Err error
}

// Error implements the built-in error interface.
func (e *SerializationError) Error() string {
	return fmt.Sprintf("response: serialize body: %v", e.Err)
}

// Unwrap returns the encoder error.
func (e *SerializationError) Unwrap() error { return e.Err }

// Success formats data with status 200.
func Success(data any) (apis.Envelope, error) {
	return SuccessWithStatus(http.StatusOK, data)
}

// SuccessWithStatus formats data with the given status. The status is not
// checked to be in the 2xx range.
func SuccessWithStatus(status int, data any) (apis.Envelope, error) {
	body, err := marshal(data)
	if err != nil {
		return apis.Envelope{}, &SerializationError{Err: err}
	}
	return envelope(status, body), nil
}

// Error formats the structured error body:
//
//	{"error":true,"message":"<message>","statusCode":<status>}
func Error(status int, message string) apis.Envelope {
	body, err := marshal(apis.ErrorBody{Error: true, Message: message, StatusCode: status})
	if err != nil {
		// ErrorBody holds only a bool, a string and an int.
		panic(err)
	}
	return envelope(status, body)
}

// Headers returns a fresh header map declaring the JSON content type.
func Headers() map[string]string {
	return map[string]string{apis.HeaderContentType: apis.ContentTypeJSON}
}

func envelope(status int, body string) apis.Envelope {
	return apis.Envelope{
		StatusCode: status,
		Headers:    Headers(),
		Body:       body,
	}
}

// marshal encodes v without HTML escaping and without the trailing newline
// json.Encoder appends.
func marshal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})), nil
}
