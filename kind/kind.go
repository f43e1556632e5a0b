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

import (
	"bytes"
	"encoding"
	"errors"
	"net/http"
	"strings"

	"github.com/iancoleman/strcase"
)

// Kind is the canonical representation of a recognized failure kind.
//
// It is a separate type (not just string) so that the status code and the
// default message can only be derived from a value that went through this
// package, never from raw user input.
type Kind string

var (
	// ErrKindUnknown is returned when a value is not one of the recognized kinds.
	ErrKindUnknown = errors.New("outcome: unknown kind")
)

var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Empty is the zero-value kind. It is never a valid kind.
var Empty Kind = ""

// descriptor holds the fixed semantics of a single kind.
type descriptor struct {
	status  int
	message string
}

// fallback is what an unknown kind resolves to. It matches InternalServer so
// that a corrupted value can never produce a non-error status.
var fallback = descriptor{status: http.StatusInternalServerError, message: "Internal Server Error"}

// All returns the recognized kinds in ascending status order.
// The returned slice is a fresh copy and may be modified by the caller.
func All() []Kind {
	out := make([]Kind, len(ordered))
	copy(out, ordered)
	return out
}

// Normalize brings an arbitrary string closer to the canonical kind form by
// converting it to lower snake case, so "NotFound", "not-found" and
// "Not Found" all become "not_found".
//
// The result is not guaranteed to be a recognized kind.
func Normalize(s string) string {
	return strcase.ToSnake(strings.TrimSpace(s))
}

// Parse normalizes s and returns the matching recognized kind.
func Parse(s string) (Kind, error) {
	k := Kind(Normalize(s))
	if err := Validate(k); err != nil {
		return Empty, err
	}
	return k, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Validate reports whether k is one of the recognized kinds.
func Validate(k Kind) error {
	if _, ok := table[k]; !ok {
		return ErrKindUnknown
	}
	return nil
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// HTTPStatus returns the HTTP status code fixed for k.
// Unknown kinds resolve to 500.
func (k Kind) HTTPStatus() int {
	return k.describe().status
}

// DefaultMessage returns the message used when a condition of kind k is
// raised without an explicit one.
func (k Kind) DefaultMessage() string {
	return k.describe().message
}

func (k Kind) describe() descriptor {
	if d, ok := table[k]; ok {
		return d
	}
	return fallback
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The input is normalized before it is matched.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
