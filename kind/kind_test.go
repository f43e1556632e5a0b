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
	"encoding"
	"errors"
	"testing"
)

func TestTable_StatusAndDefaultMessage(t *testing.T) {
	tests := []struct {
		k      Kind
		status int
		msg    string
	}{
		{BadRequest, 400, "Bad Request"},
		{Unauthorized, 401, "Unauthorized"},
		{Forbidden, 403, "Forbidden"},
		{NotFound, 404, "Resource not found"},
		{Conflict, 409, "Conflict"},
		{UnprocessableEntity, 422, "Unprocessable Entity"},
		{InternalServer, 500, "Internal Server Error"},
		{BadGateway, 502, "Bad Gateway"},
		{ServiceUnavailable, 503, "Service Unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.k.String(), func(t *testing.T) {
			if got := tt.k.HTTPStatus(); got != tt.status {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tt.status)
			}
			if got := tt.k.DefaultMessage(); got != tt.msg {
				t.Fatalf("DefaultMessage() = %q, want %q", got, tt.msg)
			}
		})
	}
	if len(tests) != len(All()) {
		t.Fatalf("table covers %d kinds, All() returns %d", len(tests), len(All()))
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0] = "mutated"
	if All()[0] != BadRequest {
		t.Fatal("All() exposed internal slice")
	}
}

func TestUnknownKind_FallsBackToInternal(t *testing.T) {
	k := Kind("teapot")
	if k.HTTPStatus() != 500 {
		t.Fatalf("HTTPStatus() = %d, want 500", k.HTTPStatus())
	}
	if k.DefaultMessage() != "Internal Server Error" {
		t.Fatalf("DefaultMessage() = %q", k.DefaultMessage())
	}
	if Empty.HTTPStatus() != 500 {
		t.Fatal("empty kind must resolve to 500")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Kind
	}{
		{"canonical", "not_found", NotFound},
		{"spaces", "  conflict ", Conflict},
		{"upper dash", "SERVICE-UNAVAILABLE", ServiceUnavailable},
		{"words", "Bad Gateway", BadGateway},
		{"camel", "NotFound", NotFound},
		{"camel long", "UnprocessableEntity", UnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "teapot", "validation_error", "404"} {
		got, err := Parse(in)
		if !errors.Is(err, ErrKindUnknown) {
			t.Fatalf("Parse(%q) err = %v, want ErrKindUnknown", in, err)
		}
		if got != Empty {
			t.Fatalf("Parse(%q) on error must return Empty, got %q", in, got)
		}
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on unknown kind")
		}
	}()
	_ = MustParse("teapot")
}

func TestKind_TextRoundTrip(t *testing.T) {
	var _ encoding.TextMarshaler = (*Kind)(nil)
	var _ encoding.TextUnmarshaler = (*Kind)(nil)

	text, err := Forbidden.MarshalText()
	if err != nil || string(text) != "forbidden" {
		t.Fatalf("MarshalText() = %q, %v", text, err)
	}
	if _, err := Kind("teapot").MarshalText(); err == nil {
		t.Fatal("MarshalText() on unknown kind must fail")
	}

	var k Kind
	if err := k.UnmarshalText([]byte("  UNPROCESSABLE-ENTITY ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if k != UnprocessableEntity {
		t.Fatalf("UnmarshalText() = %q", k)
	}
	if err := k.UnmarshalText([]byte("nope")); err == nil {
		t.Fatal("UnmarshalText() must reject unknown kinds")
	}
}
