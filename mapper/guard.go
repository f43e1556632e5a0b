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
	"fmt"
	"net/http"
	"reflect"

	"dirpx.dev/outcome/apis"
	"google.golang.org/grpc/codes"
)

// Guard returns a Mapper that never panics. If m panics while classifying,
// the failure resolves like a non-error value: 500 with UnexpectedMessage.
//
// Transports wrap their mapper with Guard because they classify inside a
// deferred recover, where a second panic would escape.
func Guard(m apis.Mapper) apis.Mapper {
	if g, ok := m.(guarded); ok {
		return g
	}
	return guarded{m: m}
}

type guarded struct {
	m apis.Mapper
}

func (g guarded) Resolve(err error) (res apis.Resolution) {
	defer func() {
		if recover() != nil {
			res = fallback()
		}
	}()
	return g.m.Resolve(err)
}

func (g guarded) ResolvePanic(v any) (res apis.Resolution) {
	defer func() {
		if recover() != nil {
			res = fallback()
		}
	}()
	return g.m.ResolvePanic(v)
}

func (g guarded) Explain(err error) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("explain panicked: %v", r)
		}
	}()
	return g.m.Explain(err)
}

func fallback() apis.Resolution {
	return apis.Resolution{
		HTTP:    http.StatusInternalServerError,
		GRPC:    codes.Unknown,
		Message: UnexpectedMessage,
		Source:  apis.SourceNonError,
	}
}

// isNil reports whether v is nil or an interface holding a nil pointer, as
// errors.As yields for a typed-nil error in the chain.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// errorText returns err.Error(), tolerating implementations that panic on a
// nil receiver.
func errorText(err error) (s string) {
	defer func() {
		if recover() != nil {
			s = "<nil>"
		}
	}()
	return err.Error()
}
