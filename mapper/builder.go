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

	"dirpx.dev/outcome/kind"
	"google.golang.org/grpc/codes"
)

type builder struct {
	production bool

	// grpc starts as a copy of defaultGRPC and receives WithGRPCDefault.
	grpc map[kind.Kind]codes.Code

	// errs collects option failures; New reports the first one.
	errs []error
}

func newBuilder() *builder {
	b := &builder{grpc: make(map[kind.Kind]codes.Code, len(defaultGRPC))}
	for k, v := range defaultGRPC {
		b.grpc[k] = v
	}
	return b
}

type optionError struct {
	kind kind.Kind
	err  error
}

func (e *optionError) Error() string {
	return fmt.Sprintf("mapper: invalid option for kind %q: %v", e.kind, e.err)
}

func (e *optionError) Unwrap() error { return e.err }
