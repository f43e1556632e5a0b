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

// Option configures the Mapper at build time.
type Option func(*builder)

// WithProduction controls message sanitization for unrecognized errors.
// In production their text is replaced by SanitizedMessage.
func WithProduction(production bool) Option {
	return func(b *builder) { b.production = production }
}

// WithGRPCDefault replaces the gRPC code used for the given kind.
// New fails if k is not a recognized kind.
func WithGRPCDefault(k kind.Kind, c codes.Code) Option {
	return func(b *builder) {
		if err := kind.Validate(k); err != nil {
			b.errs = append(b.errs, &optionError{kind: k, err: err})
			return
		}
		b.grpc[k] = c
	}
}
