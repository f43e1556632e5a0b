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

// Package mapper classifies handler failures into transport statuses and a
// client-safe message.
//
// # Resolution model
//
// A Mapper resolves a failure in the following order:
//
//  1. taxonomy: the error chain contains an apis.KindedError with a
//     recognized kind: the kind fixes the HTTP status and the condition's
//     own message is used;
//  2. validation: the chain contains an apis.ViolatedError: 400 with the
//     validator's message;
//  3. unrecognized: any other error: 500, with the raw error text outside
//     production and "Internal Server Error" in production;
//  4. non-error: a panic value that is not an error (a string, a struct,
//     panic(nil)): 500, "An unexpected error occurred".
//
// The gRPC code of a recognized kind comes from a per-kind table that callers
// may adjust with WithGRPCDefault. HTTP statuses cannot be adjusted: they are
// fixed by the kind package.
//
// # Building a mapper
//
// A Mapper is created once per process and reused:
//
//	m, err := mapper.New(mapper.WithProduction(cfg.IsProduction()))
//	if err != nil {
//	    // unknown kind in an option
//	}
//	res := m.Resolve(err)
//	// res.HTTP, res.Message
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a failure was
// resolved. It is intended for logs and tests, not for machine parsing.
//
// # Immutability
//
// The production flag and the gRPC table are copied during New. A Mapper is
// safe to share across goroutines and requests.
package mapper
