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

// Package kind defines the closed set of recognized failure kinds.
//
// A kind is the top-level classification of a failure that a request handler
// wants to report to its caller, such as "bad_request", "not_found" or
// "service_unavailable". Each kind fixes:
//
//   - the HTTP status code written to the response envelope;
//   - the default, user-safe message used when the caller supplies none.
//
// The set is closed: Parse rejects anything that is not one of the constants
// declared in this package. Handlers that need a status outside this set are
// expected to format their own envelope.
package kind
