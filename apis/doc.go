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

// Package apis defines the public Go-level contracts shared by the outcome
// packages.
//
// Handlers, validators and transport adapters (Lambda, net/http, gRPC) target
// the small interfaces and view types declared here instead of the concrete
// error implementation in the root package. This keeps the transport layers
// free to classify any error that behaves like a recognized condition.
//
// This package must remain lightweight: it only contains interfaces and very
// small view types.
package apis
