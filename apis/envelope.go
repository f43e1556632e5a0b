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

package apis

// ContentTypeJSON is the only content type an Envelope ever declares.
const ContentTypeJSON = "application/json"

// HeaderContentType is the header key used for ContentTypeJSON.
const HeaderContentType = "Content-Type"

// Envelope is the normalized response unit handed to the transport boundary.
//
// Its JSON shape is the API Gateway proxy result:
//
//	{"statusCode": 404, "headers": {"Content-Type": "application/json"}, "body": "..."}
//
// Envelopes are built by the response package and are not mutated afterwards.
type Envelope struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// ErrorBody is the structured body of every error envelope. Field order is
// part of the wire contract.
type ErrorBody struct {
	Error      bool   `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}
