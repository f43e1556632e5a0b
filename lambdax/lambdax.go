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

// Package lambdax runs adapter handlers on AWS Lambda behind an API Gateway
// REST proxy integration.
package lambdax

import (
	"context"

	"dirpx.dev/outcome/adapter"
	"dirpx.dev/outcome/apis"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

// ProxyHandler is the signature aws-lambda-go expects for API Gateway proxy
// integrations.
type ProxyHandler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// ToProxyResponse converts an envelope into the aws-lambda-go response type.
// The header map is copied.
func ToProxyResponse(env apis.Envelope) events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(env.Headers))
	for k, v := range env.Headers {
		headers[k] = v
	}
	return events.APIGatewayProxyResponse{
		StatusCode: env.StatusCode,
		Headers:    headers,
		Body:       env.Body,
	}
}

// Adapt converts h into a ProxyHandler. h should already be wrapped with
// adapter.Wrap; an error it still returns is handed to the Lambda runtime.
func Adapt(h adapter.Handler) ProxyHandler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		env, err := h(ctx, req)
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}
		return ToProxyResponse(env), nil
	}
}

// Start wraps h with adapter.Wrap and hands it to the Lambda runtime.
// It blocks for the lifetime of the process.
func Start(h adapter.Handler, opts ...adapter.Option) {
	lambda.Start(Adapt(adapter.Wrap(h, opts...)))
}
