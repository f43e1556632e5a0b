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

package posts

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"dirpx.dev/outcome"
	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/internal/logger"
	"dirpx.dev/outcome/response"
	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// Messages returned to callers for malformed requests.
const (
	MsgIDRequired = "Post ID is required"
	MsgIDInvalid  = "Post ID must be a valid number"
	MsgBadJSON    = "Request body must be valid JSON"
)

// CreateInput is the accepted request body of CreatePost.
type CreateInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID int    `json:"authorId"`
}

// Handlers serves posts from a Store. The methods match adapter.Handler and
// are expected to be wrapped by adapter.Wrap.
type Handlers struct {
	store *Store
	log   *zap.Logger
}

// NewHandlers returns Handlers backed by store. A nil logger falls back to
// the global one.
func NewHandlers(store *Store, lg *zap.Logger) *Handlers {
	if lg == nil {
		lg = logger.Named("posts")
	}
	return &Handlers{store: store, log: lg}
}

// CreatePost stores a new post from the JSON request body.
func (h *Handlers) CreatePost(ctx context.Context, req events.APIGatewayProxyRequest) (apis.Envelope, error) {
	body, err := requestBody(req)
	if err != nil {
		return apis.Envelope{}, outcome.BadRequest(MsgBadJSON, outcome.WithCauseOption(err))
	}

	var in CreateInput
	if strings.TrimSpace(body) != "" {
		if err := json.Unmarshal([]byte(body), &in); err != nil {
			return apis.Envelope{}, outcome.BadRequest(MsgBadJSON, outcome.WithCauseOption(err))
		}
	}

	var violations []apis.Violation
	if strings.TrimSpace(in.Title) == "" {
		violations = append(violations, apis.Violation{
			Field:       "title",
			Reason:      "required",
			Description: "title must not be empty",
		})
	}
	if in.AuthorID < 0 {
		violations = append(violations, apis.Violation{
			Field:       "authorId",
			Reason:      "invalid",
			Description: "authorId must not be negative",
		})
	}
	if len(violations) > 0 {
		return apis.Envelope{}, outcome.Validation("Invalid post", violations...)
	}

	p := h.store.Add(Post{Title: in.Title, Content: in.Content, AuthorID: in.AuthorID})
	logger.FromCtx(ctx, h.log).Debug("post created", zap.Int("id", p.ID))
	return response.Success(p)
}

// GetPost returns the post addressed by the "id" path parameter.
func (h *Handlers) GetPost(ctx context.Context, req events.APIGatewayProxyRequest) (apis.Envelope, error) {
	raw := strings.TrimSpace(req.PathParameters["id"])
	if raw == "" {
		return apis.Envelope{}, outcome.BadRequest(MsgIDRequired)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return apis.Envelope{}, outcome.BadRequest(MsgIDInvalid, outcome.WithDetailOption("id", raw))
	}

	p, ok := h.store.Get(id)
	if !ok {
		return apis.Envelope{}, outcome.NotFound(fmt.Sprintf("Post with ID %d not found", id),
			outcome.WithDetailOption("id", id))
	}
	return response.Success(p)
}

// ListPosts returns every stored post.
func (h *Handlers) ListPosts(ctx context.Context, _ events.APIGatewayProxyRequest) (apis.Envelope, error) {
	return response.SuccessWithStatus(http.StatusOK, h.store.List())
}

func requestBody(req events.APIGatewayProxyRequest) (string, error) {
	if !req.IsBase64Encoded {
		return req.Body, nil
	}
	b, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
