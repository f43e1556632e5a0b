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

package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/internal/metrics"
	"dirpx.dev/outcome/mapper"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testDeps(m apis.Mapper) routerDeps {
	reg := prometheus.NewRegistry()
	return routerDeps{mapper: m, logger: zap.NewNop(), recorder: metrics.New(reg), gatherer: reg}
}

func TestRouter(t *testing.T) {
	srv := httptest.NewServer(newRouter(testDeps(mapper.MustNew(mapper.WithProduction(true)))))
	defer srv.Close()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"get seed", http.MethodGet, "/posts/1", "", http.StatusOK, `"title":"First Post"`},
		{"get unknown", http.MethodGet, "/posts/7", "", http.StatusNotFound, `"message":"Post with ID 7 not found"`},
		{"get invalid id", http.MethodGet, "/posts/x", "", http.StatusBadRequest, `"message":"Post ID must be a valid number"`},
		{"create", http.MethodPost, "/posts", `{"title":"Hello"}`, http.StatusOK, `"title":"Hello"`},
		{"create without title", http.MethodPost, "/posts", `{}`, http.StatusBadRequest, `"message":"Invalid post"`},
		{"list", http.MethodGet, "/posts", "", http.StatusOK, `"id":1`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, srv.URL+tc.path, strings.NewReader(tc.body))
			require.NoError(t, err)
			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			buf := new(strings.Builder)
			_, err = io.Copy(buf, resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Equal(t, apis.ContentTypeJSON, resp.Header.Get(apis.HeaderContentType))
			assert.Contains(t, buf.String(), tc.wantBody)
		})
	}
}

func TestRouter_Healthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(testDeps(mapper.MustNew())).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_MetricsCountFailures(t *testing.T) {
	r := newRouter(testDeps(mapper.MustNew()))

	for _, path := range []string{"/posts/99", "/posts/98", "/posts/1"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(),
		`outcome_failures_total{kind="not_found",source="taxonomy",status="404",transport="http"} 2`)
}
