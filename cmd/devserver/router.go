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
	"net/http"

	"dirpx.dev/outcome/adapter"
	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/httpx"
	"dirpx.dev/outcome/internal/posts"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type routerDeps struct {
	mapper   apis.Mapper
	logger   *zap.Logger
	recorder apis.FailureRecorder
	gatherer prometheus.Gatherer
}

func newRouter(d routerDeps) http.Handler {
	h := posts.NewHandlers(posts.NewStore(), d.logger.Named("posts"))
	opts := []adapter.Option{
		adapter.WithMapper(d.mapper),
		adapter.WithLogger(d.logger.Named("outcome")),
		adapter.WithRecorder(d.recorder),
		adapter.WithTransport(apis.TransportHTTP),
	}
	serve := func(fn adapter.Handler) http.Handler {
		return httpx.Handler(adapter.Wrap(fn, opts...))
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Heartbeat("/healthz"))

	if d.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.gatherer, promhttp.HandlerOpts{}))
	}
	r.Route("/posts", func(r chi.Router) {
		r.Method(http.MethodGet, "/", serve(h.ListPosts))
		r.Method(http.MethodPost, "/", serve(h.CreatePost))
		r.Method(http.MethodGet, "/{id}", serve(h.GetPost))
	})
	return r
}
