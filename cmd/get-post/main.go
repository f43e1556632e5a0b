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

// Command get-post is the Lambda entry point serving GetPost.
package main

import (
	"log"

	"dirpx.dev/outcome/adapter"
	"dirpx.dev/outcome/internal/config"
	"dirpx.dev/outcome/internal/logger"
	"dirpx.dev/outcome/internal/posts"
	"dirpx.dev/outcome/lambdax"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Log.Service = "get-post"

	lg, err := logger.NewFromConfig(&cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	h := posts.NewHandlers(posts.NewStore(), lg.Named("posts"))
	lambdax.Start(h.GetPost,
		adapter.WithProduction(cfg.IsProduction()),
		adapter.WithLogger(lg.Named("outcome")),
	)
}
