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
	"context"
	"testing"
	"time"

	"dirpx.dev/outcome/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun_ReturnsListenError(t *testing.T) {
	cfg := config.Config{HTTPAddr: "127.0.0.1:0", GRPCAddr: "not-an-address"}

	err := run(context.Background(), cfg, zap.NewNop())
	require.Error(t, err)
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := config.Config{HTTPAddr: "127.0.0.1:0", GRPCAddr: "127.0.0.1:0"}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- run(ctx, cfg, zap.NewNop()) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("run did not return after cancel")
	}
}
