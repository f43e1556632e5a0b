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

// Command devserver serves the posts handlers over plain HTTP with chi and
// runs a gRPC health server behind the outcome interceptor, for local
// development without API Gateway.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dirpx.dev/outcome/grpcx"
	"dirpx.dev/outcome/internal/config"
	"dirpx.dev/outcome/internal/logger"
	"dirpx.dev/outcome/internal/metrics"
	"dirpx.dev/outcome/mapper"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(realMain())
}

// realMain returns the process exit code so deferred cleanup, including the
// final logger flush, runs before os.Exit.
func realMain() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}
	cfg.Log.Service = "devserver"

	lg, err := logger.NewFromConfig(&cfg.Log)
	if err != nil {
		log.Printf("init logger: %v", err)
		return 1
	}
	defer func() { _ = lg.Sync() }()

	if err := run(context.Background(), cfg, lg); err != nil {
		lg.Error("devserver failed", zap.Error(err))
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := mapper.New(mapper.WithProduction(cfg.IsProduction()))
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	deps := routerDeps{mapper: m, logger: lg, recorder: metrics.New(reg), gatherer: reg}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.NewSlogFromLogger(lg.Named("http")).Handler(), slog.LevelError),
	}

	grpcLis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpcx.UnaryServerInterceptor(m,
			grpcx.WithLogger(lg.Named("grpc")),
			grpcx.WithRecorder(deps.recorder),
		),
	))
	healthpb.RegisterHealthServer(grpcServer, health.NewServer())

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(context.Context) error {
		lg.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	p.Go(func(context.Context) error {
		lg.Info("grpc listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		<-ctx.Done()
		lg.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		return err
	})
	return p.Wait()
}
