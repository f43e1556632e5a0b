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

// Package logger configures the process-wide zap logger.
package logger

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

type LogMod string

const (
	DevelopmentMod LogMod = "development"
	ProductionMod  LogMod = "production"
)

type Config struct {
	LogMod   LogMod
	LogLevel string
	// Service is attached to every entry as the "service" field when set.
	Service string
}

var globalLogger = newDefault() //nolint:gochecknoglobals // process-wide logger.

// newDefault creates the logger used before NewFromConfig is called.
func newDefault(opts ...zap.Option) *zap.Logger {
	cfg := newZapCfg(DevelopmentMod, zapcore.DebugLevel)
	logger, _ := cfg.Build(opts...)

	return logger
}

func newZapCfg(mod LogMod, logLevel zapcore.Level) zap.Config {
	var cfg zap.Config

	switch mod {
	case ProductionMod:
		cfg = zap.NewProductionConfig()
		cfg.Level.SetLevel(logLevel)
	case DevelopmentMod:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level.SetLevel(logLevel)
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	return cfg
}

// NewFromConfig builds a logger from cfg and installs it as the global one.
// An empty level means info.
func NewFromConfig(cfg *Config, opts ...zap.Option) (*zap.Logger, error) {
	lvl := cfg.LogLevel
	if lvl == "" {
		lvl = zapcore.InfoLevel.String()
	}
	level, err := zapcore.ParseLevel(lvl)
	if err != nil {
		return nil, err
	}

	logger, err := newZapCfg(cfg.LogMod, level).Build(opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Service != "" {
		logger = logger.With(zap.String("service", cfg.Service))
	}

	globalLogger = logger
	return logger, nil
}

// Global returns the global logger.
func Global() *zap.Logger {
	return globalLogger
}

// Named returns a named child of the global logger.
func Named(name string) *zap.Logger {
	return globalLogger.Named(name)
}

// Slog bridges the global logger to log/slog for libraries that expect it.
func Slog() *slog.Logger {
	return NewSlogFromLogger(Global())
}

func NewSlogFromLogger(lg *zap.Logger) *slog.Logger {
	return slog.New(zapslog.NewHandler(lg.Core()))
}

type ctxLoggerKeyType struct{}

var ctxLoggerKey = ctxLoggerKeyType{} //nolint:gochecknoglobals // context key.

// WrapInCtx stores lg in ctx.
func WrapInCtx(ctx context.Context, lg *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey, lg)
}

// FromCtx returns the logger stored in ctx, or fallback when there is none.
func FromCtx(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if lg, ok := ctx.Value(ctxLoggerKey).(*zap.Logger); ok && lg != nil {
		return lg
	}
	return fallback
}
