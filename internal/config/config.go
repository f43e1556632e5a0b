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

// Package config loads process configuration from the environment.
//
// Values are read once at start-up and passed explicitly to the components
// that need them; nothing in this module reads the environment at request
// time.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"dirpx.dev/outcome/internal/logger"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvKey      = "APP_ENV"
	LogModKey   = "LOG_MOD"
	LogLevelKey = "LOG_LEVEL"
	HTTPAddrKey = "HTTP_ADDR"
	GRPCAddrKey = "GRPC_ADDR"
)

// Development server listen addresses used when the variables are unset.
const (
	DefaultHTTPAddr = ":8080"
	DefaultGRPCAddr = ":9090"
)

// Config is the process configuration.
type Config struct {
	// Env is the deployment environment, e.g. "production" or "dev".
	Env string
	// Log configures the zap logger.
	Log logger.Config
	// HTTPAddr is the listen address of the development server.
	HTTPAddr string
	// GRPCAddr is the listen address of the development gRPC server.
	GRPCAddr string
}

// IsProduction reports whether Env names a production deployment
// ("production" or "prod", case-insensitive).
func (c Config) IsProduction() bool {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "production", "prod":
		return true
	default:
		return false
	}
}

// Load reads the given dotenv files (".env" when none are given) and then
// the environment. Missing dotenv files are ignored; variables already set
// in the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	cfg := Config{
		Env: os.Getenv(EnvKey),
		Log: logger.Config{
			LogMod:   logger.LogMod(os.Getenv(LogModKey)),
			LogLevel: os.Getenv(LogLevelKey),
		},
		HTTPAddr: os.Getenv(HTTPAddrKey),
		GRPCAddr: os.Getenv(GRPCAddrKey),
	}
	if cfg.Log.LogMod == "" {
		cfg.Log.LogMod = logger.DevelopmentMod
		if cfg.IsProduction() {
			cfg.Log.LogMod = logger.ProductionMod
		}
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = DefaultHTTPAddr
	}
	if cfg.GRPCAddr == "" {
		cfg.GRPCAddr = DefaultGRPCAddr
	}
	return cfg
}
