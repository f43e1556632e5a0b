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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"dirpx.dev/outcome/internal/logger"
	"github.com/stretchr/testify/require"
)

func TestIsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{" PROD ", true},
		{"Production", true},
		{"", false},
		{"dev", false},
		{"staging", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Config{Env: tt.env}.IsProduction(), "env=%q", tt.env)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvKey, "")
	t.Setenv(LogModKey, "")
	t.Setenv(LogLevelKey, "")
	t.Setenv(HTTPAddrKey, "")
	t.Setenv(GRPCAddrKey, "")

	cfg := FromEnv()
	require.False(t, cfg.IsProduction())
	require.Equal(t, logger.DevelopmentMod, cfg.Log.LogMod)
	require.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	require.Equal(t, DefaultGRPCAddr, cfg.GRPCAddr)
}

func TestFromEnv_ProductionDefaultsLogMod(t *testing.T) {
	t.Setenv(EnvKey, "production")
	t.Setenv(LogModKey, "")
	t.Setenv(LogLevelKey, "warn")

	cfg := FromEnv()
	require.True(t, cfg.IsProduction())
	require.Equal(t, logger.ProductionMod, cfg.Log.LogMod)
	require.Equal(t, "warn", cfg.Log.LogLevel)
}

func TestLoad_DotenvFile(t *testing.T) {
	t.Setenv(EnvKey, "")
	t.Setenv(HTTPAddrKey, "")
	os.Unsetenv(EnvKey)
	os.Unsetenv(HTTPAddrKey)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_ENV=prod\nHTTP_ADDR=127.0.0.1:9000\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.IsProduction())
	require.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	t.Setenv(EnvKey, "dev")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_ENV=production\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.False(t, cfg.IsProduction())
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}
