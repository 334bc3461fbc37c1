package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atinyakov/go-submission-handler/internal/config"
)

var envVars = []string{
	"SERVER_ADDRESS", "GRPC_PORT", "LOG_LEVEL", "SUBMISSION_LOG_PATH", "MAX_BODY_BYTES",
	"CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT", "ENABLE_PPROF", "ENABLE_HTTPS", "TLS_HOSTS", "CONFIG",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
	}
}

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		opts, err := config.ParseArgs(nil)
		require.NoError(t, err)
		require.Equal(t, "localhost:8080", opts.Port)
		require.Equal(t, 0, opts.GRPCPort)
		require.Equal(t, "info", opts.LogLevel)
		require.Equal(t, "", opts.SubmissionLogPath)
		require.Equal(t, int64(1<<20), opts.MaxBodyBytes)
		require.Equal(t, []string{"*"}, opts.Origins())
		require.Equal(t, 10*time.Second, opts.ShutdownTimeout.Duration)
		require.False(t, opts.EnableHTTPS)
		require.False(t, opts.EnablePprof)
	})

	t.Run("flags", func(t *testing.T) {
		clearEnv(t)

		opts, err := config.ParseArgs([]string{"-a", ":9090", "-g", "3200", "-l", "debug", "-o", "https://a.com, https://b.com", "-t", "3s"})
		require.NoError(t, err)
		require.Equal(t, ":9090", opts.Port)
		require.Equal(t, 3200, opts.GRPCPort)
		require.Equal(t, "debug", opts.LogLevel)
		require.Equal(t, []string{"https://a.com", "https://b.com"}, opts.Origins())
		require.Equal(t, 3*time.Second, opts.ShutdownTimeout.Duration)
	})

	t.Run("env overrides flags", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERVER_ADDRESS", "127.0.0.1:9999")
		t.Setenv("SUBMISSION_LOG_PATH", "/tmp/submissions.jsonl")
		t.Setenv("MAX_BODY_BYTES", "2048")
		t.Setenv("ENABLE_HTTPS", "true")
		t.Setenv("TLS_HOSTS", "example.com,www.example.com")

		opts, err := config.ParseArgs([]string{"-a", ":9090"})
		require.NoError(t, err)
		require.Equal(t, "127.0.0.1:9999", opts.Port)
		require.Equal(t, "/tmp/submissions.jsonl", opts.SubmissionLogPath)
		require.Equal(t, int64(2048), opts.MaxBodyBytes)
		require.True(t, opts.EnableHTTPS)
		require.Equal(t, []string{"example.com", "www.example.com"}, opts.Hosts())
	})

	t.Run("config file", func(t *testing.T) {
		clearEnv(t)

		cfgPath := filepath.Join(t.TempDir(), "cfg.json")
		content := `{
			"server_address": "10.0.0.1:8081",
			"grpc_port": 3201,
			"log_level": "warn",
			"submission_log": "/config/path",
			"allowed_origins": "https://site.example",
			"shutdown_timeout": "7s",
			"enable_pprof": true
		}`
		require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
		t.Setenv("CONFIG", cfgPath)

		opts, err := config.ParseArgs([]string{"-l", "error"})
		require.NoError(t, err)
		require.Equal(t, "10.0.0.1:8081", opts.Port)
		require.Equal(t, 3201, opts.GRPCPort)
		require.Equal(t, "error", opts.LogLevel, "explicit flag wins over file")
		require.Equal(t, "/config/path", opts.SubmissionLogPath)
		require.Equal(t, []string{"https://site.example"}, opts.Origins())
		require.Equal(t, 7*time.Second, opts.ShutdownTimeout.Duration)
		require.True(t, opts.EnablePprof)
		require.Equal(t, int64(1<<20), opts.MaxBodyBytes, "defaults kept for absent keys")
	})

	t.Run("ipv6 listen address", func(t *testing.T) {
		clearEnv(t)

		opts, err := config.ParseArgs([]string{"-a", "[::]:8080"})
		require.NoError(t, err)
		require.Equal(t, "[::]:8080", opts.Port)

		opts, err = config.ParseArgs([]string{"-a", "[::1]:9090"})
		require.NoError(t, err)
		require.Equal(t, "[::1]:9090", opts.Port)
	})

	t.Run("missing config file", func(t *testing.T) {
		clearEnv(t)

		_, err := config.ParseArgs([]string{"-c", filepath.Join(t.TempDir(), "nope.json")})
		require.Error(t, err)
	})
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "bad log level", args: []string{"-l", "verbose"}},
		{name: "bad address", args: []string{"-a", "no-port"}},
		{name: "bad grpc port", args: []string{"-g", "70000"}},
		{name: "zero body limit", args: []string{"-m", "0"}},
		{name: "https without hosts", args: []string{"-s"}},
		{name: "bad env bool", env: map[string]string{"ENABLE_PPROF": "maybe"}},
		{name: "bad env int", env: map[string]string{"GRPC_PORT": "abc"}},
		{name: "unknown flag", args: []string{"-z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.ParseArgs(tt.args)
			require.Error(t, err)
		})
	}
}
