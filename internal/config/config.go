// Package config provides the configuration options of the submission
// service. Values are layered: defaults, then an optional JSON config file,
// then command-line flags, then environment variables. A .env file in the
// working directory is loaded into the environment first when present.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (host:port or [ipv6]:port).
	Port string `json:"server_address" validate:"required,hostname_port|tcp_addr"`

	// GRPCPort enables the gRPC server when non-zero.
	GRPCPort int `json:"grpc_port" validate:"gte=0,lte=65535"`

	// LogLevel is the zap level name.
	LogLevel string `json:"log_level" validate:"oneof=debug info warn error dpanic panic fatal"`

	// SubmissionLogPath enables the JSON Lines journal of submissions.
	SubmissionLogPath string `json:"submission_log"`

	// MaxBodyBytes limits the size of a request body.
	MaxBodyBytes int64 `json:"max_body_bytes" validate:"gt=0"`

	// AllowedOrigins is a comma-separated CORS origin list.
	AllowedOrigins string `json:"allowed_origins" validate:"required"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout Duration `json:"shutdown_timeout"`

	// EnablePprof indicates whether to enable pprof for performance profiling.
	EnablePprof bool `json:"enable_pprof"`

	// EnableHTTPS indicates whether to enable https.
	EnableHTTPS bool `json:"enable_https"`

	// TLSHosts is the comma-separated autocert host whitelist.
	TLSHosts string `json:"tls_hosts" validate:"required_if=EnableHTTPS true"`

	// Config is the path of the JSON config file.
	Config string `json:"-"`
}

// Duration is a time.Duration that reads "10s"-style strings from JSON.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Origins splits AllowedOrigins.
func (o *Options) Origins() []string {
	return splitList(o.AllowedOrigins)
}

// Hosts splits TLSHosts.
func (o *Options) Hosts() []string {
	return splitList(o.TLSHosts)
}

var validate = validator.New()

// Parse reads the configuration from os.Args and the environment.
func Parse() (*Options, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs reads the configuration from args and the environment.
func ParseArgs(args []string) (*Options, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	options := &Options{ShutdownTimeout: Duration{10 * time.Second}}

	fset := flag.NewFlagSet("submitter", flag.ContinueOnError)
	fset.StringVar(&options.Port, "a", "localhost:8080", "run on host:port server, [ipv6]:port accepted")
	fset.IntVar(&options.GRPCPort, "g", 0, "gRPC port, 0 disables")
	fset.StringVar(&options.LogLevel, "l", "info", "log level")
	fset.StringVar(&options.SubmissionLogPath, "f", "", "path to submission journal")
	fset.Int64Var(&options.MaxBodyBytes, "m", 1<<20, "max request body size in bytes")
	fset.StringVar(&options.AllowedOrigins, "o", "*", "comma-separated CORS origins")
	fset.DurationVar(&options.ShutdownTimeout.Duration, "t", options.ShutdownTimeout.Duration, "graceful shutdown timeout")
	fset.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	fset.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
	fset.StringVar(&options.TLSHosts, "d", "", "comma-separated TLS hosts")
	fset.StringVar(&options.Config, "c", "", "path to JSON config file")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	if cfg := os.Getenv("CONFIG"); cfg != "" {
		options.Config = cfg
	}

	if options.Config != "" {
		if err := loadFile(options.Config, options); err != nil {
			return nil, err
		}
		// explicit flags win over the file
		if err := fset.Parse(args); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(options); err != nil {
		return nil, err
	}

	if err := validate.Struct(options); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return options, nil
}

func loadFile(p string, options *Options) error {
	content, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	if err := json.Unmarshal(content, options); err != nil {
		return fmt.Errorf("parse config file %s: %w", p, err)
	}

	return nil
}

func applyEnv(options *Options) error {
	if v := os.Getenv("SERVER_ADDRESS"); v != "" {
		options.Port = v
	}

	if v := os.Getenv("GRPC_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse GRPC_PORT: %w", err)
		}
		options.GRPCPort = port
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		options.LogLevel = v
	}

	if v := os.Getenv("SUBMISSION_LOG_PATH"); v != "" {
		options.SubmissionLogPath = v
	}

	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse MAX_BODY_BYTES: %w", err)
		}
		options.MaxBodyBytes = n
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		options.AllowedOrigins = v
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
		}
		options.ShutdownTimeout.Duration = d
	}

	if v := os.Getenv("ENABLE_PPROF"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse ENABLE_PPROF: %w", err)
		}
		options.EnablePprof = b
	}

	if v := os.Getenv("ENABLE_HTTPS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse ENABLE_HTTPS: %w", err)
		}
		options.EnableHTTPS = b
	}

	if v := os.Getenv("TLS_HOSTS"); v != "" {
		options.TLSHosts = v
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
