// Package config resolves devmodeld settings from defaults, an optional TOML
// file, DEVMODEL_TRACING_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lf-edge/eve-devmodel/internal/observability"
)

// Config is the resolved daemon configuration.
type Config struct {
	GRPCAddr    string
	MetricsAddr string
	SeedFile    string
	LogLevel    string
	LogFormat   string
	Tracing     observability.TracingConfig
	Auth        AuthConfig
}

// AuthConfig controls bearer-token checking on the gRPC surface.
type AuthConfig struct {
	Enabled bool
	Secret  string
	Issuer  string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		GRPCAddr:    ":50061",
		MetricsAddr: ":9091",
		LogLevel:    "info",
		LogFormat:   "text",
		Tracing:     observability.DefaultTracingConfig(),
	}
}

// devmodeld.toml key mapping.
type fileConfig struct {
	GRPCAddr    string `toml:"grpc_addr"`
	MetricsAddr string `toml:"metrics_addr"`
	SeedFile    string `toml:"seed_file"`
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
	Tracing     struct {
		Enabled     bool    `toml:"enabled"`
		Exporter    string  `toml:"exporter"`
		Endpoint    string  `toml:"endpoint"`
		ServiceName string  `toml:"service_name"`
		SampleRatio float64 `toml:"sample_ratio"`
	} `toml:"tracing"`
	Auth struct {
		Enabled bool   `toml:"enabled"`
		Secret  string `toml:"secret"`
		Issuer  string `toml:"issuer"`
	} `toml:"auth"`
}

// Load overlays the TOML file at path on top of base. Only keys present in
// the file change base; unknown keys are rejected.
func Load(path string, base Config) (Config, error) {
	cfg := base

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load devmodeld config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("load devmodeld config: unknown keys %s", strings.Join(keys, ", "))
	}

	if meta.IsDefined("grpc_addr") {
		cfg.GRPCAddr = strings.TrimSpace(raw.GRPCAddr)
	}
	if meta.IsDefined("metrics_addr") {
		cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	}
	if meta.IsDefined("seed_file") {
		cfg.SeedFile = strings.TrimSpace(raw.SeedFile)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_format") {
		cfg.LogFormat = strings.TrimSpace(raw.LogFormat)
	}
	if meta.IsDefined("tracing", "enabled") {
		cfg.Tracing.Enabled = raw.Tracing.Enabled
	}
	if meta.IsDefined("tracing", "exporter") {
		cfg.Tracing.Exporter = strings.ToLower(strings.TrimSpace(raw.Tracing.Exporter))
	}
	if meta.IsDefined("tracing", "endpoint") {
		cfg.Tracing.Endpoint = strings.TrimSpace(raw.Tracing.Endpoint)
	}
	if meta.IsDefined("tracing", "service_name") {
		cfg.Tracing.ServiceName = strings.TrimSpace(raw.Tracing.ServiceName)
	}
	if meta.IsDefined("tracing", "sample_ratio") {
		cfg.Tracing.SampleRatio = raw.Tracing.SampleRatio
	}
	if meta.IsDefined("auth", "enabled") {
		cfg.Auth.Enabled = raw.Auth.Enabled
	}
	if meta.IsDefined("auth", "secret") {
		cfg.Auth.Secret = raw.Auth.Secret
	}
	if meta.IsDefined("auth", "issuer") {
		cfg.Auth.Issuer = strings.TrimSpace(raw.Auth.Issuer)
	}
	return cfg, nil
}

// Validate reports settings the daemon cannot start with.
func (c Config) Validate() error {
	if c.GRPCAddr == "" {
		return fmt.Errorf("grpc_addr is required")
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json", "zerolog", "console":
	default:
		return fmt.Errorf("unsupported log_format %q", c.LogFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log_level %q", c.LogLevel)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing sample_ratio %v outside 0..1", c.Tracing.SampleRatio)
	}
	if c.Auth.Enabled && c.Auth.Secret == "" {
		return fmt.Errorf("auth is enabled but no secret is set")
	}
	return nil
}

// Flags binds the daemon's command-line flags to a FlagSet.
type Flags struct {
	fs *flag.FlagSet

	configPath  string
	grpcAddr    string
	metricsAddr string
	seedFile    string
	logLevel    string
	logFormat   string
	tracing     bool
	authSecret  string
}

// RegisterFlags defines the daemon flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	d := Default()
	f := &Flags{fs: fs}
	fs.StringVar(&f.configPath, "config", "", "Path to a devmodeld TOML config file")
	fs.StringVar(&f.grpcAddr, "grpc-addr", d.GRPCAddr, "TCP address the AdapterService gRPC server listens on")
	fs.StringVar(&f.metricsAddr, "metrics-addr", d.MetricsAddr, "HTTP address for Prometheus /metrics (empty disables)")
	fs.StringVar(&f.seedFile, "seed", "", "Adapter seed file (.json or size-delimited binary)")
	fs.StringVar(&f.logLevel, "log-level", d.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", d.LogFormat, "Log format: text, json, zerolog or console")
	fs.BoolVar(&f.tracing, "tracing", false, "Enable OpenTelemetry tracing")
	fs.StringVar(&f.authSecret, "auth-secret", "", "Enable bearer-token auth with this HS256 secret")
	return f
}

// Resolve builds the final configuration: defaults, then the config file,
// then DEVMODEL_TRACING_* variables, then any flag set explicitly.
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.configPath != "" {
		loaded, err := Load(f.configPath, cfg)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	cfg.Tracing = observability.ApplyTracingEnv(cfg.Tracing)

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "grpc-addr":
			cfg.GRPCAddr = f.grpcAddr
		case "metrics-addr":
			cfg.MetricsAddr = f.metricsAddr
		case "seed":
			cfg.SeedFile = f.seedFile
		case "log-level":
			cfg.LogLevel = f.logLevel
		case "log-format":
			cfg.LogFormat = f.logFormat
		case "tracing":
			cfg.Tracing.Enabled = f.tracing
		case "auth-secret":
			cfg.Auth.Enabled = f.authSecret != ""
			cfg.Auth.Secret = f.authSecret
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
