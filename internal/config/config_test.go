package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devmodeld.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOverlaysOnlyDefinedKeys(t *testing.T) {
	path := writeConfig(t, `
grpc_addr = "127.0.0.1:7000"
seed_file = "/etc/devmodel/adapters.json"

[tracing]
enabled = true
sample_ratio = 0.5

[auth]
enabled = true
secret = "s3cret"
`)

	cfg, err := Load(path, Default())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GRPCAddr != "127.0.0.1:7000" || cfg.SeedFile != "/etc/devmodel/adapters.json" {
		t.Fatalf("top-level keys not applied: %+v", cfg)
	}
	if cfg.MetricsAddr != Default().MetricsAddr || cfg.LogFormat != "text" {
		t.Fatalf("undefined keys changed defaults: %+v", cfg)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.SampleRatio != 0.5 || cfg.Tracing.Exporter != "stdout" {
		t.Fatalf("tracing table not overlaid: %+v", cfg.Tracing)
	}
	if !cfg.Auth.Enabled || cfg.Auth.Secret != "s3cret" {
		t.Fatalf("auth table not applied: %+v", cfg.Auth)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "grpc_adr = \":1\"\n")
	_, err := Load(path, Default())
	if err == nil || !strings.Contains(err.Error(), "grpc_adr") {
		t.Fatalf("Load error = %v, want unknown key grpc_adr", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml"), Default()); err == nil {
		t.Fatalf("Load accepted a missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(*Config) {}, ok: true},
		{name: "zerolog format", mutate: func(c *Config) { c.LogFormat = "zerolog" }, ok: true},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }},
		{name: "empty grpc addr", mutate: func(c *Config) { c.GRPCAddr = "" }},
		{name: "ratio too big", mutate: func(c *Config) { c.Tracing.SampleRatio = 1.5 }},
		{name: "auth without secret", mutate: func(c *Config) { c.Auth.Enabled = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatalf("Validate accepted %+v", cfg)
			}
		})
	}
}

func TestResolvePrecedence(t *testing.T) {
	path := writeConfig(t, `
grpc_addr = "127.0.0.1:7000"
log_level = "debug"

[tracing]
exporter = "stdout"
`)
	t.Setenv("DEVMODEL_TRACING_EXPORTER", "otlp")

	fs := flag.NewFlagSet("devmodeld", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", path, "-grpc-addr", "127.0.0.1:7100", "-auth-secret", "k"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg, err := flags.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.GRPCAddr != "127.0.0.1:7100" {
		t.Fatalf("flag did not override file: %q", cfg.GRPCAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("file value lost: %q", cfg.LogLevel)
	}
	if cfg.Tracing.Exporter != "otlp" {
		t.Fatalf("env did not override file: %q", cfg.Tracing.Exporter)
	}
	if !cfg.Auth.Enabled || cfg.Auth.Secret != "k" {
		t.Fatalf("auth flag not applied: %+v", cfg.Auth)
	}
}

func TestResolveRejectsInvalid(t *testing.T) {
	fs := flag.NewFlagSet("devmodeld", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	if err := fs.Parse([]string{"-log-format", "xml"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := flags.Resolve(); err == nil {
		t.Fatalf("Resolve accepted an invalid log format")
	}
}
