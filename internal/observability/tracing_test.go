package observability

import (
	"context"
	"testing"

	"github.com/lf-edge/eve-devmodel/internal/logging"
	"go.opentelemetry.io/otel"
)

func TestTracingConfigFromEnv(t *testing.T) {
	t.Setenv("DEVMODEL_TRACING_ENABLED", "true")
	t.Setenv("DEVMODEL_TRACING_EXPORTER", "OTLP")
	t.Setenv("DEVMODEL_TRACING_ENDPOINT", "collector:4317")
	t.Setenv("DEVMODEL_TRACING_SAMPLE_RATIO", "0.25")

	cfg := TracingConfigFromEnv()
	if !cfg.Enabled || cfg.Exporter != "otlp" || cfg.Endpoint != "collector:4317" || cfg.SampleRatio != 0.25 {
		t.Fatalf("TracingConfigFromEnv = %+v", cfg)
	}
	if cfg.ServiceName != "devmodeld" {
		t.Fatalf("ServiceName = %q, want default devmodeld", cfg.ServiceName)
	}
}

func TestApplyTracingEnvIgnoresBadRatio(t *testing.T) {
	t.Setenv("DEVMODEL_TRACING_SAMPLE_RATIO", "2")
	base := DefaultTracingConfig()
	base.SampleRatio = 0.5

	if got := ApplyTracingEnv(base); got.SampleRatio != 0.5 {
		t.Fatalf("SampleRatio = %v, want 0.5 kept", got.SampleRatio)
	}
}

func TestInitTracingDisabled(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), TracingConfig{Enabled: false}, logging.Noop())
	if err != nil {
		t.Fatalf("InitTracing: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	_, span := otel.Tracer("test").Start(context.Background(), "noop")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Fatalf("disabled tracing produced a recording span")
	}
}

func TestInitTracingRejectsUnknownExporter(t *testing.T) {
	cfg := DefaultTracingConfig()
	cfg.Enabled = true
	cfg.Exporter = "carrier-pigeon"
	if _, err := InitTracing(context.Background(), cfg, nil); err == nil {
		t.Fatalf("InitTracing accepted an unknown exporter")
	}
}

func TestShutdownWithTimeoutToleratesNil(t *testing.T) {
	ShutdownWithTimeout(context.Background(), nil, nil)

	called := false
	ShutdownWithTimeout(context.Background(), func(context.Context) error {
		called = true
		return nil
	}, logging.Noop())
	if !called {
		t.Fatalf("shutdown function not invoked")
	}
}

func TestServiceResourceNamesSchema(t *testing.T) {
	res := serviceResource(TracingConfig{ServiceName: "devmodeld-test"})
	attrs := map[string]string{}
	for _, kv := range res.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs["service.name"] != "devmodeld-test" || attrs["service.namespace"] != "lf-edge.eve" {
		t.Fatalf("resource attributes = %v", attrs)
	}
	if attrs["devmodel.schema"] != "devmodel.proto" {
		t.Fatalf("devmodel.schema = %q, want devmodel.proto", attrs["devmodel.schema"])
	}
}

func TestNewSpanExporterSelection(t *testing.T) {
	for _, name := range []string{"", "stdout", "STDERR"} {
		exp, err := newSpanExporter(context.Background(), TracingConfig{Exporter: name})
		if err != nil {
			t.Fatalf("newSpanExporter(%q): %v", name, err)
		}
		if err := exp.Shutdown(context.Background()); err != nil {
			t.Fatalf("Shutdown(%q): %v", name, err)
		}
	}
	if _, err := newSpanExporter(context.Background(), TracingConfig{Exporter: "zipkin"}); err == nil {
		t.Fatalf("newSpanExporter accepted zipkin")
	}
}
