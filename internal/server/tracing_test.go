package server

import (
	"context"
	"testing"

	"github.com/lf-edge/eve-devmodel/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func useSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func TestTracingInterceptorNamesSpans(t *testing.T) {
	sr := useSpanRecorder(t)
	interceptor := TracingUnaryServerInterceptor()

	ctx := logging.ContextWithRequestID(context.Background(), "req-7")
	info := &grpc.UnaryServerInfo{FullMethod: "/devmodel.v1.AdapterService/GetAdapter"}
	_, err := interceptor(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		_, child := StartChildSpan(ctx, "inventory.Get", "eth0", attribute.Bool("adapter.uplink", true))
		child.End()
		return nil, status.Error(codes.NotFound, "missing")
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("interceptor changed the handler error: %v", err)
	}

	spans := sr.Ended()
	if len(spans) != 2 {
		t.Fatalf("ended spans = %d, want 2", len(spans))
	}
	child, rpc := spans[0], spans[1]
	if child.Name() != "inventory.Get" || child.Parent().SpanID() != rpc.SpanContext().SpanID() {
		t.Fatalf("child span %q not parented on the RPC span", child.Name())
	}
	if rpc.Name() != "AdapterService/GetAdapter" {
		t.Fatalf("RPC span name = %q", rpc.Name())
	}
	if rpc.Status().Code != otelcodes.Error {
		t.Fatalf("RPC span status = %v, want Error", rpc.Status().Code)
	}

	attrs := map[attribute.Key]string{}
	for _, kv := range rpc.Attributes() {
		attrs[kv.Key] = kv.Value.Emit()
	}
	if attrs["rpc.method"] != "GetAdapter" || attrs["request_id"] != "req-7" {
		t.Fatalf("RPC span attributes = %v", attrs)
	}
}
