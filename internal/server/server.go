package server

import (
	devmodelv1 "github.com/lf-edge/eve-devmodel/api/devmodel/v1"
	"github.com/lf-edge/eve-devmodel/internal/auth"
	"github.com/lf-edge/eve-devmodel/internal/logging"
	"github.com/lf-edge/eve-devmodel/internal/observability"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

// Options configures NewGRPCServer. All fields are optional.
type Options struct {
	// Metrics records per-RPC counters and latencies.
	Metrics *observability.AdapterCollector
	// Codec records decode sizes and failures.
	Codec *observability.CodecCollector
	// Verifier enables bearer-token auth when set.
	Verifier *auth.Verifier
	// ServerOptions are appended after the defaults.
	ServerOptions []grpc.ServerOption
}

// NewGRPCServer builds a gRPC server with the AdapterService registered and
// the interceptor chain applied in order: request id, tracing, metrics, auth.
func NewGRPCServer(svc *AdapterService, log logging.Logger, opts Options) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{
		RequestIDUnaryServerInterceptor(log),
		TracingUnaryServerInterceptor(),
	}
	if opts.Metrics != nil {
		interceptors = append(interceptors, opts.Metrics.UnaryServerInterceptor())
	}
	if opts.Verifier != nil {
		interceptors = append(interceptors, auth.UnaryServerInterceptor(opts.Verifier, IsWriteMethod))
	}

	serverOpts := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(interceptors...),
		grpc.ForceServerCodecV2(NewCodec(opts.Codec)),
	}
	serverOpts = append(serverOpts, opts.ServerOptions...)

	srv := grpc.NewServer(serverOpts...)
	devmodelv1.RegisterAdapterServiceServer(srv, svc)
	return srv
}
