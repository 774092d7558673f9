// Command devmodeld serves the system adapter inventory over gRPC.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lf-edge/eve-devmodel/api/config"
	"github.com/lf-edge/eve-devmodel/internal/auth"
	devconfig "github.com/lf-edge/eve-devmodel/internal/config"
	"github.com/lf-edge/eve-devmodel/internal/inventory"
	"github.com/lf-edge/eve-devmodel/internal/logging"
	"github.com/lf-edge/eve-devmodel/internal/observability"
	"github.com/lf-edge/eve-devmodel/internal/server"
	"github.com/lf-edge/eve-devmodel/internal/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// seedMessage labels seed-file decodes in the payload histogram.
var seedMessage = string((&config.SystemAdapter{}).ProtoReflect().Descriptor().FullName())

func main() {
	flags := devconfig.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "devmodeld: %v\n", err)
		os.Exit(2)
	}

	log := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Error(ctx, "failed to listen for gRPC", logging.String("addr", cfg.GRPCAddr), logging.Err(err))
		os.Exit(1)
	}

	if err := run(ctx, cfg, log, lis); err != nil {
		log.Error(ctx, "devmodeld exited", logging.Err(err))
		os.Exit(1)
	}
}

// run serves until ctx is cancelled or the gRPC server fails. It owns lis.
func run(ctx context.Context, cfg devconfig.Config, log logging.Logger, lis net.Listener) error {
	if log == nil {
		log = logging.Noop()
	}

	shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing, log)
	if err != nil {
		_ = lis.Close()
		return fmt.Errorf("init tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := observability.NewAdapterCollector(reg)
	if err != nil {
		_ = lis.Close()
		return fmt.Errorf("init metrics: %w", err)
	}
	codecMetrics, err := observability.NewCodecCollector(reg)
	if err != nil {
		_ = lis.Close()
		return fmt.Errorf("init codec metrics: %w", err)
	}

	inv := inventory.New(log, inventory.WithMetricsRecorder(metrics))
	if err := loadSeed(ctx, inv, cfg.SeedFile, codecMetrics, log); err != nil {
		_ = lis.Close()
		return err
	}

	opts := server.Options{Metrics: metrics, Codec: codecMetrics}
	if cfg.Auth.Enabled {
		verifier, err := auth.NewVerifier(auth.Config{Secret: cfg.Auth.Secret, Issuer: cfg.Auth.Issuer})
		if err != nil {
			_ = lis.Close()
			return fmt.Errorf("init auth: %w", err)
		}
		opts.Verifier = verifier
	}

	srv := server.NewGRPCServer(server.NewAdapterService(inv, log), log, opts)
	metricsSrv := serveMetrics(cfg.MetricsAddr, metrics, log)

	serveErr := make(chan error, 1)
	log.Info(ctx, "starting AdapterService gRPC server",
		logging.String("addr", lis.Addr().String()),
		logging.Bool("auth", cfg.Auth.Enabled),
		logging.Int("adapters", inv.Count()),
	)
	go func() {
		serveErr <- srv.Serve(lis)
	}()

	var result error
	select {
	case <-ctx.Done():
		log.Info(context.Background(), "shutting down devmodeld")
		srv.GracefulStop()
	case err := <-serveErr:
		result = fmt.Errorf("gRPC server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	return result
}

// loadSeed replaces the inventory with the adapters in path. An empty path is
// a no-op.
func loadSeed(ctx context.Context, inv *inventory.Inventory, path string, metrics *observability.CodecCollector, log logging.Logger) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	start := time.Now()
	adapters, err := wire.ReadAdapters(bytes.NewReader(data), wire.FormatForPath(path))
	metrics.ObserveDecode(seedMessage, len(data), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("load seed %s: %w", path, err)
	}

	res, err := inv.Apply(ctx, adapters, true)
	if err != nil {
		return fmt.Errorf("apply seed %s: %w", path, err)
	}
	log.Info(ctx, "loaded adapter seed",
		logging.String("path", path),
		logging.String("format", wire.FormatForPath(path).String()),
		logging.Int("count", res.Applied),
	)
	return nil
}

func serveMetrics(addr string, collector *observability.AdapterCollector, log logging.Logger) *http.Server {
	if collector == nil || addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn(context.Background(), "metrics server exited", logging.Err(err))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}
