package observability

import (
	"errors"
	"fmt"
	"time"

	"github.com/lf-edge/eve-devmodel/internal/wire"
	"github.com/prometheus/client_golang/prometheus"
)

// Decode error kinds used as the kind label.
const (
	DecodeKindMalformed    = "malformed"
	DecodeKindTypeMismatch = "type_mismatch"
	DecodeKindInvalidJSON  = "invalid_json"
	DecodeKindOther        = "other"
)

// CodecCollector exposes metrics for adapter payload decoding. The gRPC
// server codec reports every request payload; devmodeld reports seed files.
type CodecCollector struct {
	gatherer prometheus.Gatherer

	DecodeErrors   *prometheus.CounterVec
	PayloadBytes   *prometheus.HistogramVec
	DecodeDuration prometheus.Histogram
}

// NewCodecCollector registers codec metrics against the provided registerer.
func NewCodecCollector(reg prometheus.Registerer) (*CodecCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	decodeErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "devmodel_decode_errors_total",
		Help: "Payloads rejected by the decoder, labeled by failure kind.",
	}, []string{"kind"})
	decodeErrors, err := registerCounterVec(reg, decodeErrors, "devmodel_decode_errors_total")
	if err != nil {
		return nil, err
	}

	payload := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "devmodel_payload_bytes",
		Help:    "Size of decoded payloads in bytes, labeled by message name.",
		Buckets: prometheus.ExponentialBuckets(16, 4, 8),
	}, []string{"message"})
	payload, err = registerHistogramVec(reg, payload, "devmodel_payload_bytes")
	if err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "devmodel_decode_duration_seconds",
		Help:    "Time spent decoding a payload.",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	})
	duration, err = registerHistogram(reg, duration, "devmodel_decode_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &CodecCollector{
		gatherer:       gatherer,
		DecodeErrors:   decodeErrors,
		PayloadBytes:   payload,
		DecodeDuration: duration,
	}, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *CodecCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// ObserveDecode records one decode attempt. Successful decodes contribute
// to the size and duration histograms; failures bump the error counter.
func (c *CodecCollector) ObserveDecode(message string, size int, d time.Duration, err error) {
	if c == nil {
		return
	}
	if err != nil {
		if c.DecodeErrors != nil {
			c.DecodeErrors.WithLabelValues(DecodeKind(err)).Inc()
		}
		return
	}
	if c.PayloadBytes != nil {
		c.PayloadBytes.WithLabelValues(message).Observe(float64(size))
	}
	if c.DecodeDuration != nil {
		c.DecodeDuration.Observe(d.Seconds())
	}
}

// DecodeKind classifies a decode failure for the kind label.
func DecodeKind(err error) string {
	switch {
	case errors.Is(err, wire.ErrTypeMismatch):
		return DecodeKindTypeMismatch
	case errors.Is(err, wire.ErrMalformedWireData):
		return DecodeKindMalformed
	case errors.Is(err, wire.ErrInvalidJSON):
		return DecodeKindInvalidJSON
	default:
		return DecodeKindOther
	}
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
