package server

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lf-edge/eve-devmodel/api/config"
	"github.com/lf-edge/eve-devmodel/internal/observability"
	"github.com/lf-edge/eve-devmodel/internal/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/grpc/mem"
	"google.golang.org/protobuf/testing/protocmp"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec(nil)
	if codec.Name() != "proto" {
		t.Fatalf("Name = %q, want proto", codec.Name())
	}

	in := &config.SystemAdapter{
		Name:   "bond0",
		Uplink: true,
		AllocDetails: &config.SWAdapterParams{
			AType:     config.SWAdapterType_BOND,
			Bondgroup: []string{"eth1", "eth2"},
		},
	}
	data, err := codec.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	out := &config.SystemAdapter{}
	if err := codec.Unmarshal(data, out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(in, out, protocmp.Transform()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCodecRejectsNonProto(t *testing.T) {
	codec := NewCodec(nil)
	if _, err := codec.Marshal("eth0"); err == nil {
		t.Fatalf("Marshal(string) succeeded")
	}
	if err := codec.Unmarshal(mem.BufferSlice{mem.SliceBuffer([]byte{0x0a, 0x00})}, new(int)); err == nil {
		t.Fatalf("Unmarshal into *int succeeded")
	}
}

func TestCodecCountsDecodeFailures(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := observability.NewCodecCollector(reg)
	if err != nil {
		t.Fatalf("NewCodecCollector: %v", err)
	}
	codec := NewCodec(collector)

	err = codec.Unmarshal(mem.BufferSlice{mem.SliceBuffer([]byte{0x0a, 0x09, 'e'})}, &config.SystemAdapter{})
	if !errors.Is(err, wire.ErrMalformedWireData) {
		t.Fatalf("Unmarshal error = %v, want ErrMalformedWireData", err)
	}
	if got := testutil.ToFloat64(collector.DecodeErrors.WithLabelValues(observability.DecodeKindMalformed)); got != 1 {
		t.Fatalf("malformed count = %v, want 1", got)
	}

	if err := codec.Unmarshal(mem.BufferSlice{mem.SliceBuffer([]byte{0x0a, 0x04, 'e', 't', 'h', '0'})}, &config.SystemAdapter{}); err != nil {
		t.Fatalf("Unmarshal valid payload: %v", err)
	}
	if got := testutil.CollectAndCount(collector.PayloadBytes); got != 1 {
		t.Fatalf("devmodel_payload_bytes series = %d, want 1", got)
	}
}
