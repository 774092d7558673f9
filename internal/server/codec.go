package server

import (
	"fmt"
	"time"

	"github.com/lf-edge/eve-devmodel/internal/observability"
	"github.com/lf-edge/eve-devmodel/internal/wire"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/mem"
	"google.golang.org/protobuf/proto"
)

// codecName matches the default gRPC codec so clients need no changes.
const codecName = "proto"

// wireCodec is a gRPC codec that decodes requests through the wire package,
// so malformed payloads surface as typed decode errors and are counted.
type wireCodec struct {
	metrics *observability.CodecCollector
}

var _ encoding.CodecV2 = (*wireCodec)(nil)

// NewCodec returns the server codec. metrics may be nil.
func NewCodec(metrics *observability.CodecCollector) encoding.CodecV2 {
	return &wireCodec{metrics: metrics}
}

func (c *wireCodec) Marshal(v any) (mem.BufferSlice, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("marshal: message is %T, want proto.Message", v)
	}
	b, err := proto.Marshal(m)
	if err != nil {
		return nil, err
	}
	return mem.BufferSlice{mem.SliceBuffer(b)}, nil
}

func (c *wireCodec) Unmarshal(data mem.BufferSlice, v any) error {
	m, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("unmarshal: message is %T, want proto.Message", v)
	}
	b := data.Materialize()
	start := time.Now()
	err := wire.Decode(b, m)
	c.metrics.ObserveDecode(string(m.ProtoReflect().Descriptor().FullName()), len(b), time.Since(start), err)
	return err
}

func (c *wireCodec) Name() string {
	return codecName
}
