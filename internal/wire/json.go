package wire

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

// ErrInvalidJSON reports a document that protojson could not map onto the
// target message.
var ErrInvalidJSON = errors.New("invalid JSON document")

// MarshalJSON renders m in the protobuf JSON mapping. Field names use the
// lowerCamel JSON names from the schema, so adapter type reads as "aType".
func MarshalJSON(m proto.Message) ([]byte, error) {
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(m)
}

// UnmarshalJSON parses a JSON document into m. Unknown keys are ignored so
// that newer producers can add fields.
func UnmarshalJSON(b []byte, m proto.Message) error {
	if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(b, m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// MarshalText renders m in the protobuf text format. The output is meant for
// humans and is not stable across runtime versions.
func MarshalText(m proto.Message) ([]byte, error) {
	return prototext.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(m)
}
