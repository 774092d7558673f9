// Package wire wraps the protobuf runtime with the decode contract used by
// devmodel consumers: typed failures for malformed input, optional strict
// wire-type checking, and helpers for the JSON, text and seed-file forms of
// the adapter messages.
package wire

import (
	"errors"
	"unicode/utf8"

	"github.com/lf-edge/eve-devmodel/api/config"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

type options struct {
	strict         bool
	discardUnknown bool
}

// Option customises Decode.
type Option func(*options)

// Strict rejects known fields that arrive with a conflicting wire type. The
// default matches the protobuf runtime, which keeps such fields as unknown.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// DiscardUnknown drops unknown fields instead of preserving them on the
// decoded message.
func DiscardUnknown() Option {
	return func(o *options) { o.discardUnknown = true }
}

// Encode serialises m with deterministic field ordering.
func Encode(m proto.Message) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(m)
}

// Decode parses b into m. Failures are *DecodeError values wrapping
// ErrMalformedWireData or ErrTypeMismatch.
func Decode(b []byte, m proto.Message, opts ...Option) error {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	md := m.ProtoReflect().Descriptor()
	if err := scan(b, md, o.strict, 0); err != nil {
		return err
	}

	uo := proto.UnmarshalOptions{DiscardUnknown: o.discardUnknown}
	if err := uo.Unmarshal(b, m); err != nil {
		return malformed(md, 0, 0, err)
	}
	return nil
}

// DecodeAdapter parses a SystemAdapter.
func DecodeAdapter(b []byte, opts ...Option) (*config.SystemAdapter, error) {
	out := &config.SystemAdapter{}
	if err := Decode(b, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeParams parses an sWAdapterParams.
func DecodeParams(b []byte, opts ...Option) (*config.SWAdapterParams, error) {
	out := &config.SWAdapterParams{}
	if err := Decode(b, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// scan walks b field by field without building a message so that framing
// errors can be reported with an offset and field number.
func scan(b []byte, md protoreflect.MessageDescriptor, strict bool, base int) error {
	for off := 0; off < len(b); {
		num, typ, n := protowire.ConsumeTag(b[off:])
		if n < 0 {
			return malformed(md, 0, base+off, protowire.ParseError(n))
		}
		if typ == protowire.EndGroupType {
			return malformed(md, num, base+off, errors.New("unexpected end group"))
		}
		vlen := protowire.ConsumeFieldValue(num, typ, b[off+n:])
		if vlen < 0 {
			return malformed(md, num, base+off, protowire.ParseError(vlen))
		}

		if fd := md.Fields().ByNumber(num); fd != nil {
			want, ok := accepts(fd, typ)
			switch {
			case !ok && strict:
				return mismatch(md, num, base+off, typ, want)
			case ok && typ == protowire.BytesType:
				v, _ := protowire.ConsumeBytes(b[off+n:])
				if err := checkBytesField(fd, v, md, num, base+off, base+off+n+vlen-len(v), strict); err != nil {
					return err
				}
			}
		}
		off += n + vlen
	}
	return nil
}

func checkBytesField(fd protoreflect.FieldDescriptor, v []byte, md protoreflect.MessageDescriptor, num protowire.Number, tagOff, valueOff int, strict bool) error {
	switch fd.Kind() {
	case protoreflect.MessageKind:
		return scan(v, fd.Message(), strict, valueOff)
	case protoreflect.StringKind:
		if fd.ParentFile().Syntax() == protoreflect.Proto3 && !utf8.Valid(v) {
			return malformed(md, num, tagOff, errors.New("string field contains invalid UTF-8"))
		}
	}
	return nil
}

// accepts reports whether typ is a valid encoding for fd, returning the
// canonical wire type for the field's kind.
func accepts(fd protoreflect.FieldDescriptor, typ protowire.Type) (protowire.Type, bool) {
	want := wireTypeFor(fd.Kind())
	if typ == want {
		return want, true
	}
	// repeated scalars may arrive packed or unpacked
	if fd.IsList() && typ == protowire.BytesType && want != protowire.BytesType && want != protowire.StartGroupType {
		return want, true
	}
	return want, false
}

func wireTypeFor(k protoreflect.Kind) protowire.Type {
	switch k {
	case protoreflect.BoolKind, protoreflect.EnumKind,
		protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Uint32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Uint64Kind:
		return protowire.VarintType
	case protoreflect.Fixed32Kind, protoreflect.Sfixed32Kind, protoreflect.FloatKind:
		return protowire.Fixed32Type
	case protoreflect.Fixed64Kind, protoreflect.Sfixed64Kind, protoreflect.DoubleKind:
		return protowire.Fixed64Type
	case protoreflect.GroupKind:
		return protowire.StartGroupType
	default:
		return protowire.BytesType
	}
}
