package wire

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/reflect/protoreflect"
)

var (
	// ErrMalformedWireData reports bytes that are not well-formed protobuf:
	// truncated fields, bad varints, oversized length prefixes, invalid field
	// numbers or invalid UTF-8 in a string field.
	ErrMalformedWireData = errors.New("malformed wire data")
	// ErrTypeMismatch reports a known field carrying a wire type that the
	// schema does not allow for it. Only strict decoding returns it.
	ErrTypeMismatch = errors.New("wire type mismatch")
)

// DecodeError describes where decoding failed. It unwraps to one of the
// package sentinels so callers can match with errors.Is.
type DecodeError struct {
	// Message is the full name of the message being decoded.
	Message protoreflect.FullName
	// Field is the field number being read, zero when the tag itself failed.
	Field protowire.Number
	// Offset is the byte offset of the failing tag within the input.
	Offset int

	kind  error
	cause error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%v: decoding %s at offset %d", e.kind, e.messageName(), e.Offset)
	if e.Field > 0 {
		msg += fmt.Sprintf(" (field %d)", e.Field)
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *DecodeError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// Kind returns the sentinel this error wraps.
func (e *DecodeError) Kind() error { return e.kind }

func (e *DecodeError) messageName() string {
	if e.Message == "" {
		return "message"
	}
	return string(e.Message)
}

func malformed(md protoreflect.MessageDescriptor, num protowire.Number, offset int, cause error) *DecodeError {
	return &DecodeError{Message: fullName(md), Field: num, Offset: offset, kind: ErrMalformedWireData, cause: cause}
}

func mismatch(md protoreflect.MessageDescriptor, num protowire.Number, offset int, got, want protowire.Type) *DecodeError {
	return &DecodeError{
		Message: fullName(md),
		Field:   num,
		Offset:  offset,
		kind:    ErrTypeMismatch,
		cause:   fmt.Errorf("got wire type %d, want %d", got, want),
	}
}

func fullName(md protoreflect.MessageDescriptor) protoreflect.FullName {
	if md == nil {
		return ""
	}
	return md.FullName()
}
