package server

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lf-edge/eve-devmodel/internal/auth"
	"github.com/lf-edge/eve-devmodel/internal/inventory"
	"github.com/lf-edge/eve-devmodel/internal/wire"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatusError(t *testing.T) {
	t.Parallel()

	_, decodeErr := wire.DecodeAdapter([]byte{0x0a, 0x09})

	tests := []struct {
		name    string
		err     error
		code    codes.Code
		wantNil bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "status passthrough", err: status.Error(codes.PermissionDenied, "denied"), code: codes.PermissionDenied},
		{name: "not found", err: fmt.Errorf("%w: %q", inventory.ErrAdapterNotFound, "eth9"), code: codes.NotFound},
		{name: "invalid adapter", err: inventory.ErrAdapterInvalid, code: codes.InvalidArgument},
		{name: "malformed wire data", err: decodeErr, code: codes.InvalidArgument},
		{name: "type mismatch", err: wire.ErrTypeMismatch, code: codes.InvalidArgument},
		{name: "invalid json", err: wire.ErrInvalidJSON, code: codes.InvalidArgument},
		{name: "reference conflict", err: inventory.ErrAdapterConflict, code: codes.FailedPrecondition},
		{name: "in use", err: inventory.ErrAdapterInUse, code: codes.FailedPrecondition},
		{name: "unauthenticated", err: auth.ErrUnauthenticated, code: codes.Unauthenticated},
		{name: "permission denied", err: auth.ErrPermissionDenied, code: codes.PermissionDenied},
		{name: "fallback", err: errors.New("boom"), code: codes.Internal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ToStatusError(tc.err)
			if tc.wantNil {
				if got != nil {
					t.Fatalf("ToStatusError(nil) = %v, want nil", got)
				}
				return
			}

			if got == nil {
				t.Fatalf("ToStatusError(%v) = nil, want error", tc.err)
			}
			if code := status.Code(got); code != tc.code {
				t.Fatalf("ToStatusError(%v) code = %v, want %v", tc.err, code, tc.code)
			}
		})
	}
}
