package server

import (
	"errors"

	"github.com/lf-edge/eve-devmodel/internal/auth"
	"github.com/lf-edge/eve-devmodel/internal/inventory"
	"github.com/lf-edge/eve-devmodel/internal/wire"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ToStatusError maps inventory, wire and auth errors onto gRPC status codes.
func ToStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, inventory.ErrAdapterNotFound):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, inventory.ErrAdapterInvalid),
		errors.Is(err, wire.ErrMalformedWireData),
		errors.Is(err, wire.ErrTypeMismatch),
		errors.Is(err, wire.ErrInvalidJSON):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, inventory.ErrAdapterConflict),
		errors.Is(err, inventory.ErrAdapterInUse):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, auth.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())

	case errors.Is(err, auth.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, err.Error())

	default:
		return status.Error(codes.Internal, err.Error())
	}
}
