// Package server exposes the adapter inventory over gRPC as
// devmodel.v1.AdapterService.
package server

import (
	"context"

	"github.com/lf-edge/eve-devmodel/api/config"
	devmodelv1 "github.com/lf-edge/eve-devmodel/api/devmodel/v1"
	"github.com/lf-edge/eve-devmodel/internal/inventory"
	"github.com/lf-edge/eve-devmodel/internal/logging"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// AdapterService implements the AdapterService gRPC server backed by an
// Inventory.
type AdapterService struct {
	devmodelv1.UnimplementedAdapterServiceServer

	inv *inventory.Inventory
	log logging.Logger
}

// NewAdapterService wires an AdapterService to the shared inventory.
func NewAdapterService(inv *inventory.Inventory, log logging.Logger) *AdapterService {
	if log == nil {
		log = logging.Noop()
	}
	return &AdapterService{inv: inv, log: log}
}

// IsWriteMethod reports whether fullMethod changes the inventory.
func IsWriteMethod(fullMethod string) bool {
	switch fullMethod {
	case devmodelv1.AdapterService_PutAdapter_FullMethodName,
		devmodelv1.AdapterService_DeleteAdapter_FullMethodName,
		devmodelv1.AdapterService_ApplyAdapters_FullMethodName:
		return true
	}
	return false
}

// PutAdapter creates or replaces an adapter by name.
func (s *AdapterService) PutAdapter(ctx context.Context, in *config.SystemAdapter) (*config.SystemAdapter, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "adapter is required")
	}

	ctx, span := StartChildSpan(ctx, "inventory.Put", in.GetName())
	defer span.End()

	out, err := s.inv.Put(ctx, in)
	if err != nil {
		span.RecordError(err)
		logging.FromContext(ctx, s.log).Warn(ctx, "put adapter rejected",
			logging.String("name", in.GetName()),
			logging.Err(err),
		)
		return nil, ToStatusError(err)
	}
	logging.FromContext(ctx, s.log).Info(ctx, "adapter stored",
		logging.String("name", out.GetName()),
		logging.String("type", out.GetAllocDetails().GetAType().String()),
		logging.Bool("uplink", out.GetUplink()),
	)
	return out, nil
}

// GetAdapter retrieves an adapter by name.
func (s *AdapterService) GetAdapter(ctx context.Context, req *devmodelv1.GetAdapterRequest) (*config.SystemAdapter, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	if req.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	out, err := s.inv.Get(req.GetName())
	if err != nil {
		return nil, ToStatusError(err)
	}
	return out, nil
}

// ListAdapters returns all adapters sorted by name.
func (s *AdapterService) ListAdapters(ctx context.Context, req *devmodelv1.ListAdaptersRequest) (*devmodelv1.ListAdaptersResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	adapters := s.inv.List(inventory.Filter{UplinksOnly: req.GetUplinksOnly()})
	return &devmodelv1.ListAdaptersResponse{Adapters: adapters}, nil
}

// DeleteAdapter removes an adapter that nothing references.
func (s *AdapterService) DeleteAdapter(ctx context.Context, req *devmodelv1.DeleteAdapterRequest) (*emptypb.Empty, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	if req.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	ctx, span := StartChildSpan(ctx, "inventory.Delete", req.GetName())
	defer span.End()

	if err := s.inv.Delete(ctx, req.GetName()); err != nil {
		span.RecordError(err)
		return nil, ToStatusError(err)
	}
	logging.FromContext(ctx, s.log).Info(ctx, "adapter deleted", logging.String("name", req.GetName()))
	return &emptypb.Empty{}, nil
}

// ApplyAdapters upserts a batch atomically, optionally replacing the whole set.
func (s *AdapterService) ApplyAdapters(ctx context.Context, req *devmodelv1.ApplyAdaptersRequest) (*devmodelv1.ApplyAdaptersResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}

	ctx, span := StartChildSpan(ctx, "inventory.Apply", "",
		attribute.Int("adapters.count", len(req.GetAdapters())),
		attribute.Bool("adapters.replace", req.GetReplace()),
	)
	defer span.End()

	res, err := s.inv.Apply(ctx, req.GetAdapters(), req.GetReplace())
	if err != nil {
		span.RecordError(err)
		logging.FromContext(ctx, s.log).Warn(ctx, "apply adapters rejected",
			logging.Int("adapters", len(req.GetAdapters())),
			logging.Err(err),
		)
		return nil, ToStatusError(err)
	}
	logging.FromContext(ctx, s.log).Info(ctx, "adapters applied",
		logging.Int("applied", res.Applied),
		logging.Int("removed", res.Removed),
		logging.Bool("replace", req.GetReplace()),
	)
	return &devmodelv1.ApplyAdaptersResponse{
		Applied: uint32(res.Applied),
		Removed: uint32(res.Removed),
	}, nil
}

// ListPorts returns the port plan derived from the current adapters.
func (s *AdapterService) ListPorts(ctx context.Context, _ *devmodelv1.ListPortsRequest) (*devmodelv1.ListPortsResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	return &devmodelv1.ListPortsResponse{Ports: s.inv.Ports()}, nil
}

func (s *AdapterService) ensureReady() error {
	if s == nil || s.inv == nil {
		return status.Error(codes.FailedPrecondition, "adapter inventory is not configured")
	}
	return nil
}
