package converter

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/oshokin/moore-mealy/internal/codec"
	"github.com/oshokin/moore-mealy/internal/domain/machine"
	"github.com/oshokin/moore-mealy/internal/fixtures"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	ListFixtures(ctx context.Context) []fixtures.Fixture
	ConvertFixture(ctx context.Context, name string) (*machine.MealyMachine, error)
}

// Server implements the ConverterService gRPC API.
type Server struct {
	// service provides the business logic for conversions.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// ListFixtures returns the names and descriptions of the built-in machines.
func (s *Server) ListFixtures(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	all := s.service.ListFixtures(ctx)
	items := make([]any, 0, len(all))

	for _, f := range all {
		items = append(items, map[string]any{
			"name":        f.Name,
			"description": f.Description,
		})
	}

	list, err := structpb.NewList(items)
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to encode fixtures")
	}

	return list, nil
}

// ConvertFixture converts the named fixture and returns the Mealy document.
func (s *Server) ConvertFixture(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req == nil || strings.TrimSpace(req.GetValue()) == "" {
		return nil, status.Error(codes.InvalidArgument, "fixture name is required")
	}

	mealy, err := s.service.ConvertFixture(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}

	result, err := codec.MealyToStruct(mealy)
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to encode machine")
	}

	return result, nil
}

// toStatus maps service errors to gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, fixtures.ErrUnknownFixture), errors.Is(err, machine.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, "unable to convert machine")
	}
}
