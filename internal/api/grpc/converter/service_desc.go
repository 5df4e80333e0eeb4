package converter

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// ServiceName is the fully-qualified gRPC service name.
	ServiceName = "moore2mealy.v1.ConverterService"

	// ListFixturesMethod is the full method name of ListFixtures.
	ListFixturesMethod = "/" + ServiceName + "/ListFixtures"
	// ConvertFixtureMethod is the full method name of ConvertFixture.
	ConvertFixtureMethod = "/" + ServiceName + "/ConvertFixture"
)

// ConverterServiceServer is the server API of the conversion service.
type ConverterServiceServer interface {
	// ListFixtures returns one {name, description} struct per built-in machine.
	ListFixtures(ctx context.Context, req *emptypb.Empty) (*structpb.ListValue, error)
	// ConvertFixture converts the named fixture and returns the Mealy document.
	ConvertFixture(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error)
}

// ServiceDesc describes the conversion service for grpc.Server.
//
//nolint:gochecknoglobals // grpc.ServiceRegistrar takes the descriptor by pointer.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ConverterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListFixtures",
			Handler:    listFixturesHandler,
		},
		{
			MethodName: "ConvertFixture",
			Handler:    convertFixtureHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "moore2mealy/v1/converter.proto",
}

// RegisterConverterServiceServer registers srv on s.
func RegisterConverterServiceServer(s grpc.ServiceRegistrar, srv ConverterServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

//nolint:revive // Signature is fixed by grpc.MethodHandler.
func listFixturesHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(ConverterServiceServer).ListFixtures(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ListFixturesMethod,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConverterServiceServer).ListFixtures(ctx, req.(*emptypb.Empty))
	}

	return interceptor(ctx, in, info, handler)
}

//nolint:revive // Signature is fixed by grpc.MethodHandler.
func convertFixtureHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(ConverterServiceServer).ConvertFixture(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConvertFixtureMethod,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConverterServiceServer).ConvertFixture(ctx, req.(*wrapperspb.StringValue))
	}

	return interceptor(ctx, in, info, handler)
}

// ConverterServiceClient is the client API of the conversion service.
type ConverterServiceClient struct {
	// cc is the connection calls are issued on.
	cc grpc.ClientConnInterface
}

// NewConverterServiceClient creates a client bound to cc.
func NewConverterServiceClient(cc grpc.ClientConnInterface) *ConverterServiceClient {
	return &ConverterServiceClient{
		cc: cc,
	}
}

// ListFixtures calls the ListFixtures method.
func (c *ConverterServiceClient) ListFixtures(
	ctx context.Context,
	in *emptypb.Empty,
	opts ...grpc.CallOption,
) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ListFixturesMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// ConvertFixture calls the ConvertFixture method.
func (c *ConverterServiceClient) ConvertFixture(
	ctx context.Context,
	in *wrapperspb.StringValue,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ConvertFixtureMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}
