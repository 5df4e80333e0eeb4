// Package converter implements the gRPC transport for the conversion service.
//
// The service is described by a hand-written grpc.ServiceDesc whose messages
// are protobuf well-known types: fixtures are listed as a ListValue and Mealy
// machines travel as a Struct in the codec document shape. The server adapts
// domain types to those messages and calls into a provided Service.
package converter
