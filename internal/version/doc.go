// Package version exposes moore2mealy build metadata.
//
// Version, Commit and BuildTime are injected with -ldflags "-X ..." and keep
// local-build defaults otherwise. Short and Full format them for the CLI,
// UserAgent tags outgoing gRPC calls.
package version
