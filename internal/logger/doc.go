// Package logger wraps zap for the moore2mealy binaries.
//
// It keeps one global sugared logger writing console-encoded lines to stderr,
// so stdout stays reserved for rendered machines. Loggers travel in contexts
// (ToContext, FromContext, WithName, WithKV) and the package-level helpers
// (Infof, DebugKV, ErrorKV, ...) log through the logger found in a context.
package logger
