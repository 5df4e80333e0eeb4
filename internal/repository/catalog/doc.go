// Package catalog stores the Moore machines that can be converted.
//
// Builtin serves the fixtures compiled into the binary, Memory serves an
// arbitrary list, and FileRepository persists a list as YAML so that users
// can convert their own machines with the convert and serve commands.
package catalog
