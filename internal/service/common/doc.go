// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC client wrapper for the conversion service
// with per-call timeouts that decodes replies back into domain machines.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
