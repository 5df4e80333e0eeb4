// Package remote implements the remote command.
//
// The command connects to a conversion server, asks it to convert fixtures
// and renders the returned Mealy machines. Calls wait for the server to
// become reachable within the call timeout and are retried when the
// connection drops.
package remote
