// Package server runs the vault's HTTP and gRPC transports and its
// background workers until a stop signal, then shuts them down gracefully.
package server
