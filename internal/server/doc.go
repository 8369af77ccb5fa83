// Package server runs the biometric agent's HTTP transport.
//
// It owns startup, signal handling and graceful shutdown.
package server
