// Package server runs the customer portal HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown on SIGINT, SIGTERM or SIGQUIT.
package server
