package server

// Server is the process-level view of the portal's HTTP server.
type Server interface {
	// RunServer blocks until a stop signal arrives and in-flight requests
	// have drained.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests
	// up to a fixed timeout.
	Shutdown()
}
