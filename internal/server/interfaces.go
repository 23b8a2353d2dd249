package server

// Server is the lifecycle contract for the transport servers owned by this
// package. RunServer blocks until the process is asked to stop; Shutdown
// drains in-flight requests and stops background workers.
type Server interface {
	// RunServer starts accepting requests and blocks until shutdown completes.
	RunServer()

	// Shutdown stops background workers first, then the HTTP listener.
	Shutdown()
}
