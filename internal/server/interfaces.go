package server

// Server is the lifecycle of the transport servers. RunServer blocks until
// a stop signal arrives and every transport has shut down.
type Server interface {
	RunServer()
	Shutdown()
}
