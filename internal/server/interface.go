package server

import "context"

// Server serves the meeting assistant web UI
type Server interface {
	// Listen blocks serving HTTP on addr until Shutdown is called.
	Listen(addr string) error
	Shutdown(ctx context.Context) error
}
