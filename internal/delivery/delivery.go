// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, consumer) whose
// lifecycle is managed by the application container.
type Delivery interface {
	// Serve blocks until the transport stops or the context is cancelled.
	Serve(ctx context.Context) error
}
