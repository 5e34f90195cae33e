// Package delivery defines the contract every transport server fulfills so
// main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport endpoint (HTTP server, worker, ...).
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
