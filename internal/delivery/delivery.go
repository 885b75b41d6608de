// Package delivery defines the contract every transport implementation
// (HTTP today, possibly others later) exposes to the application runner.
package delivery

import "context"

// Delivery is a serving transport. Implementations block inside Serve
// until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
