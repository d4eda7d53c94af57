// Package delivery defines the entry points that expose the use cases to the outside world.
package delivery

import "context"

// Delivery is a long-running server started from an fx invoke.
type Delivery interface {
	Serve(ctx context.Context) error
}
