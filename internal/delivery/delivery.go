// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving surface started by the application container. Serve
// blocks until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
