package delivery

import "context"

// Delivery drives the application from an outer surface.
type Delivery interface {
	Serve(ctx context.Context) error
}
