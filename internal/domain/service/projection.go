// Package service defines interfaces for core, stateless domain logic.
// Implementations live in the infra layer.
package service

import "github.com/paulmach/orb"

// Projector maps geographic coordinates to screen coordinates and back.
// Implementations are immutable once built.
type Projector interface {
	// Project maps [longitude, latitude] to a screen position in pixels.
	Project(geo orb.Point) orb.Point

	// Unproject maps a screen position back to [longitude, latitude].
	// Positions outside the viewport are extrapolated.
	Unproject(screen orb.Point) orb.Point

	// Viewport returns the screen rectangle the projection is fitted to.
	Viewport() orb.Bound
}
