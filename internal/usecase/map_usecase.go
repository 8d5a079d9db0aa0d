package usecase

import (
	"context"

	"overlap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// MapUsecase is one interactive map session: a marker set, a filter
// selection and the two circles A and B. Every mutation recomputes the
// highlights and renders exactly one frame before returning.
// A session is driven by a single event loop and is not safe for concurrent use.
type MapUsecase interface {
	// ID identifies the session in logs and frames
	ID() uuid.UUID

	// Import loads the marker set from the configured source.
	// On failure the store is cleared and an empty frame carrying the error is rendered.
	Import(ctx context.Context) error

	// ApplyFilter replaces the filter selection and re-derives the active subset.
	// Circle state is untouched.
	ApplyFilter(ctx context.Context, selection entity.FilterSelection) error

	// DragCircle moves the circle's center to a screen position. No clamping is applied.
	DragCircle(ctx context.Context, role entity.CircleRole, screen orb.Point) (entity.Circle, error)

	// ResizeCircle sets the circle's radius in pixels.
	ResizeCircle(ctx context.Context, role entity.CircleRole, radius float64) (entity.Circle, error)

	// Recompute evaluates the highlight of every active marker without rendering.
	Recompute() []entity.PlacedMarker

	// Frame returns the current state as a renderable frame without rendering it.
	Frame() entity.Frame

	// Hover returns the topmost active marker under the pointer, if any.
	Hover(screen orb.Point) (entity.HoverInfo, bool)
}
