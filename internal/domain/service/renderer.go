package service

import (
	"context"

	"overlap/internal/domain/entity"
)

// Renderer draws frames produced by a map session.
// Visual styling belongs to the renderer; the session only decides what is highlighted.
type Renderer interface {
	Render(ctx context.Context, frame entity.Frame) error
}
