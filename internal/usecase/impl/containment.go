package impl

import (
	"overlap/internal/domain/entity"
	"overlap/internal/domain/service"
)

// EvaluateHighlights projects every active marker and highlights those strictly
// inside both circles. Every call is a full rescan; nothing is cached.
func EvaluateHighlights(projector service.Projector, active []entity.Marker, a, b entity.Circle) []entity.PlacedMarker {
	placed := make([]entity.PlacedMarker, 0, len(active))
	for _, m := range active {
		p := projector.Project(m.Location)
		placed = append(placed, entity.PlacedMarker{
			Marker:      m,
			Screen:      p,
			Highlighted: a.Contains(p) && b.Contains(p),
		})
	}

	return placed
}
