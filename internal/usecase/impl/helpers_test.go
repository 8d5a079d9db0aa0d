package impl

import (
	"overlap/internal/domain/entity"
	"overlap/internal/domain/service"

	"github.com/paulmach/orb"
)

// identityProjector maps geo coordinates to identical screen coordinates so
// that tests can reason about pixels directly.
type identityProjector struct{}

var _ service.Projector = identityProjector{}

func (identityProjector) Project(geo orb.Point) orb.Point     { return geo }
func (identityProjector) Unproject(screen orb.Point) orb.Point { return screen }
func (identityProjector) Viewport() orb.Bound {
	return orb.Bound{Max: orb.Point{948, 844}}
}

func marker(name string, rating entity.Rating, price entity.PriceTier, at orb.Point) entity.Marker {
	return entity.Marker{Name: name, Rating: rating, Price: price, Location: at}
}

func circle(role entity.CircleRole, center orb.Point, radius float64) entity.Circle {
	return entity.Circle{Role: role, Center: center, Radius: radius, GeoAnchor: center}
}
