package impl

import (
	"overlap/config"
	"overlap/internal/domain/entity"
	domainerrors "overlap/internal/domain/errors"
	"overlap/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// CircleState holds circles A and B of a session.
type CircleState struct {
	projector service.Projector
	circles   map[entity.CircleRole]*entity.Circle
}

// NewCircleState places both circles from their geographic anchors.
func NewCircleState(projector service.Projector, a, b entity.Circle) (*CircleState, error) {
	for _, c := range []entity.Circle{a, b} {
		if c.Radius <= 0 {
			return nil, errors.WithStack(domainerrors.ErrInvalidRadius.WithDetails("circle " + string(c.Role)))
		}
	}

	a.Role, b.Role = entity.CircleA, entity.CircleB
	s := &CircleState{
		projector: projector,
		circles: map[entity.CircleRole]*entity.Circle{
			entity.CircleA: &a,
			entity.CircleB: &b,
		},
	}
	s.Reproject()

	return s, nil
}

// NewCircleStateFromConfig places the configured initial circles.
func NewCircleStateFromConfig(projector service.Projector, cfg *config.CirclesConfig) (*CircleState, error) {
	if cfg == nil {
		return nil, errors.New("circles are not configured")
	}

	return NewCircleState(projector,
		entity.Circle{GeoAnchor: orb.Point{cfg.A.Longitude, cfg.A.Latitude}, Radius: cfg.A.Radius},
		entity.Circle{GeoAnchor: orb.Point{cfg.B.Longitude, cfg.B.Latitude}, Radius: cfg.B.Radius},
	)
}

// Circle returns a copy of the circle with the given role.
func (s *CircleState) Circle(role entity.CircleRole) (entity.Circle, error) {
	c, ok := s.circles[role]
	if !ok {
		return entity.Circle{}, errors.WithStack(domainerrors.ErrUnknownCircle.WithDetails(string(role)))
	}

	return *c, nil
}

// SetCenterFromScreen moves the circle and re-derives its geographic anchor.
func (s *CircleState) SetCenterFromScreen(role entity.CircleRole, screen orb.Point) (entity.Circle, error) {
	c, ok := s.circles[role]
	if !ok {
		return entity.Circle{}, errors.WithStack(domainerrors.ErrUnknownCircle.WithDetails(string(role)))
	}

	c.Center = screen
	c.GeoAnchor = s.projector.Unproject(screen)

	return *c, nil
}

// SetRadius changes the circle's radius in pixels.
func (s *CircleState) SetRadius(role entity.CircleRole, radius float64) (entity.Circle, error) {
	c, ok := s.circles[role]
	if !ok {
		return entity.Circle{}, errors.WithStack(domainerrors.ErrUnknownCircle.WithDetails(string(role)))
	}
	if !(radius > 0) {
		return entity.Circle{}, errors.WithStack(domainerrors.ErrInvalidRadius.WithDetails(string(role)))
	}

	c.Radius = radius

	return *c, nil
}

// Contains reports whether p lies strictly inside the circle. Unknown roles contain nothing.
func (s *CircleState) Contains(role entity.CircleRole, p orb.Point) bool {
	c, ok := s.circles[role]
	if !ok {
		return false
	}

	return c.Contains(p)
}

// Reproject re-derives every center from its geographic anchor.
func (s *CircleState) Reproject() {
	for _, c := range s.circles {
		c.Center = s.projector.Project(c.GeoAnchor)
	}
}

// View returns the circle with its approximate radius on the ground.
func (s *CircleState) View(role entity.CircleRole) entity.CircleView {
	c, ok := s.circles[role]
	if !ok {
		return entity.CircleView{}
	}

	return entity.CircleView{Circle: *c, GroundRadiusMeters: groundRadius(s.projector, *c)}
}

// groundRadius measures the radius along the horizontal screen axis.
func groundRadius(projector service.Projector, c entity.Circle) float64 {
	center := projector.Unproject(c.Center)
	edge := projector.Unproject(orb.Point{c.Center[0] + c.Radius, c.Center[1]})

	return geo.Distance(center, edge)
}
