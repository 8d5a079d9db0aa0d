package entity

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// CircleRole identifies one of the two circles of a session.
type CircleRole string

const (
	CircleA CircleRole = "A"
	CircleB CircleRole = "B"
)

// Valid reports whether the role names one of the two circles.
func (r CircleRole) Valid() bool {
	return r == CircleA || r == CircleB
}

// Circle is a draggable, resizable circle in screen space.
type Circle struct {
	Role      CircleRole
	Center    orb.Point // Screen position in pixels.
	Radius    float64   // Radius in pixels, always > 0.
	GeoAnchor orb.Point // Geographic anchor the center is derived from.
}

// Contains reports whether p lies strictly inside the circle.
// Points on the boundary are outside.
func (c Circle) Contains(p orb.Point) bool {
	return planar.Distance(c.Center, p) < c.Radius
}

// CircleView is the circle as handed to a renderer.
type CircleView struct {
	Circle

	// GroundRadiusMeters approximates the radius on the ground along the
	// horizontal screen axis.
	GroundRadiusMeters float64
}
