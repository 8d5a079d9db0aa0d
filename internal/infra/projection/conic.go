// Package projection implements the geographic-to-screen projection of the map viewport.
package projection

import (
	"math"

	"overlap/config"
	domainerrors "overlap/internal/domain/errors"
	"overlap/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	epsilon = 1e-6
	halfPi  = math.Pi / 2

	// outlineSegments is the number of segments each bounding box edge is split
	// into before fitting; parallels are arcs in a conic projection.
	outlineSegments = 64
)

// Params configures a conformal conic projection fitted to a viewport.
type Params struct {
	Width     float64    // Viewport width in pixels.
	Height    float64    // Viewport height in pixels.
	Parallels [2]float64 // Standard parallels in degrees.
	Rotation  float64    // Degrees added to every longitude before projecting.
	Bounds    orb.Bound  // Geographic box that must inscribe the viewport.
}

// ConicConformal is a spherical Lambert conformal conic projection with two
// standard parallels, scaled and translated so that Bounds fits the viewport.
type ConicConformal struct {
	n, f    float64
	lambda0 float64

	k      float64
	tx, ty float64

	viewport orb.Bound
}

var _ service.Projector = (*ConicConformal)(nil)

// NewFromConfig builds the projection described by the viewport configuration.
func NewFromConfig(cfg *config.Config) (service.Projector, error) {
	if cfg.Viewport == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidViewport.WithDetails("viewport is not configured"))
	}

	vp := cfg.Viewport
	if len(vp.Parallels) != 2 || len(vp.LongitudeRange) != 2 || len(vp.LatitudeRange) != 2 {
		return nil, errors.WithStack(domainerrors.ErrInvalidViewport.WithDetails("parallels and ranges need two values each"))
	}

	return NewConicConformal(Params{
		Width:     vp.Width,
		Height:    vp.Height,
		Parallels: [2]float64{vp.Parallels[0], vp.Parallels[1]},
		Rotation:  vp.Rotation,
		Bounds: orb.MultiPoint{
			{vp.LongitudeRange[0], vp.LatitudeRange[0]},
			{vp.LongitudeRange[1], vp.LatitudeRange[1]},
		}.Bound(),
	})
}

// NewConicConformal builds the projection and fits it to the viewport.
func NewConicConformal(params Params) (*ConicConformal, error) {
	if params.Width <= 0 || params.Height <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidViewport.WithDetails("width and height must be positive"))
	}
	if params.Bounds.Max[0] <= params.Bounds.Min[0] || params.Bounds.Max[1] <= params.Bounds.Min[1] {
		return nil, errors.WithStack(domainerrors.ErrInvalidViewport.WithDetails("bounding box is degenerate"))
	}

	phi0 := degToRad(params.Parallels[0])
	phi1 := degToRad(params.Parallels[1])

	cy0 := math.Cos(phi0)
	var n float64
	if phi0 == phi1 {
		n = math.Sin(phi0)
	} else {
		n = math.Log(cy0/math.Cos(phi1)) / math.Log(tany(phi1)/tany(phi0))
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || math.Abs(n) < epsilon {
		return nil, errors.WithStack(domainerrors.ErrInvalidProjection)
	}

	p := &ConicConformal{
		n:        n,
		f:        cy0 * math.Pow(tany(phi0), n) / n,
		lambda0:  degToRad(params.Rotation),
		k:        1,
		viewport: orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{params.Width, params.Height}},
	}

	if err := p.fit(params.Bounds); err != nil {
		return nil, err
	}

	return p, nil
}

// fit chooses scale and translation so the projected outline of the box is
// centered in the viewport and touches it on the limiting axis.
func (p *ConicConformal) fit(box orb.Bound) error {
	outline := densify(box.ToRing(), outlineSegments)

	projected := make(orb.LineString, 0, len(outline))
	for _, geo := range outline {
		x, y := p.forward(geo)
		// y flipped so that the bound is expressed in screen orientation
		projected = append(projected, orb.Point{x, -y})
	}

	b := projected.Bound()
	dx := b.Max[0] - b.Min[0]
	dy := b.Max[1] - b.Min[1]
	if dx <= 0 || dy <= 0 || math.IsNaN(dx) || math.IsNaN(dy) {
		return errors.WithStack(domainerrors.ErrInvalidViewport.WithDetails("bounding box projects to an empty area"))
	}

	w, h := p.viewport.Max[0], p.viewport.Max[1]
	p.k = math.Min(w/dx, h/dy)
	p.tx = (w - p.k*(b.Min[0]+b.Max[0])) / 2
	p.ty = (h - p.k*(b.Min[1]+b.Max[1])) / 2

	return nil
}

// Project maps [longitude, latitude] in degrees to a screen position.
func (p *ConicConformal) Project(geo orb.Point) orb.Point {
	x, y := p.forward(geo)

	return orb.Point{p.tx + p.k*x, p.ty - p.k*y}
}

// Unproject maps a screen position back to [longitude, latitude] in degrees.
func (p *ConicConformal) Unproject(screen orb.Point) orb.Point {
	x := (screen[0] - p.tx) / p.k
	y := (p.ty - screen[1]) / p.k

	lambda, phi := p.invert(x, y)

	return orb.Point{radToDeg(wrapLambda(lambda - p.lambda0)), radToDeg(phi)}
}

// Viewport returns the screen rectangle the projection was fitted to.
func (p *ConicConformal) Viewport() orb.Bound {
	return p.viewport
}

// forward applies the rotation and the raw conic projection.
func (p *ConicConformal) forward(geo orb.Point) (x, y float64) {
	lambda := wrapLambda(degToRad(geo[0]) + p.lambda0)
	phi := degToRad(geo[1])

	if p.f > 0 {
		if phi < -halfPi+epsilon {
			phi = -halfPi + epsilon
		}
	} else if phi > halfPi-epsilon {
		phi = halfPi - epsilon
	}

	r := p.f / math.Pow(tany(phi), p.n)

	return r * math.Sin(p.n*lambda), p.f - r*math.Cos(p.n*lambda)
}

// invert is the inverse of the raw conic projection, before rotation.
func (p *ConicConformal) invert(x, y float64) (lambda, phi float64) {
	fy := p.f - y
	r := sign(p.n) * math.Sqrt(x*x+fy*fy)
	l := math.Atan2(x, math.Abs(fy)) * sign(fy)

	if fy*p.n < 0 {
		l -= math.Pi * sign(x) * sign(fy)
	}

	return l / p.n, 2*math.Atan(math.Pow(p.f/r, 1/p.n)) - halfPi
}

// densify splits every segment of the ring into n parts.
func densify(ring orb.Ring, n int) []orb.Point {
	points := make([]orb.Point, 0, len(ring)*n)
	for i := 0; i+1 < len(ring); i++ {
		a, b := ring[i], ring[i+1]
		for step := 0; step < n; step++ {
			t := float64(step) / float64(n)
			points = append(points, orb.Point{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t})
		}
	}

	return points
}

func tany(y float64) float64 {
	return math.Tan((halfPi + y) / 2)
}

func wrapLambda(lambda float64) float64 {
	switch {
	case lambda > math.Pi:
		return lambda - 2*math.Pi
	case lambda < -math.Pi:
		return lambda + 2*math.Pi
	default:
		return lambda
	}
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

func radToDeg(r float64) float64 {
	return r * 180 / math.Pi
}
