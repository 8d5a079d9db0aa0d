package impl

import (
	"testing"

	"overlap/config"
	"overlap/internal/domain/entity"
	domainerrors "overlap/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCircleState(t *testing.T) *CircleState {
	t.Helper()

	s, err := NewCircleState(identityProjector{},
		entity.Circle{GeoAnchor: orb.Point{100, 100}, Radius: 100},
		entity.Circle{GeoAnchor: orb.Point{100, 300}, Radius: 100},
	)
	require.NoError(t, err)

	return s
}

func TestNewCircleState_ProjectsAnchors(t *testing.T) {
	s := newTestCircleState(t)

	a, err := s.Circle(entity.CircleA)
	require.NoError(t, err)
	assert.Equal(t, entity.CircleA, a.Role)
	assert.Equal(t, orb.Point{100, 100}, a.Center)

	b, err := s.Circle(entity.CircleB)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{100, 300}, b.Center)
}

func TestNewCircleState_InvalidRadius(t *testing.T) {
	_, err := NewCircleState(identityProjector{},
		entity.Circle{Radius: 10},
		entity.Circle{Radius: 0},
	)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
}

func TestNewCircleStateFromConfig(t *testing.T) {
	s, err := NewCircleStateFromConfig(identityProjector{}, &config.CirclesConfig{
		A: config.CircleConfig{Longitude: -122.4, Latitude: 37.8, Radius: 100},
		B: config.CircleConfig{Longitude: -122.4, Latitude: 37.4, Radius: 80},
	})
	require.NoError(t, err)

	b, err := s.Circle(entity.CircleB)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{-122.4, 37.4}, b.GeoAnchor)
	assert.Equal(t, 80.0, b.Radius)

	_, err = NewCircleStateFromConfig(identityProjector{}, nil)
	assert.Error(t, err)
}

func TestCircleState_SetCenterFromScreen(t *testing.T) {
	s := newTestCircleState(t)

	c, err := s.SetCenterFromScreen(entity.CircleA, orb.Point{-20, 2000})
	require.NoError(t, err)

	// off-viewport positions are kept as is
	assert.Equal(t, orb.Point{-20, 2000}, c.Center)
	assert.Equal(t, orb.Point{-20, 2000}, c.GeoAnchor)
	assert.Equal(t, 100.0, c.Radius)

	b, err := s.Circle(entity.CircleB)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{100, 300}, b.Center)
}

func TestCircleState_SetRadius(t *testing.T) {
	s := newTestCircleState(t)

	c, err := s.SetRadius(entity.CircleB, 42)
	require.NoError(t, err)
	assert.Equal(t, 42.0, c.Radius)

	for _, radius := range []float64{0, -1} {
		_, err = s.SetRadius(entity.CircleB, radius)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
	}

	b, err := s.Circle(entity.CircleB)
	require.NoError(t, err)
	assert.Equal(t, 42.0, b.Radius, "rejected radius must not change state")
}

func TestCircleState_UnknownRole(t *testing.T) {
	s := newTestCircleState(t)

	_, err := s.SetCenterFromScreen("C", orb.Point{})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownCircle)

	_, err = s.SetRadius("C", 10)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownCircle)

	_, err = s.Circle("C")
	assert.ErrorIs(t, err, domainerrors.ErrUnknownCircle)

	assert.False(t, s.Contains("C", orb.Point{100, 100}))
}

func TestCircleState_ContainsIsStrict(t *testing.T) {
	s := newTestCircleState(t)

	assert.True(t, s.Contains(entity.CircleA, orb.Point{100, 100}))
	assert.True(t, s.Contains(entity.CircleA, orb.Point{199.9, 100}))
	assert.False(t, s.Contains(entity.CircleA, orb.Point{200, 100}))
}

func TestCircleState_Reproject(t *testing.T) {
	s := newTestCircleState(t)

	_, err := s.SetCenterFromScreen(entity.CircleA, orb.Point{5, 5})
	require.NoError(t, err)

	s.Reproject()

	a, err := s.Circle(entity.CircleA)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{5, 5}, a.Center)
}

func TestCircleState_ViewGroundRadius(t *testing.T) {
	s := newTestCircleState(t)

	_, err := s.SetCenterFromScreen(entity.CircleA, orb.Point{0, 0})
	require.NoError(t, err)
	_, err = s.SetRadius(entity.CircleA, 1)
	require.NoError(t, err)

	// one degree of longitude on the equator
	view := s.View(entity.CircleA)
	assert.InDelta(t, 111_250, view.GroundRadiusMeters, 500)
	assert.Equal(t, entity.CircleA, view.Role)

	assert.Zero(t, s.View("C").GroundRadiusMeters)
}
