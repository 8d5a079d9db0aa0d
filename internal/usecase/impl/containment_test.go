package impl

import (
	"testing"

	"overlap/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateHighlights_BothCirclesRequired(t *testing.T) {
	m := marker("x", entity.NewRating(4), entity.PriceTierModerate, orb.Point{400, 300})
	a := circle(entity.CircleA, orb.Point{400, 300}, 50)

	tests := []struct {
		name string
		b    entity.Circle
		want bool
	}{
		{name: "inside both", b: circle(entity.CircleB, orb.Point{450, 300}, 60), want: true},
		{name: "outside B", b: circle(entity.CircleB, orb.Point{450, 300}, 40)},
		{name: "on B boundary", b: circle(entity.CircleB, orb.Point{450, 300}, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placed := EvaluateHighlights(identityProjector{}, []entity.Marker{m}, a, tt.b)

			require.Len(t, placed, 1)
			assert.Equal(t, orb.Point{400, 300}, placed[0].Screen)
			assert.Equal(t, tt.want, placed[0].Highlighted)
		})
	}
}

func TestEvaluateHighlights_MissingAttributesParticipate(t *testing.T) {
	m := marker("bare", entity.Rating{}, "", orb.Point{10, 10})
	a := circle(entity.CircleA, orb.Point{10, 10}, 5)
	b := circle(entity.CircleB, orb.Point{12, 10}, 5)

	placed := EvaluateHighlights(identityProjector{}, []entity.Marker{m}, a, b)

	require.Len(t, placed, 1)
	assert.True(t, placed[0].Highlighted)
}

func TestEvaluateHighlights_MonotonicInRadius(t *testing.T) {
	markers := make([]entity.Marker, 0, 100)
	for x := 0.0; x < 100; x += 10 {
		for y := 0.0; y < 100; y += 10 {
			markers = append(markers, marker("m", entity.Rating{}, "", orb.Point{x, y}))
		}
	}

	a := circle(entity.CircleA, orb.Point{40, 50}, 30)
	previous := map[orb.Point]bool{}

	for radius := 10.0; radius <= 120; radius += 10 {
		b := circle(entity.CircleB, orb.Point{60, 50}, radius)

		for _, p := range EvaluateHighlights(identityProjector{}, markers, a, b) {
			if previous[p.Screen] {
				assert.True(t, p.Highlighted, "%v lost its highlight at radius %v", p.Screen, radius)
			}
			previous[p.Screen] = p.Highlighted
		}
	}
}

func TestEvaluateHighlights_Empty(t *testing.T) {
	placed := EvaluateHighlights(identityProjector{}, nil,
		circle(entity.CircleA, orb.Point{}, 1), circle(entity.CircleB, orb.Point{}, 1))

	assert.Empty(t, placed)
}
