package impl

import (
	"testing"

	"overlap/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

var (
	bandTop    = entity.RatingBand{Name: "rating1", Min: 4.0, Max: 5.0}
	bandThree  = entity.RatingBand{Name: "rating2", Min: 3.0, Max: 3.99}
	noRating   = entity.Rating{}
	filterPool = []entity.Marker{
		marker("top", entity.NewRating(4.5), entity.PriceTierModerate, orb.Point{1, 1}),
		marker("mid", entity.NewRating(3.5), entity.PriceTierInexpensive, orb.Point{2, 2}),
		marker("edge", entity.NewRating(4.0), entity.PriceTierVeryPricey, orb.Point{3, 3}),
		marker("unrated", noRating, entity.PriceTierModerate, orb.Point{4, 4}),
		marker("bare", noRating, "", orb.Point{5, 5}),
	}
)

func names(markers []entity.Marker) []string {
	out := make([]string, 0, len(markers))
	for _, m := range markers {
		out = append(out, m.Name)
	}

	return out
}

func TestFilterMarkers(t *testing.T) {
	tests := []struct {
		name      string
		selection entity.FilterSelection
		want      []string
	}{
		{
			name: "empty selection passes everything",
			want: []string{"top", "mid", "edge", "unrated", "bare"},
		},
		{
			name:      "rating band excludes ratings outside it",
			selection: entity.FilterSelection{RatingBands: []entity.RatingBand{bandTop}},
			want:      []string{"top", "edge"},
		},
		{
			name:      "bands are a union",
			selection: entity.FilterSelection{RatingBands: []entity.RatingBand{bandTop, bandThree}},
			want:      []string{"top", "mid", "edge"},
		},
		{
			name:      "price only keeps unrated markers with that price",
			selection: entity.FilterSelection{PriceTiers: []entity.PriceTier{entity.PriceTierModerate}},
			want:      []string{"top", "unrated"},
		},
		{
			name: "rating and price are intersected",
			selection: entity.FilterSelection{
				RatingBands: []entity.RatingBand{bandTop},
				PriceTiers:  []entity.PriceTier{entity.PriceTierVeryPricey},
			},
			want: []string{"edge"},
		},
		{
			name:      "price match is exact",
			selection: entity.FilterSelection{PriceTiers: []entity.PriceTier{"$$ "}},
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(FilterMarkers(filterPool, tt.selection)))
		})
	}
}

func TestFilterMarkers_Idempotent(t *testing.T) {
	selection := entity.FilterSelection{
		RatingBands: []entity.RatingBand{bandTop, bandThree},
		PriceTiers:  []entity.PriceTier{entity.PriceTierModerate, entity.PriceTierVeryPricey},
	}

	once := FilterMarkers(filterPool, selection)
	twice := FilterMarkers(once, selection)

	assert.Equal(t, once, twice)
}

func TestFilterMarkers_DoesNotMutateInput(t *testing.T) {
	input := append([]entity.Marker(nil), filterPool...)

	FilterMarkers(input, entity.FilterSelection{RatingBands: []entity.RatingBand{bandTop}})

	assert.Equal(t, filterPool, input)
}
