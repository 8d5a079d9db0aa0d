package impl

import (
	"slices"

	"overlap/internal/domain/entity"
)

// FilterMarkers returns the markers that pass both the rating and the price
// clause of the selection, in input order. An empty dimension passes everything.
func FilterMarkers(markers []entity.Marker, selection entity.FilterSelection) []entity.Marker {
	active := make([]entity.Marker, 0, len(markers))
	for _, m := range markers {
		if matchesRating(m, selection.RatingBands) && matchesPrice(m, selection.PriceTiers) {
			active = append(active, m)
		}
	}

	return active
}

func matchesRating(m entity.Marker, bands []entity.RatingBand) bool {
	if len(bands) == 0 {
		return true
	}

	return slices.ContainsFunc(bands, func(b entity.RatingBand) bool {
		return b.Includes(m.Rating)
	})
}

// Price tiers match exactly; a marker without a price never matches a selected tier.
func matchesPrice(m entity.Marker, tiers []entity.PriceTier) bool {
	if len(tiers) == 0 {
		return true
	}

	return slices.Contains(tiers, m.Price)
}
