// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"

	"github.com/paulmach/orb"
)

// PriceTier is the price category of a marker, from "$" to "$$$$".
// The zero value means the price is absent.
type PriceTier string

const (
	PriceTierInexpensive PriceTier = "$"
	PriceTierModerate    PriceTier = "$$"
	PriceTierExpensive   PriceTier = "$$$"
	PriceTierVeryPricey  PriceTier = "$$$$"
)

// Rating is an optional numeric rating in [0,5].
type Rating struct {
	Value float64
	Valid bool
}

// NewRating returns a valid rating.
func NewRating(v float64) Rating {
	return Rating{Value: v, Valid: true}
}

// Label formats the rating for display, "N/A" when it is absent.
func (r Rating) Label() string {
	if !r.Valid {
		return "N/A"
	}

	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// Marker is a point of interest (a restaurant) imported from the dataset.
// Markers are never mutated after import.
type Marker struct {
	Name     string    // Display name.
	Rating   Rating    // Optional rating.
	Price    PriceTier // Optional price tier.
	Location orb.Point // Geographic position as [longitude, latitude].
}

// PlacedMarker is a marker with its derived screen position and highlight decision.
type PlacedMarker struct {
	Marker
	Screen      orb.Point
	Highlighted bool
}
