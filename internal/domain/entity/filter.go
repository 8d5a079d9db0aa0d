package entity

// RatingBand is an inclusive rating range bound to a named checkbox.
type RatingBand struct {
	Name string
	Min  float64
	Max  float64
}

// Includes reports whether the rating falls within the band, both ends inclusive.
// An absent rating is never included.
func (b RatingBand) Includes(r Rating) bool {
	return r.Valid && r.Value >= b.Min && r.Value <= b.Max
}

// FilterSelection is a snapshot of the checked rating bands and price tiers.
// An empty dimension places no restriction on markers.
type FilterSelection struct {
	RatingBands []RatingBand
	PriceTiers  []PriceTier
}

// IsEmpty reports whether the selection restricts nothing.
func (s FilterSelection) IsEmpty() bool {
	return len(s.RatingBands) == 0 && len(s.PriceTiers) == 0
}
