package entity

import "github.com/google/uuid"

// Frame is everything a renderer needs to draw one state of a session.
type Frame struct {
	SessionID uuid.UUID
	Markers   []PlacedMarker
	CircleA   CircleView
	CircleB   CircleView

	// Err is set when the marker import failed; Markers is empty in that case.
	Err error
}

// HighlightedCount returns the number of highlighted markers.
func (f Frame) HighlightedCount() int {
	count := 0
	for _, m := range f.Markers {
		if m.Highlighted {
			count++
		}
	}

	return count
}

// HoverInfo is the readout shown while the pointer is over a marker.
type HoverInfo struct {
	Name   string
	Rating string
}
