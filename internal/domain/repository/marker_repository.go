// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"overlap/internal/domain/entity"
)

// MarkerSource supplies the imported marker dataset, already parsed.
type MarkerSource interface {
	// LoadMarkers returns every marker with usable coordinates.
	// Markers whose coordinates cannot be parsed are dropped by the source.
	LoadMarkers(ctx context.Context) ([]entity.Marker, error)
}

// MarkerRepository holds the full imported marker set and the active (filtered) subset.
// Implementations return copies; callers never share slices with the store.
type MarkerRepository interface {
	// ReplaceAll stores a freshly imported set and resets the active subset to it.
	ReplaceAll(markers []entity.Marker)

	// All returns the full imported set.
	All() []entity.Marker

	// SetActive replaces the active subset.
	SetActive(markers []entity.Marker)

	// Active returns the current active subset.
	Active() []entity.Marker

	// Clear drops every marker.
	Clear()
}
