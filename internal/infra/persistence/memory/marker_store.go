// Package memory keeps the marker set of a session in process memory.
package memory

import (
	"slices"

	"overlap/internal/domain/entity"
	"overlap/internal/domain/repository"
)

// markerStore is not safe for concurrent use; a session is driven by a single event loop.
type markerStore struct {
	all    []entity.Marker
	active []entity.Marker
}

// NewMarkerStore creates an empty marker store
func NewMarkerStore() repository.MarkerRepository {
	return &markerStore{}
}

func (s *markerStore) ReplaceAll(markers []entity.Marker) {
	s.all = slices.Clone(markers)
	s.active = slices.Clone(markers)
}

func (s *markerStore) All() []entity.Marker {
	return slices.Clone(s.all)
}

func (s *markerStore) SetActive(markers []entity.Marker) {
	s.active = slices.Clone(markers)
}

func (s *markerStore) Active() []entity.Marker {
	return slices.Clone(s.active)
}

func (s *markerStore) Clear() {
	s.all = nil
	s.active = nil
}
