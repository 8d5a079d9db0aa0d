package impl

import (
	"context"
	"log/slog"

	"overlap/config"
	"overlap/internal/domain/entity"
	"overlap/internal/domain/repository"
	"overlap/internal/domain/service"
	"overlap/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMarkerRadius = 5.0

type mapSession struct {
	id        uuid.UUID
	projector service.Projector
	source    repository.MarkerSource
	store     repository.MarkerRepository
	renderer  service.Renderer
	circles   *CircleState
	logger    *slog.Logger

	selection    entity.FilterSelection
	markerRadius float64
	importErr    error
}

// MapSessionParams holds dependencies for MapSession, injected by Fx.
type MapSessionParams struct {
	fx.In

	Config    *config.Config
	Projector service.Projector
	Source    repository.MarkerSource
	Store     repository.MarkerRepository
	Renderer  service.Renderer
	Logger    *slog.Logger
}

// NewMapSession creates a session with the configured circles and an empty marker set
func NewMapSession(params MapSessionParams) (usecase.MapUsecase, error) {
	circles, err := NewCircleStateFromConfig(params.Projector, params.Config.Circles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to place circles")
	}

	markerRadius := defaultMarkerRadius
	if params.Config.Controls != nil && params.Config.Controls.MarkerRadius > 0 {
		markerRadius = params.Config.Controls.MarkerRadius
	}

	id := uuid.New()

	return &mapSession{
		id:           id,
		projector:    params.Projector,
		source:       params.Source,
		store:        params.Store,
		renderer:     params.Renderer,
		circles:      circles,
		logger:       params.Logger.With(slog.String("session", id.String())),
		markerRadius: markerRadius,
	}, nil
}

func (s *mapSession) ID() uuid.UUID {
	return s.id
}

// Import loads the marker set and renders the first frame
func (s *mapSession) Import(ctx context.Context) error {
	markers, err := s.source.LoadMarkers(ctx)
	if err != nil {
		s.store.Clear()
		s.importErr = err
		s.logger.Error("Marker import failed", slog.Any("error", err))

		if renderErr := s.render(ctx); renderErr != nil {
			s.logger.Error("Failed to render import failure", slog.Any("error", renderErr))
		}

		return errors.Wrap(err, "failed to import markers")
	}

	s.importErr = nil
	s.store.ReplaceAll(markers)
	s.store.SetActive(FilterMarkers(markers, s.selection))

	s.logger.Info("Markers imported",
		slog.Int("markers", len(markers)),
		slog.Int("active", len(s.store.Active())),
	)

	return s.render(ctx)
}

// ApplyFilter re-derives the active subset from the full set
func (s *mapSession) ApplyFilter(ctx context.Context, selection entity.FilterSelection) error {
	s.selection = selection
	s.store.SetActive(FilterMarkers(s.store.All(), selection))

	s.logger.Debug("Filter applied",
		slog.Int("ratingBands", len(selection.RatingBands)),
		slog.Int("priceTiers", len(selection.PriceTiers)),
		slog.Int("active", len(s.store.Active())),
	)

	return s.render(ctx)
}

func (s *mapSession) DragCircle(ctx context.Context, role entity.CircleRole, screen orb.Point) (entity.Circle, error) {
	c, err := s.circles.SetCenterFromScreen(role, screen)
	if err != nil {
		return entity.Circle{}, err
	}

	return c, s.render(ctx)
}

func (s *mapSession) ResizeCircle(ctx context.Context, role entity.CircleRole, radius float64) (entity.Circle, error) {
	c, err := s.circles.SetRadius(role, radius)
	if err != nil {
		return entity.Circle{}, err
	}

	return c, s.render(ctx)
}

func (s *mapSession) Recompute() []entity.PlacedMarker {
	a, _ := s.circles.Circle(entity.CircleA)
	b, _ := s.circles.Circle(entity.CircleB)

	return EvaluateHighlights(s.projector, s.store.Active(), a, b)
}

func (s *mapSession) Frame() entity.Frame {
	return entity.Frame{
		SessionID: s.id,
		Markers:   s.Recompute(),
		CircleA:   s.circles.View(entity.CircleA),
		CircleB:   s.circles.View(entity.CircleB),
		Err:       s.importErr,
	}
}

// Hover searches from the last drawn marker, which is the topmost one
func (s *mapSession) Hover(screen orb.Point) (entity.HoverInfo, bool) {
	active := s.store.Active()
	for i := len(active) - 1; i >= 0; i-- {
		m := active[i]
		if planar.Distance(s.projector.Project(m.Location), screen) < s.markerRadius {
			return entity.HoverInfo{Name: m.Name, Rating: m.Rating.Label()}, true
		}
	}

	return entity.HoverInfo{}, false
}

func (s *mapSession) render(ctx context.Context) error {
	frame := s.Frame()

	if err := s.renderer.Render(ctx, frame); err != nil {
		return errors.Wrap(err, "failed to render frame")
	}

	s.logger.Debug("Frame rendered",
		slog.Int("markers", len(frame.Markers)),
		slog.Int("highlighted", frame.HighlightedCount()),
	)

	return nil
}
