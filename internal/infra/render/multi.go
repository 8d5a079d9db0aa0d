package render

import (
	"context"

	"overlap/config"
	"overlap/internal/domain/entity"
	"overlap/internal/domain/service"

	"go.uber.org/multierr"
)

// MultiRenderer fans out frames to multiple renderers.
// Every renderer receives every frame even if an earlier one fails.
type MultiRenderer struct {
	renderers []service.Renderer
}

var _ service.Renderer = (*MultiRenderer)(nil)

// NewMultiRenderer creates a renderer that draws to all provided renderers.
func NewMultiRenderer(renderers ...service.Renderer) *MultiRenderer {
	valid := make([]service.Renderer, 0, len(renderers))
	for _, r := range renderers {
		if r != nil {
			valid = append(valid, r)
		}
	}

	return &MultiRenderer{renderers: valid}
}

func (m *MultiRenderer) Render(ctx context.Context, frame entity.Frame) error {
	var err error
	for _, r := range m.renderers {
		err = multierr.Append(err, r.Render(ctx, frame))
	}

	return err
}

// NewFromConfig combines the GeoJSON stream with the optional frame log.
func NewFromConfig(cfg *config.Config, geo *GeoJSONRenderer, log *LogRenderer) service.Renderer {
	if cfg.Output == nil || !cfg.Output.LogFrames {
		return NewMultiRenderer(geo)
	}

	return NewMultiRenderer(geo, log)
}
