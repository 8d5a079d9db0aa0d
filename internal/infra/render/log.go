package render

import (
	"context"
	"log/slog"

	"overlap/internal/domain/entity"
	"overlap/internal/domain/service"
)

// LogRenderer logs a one-line summary of every frame.
type LogRenderer struct {
	logger *slog.Logger
}

var _ service.Renderer = (*LogRenderer)(nil)

func NewLogRenderer(logger *slog.Logger) *LogRenderer {
	return &LogRenderer{logger: logger}
}

func (r *LogRenderer) Render(ctx context.Context, frame entity.Frame) error {
	attrs := []slog.Attr{
		slog.String("session", frame.SessionID.String()),
		slog.Int("markers", len(frame.Markers)),
		slog.Int("highlighted", frame.HighlightedCount()),
		circleGroup(frame.CircleA),
		circleGroup(frame.CircleB),
	}

	if frame.Err != nil {
		r.logger.LogAttrs(ctx, slog.LevelWarn, "Frame", append(attrs, slog.Any("error", frame.Err))...)
		return nil
	}

	r.logger.LogAttrs(ctx, slog.LevelInfo, "Frame", attrs...)

	return nil
}

func circleGroup(c entity.CircleView) slog.Attr {
	return slog.Group("circle"+string(c.Role),
		slog.Float64("x", c.Center[0]),
		slog.Float64("y", c.Center[1]),
		slog.Float64("radius", c.Radius),
		slog.Float64("groundRadiusM", c.GroundRadiusMeters),
	)
}
