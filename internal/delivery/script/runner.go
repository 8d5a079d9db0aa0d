package script

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"overlap/config"
	"overlap/internal/delivery"
	"overlap/internal/domain/entity"
	domainerrors "overlap/internal/domain/errors"
	"overlap/internal/usecase"
	"overlap/internal/util"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RunnerParams holds dependencies for the script runner, injected by Fx.
type RunnerParams struct {
	fx.In

	Config  *config.Config
	Session usecase.MapUsecase
	Logger  *slog.Logger
}

// Runner imports the markers and replays the configured event script, one
// event at a time.
type Runner struct {
	scriptPath string
	session    usecase.MapUsecase
	controls   *Controls
	logger     *slog.Logger
}

var _ delivery.Delivery = (*Runner)(nil)

func NewRunner(params RunnerParams) (delivery.Delivery, error) {
	if params.Config.Data == nil {
		return nil, errors.New("data is not configured")
	}

	return &Runner{
		scriptPath: params.Config.Data.ScriptPath,
		session:    params.Session,
		controls:   NewControls(params.Config),
		logger:     params.Logger.With(slog.String("session", params.Session.ID().String())),
	}, nil
}

func (r *Runner) Serve(ctx context.Context) error {
	start := time.Now()

	script := &Script{}
	if r.scriptPath != "" {
		loaded, err := Load(r.scriptPath)
		if err != nil {
			return err
		}
		script = loaded
	}

	if err := r.session.Import(ctx); err != nil {
		return err
	}

	for i, event := range script.Events {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "stopped before event %d", i)
		}

		if err := r.Apply(ctx, event); err != nil {
			return errors.Wrapf(err, "event %d (%s)", i, event.Type)
		}
	}

	r.logger.Info("Script finished",
		slog.Int("events", len(script.Events)),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return nil
}

// Apply runs a single event to completion.
func (r *Runner) Apply(ctx context.Context, event Event) error {
	switch event.Type {
	case EventFilter:
		selection, err := r.controls.Selection(event.Checked)
		if err != nil {
			return err
		}

		return r.session.ApplyFilter(ctx, selection)

	case EventDrag:
		_, err := r.session.DragCircle(ctx, circleRole(event.Circle), point(event.X, event.Y))

		return err

	case EventResize:
		var value float64
		if event.Value != nil {
			value = *event.Value
		}
		_, err := r.session.ResizeCircle(ctx, circleRole(event.Circle), r.controls.ClampRadius(value))

		return err

	case EventHover:
		at := point(event.X, event.Y)
		if info, ok := r.session.Hover(at); ok {
			r.logger.Info("Hover",
				slog.String("name", info.Name),
				slog.String("rating", info.Rating),
			)
		} else {
			r.logger.Debug("Hover over empty map", slog.Float64("x", at[0]), slog.Float64("y", at[1]))
		}

		return nil

	default:
		return errors.WithStack(domainerrors.ErrUnknownEvent.WithDetails(event.Type))
	}
}

func circleRole(name string) entity.CircleRole {
	return entity.CircleRole(strings.ToUpper(strings.TrimSpace(name)))
}

func point(x, y *float64) orb.Point {
	var p orb.Point
	if x != nil {
		p[0] = *x
	}
	if y != nil {
		p[1] = *y
	}

	return p
}
