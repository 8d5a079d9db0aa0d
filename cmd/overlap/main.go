package main

import (
	"context"
	"io"
	"log/slog"

	"overlap/config"
	"overlap/internal/delivery"
	"overlap/internal/delivery/script"
	"overlap/internal/infra/loader"
	logs "overlap/internal/infra/log"
	"overlap/internal/infra/persistence/memory"
	"overlap/internal/infra/projection"
	"overlap/internal/infra/render"
	"overlap/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startSessionParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startSession,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		projection.NewFromConfig,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewMarkerStore,
			loader.NewMarkerSource,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newFrameOutput,
			newGeoJSONRenderer,
			render.NewLogRenderer,
			render.NewFromConfig,
		),
	)
}

// newFrameOutput opens the frame stream and closes it on shutdown
func newFrameOutput(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (io.WriteCloser, error) {
	out, err := render.OpenOutput(cfg.Output.Path)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.Output.FlushTimeout)
			defer cancel()

			done := make(chan error, 1)
			go func() { done <- out.Close() }()

			select {
			case err := <-done:
				return errors.Wrap(err, "failed to close frame output")
			case <-ctx.Done():
				logger.Warn("Timed out closing frame output", slog.String("path", cfg.Output.Path))
				return errors.WithStack(ctx.Err())
			}
		},
	})

	return out, nil
}

func newGeoJSONRenderer(out io.WriteCloser) *render.GeoJSONRenderer {
	return render.NewGeoJSONRenderer(out)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMapSession,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				script.NewRunner,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startSession(ctx context.Context, params startSessionParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			exitCode := 0
			if err := delivery.Serve(ctx); err != nil {
				params.Logger.Error("Session failed", slog.Any("error", err))
				exitCode = 1
			}

			// Trigger graceful shutdown to execute all OnStop hooks
			if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
				params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
			}
		}()
	}
}
