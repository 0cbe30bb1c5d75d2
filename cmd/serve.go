package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"spacescope/internal/api"
	"spacescope/internal/api/handler/v1handler"
	internalassistant "spacescope/internal/assistant"
	"spacescope/internal/config"
	"spacescope/internal/earth"
	"spacescope/internal/profile"
	"spacescope/internal/rag"
	"spacescope/internal/snapshot"
	"spacescope/internal/status"
	"spacescope/internal/worker"
	"spacescope/pkg/assistant"
	"spacescope/pkg/assistant/gemini"
	"spacescope/pkg/logger"
	"spacescope/pkg/openmeteo"
	"spacescope/pkg/remote"
	"spacescope/pkg/spacefeed/upstream"
	"spacescope/pkg/storage/postgres"
	"spacescope/pkg/weather/weatherapi"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupGenerator connects the generative AI backend. Both results are nil
// when no API key is configured.
func setupGenerator(ctx context.Context, cfg *config.Config) (assistant.Generator, assistant.Embedder) {
	if cfg.Assistant.APIKey == "" {
		logger.Warn(ctx, "no assistant API key configured, AI features will serve fallbacks")

		return nil, nil
	}

	client, err := gemini.New(ctx, gemini.Options{
		APIKey:         cfg.Assistant.APIKey,
		Model:          cfg.Assistant.Model,
		EmbeddingModel: cfg.Assistant.EmbeddingModel,
		BaseURL:        cfg.Assistant.BaseURL,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create assistant client", zap.Error(err))
	}

	return client, client
}

// setupWorker starts the feed refresh queue and returns its stop function.
func setupWorker(ctx context.Context,
	cfg *config.Config,
	pgsql *postgres.PgSQL,
	recorder snapshot.Recorder) func(ctx context.Context) {
	if !cfg.Worker.Enabled {
		return func(context.Context) {}
	}

	riverClient, err := worker.Start(ctx, pgsql.Pool, recorder, worker.NewOptions(cfg))
	if err != nil {
		logger.Error(ctx, "could not start worker, feed history will not refresh", zap.Error(err))

		return func(context.Context) {}
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping worker...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop worker", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := api.NewMeterProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			fetcher, err := remote.New(remote.Options{
				Timeout:       cfg.Upstream.Timeout,
				MaxBodyBytes:  cfg.Upstream.MaxBodyBytes,
				UserAgent:     cfg.Upstream.UserAgent,
				MeterProvider: mp,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create fetcher", zap.Error(err))
			}

			feeds := upstream.New(fetcher, upstream.Endpoints{
				ISS:      cfg.Upstream.ISSURL,
				Solar:    cfg.Upstream.SolarURL,
				APOD:     cfg.Upstream.APODURL,
				SpaceX:   cfg.Upstream.SpaceXURL,
				TechPort: cfg.Upstream.TechPortURL,
			}, cfg.Upstream.NASAAPIKey)
			meteo := openmeteo.New(fetcher, openmeteo.Endpoints{
				Geocoding:  cfg.Upstream.OpenMeteo.GeocodingURL,
				Forecast:   cfg.Upstream.OpenMeteo.ForecastURL,
				AirQuality: cfg.Upstream.OpenMeteo.AirQualityURL,
				Flood:      cfg.Upstream.OpenMeteo.FloodURL,
				Archive:    cfg.Upstream.OpenMeteo.ArchiveURL,
			})

			gen, embedder := setupGenerator(ctx, cfg)
			engine, err := rag.New(ctx, fetcher, gen, embedder, rag.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create RAG engine", zap.Error(err))
			}

			deps := api.Deps{
				Deps: v1handler.Deps{
					Feeds:     feeds,
					Weather:   weatherapi.New(fetcher, cfg.Upstream.WeatherURL, cfg.Upstream.WeatherAPIKey),
					Earth:     earth.New(meteo),
					RAG:       engine,
					Assistant: internalassistant.New(fetcher, gen, engine, internalassistant.NewOptions(cfg)),
				},
				MeterProvider: mp,
			}

			// the gateway keeps serving the feeds without a database
			var pinger status.Pinger
			stopWorker := func(context.Context) {}
			pgsql, err := connectPostgres(ctx, cfg)
			if err != nil {
				logger.Error(ctx, "could not connect to postgres, profile and history routes are disabled",
					zap.Error(err))
			} else {
				defer closer(ctx, pgsql)()

				recorder := snapshot.New(pgsql, feeds, snapshot.NewOptions(cfg))
				deps.Profile = profile.New(pgsql)
				deps.Snapshots = recorder
				pinger = pgsql

				stopWorker = setupWorker(ctx, cfg, pgsql, recorder)
			}
			deps.Status = status.New(fetcher, feeds, pinger, gen != nil)

			stopWebserver := setupServer(ctx, cfg, deps)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not stop meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
