package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"assessment-portal/internal/api"
	"assessment-portal/internal/database"
	"assessment-portal/internal/enrich"
	"assessment-portal/internal/metrics"
	"assessment-portal/internal/telemetry"
	"assessment-portal/internal/websocket"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const serviceName = "assessment-portal"

func newServeCommand() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), skipMigrations)
		},
	}

	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply pending migrations on startup")
	return cmd
}

func runServe(ctx context.Context, skipMigrations bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	shutdownTracing, err := telemetry.Init(ctx, serviceName, cfg.OTel.Endpoint)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown otel")
		}
	}()

	pool, err := database.Open(ctx, cfg.DB.Source)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info().Msg("connected to database")

	if !skipMigrations {
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
	}

	wsHub := websocket.NewHub()
	go wsHub.Run(ctx)

	store := database.NewStore(pool)
	locator := enrich.NewLocator(cfg.Geo.BaseURL, cfg.Geo.Timeout)
	server := api.NewServer(cfg, store, locator, wsHub, metrics.NewRegistry())

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown server")
	}
	return nil
}
