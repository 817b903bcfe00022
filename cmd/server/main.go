// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"bookdesk/internal/catalog"
	"bookdesk/internal/config"
	"bookdesk/internal/identity"
	"bookdesk/internal/middleware"
	"bookdesk/internal/requests"
	"bookdesk/internal/seed"
	"bookdesk/internal/telemetry"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg := config.Load()

	data, err := seed.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load seed data")
	}

	ctx := context.Background()
	if cfg.OTLPEndpoint != "" {
		shutdown, err := telemetry.Setup(ctx, cfg.OTLPEndpoint)
		if err != nil {
			log.Fatal().Err(err).Msg("init telemetry")
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	catalogSvc := catalog.NewService(data.Books)
	requestSvc := requests.NewService(catalogSvc, data.Requests)
	identitySvc := identity.NewService(data.Users)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log.Logger))
	r.Use(middleware.RateLimit(middleware.NewIPRateLimiter(
		rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst,
	)))

	catalog.NewHandler(catalogSvc).Register(r)
	requests.NewHandler(requestSvc).Register(r)
	identity.NewHandler(identitySvc).Register(r)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	log.Info().
		Int("books", len(data.Books)).
		Int("requests", len(data.Requests)).
		Int("users", len(data.Users)).
		Str("port", cfg.Port).
		Msg("bookdesk listening")

	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
