// Package server wires the application together: router, middleware, and
// every route definition.
//
// COMPOSITION ROOT:
// New() is the one place the full dependency chain is assembled:
//
//	sqlite.DB → repositories
//	GeminiClient → ai.Service (the gateway every AI endpoint shares)
//	catalog/weather services
//	handlers → routes
//
// Each layer only receives what it needs: handlers get services and
// repository interfaces, never the raw *sql.DB. main.go stays minimal —
// read config, build a Config, call New and Start.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/farm-assistant/internal/ai"
	"github.com/sakif/farm-assistant/internal/handler"
	"github.com/sakif/farm-assistant/internal/middleware"
	sqliteRepo "github.com/sakif/farm-assistant/internal/repository/sqlite"
	"github.com/sakif/farm-assistant/internal/service"
)

// Config holds server configuration, loaded from the environment by main.
type Config struct {
	Port   int
	DBPath string // ":memory:" for a throwaway store, a file path to persist

	GeminiAPIKey string
	GeminiModel  string // empty selects the gateway default

	OpenWeatherAPIKey string // empty disables live weather; synthetic data is served instead
}

// Server is the HTTP server and the resources it owns. The database
// connection is closed on shutdown.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates a Server with all dependencies wired.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}
	s.setupRoutes()
	return s, nil
}

// setupRoutes configures middleware and the full route table.
//
// MIDDLEWARE ORDER:
// RequestID first so the logger can include it, RealIP so logs show the
// client behind a proxy, then our request logger, then Recoverer so a
// panicking handler becomes a logged 500 instead of a dead process.
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)

	// One gateway instance serves every AI-backed endpoint.
	gateway := ai.NewService(ai.NewGeminiClient(s.config.GeminiAPIKey, s.config.GeminiModel), s.logger)

	marketService := service.NewMarketService(s.logger)
	schemesService := service.NewSchemesService(s.logger)
	weatherService := service.NewWeatherService(s.config.OpenWeatherAPIKey, s.logger)

	diagnoseHandler := handler.NewDiagnoseHandler(gateway, s.db, s.db, s.logger)
	marketHandler := handler.NewMarketHandler(marketService, gateway, s.db, s.logger)
	schemesHandler := handler.NewSchemesHandler(schemesService, s.db, s.logger)
	voiceHandler := handler.NewVoiceHandler(gateway, s.db, s.logger)
	weatherHandler := handler.NewWeatherHandler(weatherService, s.logger)
	activityHandler := handler.NewActivityHandler(s.db, s.logger)
	userHandler := handler.NewUserHandler(s.db, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/diagnose-disease", diagnoseHandler.HandleDiagnose)

		r.Get("/market-prices", marketHandler.HandleListPrices)
		r.Get("/market-prices/{crop}", marketHandler.HandleGetPrice)
		r.Get("/market-prices/{crop}/insight", marketHandler.HandleCropInsight)
		r.Post("/market-insight", marketHandler.HandleInsight)
		r.Post("/market-analysis", marketHandler.HandleAnalysis)

		r.Get("/schemes", schemesHandler.HandleList)
		r.Get("/schemes/search", schemesHandler.HandleSearch)
		r.Post("/schemes/recommend", schemesHandler.HandleRecommend)

		r.Post("/voice-query", voiceHandler.HandleQuery)

		r.Get("/weather", weatherHandler.HandleCurrent)

		r.Get("/activities/{userId}", activityHandler.HandleListByUser)

		r.Post("/users", userHandler.HandleRegister)
		r.Get("/users/{id}", userHandler.HandleGet)
	})
}

// Handler exposes the configured router, mainly for httptest in integration
// tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests 30
// seconds, close the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Port),
		Handler: s.router,
		// Diagnosis uploads carry multi-megabyte base64 bodies and the AI
		// calls themselves run up to 30s, so read/write generously.
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
