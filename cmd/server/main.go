// Package main is the entry point for the farm assistant API server.
//
// Its job is deliberately small: load environment configuration, build a
// logger, hand both to the server package, and block until shutdown. All
// real behaviour lives under internal/.
package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/sakif/farm-assistant/internal/server"
)

func main() {
	// .env is a development convenience; in production the variables come
	// from the real environment and the file simply doesn't exist.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", slog.String("error", err.Error()))
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			logger.Error("invalid PORT value", slog.String("value", portStr))
			os.Exit(1)
		}
		port = p
	}

	// The store defaults to in-memory: scans and activities are session
	// bookkeeping, not a system of record. Set DB_PATH to a file to keep
	// them across restarts.
	dbPath := ":memory:"
	if envDB := os.Getenv("DB_PATH"); envDB != "" {
		dbPath = envDB
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		logger.Warn("GEMINI_API_KEY not set — diagnosis, market insight and voice endpoints will fail")
	}
	weatherKey := os.Getenv("OPENWEATHER_API_KEY")
	if weatherKey == "" {
		logger.Warn("OPENWEATHER_API_KEY not set — weather will be synthetic")
	}

	cfg := server.Config{
		Port:              port,
		DBPath:            dbPath,
		GeminiAPIKey:      geminiKey,
		GeminiModel:       os.Getenv("GEMINI_MODEL"),
		OpenWeatherAPIKey: weatherKey,
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// logLevel maps LOG_LEVEL to a slog level, defaulting to info.
func logLevel() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
