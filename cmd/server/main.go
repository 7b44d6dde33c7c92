package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-time-sheet/internal/config"
	myHTTP "github.com/MKhiriev/go-time-sheet/internal/handler/http"
	"github.com/MKhiriev/go-time-sheet/internal/logger"
	"github.com/MKhiriev/go-time-sheet/internal/server"
	"github.com/MKhiriev/go-time-sheet/internal/service"
	"github.com/MKhiriev/go-time-sheet/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("timesheet-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = ephemeralSignKey(log)
		log.Warn().Msg("APP_TOKEN_SIGN_KEY is not set: using an ephemeral random key, all sessions will be invalidated on restart")
	}

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to the database")
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing the database")
		}
	}()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, cfg.App, log)
	handler := myHTTP.NewHandler(services, db, cfg, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// ephemeralSignKey generates a random HMAC key for the current process only.
func ephemeralSignKey(log *logger.Logger) string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatal().Err(err).Msg("error generating ephemeral sign key")
	}
	return hex.EncodeToString(key)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
