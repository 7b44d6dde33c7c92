package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-time-sheet/internal/config"
	"github.com/MKhiriev/go-time-sheet/internal/logger"
	"github.com/MKhiriev/go-time-sheet/internal/service"
)

// Pinger reports whether the persistence backend is reachable.
// *store.DB satisfies it through the embedded *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	db       Pinger

	// session cookie parameters, fixed at startup from config.App
	tokenDuration time.Duration
	cookieSecure  bool

	corsOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, db Pinger, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		db:            db,
		tokenDuration: cfg.App.TokenDuration,
		cookieSecure:  cfg.App.CookieSecure,
		corsOrigins:   cfg.Server.CORSOrigins,
		logger:        logger,
	}
}
