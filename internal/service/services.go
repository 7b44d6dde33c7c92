package service

import (
	"github.com/MKhiriev/go-time-sheet/internal/config"
	"github.com/MKhiriev/go-time-sheet/internal/logger"
	"github.com/MKhiriev/go-time-sheet/internal/store"
)

type Services struct {
	AuthService  AuthService
	SheetService SheetService
}

func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(repositories.UserRepository, cfg, logger),
		SheetService: NewSheetService(repositories.SheetRepository, logger),
	}
}
