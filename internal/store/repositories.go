package store

import (
	"github.com/MKhiriev/go-time-sheet/internal/logger"
)

// Repositories bundles every data-access component backed by the shared
// database handle.
type Repositories struct {
	UserRepository  UserRepository
	SheetRepository SheetRepository
}

// NewRepositories constructs all repositories on top of db.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:  NewUserRepository(db, logger),
		SheetRepository: NewSheetRepository(db, logger),
	}
}
