package store

import (
	"context"

	"github.com/MKhiriev/go-time-sheet/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with store-assigned
	// fields populated. Fails with ErrUsernameAlreadyExists on a duplicate
	// username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account with the given username or
	// ErrNoUserWasFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the account with the given id or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SheetRepository is the data-access contract for timesheet documents.
// Every method is scoped to an owner id taken from the verified session;
// no operation addresses a sheet by id alone.
type SheetRepository interface {
	// CreateSheet persists a new sheet and returns it with store-assigned
	// fields populated. OwnerID must already be set to the authenticated
	// caller's id.
	CreateSheet(ctx context.Context, sheet models.Sheet) (models.Sheet, error)

	// ListSheetsByOwner returns all sheets owned by ownerID, most recently
	// updated first, then most recently created. Returns an empty slice if
	// the owner has no sheets.
	ListSheetsByOwner(ctx context.Context, ownerID int64) ([]models.Sheet, error)

	// UpdateSheet replaces the mutable fields of the sheet matching both
	// sheet.SheetID and sheet.OwnerID and refreshes updated_at. Fails with
	// ErrSheetNotFound when the combined predicate matches nothing.
	UpdateSheet(ctx context.Context, sheet models.Sheet) error
}
