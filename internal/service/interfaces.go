package service

import (
	"context"

	"github.com/MKhiriev/go-time-sheet/models"
)

// AuthService owns the credential store operations and the session token
// lifecycle.
type AuthService interface {
	// RegisterUser creates a new account from a username and plain-text
	// password.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the supplied credentials and returns the matching
	// account. Unknown username and wrong password produce the same
	// ErrInvalidCredentials.
	Login(ctx context.Context, user models.User) (models.User, error)

	// GetUser loads the account for an already verified user id.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw session token string and returns the
	// decoded token with the embedded user id.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SheetService owns sheet creation, listing, and updates. Every method takes
// the verified owner id from the authorization layer; client-supplied owner
// ids are never trusted.
type SheetService interface {
	CreateSheet(ctx context.Context, ownerID int64, sheet models.Sheet) (models.Sheet, error)
	ListSheets(ctx context.Context, ownerID int64) ([]models.Sheet, error)
	UpdateSheet(ctx context.Context, ownerID int64, sheet models.Sheet) error
}
