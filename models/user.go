package models

import "time"

// User represents an account entity used for authentication and sheet
// ownership. PasswordHash is a bcrypt digest and must never leave the
// trusted boundary.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the store; immutable after creation.
	UserID int64 `json:"id"`

	// Username is the unique login identifier, stored case-sensitively.
	Username string `json:"username"`

	// Password carries the plain-text password on inbound signup/login
	// requests only. It is never persisted and never serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the salted one-way bcrypt digest of the password.
	// Excluded from JSON serialization.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
