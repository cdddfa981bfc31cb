package domain

import (
	"context"
	"time"
)

// User represents a registered user of the application.
//
// PasswordHash is an opaque credential record owned by the auth service:
// a 64-character hex salt followed by a 128-character hex PBKDF2-SHA512
// digest, concatenated with no delimiter.
//
// ReferenceFace holds a base64-encoded image captured during face
// registration. It is stored verbatim; nothing in this service decodes or
// matches it.
type User struct {
	ID            int64
	Username      string
	PasswordHash  string
	Email         string
	ReferenceFace string
	CreatedAt     time.Time
	LastLogin     *time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// SetReferenceFace overwrites the stored reference face image.
	// Returns ErrNotFound if the user does not exist.
	SetReferenceFace(ctx context.Context, userID int64, image string) error
	// TouchLastLogin sets last_login to the current time.
	TouchLastLogin(ctx context.Context, userID int64) error
}
