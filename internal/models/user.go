package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`               // Primary key
	FirstName    string    `json:"firstName" db:"first_name"`     // Given name
	LastName     string    `json:"lastName" db:"last_name"`       // Family name
	PhoneNumber  string    `json:"phoneNumber" db:"phone_number"` // Contact phone
	Email        string    `json:"email" db:"email"`              // Unique, stored lower-cased
	PasswordHash string    `json:"-" db:"password_hash"`          // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`     // Last update timestamp
}

// FullName returns "First Last".
func (u *UserDB) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserSummary is the responder identity joined into the owner's response queue.
type UserSummary struct {
	UserID    uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}
