// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can add books and review them.
type User struct {
	ID                uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email             string    // Unique login identifier.
	PasswordHash      string    // bcrypt hash of the user's password.
	Username          string    // Display name chosen at sign-up.
	ProfilePictureURL string    // Optional avatar location; empty when unset.
	JoinedAt          time.Time // Timestamp of sign-up.
	UpdatedAt         time.Time // Timestamp of the last modification to this user's data.
}

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 6
