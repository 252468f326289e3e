// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system, representing a registered account.
// The email address doubles as the login name and the verification target.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's contact email, also used as the login identifier. Unique.
	Name         string    // The user's display name.
	PasswordHash string    // bcrypt hash of the login password. Never serialized outward.

	// Email verification state. Verified == true implies both token fields are nil.
	EmailVerified         bool       // Whether the email address has been proven reachable.
	VerificationToken     *string    // Opaque single-use token, present only while verification is pending.
	VerificationExpiresAt *time.Time // Expiry paired 1:1 with VerificationToken.

	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// VerificationPending reports whether the user has an outstanding verification token.
func (u *User) VerificationPending() bool {
	return !u.EmailVerified && u.VerificationToken != nil && u.VerificationExpiresAt != nil
}

// MarkVerified transitions the user to the verified state and clears the token pair.
func (u *User) MarkVerified() {
	u.EmailVerified = true
	u.VerificationToken = nil
	u.VerificationExpiresAt = nil
}
