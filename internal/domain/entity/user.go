// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the single local identity record shared by local and federated logins.
type User struct {
	ID                uint      // Auto-incremented primary key.
	Username          string    // Unique login and display name.
	PasswordHash      string    // bcrypt hash; empty for federated-only accounts.
	Role              Role      // Authorization role carried in issued tokens.
	ExternalSubjectID string    // The provider's 'sub' claim; empty for local-only accounts.
	CreatedAt         time.Time // Timestamp of when this user account was created.
	UpdatedAt         time.Time // Timestamp of the last modification to this user's data.
}

// HasPassword reports whether the account can log in with local credentials.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// IsFederated reports whether the account is linked to an external subject.
func (u *User) IsFederated() bool {
	return u.ExternalSubjectID != ""
}
