package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Immutable once assigned by the database.
	UserID int64 `json:"id"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON and never leaves the server process.
	PasswordHash string `json:"-"`

	// Image is an optional avatar URL. Part of the public profile.
	Image string `json:"image,omitempty"`

	// Role is the access-control role assigned to the account.
	// Defaults to RoleUser; changed only by direct administrative action
	// on the data store, never through the API.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the public profile view of the user: the fields that may
// be attached to another user's data (e.g. owner info on an admin listing).
// Credential and contact fields are deliberately absent.
func (u User) Profile() OwnerProfile {
	return OwnerProfile{
		UserID: u.UserID,
		Name:   u.Name,
		Role:   u.Role,
		Image:  u.Image,
	}
}

// OwnerProfile is the public subset of a user's attributes that is safe to
// attach to resources owned by that user.
type OwnerProfile struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Image  string `json:"image,omitempty"`
}
