package models

import (
	"time"

	"github.com/google/uuid"
)

// TitleMaxLen is the maximum accepted length of a note title, in runes.
const TitleMaxLen = 256

// Note is a single personal note record.
//
// Every note has exactly one owner. The IsPublic flag widens read access
// only: it never grants write access to anyone but the owner.
type Note struct {
	// ID is the server-generated unique identifier. Immutable.
	ID uuid.UUID `json:"id"`

	// OwnerID references the user who created the note. It is always set
	// to the authenticated actor's ID at creation time and never changes.
	OwnerID int64 `json:"owner_id"`

	// Title is a non-empty string of at most TitleMaxLen runes.
	Title string `json:"title"`

	// Content is a non-empty string of unbounded length.
	Content string `json:"content"`

	// IsPublic controls cross-user read visibility. Defaults to false.
	IsPublic bool `json:"is_public"`

	// CreatedAt is set once at creation. Immutable.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is set on every mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteWithOwner is a note annotated with its owner's public profile.
// Returned only by the privileged admin listing.
type NoteWithOwner struct {
	Note
	Owner OwnerProfile `json:"owner"`
}

// NoteUpdate carries a partial update of a note. Nil fields are left
// unchanged; non-nil fields replace the stored values.
type NoteUpdate struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	IsPublic *bool   `json:"is_public,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u NoteUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.IsPublic == nil
}
