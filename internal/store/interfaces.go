package store

import (
	"context"

	"github.com/dkordic/noteboard/models"
	"github.com/google/uuid"
)

// UserRepository is the user directory: it persists accounts and answers
// role lookups.
//
// GetRole is intentionally a separate, minimal query. The service layer
// calls it on every privileged operation so that role changes made directly
// in the database take effect on the very next request.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	GetRole(ctx context.Context, userID int64) (models.Role, error)
}

// NoteRepository persists note records. Authorization is not its concern:
// every method assumes the caller has already been cleared by the policy,
// with the exception of the two List* methods whose WHERE clauses mirror the
// visibility rule (own OR public).
type NoteRepository interface {
	Create(ctx context.Context, note models.Note) (models.Note, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Note, error)
	ListVisible(ctx context.Context, userID int64) ([]models.Note, error)
	ListOwned(ctx context.Context, userID int64) ([]models.Note, error)
	ListAllWithOwners(ctx context.Context) ([]models.NoteWithOwner, error)
	Update(ctx context.Context, id uuid.UUID, update models.NoteUpdate) (models.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
