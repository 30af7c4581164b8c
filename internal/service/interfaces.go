package service

import (
	"context"

	"github.com/dkordic/noteboard/models"
	"github.com/google/uuid"
)

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService exposes all note operations. Every method takes the
// authenticated actor's user ID as an explicit parameter; the two Admin*
// methods additionally resolve the actor's role with a fresh directory
// lookup before consulting the authorization policy.
type NoteService interface {
	Create(ctx context.Context, actorID int64, req models.CreateNoteRequest) (models.Note, error)
	Update(ctx context.Context, actorID int64, noteID uuid.UUID, update models.NoteUpdate) (models.Note, error)
	Delete(ctx context.Context, actorID int64, noteID uuid.UUID) error
	ListForActor(ctx context.Context, actorID int64) ([]models.Note, error)
	ListOwnedByActor(ctx context.Context, actorID int64) ([]models.Note, error)
	GetByID(ctx context.Context, actorID int64, noteID uuid.UUID) (models.Note, error)
	AdminListAll(ctx context.Context, actorID int64) ([]models.NoteWithOwner, error)
	AdminDelete(ctx context.Context, actorID int64, noteID uuid.UUID) error
}
