package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dkordic/noteboard/internal/authz"
	"github.com/dkordic/noteboard/internal/logger"
	"github.com/dkordic/noteboard/internal/store"
	"github.com/dkordic/noteboard/models"
	"github.com/google/uuid"
)

// noteService is the concrete implementation of NoteService. It orchestrates
// the authorization policy around the note repository: load, decide, execute.
//
// The user repository serves as the user directory for per-call role
// resolution. The role is looked up fresh on every privileged operation and
// never cached, so a demotion takes effect on the actor's next request.
type noteService struct {
	noteRepository store.NoteRepository
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given repositories.
func NewNoteService(noteRepository store.NoteRepository, userRepository store.UserRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// Create validates the request and inserts a new note owned by the actor.
//
// The owner is always the authenticated actor: the request carries no owner
// field, and the repository assigns OwnerID from the value set here, so a
// client cannot create a note on someone else's behalf.
func (s *noteService) Create(ctx context.Context, actorID int64, req models.CreateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := validateTitle(req.Title); err != nil {
		log.Error().Int64("actor_id", actorID).Msg("note creation rejected: invalid title")
		return models.Note{}, err
	}
	if req.Content == "" {
		log.Error().Int64("actor_id", actorID).Msg("note creation rejected: empty content")
		return models.Note{}, ErrValidationEmptyContent
	}

	created, err := s.noteRepository.Create(ctx, models.Note{
		OwnerID:  actorID,
		Title:    req.Title,
		Content:  req.Content,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		log.Err(err).Int64("actor_id", actorID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

// Update applies a partial update to a note owned by the actor.
//
// The note is loaded first: an absent note surfaces as store.ErrNoteNotFound,
// while an existing note owned by someone else fails with ErrForbidden. The
// distinction is deliberate — a write denial does not need to hide the
// note's existence, unlike a private read.
func (s *noteService) Update(ctx context.Context, actorID int64, noteID uuid.UUID, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := validateUpdate(update); err != nil {
		log.Error().Int64("actor_id", actorID).Str("note_id", noteID.String()).Msg("note update rejected by validation")
		return models.Note{}, err
	}

	note, err := s.noteRepository.GetByID(ctx, noteID)
	if err != nil {
		return models.Note{}, err
	}

	decision := authz.Decide(authz.Actor{UserID: actorID}, authz.ActionUpdate, resourceOf(note))
	if !decision.Allowed {
		log.Error().
			Int64("actor_id", actorID).
			Str("note_id", noteID.String()).
			Str("reason", decision.Reason).
			Msg("note update forbidden")
		return models.Note{}, ErrForbidden
	}

	updated, err := s.noteRepository.Update(ctx, noteID, update)
	if err != nil {
		log.Err(err).Int64("actor_id", actorID).Str("note_id", noteID.String()).Msg("note update ended with error")
		return models.Note{}, err
	}

	return updated, nil
}

// Delete removes a note owned by the actor. Ownership is the only grant:
// the admin role does not bypass it here (admins use AdminDelete).
func (s *noteService) Delete(ctx context.Context, actorID int64, noteID uuid.UUID) error {
	log := logger.FromContext(ctx)

	note, err := s.noteRepository.GetByID(ctx, noteID)
	if err != nil {
		return err
	}

	decision := authz.Decide(authz.Actor{UserID: actorID}, authz.ActionDelete, resourceOf(note))
	if !decision.Allowed {
		log.Error().
			Int64("actor_id", actorID).
			Str("note_id", noteID.String()).
			Str("reason", decision.Reason).
			Msg("note deletion forbidden")
		return ErrForbidden
	}

	return s.noteRepository.Delete(ctx, noteID)
}

// ListForActor returns the actor's general listing: own notes plus every
// public note, newest first.
func (s *noteService) ListForActor(ctx context.Context, actorID int64) ([]models.Note, error) {
	return s.noteRepository.ListVisible(ctx, actorID)
}

// ListOwnedByActor returns only the actor's own notes, newest first.
func (s *noteService) ListOwnedByActor(ctx context.Context, actorID int64) ([]models.Note, error) {
	return s.noteRepository.ListOwned(ctx, actorID)
}

// GetByID returns a single note if the actor may read it.
//
// A private note owned by someone else is reported as store.ErrNoteNotFound
// rather than ErrForbidden, so an unauthorized reader cannot distinguish
// "exists but private" from "does not exist".
func (s *noteService) GetByID(ctx context.Context, actorID int64, noteID uuid.UUID) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := s.noteRepository.GetByID(ctx, noteID)
	if err != nil {
		return models.Note{}, err
	}

	decision := authz.Decide(authz.Actor{UserID: actorID}, authz.ActionRead, resourceOf(note))
	if !decision.Allowed {
		log.Debug().
			Int64("actor_id", actorID).
			Str("note_id", noteID.String()).
			Str("reason", decision.Reason).
			Msg("note read denied")

		if decision.HideExistence {
			return models.Note{}, store.ErrNoteNotFound
		}
		return models.Note{}, ErrForbidden
	}

	return note, nil
}

// AdminListAll returns every note with owner profiles attached. Requires the
// admin role, resolved fresh from the directory on this very call.
func (s *noteService) AdminListAll(ctx context.Context, actorID int64) ([]models.NoteWithOwner, error) {
	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	decision := authz.Decide(actor, authz.ActionAdminList, authz.Resource{})
	if !decision.Allowed {
		logger.FromContext(ctx).Error().
			Int64("actor_id", actorID).
			Str("role", actor.Role.String()).
			Str("reason", decision.Reason).
			Msg("admin listing forbidden")
		return nil, ErrForbidden
	}

	return s.noteRepository.ListAllWithOwners(ctx)
}

// AdminDelete removes any note regardless of ownership. Requires the admin
// role, resolved fresh from the directory on this very call. The role check
// runs before the note lookup, so a non-admin learns nothing about the
// note's existence.
func (s *noteService) AdminDelete(ctx context.Context, actorID int64, noteID uuid.UUID) error {
	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return err
	}

	decision := authz.Decide(actor, authz.ActionAdminDelete, authz.Resource{})
	if !decision.Allowed {
		logger.FromContext(ctx).Error().
			Int64("actor_id", actorID).
			Str("role", actor.Role.String()).
			Str("reason", decision.Reason).
			Msg("admin deletion forbidden")
		return ErrForbidden
	}

	return s.noteRepository.Delete(ctx, noteID)
}

// resolveActor performs the fresh per-call role lookup required before any
// privileged operation. An actor whose account has disappeared from the
// directory is treated as lacking every privilege rather than as a storage
// error.
func (s *noteService) resolveActor(ctx context.Context, actorID int64) (authz.Actor, error) {
	role, err := s.userRepository.GetRole(ctx, actorID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return authz.Actor{}, ErrForbidden
		}
		return authz.Actor{}, fmt.Errorf("role resolution failed: %w", err)
	}

	return authz.Actor{UserID: actorID, Role: role}, nil
}

func resourceOf(note models.Note) authz.Resource {
	return authz.Resource{OwnerID: note.OwnerID, IsPublic: note.IsPublic}
}

func validateTitle(title string) error {
	if title == "" {
		return ErrValidationEmptyTitle
	}
	if utf8.RuneCountInString(title) > models.TitleMaxLen {
		return ErrValidationTitleTooLong
	}
	return nil
}

func validateUpdate(update models.NoteUpdate) error {
	if update.Empty() {
		return ErrValidationEmptyUpdate
	}
	if update.Title != nil {
		if err := validateTitle(*update.Title); err != nil {
			return err
		}
	}
	if update.Content != nil && *update.Content == "" {
		return ErrValidationEmptyContent
	}
	return nil
}
