// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dkordic/noteboard/internal/logger"
	"github.com/dkordic/noteboard/internal/store"
	"github.com/dkordic/noteboard/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks: store.NoteRepository, store.UserRepository
// ─────────────────────────────────────────────

type mockNoteRepository struct {
	createFn   func(ctx context.Context, note models.Note) (models.Note, error)
	getByIDFn  func(ctx context.Context, id uuid.UUID) (models.Note, error)
	listVisFn  func(ctx context.Context, userID int64) ([]models.Note, error)
	listOwnFn  func(ctx context.Context, userID int64) ([]models.Note, error)
	listAllFn  func(ctx context.Context) ([]models.NoteWithOwner, error)
	updateFn   func(ctx context.Context, id uuid.UUID, update models.NoteUpdate) (models.Note, error)
	deleteFn   func(ctx context.Context, id uuid.UUID) error
	deletedIDs []uuid.UUID
}

func (m *mockNoteRepository) Create(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, note)
	}
	note.ID = uuid.New()
	return note, nil
}

func (m *mockNoteRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Note, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Note{}, store.ErrNoteNotFound
}

func (m *mockNoteRepository) ListVisible(ctx context.Context, userID int64) ([]models.Note, error) {
	if m.listVisFn != nil {
		return m.listVisFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockNoteRepository) ListOwned(ctx context.Context, userID int64) ([]models.Note, error) {
	if m.listOwnFn != nil {
		return m.listOwnFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockNoteRepository) ListAllWithOwners(ctx context.Context) ([]models.NoteWithOwner, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockNoteRepository) Update(ctx context.Context, id uuid.UUID, update models.NoteUpdate) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.Note{ID: id}, nil
}

func (m *mockNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.deletedIDs = append(m.deletedIDs, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockUserDirectory records how role lookups happen so tests can assert the
// fresh-per-call invariant.
type mockUserDirectory struct {
	roles        map[int64]models.Role
	getRoleCalls int
}

func (m *mockUserDirectory) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return user, nil
}

func (m *mockUserDirectory) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserDirectory) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserDirectory) GetRole(ctx context.Context, userID int64) (models.Role, error) {
	m.getRoleCalls++
	role, ok := m.roles[userID]
	if !ok {
		return "", store.ErrUserNotFound
	}
	return role, nil
}

func newTestNoteService(notes *mockNoteRepository, users *mockUserDirectory) NoteService {
	if users == nil {
		users = &mockUserDirectory{roles: map[int64]models.Role{}}
	}
	return NewNoteService(notes, users, logger.Nop())
}

func noteFixture(id uuid.UUID, ownerID int64, isPublic bool) models.Note {
	return models.Note{
		ID:        id,
		OwnerID:   ownerID,
		Title:     "title",
		Content:   "content",
		IsPublic:  isPublic,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestCreate_ForcesOwnerToActor(t *testing.T) {
	var stored models.Note
	notes := &mockNoteRepository{
		createFn: func(_ context.Context, note models.Note) (models.Note, error) {
			stored = note
			note.ID = uuid.New()
			return note, nil
		},
	}
	svc := newTestNoteService(notes, nil)

	_, err := svc.Create(context.Background(), 7, models.CreateNoteRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	// Whatever a client sends, the stored owner is the authenticated actor.
	assert.Equal(t, int64(7), stored.OwnerID)
}

func TestCreate_EmptyTitleRejected(t *testing.T) {
	svc := newTestNoteService(&mockNoteRepository{}, nil)

	_, err := svc.Create(context.Background(), 7, models.CreateNoteRequest{Title: "", Content: "x"})
	assert.ErrorIs(t, err, ErrValidationEmptyTitle)
}

func TestCreate_TitleTooLongRejected(t *testing.T) {
	svc := newTestNoteService(&mockNoteRepository{}, nil)

	long := strings.Repeat("a", models.TitleMaxLen+1)
	_, err := svc.Create(context.Background(), 7, models.CreateNoteRequest{Title: long, Content: "x"})
	assert.ErrorIs(t, err, ErrValidationTitleTooLong)
}

func TestCreate_TitleAtLimitAccepted(t *testing.T) {
	svc := newTestNoteService(&mockNoteRepository{}, nil)

	limit := strings.Repeat("a", models.TitleMaxLen)
	_, err := svc.Create(context.Background(), 7, models.CreateNoteRequest{Title: limit, Content: "x"})
	assert.NoError(t, err)
}

func TestCreate_EmptyContentRejected(t *testing.T) {
	svc := newTestNoteService(&mockNoteRepository{}, nil)

	_, err := svc.Create(context.Background(), 7, models.CreateNoteRequest{Title: "t", Content: ""})
	assert.ErrorIs(t, err, ErrValidationEmptyContent)
}

// ─────────────────────────────────────────────
// GetByID
// ─────────────────────────────────────────────

func TestGetByID_OwnerReadsPrivateNote(t *testing.T) {
	noteID := uuid.New()
	notes := &mockNoteRepository{
		getByIDFn: func(_ context.Context, id uuid.UUID) (models.Note, error) {
			return noteFixture(id, 1, false), nil
		},
	}
	svc := newTestNoteService(notes, nil)

	note, err := svc.GetByID(context.Background(), 1, noteID)
	require.NoError(t, err)
	assert.Equal(t, noteID, note.ID)
}

func TestGetByID_StrangerReadsPublicNote(t *testing.T) {
	noteID := uuid.New()
	notes := &mockNoteRepository{
		getByIDFn: func(_ context.Context, id uuid.UUID) (models.Note, error) {
			return noteFixture(id, 1, true), nil
		},
	}
	svc := newTestNoteService(notes, nil)

	_, err := svc.GetByID(context.Background(), 2, noteID)
	assert.NoError(t, err)
}

func TestGetByID_PrivateForeignNote_ReportsNotFound(t *testing.T) {
	notes := &mockNoteRepository{
		getByIDFn: func(_ context.Context, id uuid.UUID) (models.Note, error) {
			return noteFixture(id, 1, false), nil
		},
	}
	svc := newTestNoteService(notes, nil)

	_, err := svc.GetByID(context.Background(), 2, uuid.New())
	// NotFound, never Forbidden: existence must not leak.
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
	assert.NotErrorIs(t, err, ErrForbidden)
}

func TestGetByID_AbsentNote(t *testing.T) {
	svc := newTestNoteService(&mockNoteRepository{}, nil)

	_, err := svc.GetByID(context.Background(), 1, uuid.New())
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func strPtr(s string) *string { return &s }

func TestUpdate_OwnerUpdatesOwnNote(t *testing.T) {
	noteID := uuid.New()
	notes := &mockNoteRepository{
		getByIDFn: func(_ context.Context, id uuid.UUID) (models.Note, error) {
			return noteFixture(id, 1, false), nil
		},
		updateFn: func(_ context.Context, id uuid.UUID, update models.NoteUpdate) (models.Note, error) {
			note := noteFixture(id, 1, false)
			note.Title = *update.Title
			note.UpdatedAt = time.Now()
			return note, nil
		},
	}
	svc := newTestNoteService(notes, nil)

	updated, err := svc.Update(context.Background(), 1, noteID, models.NoteUpdate{Title: strPtr("new title")})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
}

func TestUpdate_NonOwnerForbidden_EvenOnPublicNote(t *testing.T) {
	notes := &mockNoteRepository{
		getByIDFn: func(_ context.Context, id uuid.UUID) (models.Note, error) {
			return noteFixture(id, 1, true), nil
		},
	}
	svc := newTestNoteService(notes, nil)

	_, err := svc.Update(context.Background(), 2, uuid.New(), models.NoteUpdate{Title: strPtr("x")})
	// Forbidden, not NotFound: a write denial may reveal existence.
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, store.ErrNoteNotFound)
}

func TestUpdate_AdminCannotEditForeignNote(t *testing.T) {
	users := &mockUserDirectory{roles: map[int64]models.Role{9: models.RoleAdmin}}
	notes := &mockNoteRepository{
		getByIDFn: func(_ context.Context, id uuid.UUID) (models.Note, error) {
			return noteFixture(id, 1, false), nil
		},
	}
	svc := newTestNoteService(notes, users)

	_, err := svc.Update(context.Background(), 9, uuid.New(), models.NoteUpdate{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrForbidden)
	// The ownership check never needs the role, so no directory lookup happens.
	assert.Zero(t, users.getRoleCalls)
}

func TestUpdate_AbsentNote(t *testing.T) {
	svc := newTestNoteService(&mockNoteRepository{}, nil)

	_, err := svc.Update(context.Background(), 1, uuid.New(), models.NoteUpdate{Title: strPtr("x")})
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestUpdate_EmptyUpdateRejected(t *testing.T) {
	svc := newTestNoteService(&mockNoteRepository{}, nil)

	_, err := svc.Update(context.Background(), 1, uuid.New(), models.NoteUpdate{})
	assert.ErrorIs(t, err, ErrValidationEmptyUpdate)
}

func TestUpdate_InvalidFieldsRejected(t *testing.T) {
	svc := newTestNoteService(&mockNoteRepository{}, nil)

	_, err := svc.Update(context.Background(), 1, uuid.New(), models.NoteUpdate{Title: strPtr("")})
	assert.ErrorIs(t, err, ErrValidationEmptyTitle)

	_, err = svc.Update(context.Background(), 1, uuid.New(), models.NoteUpdate{Content: strPtr("")})
	assert.ErrorIs(t, err, ErrValidationEmptyContent)
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestDelete_OwnerDeletesOwnNote(t *testing.T) {
	noteID := uuid.New()
	notes := &mockNoteRepository{
		getByIDFn: func(_ context.Context, id uuid.UUID) (models.Note, error) {
			return noteFixture(id, 1, false), nil
		},
	}
	svc := newTestNoteService(notes, nil)

	require.NoError(t, svc.Delete(context.Background(), 1, noteID))
	assert.Equal(t, []uuid.UUID{noteID}, notes.deletedIDs)
}

func TestDelete_NonOwnerForbidden(t *testing.T) {
	notes := &mockNoteRepository{
		getByIDFn: func(_ context.Context, id uuid.UUID) (models.Note, error) {
			return noteFixture(id, 1, true), nil
		},
	}
	svc := newTestNoteService(notes, nil)

	err := svc.Delete(context.Background(), 2, uuid.New())
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, notes.deletedIDs)
}

// ─────────────────────────────────────────────
// Admin operations
// ─────────────────────────────────────────────

func TestAdminListAll_AdminSeesPrivateNotesWithOwners(t *testing.T) {
	users := &mockUserDirectory{roles: map[int64]models.Role{9: models.RoleAdmin}}
	private := models.NoteWithOwner{
		Note:  noteFixture(uuid.New(), 1, false),
		Owner: models.OwnerProfile{UserID: 1, Name: "Ann", Role: models.RoleUser},
	}
	notes := &mockNoteRepository{
		listAllFn: func(_ context.Context) ([]models.NoteWithOwner, error) {
			return []models.NoteWithOwner{private}, nil
		},
	}
	svc := newTestNoteService(notes, users)

	all, err := svc.AdminListAll(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsPublic)
	assert.Equal(t, "Ann", all[0].Owner.Name)
}

func TestAdminListAll_UserForbidden(t *testing.T) {
	users := &mockUserDirectory{roles: map[int64]models.Role{2: models.RoleUser}}
	svc := newTestNoteService(&mockNoteRepository{}, users)

	_, err := svc.AdminListAll(context.Background(), 2)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdminListAll_DemotionTakesEffectImmediately(t *testing.T) {
	users := &mockUserDirectory{roles: map[int64]models.Role{9: models.RoleAdmin}}
	svc := newTestNoteService(&mockNoteRepository{}, users)

	_, err := svc.AdminListAll(context.Background(), 9)
	require.NoError(t, err)

	// Demote directly in the directory; no re-login happens.
	users.roles[9] = models.RoleUser

	_, err = svc.AdminListAll(context.Background(), 9)
	assert.ErrorIs(t, err, ErrForbidden)

	// The role was fetched fresh on each call, never cached.
	assert.Equal(t, 2, users.getRoleCalls)
}

func TestAdminDelete_AdminDeletesForeignNote(t *testing.T) {
	users := &mockUserDirectory{roles: map[int64]models.Role{9: models.RoleAdmin}}
	noteID := uuid.New()
	notes := &mockNoteRepository{}
	svc := newTestNoteService(notes, users)

	require.NoError(t, svc.AdminDelete(context.Background(), 9, noteID))
	assert.Equal(t, []uuid.UUID{noteID}, notes.deletedIDs)
}

func TestAdminDelete_NonAdminForbidden(t *testing.T) {
	users := &mockUserDirectory{roles: map[int64]models.Role{2: models.RoleUser}}
	notes := &mockNoteRepository{}
	svc := newTestNoteService(notes, users)

	err := svc.AdminDelete(context.Background(), 2, uuid.New())
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, notes.deletedIDs)
}

func TestAdminDelete_ModeratorForbidden(t *testing.T) {
	users := &mockUserDirectory{roles: map[int64]models.Role{3: models.RoleModerator}}
	svc := newTestNoteService(&mockNoteRepository{}, users)

	err := svc.AdminDelete(context.Background(), 3, uuid.New())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdminDelete_UnknownActorForbidden(t *testing.T) {
	users := &mockUserDirectory{roles: map[int64]models.Role{}}
	svc := newTestNoteService(&mockNoteRepository{}, users)

	err := svc.AdminDelete(context.Background(), 404, uuid.New())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdminDelete_AbsentNote(t *testing.T) {
	users := &mockUserDirectory{roles: map[int64]models.Role{9: models.RoleAdmin}}
	notes := &mockNoteRepository{
		deleteFn: func(_ context.Context, _ uuid.UUID) error {
			return store.ErrNoteNotFound
		},
	}
	svc := newTestNoteService(notes, users)

	err := svc.AdminDelete(context.Background(), 9, uuid.New())
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

// ─────────────────────────────────────────────
// Listings
// ─────────────────────────────────────────────

func TestListForActor_DelegatesVisibilityFilter(t *testing.T) {
	own := noteFixture(uuid.New(), 2, false)
	public := noteFixture(uuid.New(), 1, true)
	notes := &mockNoteRepository{
		listVisFn: func(_ context.Context, userID int64) ([]models.Note, error) {
			assert.Equal(t, int64(2), userID)
			return []models.Note{public, own}, nil
		},
	}
	svc := newTestNoteService(notes, nil)

	listed, err := svc.ListForActor(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestListOwnedByActor_Delegates(t *testing.T) {
	notes := &mockNoteRepository{
		listOwnFn: func(_ context.Context, userID int64) ([]models.Note, error) {
			assert.Equal(t, int64(2), userID)
			return []models.Note{noteFixture(uuid.New(), 2, false)}, nil
		},
	}
	svc := newTestNoteService(notes, nil)

	listed, err := svc.ListOwnedByActor(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
