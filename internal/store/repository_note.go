package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/dkordic/noteboard/internal/logger"
	"github.com/dkordic/noteboard/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// noteColumns is the canonical column order used by every note query in this
// file. Scans must match it exactly.
var noteColumns = []string{"id", "owner_id", "title", "content", "is_public", "created_at", "updated_at"}

const noteReturning = "RETURNING id, owner_id, title, content, is_public, created_at, updated_at"

// noteRepository is the SQL-backed implementation of [NoteRepository].
// Queries are built with squirrel; dollar placeholders work for both the
// pgx and sqlite3 drivers.
//
// Listing order is created_at descending with the id as a stable tiebreak,
// so repeated listings of an unchanged table always return the same order.
type noteRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts a new note record. The id and both timestamps are assigned
// here; whatever the caller put into those fields is ignored. The inserted
// row is read back via RETURNING so the caller receives the canonical
// database representation.
//
// A foreign-key violation on owner_id is reported as [ErrOwnerNotFound].
func (r *noteRepository) Create(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	query, args, err := r.builder.
		Insert("notes").
		Columns("id", "owner_id", "title", "content", "is_public", "created_at", "updated_at").
		Values(uuid.New(), note.OwnerID, note.Title, note.Content, note.IsPublic, now, now).
		Suffix(noteReturning).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Create").Msg("failed to build insert query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanNote(row, &created); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.Create").
			Int64("owner_id", note.OwnerID).
			Msg("failed to insert note")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Note{}, ErrOwnerNotFound
		}
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// GetByID retrieves a single note by its primary key.
// Returns [ErrNoteNotFound] when no such record exists.
func (r *noteRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetByID").Msg("failed to build select query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanNote(row, &note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.GetByID").Str("note_id", id.String()).Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// ListVisible returns the notes visible to the given user in a general
// listing: notes the user owns plus every public note. The WHERE clause
// mirrors the read rule of the authorization policy.
func (r *noteRepository) ListVisible(ctx context.Context, userID int64) ([]models.Note, error) {
	return r.listNotes(ctx, "*noteRepository.ListVisible", sq.Or{
		sq.Eq{"owner_id": userID},
		sq.Eq{"is_public": true},
	})
}

// ListOwned returns only the notes owned by the given user.
func (r *noteRepository) ListOwned(ctx context.Context, userID int64) ([]models.Note, error) {
	return r.listNotes(ctx, "*noteRepository.ListOwned", sq.Eq{"owner_id": userID})
}

func (r *noteRepository) listNotes(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(noteColumns...).
		From("notes").
		Where(where).
		OrderBy("created_at DESC", "id ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

	for rows.Next() {
		var note models.Note

		scanErr := rows.Scan(
			&note.ID,
			&note.OwnerID,
			&note.Title,
			&note.Content,
			&note.IsPublic,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// ListAllWithOwners returns every note in the store, private ones included,
// each joined with its owner's public profile. Only the privileged admin
// listing uses this method; the owner's credential and contact columns are
// never selected.
func (r *noteRepository) ListAllWithOwners(ctx context.Context) ([]models.NoteWithOwner, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(
			"n.id", "n.owner_id", "n.title", "n.content", "n.is_public", "n.created_at", "n.updated_at",
			"u.user_id", "u.name", "u.role", "u.image",
		).
		From("notes n").
		Join("users u ON u.user_id = n.owner_id").
		OrderBy("n.created_at DESC", "n.id ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListAllWithOwners").Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListAllWithOwners").Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.NoteWithOwner, 0, 50)

	for rows.Next() {
		var item models.NoteWithOwner

		scanErr := rows.Scan(
			&item.ID,
			&item.OwnerID,
			&item.Title,
			&item.Content,
			&item.IsPublic,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.Owner.UserID,
			&item.Owner.Name,
			&item.Owner.Role,
			&item.Owner.Image,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*noteRepository.ListAllWithOwners").Msg("failed to scan joined row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*noteRepository.ListAllWithOwners").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// Update applies the non-nil fields of update to the note with the given id
// and refreshes updated_at. Untouched fields keep their stored values
// (last-write-wins, no version token). The updated row is read back via
// RETURNING.
//
// Returns [ErrNoteNotFound] when the note does not exist.
func (r *noteRepository) Update(ctx context.Context, id uuid.UUID, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	builder := r.builder.Update("notes")

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.IsPublic != nil {
		builder = builder.Set("is_public", *update.IsPublic)
	}
	builder = builder.Set("updated_at", time.Now().UTC())

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix(noteReturning).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Update").Msg("failed to build update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanNote(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.Update").Str("note_id", id.String()).Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// Delete removes the note with the given id.
// Returns [ErrNoteNotFound] when no row was deleted.
func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete("notes").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Delete").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Delete").Str("note_id", id.String()).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func scanNote(row *sql.Row, note *models.Note) error {
	return row.Scan(
		&note.ID,
		&note.OwnerID,
		&note.Title,
		&note.Content,
		&note.IsPublic,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
}
