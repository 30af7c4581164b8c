package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkordic/noteboard/internal/logger"
	"github.com/dkordic/noteboard/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, Role).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrLoginAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Login, user.Name, user.PasswordHash, user.Image, models.RoleUser.String())

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrLoginAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var created models.User
	if err := r.scanUser(row, &created); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrLoginAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByLogin retrieves the user record whose login matches the given
// value. Returns [ErrUserNotFound] when no such record exists.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByLogin", findUserByLogin, login)
}

// FindUserByID retrieves the user record with the given primary key.
// Returns [ErrUserNotFound] when no such record exists.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// GetRole fetches only the role column of the given user.
//
// This is the per-call role resolution used by every privileged operation:
// no caching, no session claim, one narrow query. A role value that does not
// parse into the closed [models.Role] enumeration is reported as an error
// rather than silently treated as some default.
func (r *userRepository) GetRole(ctx context.Context, userID int64) (models.Role, error) {
	log := logger.FromContext(ctx)

	var rawRole string
	row := r.db.QueryRowContext(ctx, getUserRole, userID)
	if err := row.Scan(&rawRole); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetRole").Int64("user_id", userID).Msg("error: scanning error")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	role, err := models.ParseRole(rawRole)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetRole").Int64("user_id", userID).Msg("invalid role value in users table")
		return "", fmt.Errorf("invalid role stored for user %d: %w", userID, err)
	}

	return role, nil
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error: row is nil")
		switch postgresError(err) {
		case pgerrcode.NoDataFound:
			return models.User{}, ErrUserNotFound
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var found models.User
	if err := r.scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

func (r *userRepository) scanUser(row *sql.Row, user *models.User) error {
	return row.Scan(&user.UserID, &user.Login, &user.Name, &user.PasswordHash, &user.Image, &user.Role, &user.CreatedAt)
}
