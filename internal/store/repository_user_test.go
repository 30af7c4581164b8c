package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dkordic/noteboard/internal/logger"
	"github.com/dkordic/noteboard/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userColumns = []string{"user_id", "login", "name", "password_hash", "image", "role", "created_at"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Login:        "ann",
		Name:         "Ann",
		PasswordHash: "bcrypt-hash",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, user.Login, user.Name, user.PasswordHash, "", "user", now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Login, user.Name, user.PasswordHash, "", "user").
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Role != models.RoleUser {
		t.Errorf("expected role %q, got %q", models.RoleUser, created.Role)
	}
}

func TestCreateUser_RoleIsAlwaysUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	// Even if the caller somehow smuggles a role into the model, the INSERT
	// sends the default role.
	user := models.User{Login: "mallory", PasswordHash: "h", Role: models.RoleAdmin}

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(2, user.Login, "", user.PasswordHash, "", "user", time.Now())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Login, "", user.PasswordHash, "", "user").
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Role != models.RoleUser {
		t.Errorf("expected role %q, got %q", models.RoleUser, created.Role)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "ann"})
	if !errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatalf("expected ErrLoginAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "ann"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatalf("unexpected ErrLoginAlreadyExists: %v", err)
	}
}

func TestFindUserByLogin_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, "ann", "Ann", "hash", "", "user", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ann").
		WillReturnRows(rows)

	found, err := repo.FindUserByLogin(context.Background(), "ann")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 1 || found.Login != "ann" {
		t.Errorf("unexpected user: %+v", found)
	}
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByLogin(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(42, "ann", "Ann", "hash", "", "admin", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	found, err := repo.FindUserByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Role != models.RoleAdmin {
		t.Errorf("expected role admin, got %q", found.Role)
	}
}

func TestGetRole_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT role").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("admin"))

	role, err := repo.GetRole(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != models.RoleAdmin {
		t.Errorf("expected admin, got %q", role)
	}
}

func TestGetRole_UserNotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT role").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"role"}))

	_, err := repo.GetRole(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetRole_UnknownRoleValue(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT role").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("superuser"))

	_, err := repo.GetRole(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error for unknown role value, got nil")
	}
}
