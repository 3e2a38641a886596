package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/keuzekompas/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumnNames = []string{"user_id", "name", "email", "password_hash", "role", "created_at", "updated_at"}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(userColumnNames).
			AddRow(userID.String(), "Alice", "alice@example.com", "hash", models.RoleUser, now, now))

	user, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.UserID)
	assert.Equal(t, "hash", user.PasswordHash)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(userColumnNames))

	user, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByIDAndList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()
	aliceID, bobID := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE user_id = \$1`).
		WithArgs(bobID).
		WillReturnRows(sqlmock.NewRows(userColumnNames).
			AddRow(bobID.String(), "Bob", "bob@example.com", "hash", models.RoleAdmin, now, now))

	user, err := repo.GetByID(ctx, bobID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.IsAdmin())

	mock.ExpectQuery(`SELECT (.+) FROM users ORDER BY created_at, email`).
		WillReturnRows(sqlmock.NewRows(userColumnNames).
			AddRow(aliceID.String(), "Alice", "alice@example.com", "h1", models.RoleUser, now, now).
			AddRow(bobID.String(), "Bob", "bob@example.com", "h2", models.RoleAdmin, now, now))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users \(name, email, password_hash, role, created_at, updated_at\)`).
		WithArgs("Alice", "alice@example.com", "hash", models.RoleUser).
		WillReturnRows(sqlmock.NewRows(userColumnNames).
			AddRow(userID.String(), "Alice", "alice@example.com", "hash", models.RoleUser, now, now))

	user, err := repo.Save(ctx, "Alice", "alice@example.com", "hash", models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, userID, user.UserID)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"})

	user, err = repo.Save(ctx, "Alice", "alice@example.com", "hash", models.RoleUser)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	userID := uuid.New()

	mock.ExpectExec(`DELETE FROM users WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), userID)
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
