package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var favoriteColumnNames = []string{"favorite_id", "user_id", "module_id", "created_at"}

func TestFavoriteReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteReadRepository(db)
	userID := uuid.New()

	rows := sqlmock.NewRows(favoriteColumnNames).
		AddRow(uuid.NewString(), userID.String(), 2, time.Now()).
		AddRow(uuid.NewString(), userID.String(), 5, time.Now())

	mock.ExpectQuery(`SELECT (.+) FROM favorites WHERE user_id = \$1 ORDER BY created_at, module_id`).
		WithArgs(userID).
		WillReturnRows(rows)

	favorites, err := repo.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, int64(5), favorites[1].ModuleID)
	assert.Equal(t, userID, favorites[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteReadRepository_GetAndCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteReadRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	favID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM favorites WHERE user_id = \$1 AND module_id = \$2`).
		WithArgs(userID, int64(2)).
		WillReturnRows(sqlmock.NewRows(favoriteColumnNames).AddRow(favID.String(), userID.String(), 2, time.Now()))

	fav, err := repo.Get(ctx, userID, 2)
	require.NoError(t, err)
	require.NotNil(t, fav)
	assert.Equal(t, favID, fav.FavoriteID)

	mock.ExpectQuery(`SELECT (.+) FROM favorites WHERE user_id = \$1 AND module_id = \$2`).
		WithArgs(userID, int64(3)).
		WillReturnRows(sqlmock.NewRows(favoriteColumnNames))

	fav, err = repo.Get(ctx, userID, 3)
	assert.NoError(t, err)
	assert.Nil(t, fav)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM favorites WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.Count(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 4, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteWriteRepository_Save(t *testing.T) {
	userID := uuid.New()
	favID := uuid.New()

	tests := []struct {
		name           string
		setup          func(mock sqlmock.Sqlmock)
		wantCreated    bool
		wantErr        error
		wantConstraint string
		wantFav        bool
	}{
		{
			name: "new favorite",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO favorites (.+) ON CONFLICT \(user_id, module_id\) DO NOTHING`).
					WithArgs(userID, int64(1)).
					WillReturnRows(sqlmock.NewRows(favoriteColumnNames).AddRow(favID.String(), userID.String(), 1, time.Now()))
			},
			wantCreated: true,
			wantFav:     true,
		},
		{
			name: "already favorited",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO favorites`).
					WithArgs(userID, int64(1)).
					WillReturnRows(sqlmock.NewRows(favoriteColumnNames))
				mock.ExpectQuery(`SELECT (.+) FROM favorites WHERE user_id = \$1 AND module_id = \$2`).
					WithArgs(userID, int64(1)).
					WillReturnRows(sqlmock.NewRows(favoriteColumnNames).AddRow(favID.String(), userID.String(), 1, time.Now()))
			},
			wantCreated: false,
			wantFav:     true,
		},
		{
			name: "module missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO favorites`).
					WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: FavoritesModuleFK})
			},
			wantErr:        ErrReferenceNotFound,
			wantConstraint: FavoritesModuleFK,
		},
		{
			name: "user missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO favorites`).
					WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: FavoritesUserFK})
			},
			wantErr:        ErrReferenceNotFound,
			wantConstraint: FavoritesUserFK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewFavoriteWriteRepository(db, nil)
			tt.setup(mock)

			fav, created, err := repo.Save(context.Background(), userID, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantConstraint, ViolatedConstraint(err))
				assert.Nil(t, fav)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCreated, created)
			if tt.wantFav {
				require.NotNil(t, fav)
				assert.Equal(t, favID, fav.FavoriteID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFavoriteWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteWriteRepository(db, nil)
	userID := uuid.New()

	mock.ExpectExec(`DELETE FROM favorites WHERE user_id = \$1 AND module_id = \$2`).
		WithArgs(userID, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM favorites`).
		WithArgs(userID, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	existed, err := repo.Delete(context.Background(), userID, 5)
	assert.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.Delete(context.Background(), userID, 5)
	assert.NoError(t, err)
	assert.False(t, existed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
