package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/keuzekompas/internal/models"
)

const favoriteColumns = `favorite_id, user_id, module_id, created_at`

type FavoriteReadRepository struct {
	db *sqlx.DB
}

func NewFavoriteReadRepository(db *sqlx.DB) *FavoriteReadRepository {
	return &FavoriteReadRepository{db: db}
}

// List returns the user's favorites, newest last.
func (r *FavoriteReadRepository) List(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error) {
	const query = `
		SELECT ` + favoriteColumns + `
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at, module_id
	`

	favorites := []models.FavoriteDB{}
	err := r.db.SelectContext(ctx, &favorites, query, userID)
	logQuery(query, []any{userID}, len(favorites), err)

	return favorites, err
}

// Get returns the favorite of user for module, or nil.
func (r *FavoriteReadRepository) Get(ctx context.Context, userID uuid.UUID, moduleID int64) (*models.FavoriteDB, error) {
	const query = `
		SELECT ` + favoriteColumns + `
		FROM favorites
		WHERE user_id = $1 AND module_id = $2
	`

	var fav models.FavoriteDB
	err := r.db.GetContext(ctx, &fav, query, userID, moduleID)
	logQuery(query, []any{userID, moduleID}, fav.FavoriteID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

// Count returns how many favorites the user has.
func (r *FavoriteReadRepository) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM favorites WHERE user_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)
	logQuery(query, []any{userID}, count, err)

	return count, err
}

type FavoriteWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFavoriteWriteRepository(db *sqlx.DB, txGetter TxGetter) *FavoriteWriteRepository {
	return &FavoriteWriteRepository{db: db, txGetter: txGetter}
}

// Save records the favorite unless it already exists. created is false when
// the pair was already stored; the existing row is returned then. A missing
// module yields ErrReferenceNotFound.
func (r *FavoriteWriteRepository) Save(ctx context.Context, userID uuid.UUID, moduleID int64) (fav *models.FavoriteDB, created bool, err error) {
	const insertQuery = `
		INSERT INTO favorites (user_id, module_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, module_id) DO NOTHING
		RETURNING ` + favoriteColumns + `
	`
	const selectQuery = `
		SELECT ` + favoriteColumns + `
		FROM favorites
		WHERE user_id = $1 AND module_id = $2
	`

	ex := executor(ctx, r.db, r.txGetter)

	var row models.FavoriteDB
	err = sqlx.GetContext(ctx, ex, &row, insertQuery, userID, moduleID)
	logQuery(insertQuery, []any{userID, moduleID}, row.FavoriteID, err)

	switch {
	case err == nil:
		return &row, true, nil
	case !errors.Is(err, sql.ErrNoRows):
		return nil, false, translateError(err)
	}

	err = sqlx.GetContext(ctx, ex, &row, selectQuery, userID, moduleID)
	logQuery(selectQuery, []any{userID, moduleID}, row.FavoriteID, err)
	if err != nil {
		return nil, false, err
	}
	return &row, false, nil
}

// Delete removes the favorite if present and reports whether it existed.
func (r *FavoriteWriteRepository) Delete(ctx context.Context, userID uuid.UUID, moduleID int64) (bool, error) {
	const query = `DELETE FROM favorites WHERE user_id = $1 AND module_id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, moduleID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{userID, moduleID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
