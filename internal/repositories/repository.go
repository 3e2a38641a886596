package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/keuzekompas/internal/logger"
)

// Postgres error codes translated into repository errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var (
	// ErrConflict is returned when an insert hits a unique constraint.
	ErrConflict = errors.New("unique constraint violated")
	// ErrReferenceNotFound is returned when a foreign key points at a missing row.
	ErrReferenceNotFound = errors.New("referenced row does not exist")
)

// Foreign keys of the favorites table.
const (
	FavoritesUserFK   = "favorites_user_id_fkey"
	FavoritesModuleFK = "favorites_module_id_fkey"
)

// ConstraintError is a translated constraint violation. It unwraps to
// ErrConflict or ErrReferenceNotFound.
type ConstraintError struct {
	Err        error
	Constraint string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Constraint)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// ViolatedConstraint returns the constraint name carried by err, or "".
func ViolatedConstraint(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Constraint
	}
	return ""
}

// TxGetter returns the request-scoped transaction, or nil when there is none.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the transaction from the context when present, else the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// translateError maps Postgres constraint violations onto repository errors.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &ConstraintError{Err: ErrConflict, Constraint: pgErr.ConstraintName}
		case pgForeignKeyViolation:
			return &ConstraintError{Err: ErrReferenceNotFound, Constraint: pgErr.ConstraintName}
		}
	}
	return err
}

// logQuery logs the statement in a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
