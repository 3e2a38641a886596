package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/keuzekompas/internal/catalog"
	"github.com/sbilibin2017/keuzekompas/internal/models"
)

const moduleColumns = `id, name, shortdescription, description, content, studycredit, location, contact_id, level, learningoutcomes, created_at, updated_at`

type ModuleReadRepository struct {
	db *sqlx.DB
}

func NewModuleReadRepository(db *sqlx.DB) *ModuleReadRepository {
	return &ModuleReadRepository{db: db}
}

// List returns the modules matching the filter ordered by id. userID is only
// consulted when the filter asks for favorites.
func (r *ModuleReadRepository) List(ctx context.Context, filter catalog.Filter, userID uuid.UUID) ([]models.ModuleDB, error) {
	query, args := buildModuleListQuery(filter.Normalize(), userID)

	modules := []models.ModuleDB{}
	err := r.db.SelectContext(ctx, &modules, query, args...)
	logQuery(query, args, len(modules), err)

	return modules, err
}

// GetByID returns the module with the given id, or nil.
func (r *ModuleReadRepository) GetByID(ctx context.Context, id int64) (*models.ModuleDB, error) {
	const query = `
		SELECT ` + moduleColumns + `
		FROM modules
		WHERE id = $1
	`

	var module models.ModuleDB
	err := r.db.GetContext(ctx, &module, query, id)
	logQuery(query, []any{id}, module.Name, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &module, nil
}

// Facets returns the distinct credits, levels and locations in the catalog.
func (r *ModuleReadRepository) Facets(ctx context.Context) (*models.ModuleFacets, error) {
	const (
		creditsQuery   = `SELECT DISTINCT studycredit FROM modules ORDER BY studycredit`
		levelsQuery    = `SELECT DISTINCT level FROM modules WHERE level <> '' ORDER BY level`
		locationsQuery = `SELECT DISTINCT location FROM modules WHERE location <> '' ORDER BY location`
	)

	facets := models.ModuleFacets{
		Credits:   []int{},
		Levels:    []string{},
		Locations: []string{},
	}

	err := r.db.SelectContext(ctx, &facets.Credits, creditsQuery)
	logQuery(creditsQuery, nil, facets.Credits, err)
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &facets.Levels, levelsQuery)
	logQuery(levelsQuery, nil, facets.Levels, err)
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &facets.Locations, locationsQuery)
	logQuery(locationsQuery, nil, facets.Locations, err)
	if err != nil {
		return nil, err
	}

	return &facets, nil
}

// buildModuleListQuery renders the WHERE clause for the active filter
// dimensions with positional placeholders.
func buildModuleListQuery(filter catalog.Filter, userID uuid.UUID) (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.SearchTerm != "" {
		p := next("%" + escapeLike(filter.SearchTerm) + "%")
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE %[1]s OR shortdescription ILIKE %[1]s OR description ILIKE %[1]s)", p))
	}
	if len(filter.Credits) > 0 {
		ph := make([]string, 0, len(filter.Credits))
		for _, c := range filter.Credits {
			ph = append(ph, next(c))
		}
		conds = append(conds, "studycredit IN ("+strings.Join(ph, ", ")+")")
	}
	if len(filter.Levels) > 0 {
		ph := make([]string, 0, len(filter.Levels))
		for _, l := range filter.Levels {
			ph = append(ph, next(l))
		}
		conds = append(conds, "level IN ("+strings.Join(ph, ", ")+")")
	}
	if len(filter.Locations) > 0 {
		ph := make([]string, 0, len(filter.Locations))
		for _, l := range filter.Locations {
			ph = append(ph, next(l))
		}
		conds = append(conds, "location IN ("+strings.Join(ph, ", ")+")")
	}
	if filter.FavoritesOnly {
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM favorites f WHERE f.module_id = modules.id AND f.user_id = %s)", next(userID)))
	}

	query := "SELECT " + moduleColumns + " FROM modules"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	return query, args
}

// escapeLike escapes LIKE wildcards so the search term matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

type ModuleWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewModuleWriteRepository(db *sqlx.DB, txGetter TxGetter) *ModuleWriteRepository {
	return &ModuleWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a module under its caller-chosen id. A taken id yields ErrConflict.
func (r *ModuleWriteRepository) Create(ctx context.Context, m *models.ModuleDB) (*models.ModuleDB, error) {
	const query = `
		INSERT INTO modules (id, name, shortdescription, description, content, studycredit, location, contact_id, level, learningoutcomes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + moduleColumns + `
	`

	args := []any{
		m.ID, m.Name, m.ShortDescription, m.Description, m.Content,
		m.StudyCredit, m.Location, m.ContactID, m.Level, m.LearningOutcomes,
	}

	var created models.ModuleDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)
	logQuery(query, []any{m.ID, m.Name}, created.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &created, nil
}

// Update overwrites every editable column of an existing module. Returns nil
// when no module has the id.
func (r *ModuleWriteRepository) Update(ctx context.Context, m *models.ModuleDB) (*models.ModuleDB, error) {
	const query = `
		UPDATE modules
		SET name = $2, shortdescription = $3, description = $4, content = $5,
			studycredit = $6, location = $7, contact_id = $8, level = $9,
			learningoutcomes = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + moduleColumns + `
	`

	args := []any{
		m.ID, m.Name, m.ShortDescription, m.Description, m.Content,
		m.StudyCredit, m.Location, m.ContactID, m.Level, m.LearningOutcomes,
	}

	var updated models.ModuleDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)
	logQuery(query, []any{m.ID, m.Name}, updated.UpdatedAt, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &updated, nil
}

// Delete removes a module; favorites referencing it cascade. Reports whether
// a row was deleted.
func (r *ModuleWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM modules WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
