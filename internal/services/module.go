package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/keuzekompas/internal/catalog"
	"github.com/sbilibin2017/keuzekompas/internal/logger"
	"github.com/sbilibin2017/keuzekompas/internal/models"
	"github.com/sbilibin2017/keuzekompas/internal/repositories"
)

//go:generate mockgen -source=module.go -destination=mock_module.go -package=services

var (
	ErrModuleNotFound      = errors.New("module not found")
	ErrModuleAlreadyExists = errors.New("module already exists")
)

// ModuleReader defines read-only operations for modules.
type ModuleReader interface {
	List(ctx context.Context, filter catalog.Filter, userID uuid.UUID) ([]models.ModuleDB, error)
	GetByID(ctx context.Context, id int64) (*models.ModuleDB, error)
	Facets(ctx context.Context) (*models.ModuleFacets, error)
}

// ModuleWriter defines write operations for modules.
type ModuleWriter interface {
	Create(ctx context.Context, module *models.ModuleDB) (*models.ModuleDB, error)
	Update(ctx context.Context, module *models.ModuleDB) (*models.ModuleDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ModuleCache caches the unfiltered catalog.
type ModuleCache interface {
	GetAll(ctx context.Context) ([]models.ModuleDB, error)
	SetAll(ctx context.Context, modules []models.ModuleDB) error
	GetByID(ctx context.Context, id int64) (*models.ModuleDB, error)
	SetByID(ctx context.Context, module *models.ModuleDB) error
	GetFacets(ctx context.Context) (*models.ModuleFacets, error)
	SetFacets(ctx context.Context, facets *models.ModuleFacets) error
	Invalidate(ctx context.Context, ids ...int64) error
}

// ModuleSanitizer cleans free-text module fields.
type ModuleSanitizer interface {
	SanitizeModule(module *models.ModuleDB)
}

// ModuleService serves the catalog and its mutations.
type ModuleService struct {
	reader      ModuleReader
	writer      ModuleWriter
	cache       ModuleCache
	sanitizer   ModuleSanitizer
	kafkaWriter KafkaWriter
	afterCommit CommitHook
}

// NewModuleService creates a new ModuleService.
func NewModuleService(
	reader ModuleReader,
	writer ModuleWriter,
	cache ModuleCache,
	sanitizer ModuleSanitizer,
	kafkaWriter KafkaWriter,
	opts ...MutationOption,
) *ModuleService {
	return &ModuleService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		sanitizer:   sanitizer,
		kafkaWriter: kafkaWriter,
		afterCommit: newMutationOptions(opts).afterCommit,
	}
}

// List returns the modules matching the filter. The unfiltered catalog is
// served from the cache when possible.
func (s *ModuleService) List(ctx context.Context, filter catalog.Filter, userID uuid.UUID) ([]models.ModuleDB, error) {
	filter = filter.Normalize()

	if filter.IsEmpty() {
		if modules, err := s.cache.GetAll(ctx); err == nil {
			return modules, nil
		} else if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Errorw("failed to read module cache", "error", err)
		}
	}

	modules, err := s.reader.List(ctx, filter, userID)
	if err != nil {
		logger.Log.Errorw("failed to list modules", "filter", filter, "error", err)
		return nil, err
	}

	if filter.IsEmpty() {
		if err := s.cache.SetAll(ctx, modules); err != nil {
			logger.Log.Errorw("failed to cache modules", "error", err)
		}
	}

	return modules, nil
}

// Search is List restricted to a search term.
func (s *ModuleService) Search(ctx context.Context, term string, userID uuid.UUID) ([]models.ModuleDB, error) {
	return s.List(ctx, catalog.Filter{SearchTerm: term}, userID)
}

// Facets returns the distinct credits, levels and locations of the catalog.
func (s *ModuleService) Facets(ctx context.Context) (*models.ModuleFacets, error) {
	if facets, err := s.cache.GetFacets(ctx); err == nil {
		return facets, nil
	}

	facets, err := s.reader.Facets(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load facets", "error", err)
		return nil, err
	}

	if err := s.cache.SetFacets(ctx, facets); err != nil {
		logger.Log.Errorw("failed to cache facets", "error", err)
	}

	return facets, nil
}

// Get returns a single module or ErrModuleNotFound.
func (s *ModuleService) Get(ctx context.Context, id int64) (*models.ModuleDB, error) {
	if module, err := s.cache.GetByID(ctx, id); err == nil {
		return module, nil
	}

	module, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get module", "id", id, "error", err)
		return nil, err
	}
	if module == nil {
		return nil, ErrModuleNotFound
	}

	if err := s.cache.SetByID(ctx, module); err != nil {
		logger.Log.Errorw("failed to cache module", "id", id, "error", err)
	}

	return module, nil
}

// Create stores a new module under its requested id.
func (s *ModuleService) Create(ctx context.Context, userID uuid.UUID, req *models.ModuleCreateRequest) (*models.ModuleDB, error) {
	module := req.ToModuleDB()
	s.sanitizer.SanitizeModule(module)

	created, err := s.writer.Create(ctx, module)
	if errors.Is(err, repositories.ErrConflict) {
		return nil, fmt.Errorf("%w: id %d", ErrModuleAlreadyExists, req.ID)
	}
	if err != nil {
		logger.Log.Errorw("failed to create module", "id", req.ID, "error", err)
		return nil, err
	}

	s.afterWrite(ctx, created.ID, newEvent(models.EventModuleCreated, userID, created.ID))

	return created, nil
}

// Update applies the provided fields to an existing module.
func (s *ModuleService) Update(ctx context.Context, userID uuid.UUID, id int64, req *models.ModuleUpdateRequest) (*models.ModuleDB, error) {
	module, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get module", "id", id, "error", err)
		return nil, err
	}
	if module == nil {
		return nil, ErrModuleNotFound
	}

	req.ApplyTo(module)
	s.sanitizer.SanitizeModule(module)

	updated, err := s.writer.Update(ctx, module)
	if err != nil {
		logger.Log.Errorw("failed to update module", "id", id, "error", err)
		return nil, err
	}
	if updated == nil {
		// removed between the read and the write
		return nil, ErrModuleNotFound
	}

	s.afterWrite(ctx, id, newEvent(models.EventModuleUpdated, userID, id))

	return updated, nil
}

// Delete removes a module together with every favorite pointing at it.
func (s *ModuleService) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete module", "id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrModuleNotFound
	}

	s.afterWrite(ctx, id, newEvent(models.EventModuleDeleted, userID, id))

	return nil
}

// afterWrite drops the cached copies of the module and announces the change
// once the write has committed.
func (s *ModuleService) afterWrite(ctx context.Context, id int64, event models.CatalogEvent) {
	s.afterCommit(ctx, func(ctx context.Context) {
		if err := s.cache.Invalidate(ctx, id); err != nil {
			logger.Log.Errorw("failed to invalidate module cache", "id", id, "error", err)
		}
		publishEvent(ctx, s.kafkaWriter, event)
	})
}
