package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/keuzekompas/internal/logger"
	"github.com/sbilibin2017/keuzekompas/internal/models"
)

// ErrCacheMiss is returned when the requested key is not cached.
var ErrCacheMiss = errors.New("cache miss")

const (
	moduleListKey   = "modules:all"
	moduleFacetsKey = "modules:facets"
)

func moduleKey(id int64) string {
	return fmt.Sprintf("modules:%d", id)
}

// ModuleCacheRepository caches the unfiltered module list, the facets and
// single modules in Redis.
type ModuleCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewModuleCacheRepository(client *redis.Client, expiration time.Duration) *ModuleCacheRepository {
	return &ModuleCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetAll returns the cached unfiltered module list.
func (r *ModuleCacheRepository) GetAll(ctx context.Context) ([]models.ModuleDB, error) {
	var modules []models.ModuleDB
	if err := r.get(ctx, moduleListKey, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *ModuleCacheRepository) SetAll(ctx context.Context, modules []models.ModuleDB) error {
	return r.set(ctx, moduleListKey, modules)
}

// GetByID returns a cached module.
func (r *ModuleCacheRepository) GetByID(ctx context.Context, id int64) (*models.ModuleDB, error) {
	var module models.ModuleDB
	if err := r.get(ctx, moduleKey(id), &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *ModuleCacheRepository) SetByID(ctx context.Context, module *models.ModuleDB) error {
	return r.set(ctx, moduleKey(module.ID), module)
}

// GetFacets returns the cached facets.
func (r *ModuleCacheRepository) GetFacets(ctx context.Context) (*models.ModuleFacets, error) {
	var facets models.ModuleFacets
	if err := r.get(ctx, moduleFacetsKey, &facets); err != nil {
		return nil, err
	}
	return &facets, nil
}

func (r *ModuleCacheRepository) SetFacets(ctx context.Context, facets *models.ModuleFacets) error {
	return r.set(ctx, moduleFacetsKey, facets)
}

// Invalidate drops the list, the facets and the given modules.
func (r *ModuleCacheRepository) Invalidate(ctx context.Context, ids ...int64) error {
	keys := []string{moduleListKey, moduleFacetsKey}
	for _, id := range ids {
		keys = append(keys, moduleKey(id))
	}

	deleted, err := r.client.Del(ctx, keys...).Result()
	logger.Log.Infow(
		"keys", keys,
		"result", deleted,
		"error", err,
	)

	return err
}

func (r *ModuleCacheRepository) get(ctx context.Context, key string, dest any) error {
	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Infow(
		"key", key,
		"result", len(val),
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(val, dest)
}

func (r *ModuleCacheRepository) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Infow(
		"key", key,
		"result", len(data),
		"error", err,
	)

	return err
}
