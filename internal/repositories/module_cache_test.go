package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/keuzekompas/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, exp time.Duration) (*ModuleCacheRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewModuleCacheRepository(rdb, exp), mr
}

func TestModuleCacheRepository(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t, time.Minute)

	modules := []models.ModuleDB{
		{ID: 1, Name: "Web Development", StudyCredit: 15, Location: "Breda", Level: "NLQF-5"},
		{ID: 2, Name: "Data Science", StudyCredit: 30, Location: "Tilburg", Level: "NLQF-6"},
	}

	t.Run("miss before set", func(t *testing.T) {
		_, err := cache.GetAll(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)

		_, err = cache.GetByID(ctx, 1)
		assert.ErrorIs(t, err, ErrCacheMiss)

		_, err = cache.GetFacets(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, cache.SetAll(ctx, modules))
		require.NoError(t, cache.SetByID(ctx, &modules[1]))
		require.NoError(t, cache.SetFacets(ctx, &models.ModuleFacets{Credits: []int{15, 30}}))

		got, err := cache.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, modules, got)

		one, err := cache.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Data Science", one.Name)

		facets, err := cache.GetFacets(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{15, 30}, facets.Credits)

		assert.Equal(t, time.Minute, mr.TTL(moduleListKey))
	})

	t.Run("invalidate drops list facets and module", func(t *testing.T) {
		require.NoError(t, cache.Invalidate(ctx, 2))

		_, err := cache.GetAll(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
		_, err = cache.GetFacets(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
		_, err = cache.GetByID(ctx, 2)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("entries expire", func(t *testing.T) {
		require.NoError(t, cache.SetAll(ctx, modules))
		mr.FastForward(2 * time.Minute)

		_, err := cache.GetAll(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("corrupt entry", func(t *testing.T) {
		require.NoError(t, mr.Set(moduleListKey, "not json"))

		_, err := cache.GetAll(ctx)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrCacheMiss)
	})
}
