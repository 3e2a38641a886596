package services_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/keuzekompas/internal/catalog"
	"github.com/sbilibin2017/keuzekompas/internal/middlewares"
	"github.com/sbilibin2017/keuzekompas/internal/models"
	"github.com/sbilibin2017/keuzekompas/internal/repositories"
	"github.com/sbilibin2017/keuzekompas/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moduleMocks struct {
	reader    *services.MockModuleReader
	writer    *services.MockModuleWriter
	cache     *services.MockModuleCache
	sanitizer *services.MockModuleSanitizer
	kafka     *services.MockKafkaWriter
}

func newModuleService(t *testing.T, opts ...services.MutationOption) (*services.ModuleService, moduleMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := moduleMocks{
		reader:    services.NewMockModuleReader(ctrl),
		writer:    services.NewMockModuleWriter(ctrl),
		cache:     services.NewMockModuleCache(ctrl),
		sanitizer: services.NewMockModuleSanitizer(ctrl),
		kafka:     services.NewMockKafkaWriter(ctrl),
	}
	return services.NewModuleService(m.reader, m.writer, m.cache, m.sanitizer, m.kafka, opts...), m
}

func TestModuleService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	modules := []models.ModuleDB{{ID: 1, Name: "Web"}, {ID: 2, Name: "Data"}}

	t.Run("unfiltered served from cache", func(t *testing.T) {
		svc, m := newModuleService(t)
		m.cache.EXPECT().GetAll(ctx).Return(modules, nil)

		got, err := svc.List(ctx, catalog.Filter{SearchTerm: "   "}, userID)
		require.NoError(t, err)
		assert.Equal(t, modules, got)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		svc, m := newModuleService(t)
		gomock.InOrder(
			m.cache.EXPECT().GetAll(ctx).Return(nil, repositories.ErrCacheMiss),
			m.reader.EXPECT().List(ctx, catalog.Filter{}, userID).Return(modules, nil),
			m.cache.EXPECT().SetAll(ctx, modules).Return(errors.New("redis down")),
		)

		got, err := svc.List(ctx, catalog.Filter{}, userID)
		require.NoError(t, err)
		assert.Equal(t, modules, got)
	})

	t.Run("filtered bypasses cache", func(t *testing.T) {
		svc, m := newModuleService(t)
		filter := catalog.Filter{Credits: []int{15}, FavoritesOnly: true}
		m.reader.EXPECT().List(ctx, filter, userID).Return(modules[:1], nil)

		got, err := svc.List(ctx, filter, userID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("search", func(t *testing.T) {
		svc, m := newModuleService(t)
		m.reader.EXPECT().List(ctx, catalog.Filter{SearchTerm: "web"}, userID).Return(modules[:1], nil)

		got, err := svc.Search(ctx, " web ", userID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("reader error", func(t *testing.T) {
		svc, m := newModuleService(t)
		m.reader.EXPECT().List(ctx, gomock.Any(), userID).Return(nil, errors.New("db error"))

		_, err := svc.List(ctx, catalog.Filter{Levels: []string{"NLQF-5"}}, userID)
		assert.Error(t, err)
	})
}

func TestModuleService_Facets(t *testing.T) {
	ctx := context.Background()
	facets := &models.ModuleFacets{Credits: []int{15}, Levels: []string{"NLQF-5"}, Locations: []string{"Breda"}}

	svc, m := newModuleService(t)
	gomock.InOrder(
		m.cache.EXPECT().GetFacets(ctx).Return(nil, repositories.ErrCacheMiss),
		m.reader.EXPECT().Facets(ctx).Return(facets, nil),
		m.cache.EXPECT().SetFacets(ctx, facets).Return(nil),
		m.cache.EXPECT().GetFacets(ctx).Return(facets, nil),
	)

	got, err := svc.Facets(ctx)
	require.NoError(t, err)
	assert.Equal(t, facets, got)

	got, err = svc.Facets(ctx)
	require.NoError(t, err)
	assert.Equal(t, facets, got)
}

func TestModuleService_Get(t *testing.T) {
	ctx := context.Background()
	module := &models.ModuleDB{ID: 7, Name: "Security"}

	t.Run("cached", func(t *testing.T) {
		svc, m := newModuleService(t)
		m.cache.EXPECT().GetByID(ctx, int64(7)).Return(module, nil)

		got, err := svc.Get(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, module, got)
	})

	t.Run("loaded and cached", func(t *testing.T) {
		svc, m := newModuleService(t)
		m.cache.EXPECT().GetByID(ctx, int64(7)).Return(nil, repositories.ErrCacheMiss)
		m.reader.EXPECT().GetByID(ctx, int64(7)).Return(module, nil)
		m.cache.EXPECT().SetByID(ctx, module).Return(nil)

		got, err := svc.Get(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, module, got)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newModuleService(t)
		m.cache.EXPECT().GetByID(ctx, int64(8)).Return(nil, repositories.ErrCacheMiss)
		m.reader.EXPECT().GetByID(ctx, int64(8)).Return(nil, nil)

		_, err := svc.Get(ctx, 8)
		assert.ErrorIs(t, err, services.ErrModuleNotFound)
	})
}

func TestModuleService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	req := &models.ModuleCreateRequest{ID: 3, Name: "Game Design", Description: "<b>fun</b>", StudyCredit: 15, Location: "Breda", Level: "NLQF-5"}

	t.Run("created", func(t *testing.T) {
		svc, m := newModuleService(t)
		gomock.InOrder(
			m.sanitizer.EXPECT().SanitizeModule(gomock.Any()).Do(func(module *models.ModuleDB) {
				module.Description = "fun"
			}),
			m.writer.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, module *models.ModuleDB) (*models.ModuleDB, error) {
				assert.Equal(t, "fun", module.Description)
				return module, nil
			}),
			m.cache.EXPECT().Invalidate(ctx, int64(3)).Return(nil),
			m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil),
		)

		got, err := svc.Create(ctx, userID, req)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
	})

	t.Run("duplicate id", func(t *testing.T) {
		svc, m := newModuleService(t)
		m.sanitizer.EXPECT().SanitizeModule(gomock.Any())
		m.writer.EXPECT().Create(ctx, gomock.Any()).Return(nil, repositories.ErrConflict)

		_, err := svc.Create(ctx, userID, req)
		assert.ErrorIs(t, err, services.ErrModuleAlreadyExists)
	})
}

func TestModuleService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	name := "Renamed"
	req := &models.ModuleUpdateRequest{Name: &name}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		svc, m := newModuleService(t)
		existing := &models.ModuleDB{ID: 5, Name: "Old", StudyCredit: 30, Location: "Breda", Level: "NLQF-6"}

		m.reader.EXPECT().GetByID(ctx, int64(5)).Return(existing, nil)
		m.sanitizer.EXPECT().SanitizeModule(existing)
		m.writer.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, module *models.ModuleDB) (*models.ModuleDB, error) {
			assert.Equal(t, "Renamed", module.Name)
			assert.Equal(t, 30, module.StudyCredit)
			return module, nil
		})
		m.cache.EXPECT().Invalidate(ctx, int64(5)).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.Update(ctx, userID, 5, req)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
	})

	t.Run("unknown module", func(t *testing.T) {
		svc, m := newModuleService(t)
		m.reader.EXPECT().GetByID(ctx, int64(6)).Return(nil, nil)

		_, err := svc.Update(ctx, userID, 6, req)
		assert.ErrorIs(t, err, services.ErrModuleNotFound)
	})

	t.Run("deleted concurrently", func(t *testing.T) {
		svc, m := newModuleService(t)
		m.reader.EXPECT().GetByID(ctx, int64(7)).Return(&models.ModuleDB{ID: 7}, nil)
		m.sanitizer.EXPECT().SanitizeModule(gomock.Any())
		m.writer.EXPECT().Update(ctx, gomock.Any()).Return(nil, nil)

		_, err := svc.Update(ctx, userID, 7, req)
		assert.ErrorIs(t, err, services.ErrModuleNotFound)
	})
}

func TestModuleService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		svc, m := newModuleService(t)
		m.writer.EXPECT().Delete(ctx, int64(1)).Return(true, nil)
		m.cache.EXPECT().Invalidate(ctx, int64(1)).Return(errors.New("redis down"))
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(ctx, userID, 1))
	})

	t.Run("unknown module", func(t *testing.T) {
		svc, m := newModuleService(t)
		m.writer.EXPECT().Delete(ctx, int64(2)).Return(false, nil)

		assert.ErrorIs(t, svc.Delete(ctx, userID, 2), services.ErrModuleNotFound)
	})

	t.Run("writer error", func(t *testing.T) {
		svc, m := newModuleService(t)
		m.writer.EXPECT().Delete(ctx, int64(3)).Return(false, errors.New("db error"))

		assert.EqualError(t, svc.Delete(ctx, userID, 3), "db error")
	})
}

func TestModuleService_SideEffectsWaitForCommit(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		setupDB   func(mock sqlmock.Sqlmock)
		committed bool
		wantCode  int
	}{
		{
			name: "commit succeeds",
			setupDB: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			committed: true,
			wantCode:  http.StatusNoContent,
		},
		{
			name: "commit fails",
			setupDB: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(sql.ErrConnDone)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.setupDB(mock)

			svc, m := newModuleService(t, services.WithAfterCommit(middlewares.AfterCommit))
			m.writer.EXPECT().Delete(gomock.Any(), int64(1)).Return(true, nil)
			if tt.committed {
				m.cache.EXPECT().Invalidate(gomock.Any(), int64(1)).Return(nil)
				m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			handler := middlewares.TxMiddleware(sqlx.NewDb(db, "sqlmock"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, svc.Delete(r.Context(), userID, 1))
				w.WriteHeader(http.StatusNoContent)
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/modules/1", nil))

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
