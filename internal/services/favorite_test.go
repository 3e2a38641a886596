package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/keuzekompas/internal/models"
	"github.com/sbilibin2017/keuzekompas/internal/repositories"
	"github.com/sbilibin2017/keuzekompas/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService_Add(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	fav := &models.FavoriteDB{FavoriteID: uuid.New(), UserID: userID, ModuleID: 2}

	tests := []struct {
		name        string
		created     bool
		saveErr     error
		wantPublish bool
		wantErr     error
	}{
		{name: "new favorite publishes", created: true, wantPublish: true},
		{name: "existing favorite is idempotent", created: false},
		{name: "missing module", saveErr: repositories.ErrReferenceNotFound, wantErr: services.ErrModuleNotFound},
		{
			name:    "missing user",
			saveErr: &repositories.ConstraintError{Err: repositories.ErrReferenceNotFound, Constraint: repositories.FavoritesUserFK},
			wantErr: services.ErrUserNotFound,
		},
		{
			name:    "missing module by constraint",
			saveErr: &repositories.ConstraintError{Err: repositories.ErrReferenceNotFound, Constraint: repositories.FavoritesModuleFK},
			wantErr: services.ErrModuleNotFound,
		},
		{name: "storage error", saveErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := services.NewMockFavoriteReader(ctrl)
			writer := services.NewMockFavoriteWriter(ctrl)
			kafka := services.NewMockKafkaWriter(ctrl)
			svc := services.NewFavoriteService(reader, writer, kafka)

			if tt.saveErr != nil {
				writer.EXPECT().Save(ctx, userID, int64(2)).Return(nil, false, tt.saveErr)
			} else {
				writer.EXPECT().Save(ctx, userID, int64(2)).Return(fav, tt.created, nil)
			}
			if tt.wantPublish {
				kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			got, created, err := svc.Add(ctx, userID, 2)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.created, created)
			assert.Equal(t, fav, got)
		})
	}
}

func TestFavoriteService_Remove(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockFavoriteWriter(ctrl)
	kafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewFavoriteService(nil, writer, kafka)

	writer.EXPECT().Delete(ctx, userID, int64(2)).Return(true, nil)
	kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
	assert.NoError(t, svc.Remove(ctx, userID, 2))

	// absent pair: still fine, nothing published
	writer.EXPECT().Delete(ctx, userID, int64(3)).Return(false, nil)
	assert.NoError(t, svc.Remove(ctx, userID, 3))

	writer.EXPECT().Delete(ctx, userID, int64(4)).Return(false, errors.New("db error"))
	assert.Error(t, svc.Remove(ctx, userID, 4))
}

func TestFavoriteService_Reads(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockFavoriteReader(ctrl)
	svc := services.NewFavoriteService(reader, nil, nil)

	favorites := []models.FavoriteDB{{ModuleID: 1}, {ModuleID: 2}}
	reader.EXPECT().List(ctx, userID).Return(favorites, nil)
	got, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, favorites, got)

	reader.EXPECT().Get(ctx, userID, int64(1)).Return(&favorites[0], nil)
	ok, err := svc.IsFavorite(ctx, userID, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	reader.EXPECT().Get(ctx, userID, int64(9)).Return(nil, nil)
	ok, err = svc.IsFavorite(ctx, userID, 9)
	require.NoError(t, err)
	assert.False(t, ok)

	reader.EXPECT().Count(ctx, userID).Return(2, nil)
	count, err := svc.Count(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	reader.EXPECT().List(ctx, userID).Return(nil, errors.New("db error"))
	_, err = svc.List(ctx, userID)
	assert.Error(t, err)
}

func TestFavoriteService_PublishesThroughCommitHook(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockFavoriteWriter(ctrl)
	kafka := services.NewMockKafkaWriter(ctrl)

	var pending []func(context.Context)
	deferred := func(_ context.Context, fn func(context.Context)) { pending = append(pending, fn) }
	svc := services.NewFavoriteService(nil, writer, kafka, services.WithAfterCommit(deferred))

	writer.EXPECT().Save(ctx, userID, int64(2)).Return(&models.FavoriteDB{ModuleID: 2}, true, nil)
	writer.EXPECT().Delete(ctx, userID, int64(2)).Return(true, nil)

	_, _, err := svc.Add(ctx, userID, 2)
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, userID, 2))
	require.Len(t, pending, 2)

	// nothing reaches kafka until the hooks run
	kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	for _, fn := range pending {
		fn(ctx)
	}
}
