package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/keuzekompas/internal/jwt"
	"github.com/sbilibin2017/keuzekompas/internal/models"
	"github.com/sbilibin2017/keuzekompas/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()
	admin := jwt.Identity{UserID: uuid.New(), Role: models.RoleAdmin}
	member := jwt.Identity{UserID: uuid.New(), Role: models.RoleUser}
	stranger := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := services.NewMockUserDirectory(ctrl)
	deleter := services.NewMockUserDeleter(ctrl)
	svc := services.NewUserService(directory, deleter)

	t.Run("list requires admin", func(t *testing.T) {
		_, err := svc.List(ctx, member)
		assert.ErrorIs(t, err, services.ErrForbidden)

		directory.EXPECT().List(ctx).Return([]models.UserDB{
			{UserID: admin.UserID, Name: "Admin", PasswordHash: "secret", Role: models.RoleAdmin},
		}, nil)
		users, err := svc.List(ctx, admin)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "Admin", users[0].Name)
	})

	t.Run("get self or admin", func(t *testing.T) {
		directory.EXPECT().GetByID(ctx, member.UserID).Return(&models.UserDB{UserID: member.UserID, Name: "Me"}, nil)
		me, err := svc.Get(ctx, member, member.UserID)
		require.NoError(t, err)
		assert.Equal(t, "Me", me.Name)

		_, err = svc.Get(ctx, member, stranger)
		assert.ErrorIs(t, err, services.ErrForbidden)

		directory.EXPECT().GetByID(ctx, stranger).Return(nil, nil)
		_, err = svc.Get(ctx, admin, stranger)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, member, stranger), services.ErrForbidden)

		deleter.EXPECT().Delete(ctx, stranger).Return(false, nil)
		assert.ErrorIs(t, svc.Delete(ctx, admin, stranger), services.ErrUserNotFound)

		deleter.EXPECT().Delete(ctx, member.UserID).Return(true, nil)
		assert.NoError(t, svc.Delete(ctx, admin, member.UserID))
	})
}
