package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/keuzekompas/internal/jwt"
	"github.com/sbilibin2017/keuzekompas/internal/logger"
	"github.com/sbilibin2017/keuzekompas/internal/models"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

// ErrForbidden is returned when the requester may not act on the target user.
var ErrForbidden = errors.New("forbidden")

// UserDirectory lists and looks up users.
type UserDirectory interface {
	List(ctx context.Context) ([]models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserDeleter removes users.
type UserDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID) (bool, error)
}

// UserService is the administrative view on accounts.
type UserService struct {
	directory UserDirectory
	deleter   UserDeleter
}

// NewUserService creates a new UserService.
func NewUserService(directory UserDirectory, deleter UserDeleter) *UserService {
	return &UserService{directory: directory, deleter: deleter}
}

// List returns every user. Admin only.
func (s *UserService) List(ctx context.Context, requester jwt.Identity) ([]models.User, error) {
	if requester.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}

	users, err := s.directory.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}

	out := make([]models.User, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToUser())
	}
	return out, nil
}

// Get returns a user to an admin or to the user themselves.
func (s *UserService) Get(ctx context.Context, requester jwt.Identity, userID uuid.UUID) (*models.User, error) {
	if requester.Role != models.RoleAdmin && requester.UserID != userID {
		return nil, ErrForbidden
	}

	user, err := s.directory.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	u := user.ToUser()
	return &u, nil
}

// Delete removes a user and their favorites. Admin only.
func (s *UserService) Delete(ctx context.Context, requester jwt.Identity, userID uuid.UUID) error {
	if requester.Role != models.RoleAdmin {
		return ErrForbidden
	}

	deleted, err := s.deleter.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "userID", userID, "error", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	logger.Log.Infow("user deleted", "userID", userID, "by", requester.UserID)
	return nil
}
