package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/keuzekompas/internal/logger"
	"github.com/sbilibin2017/keuzekompas/internal/models"
	"github.com/sbilibin2017/keuzekompas/internal/repositories"
)

//go:generate mockgen -source=favorite.go -destination=mock_favorite.go -package=services

// FavoriteReader defines read-only operations for favorites.
type FavoriteReader interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error)
	Get(ctx context.Context, userID uuid.UUID, moduleID int64) (*models.FavoriteDB, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

// FavoriteWriter defines write operations for favorites.
type FavoriteWriter interface {
	Save(ctx context.Context, userID uuid.UUID, moduleID int64) (*models.FavoriteDB, bool, error)
	Delete(ctx context.Context, userID uuid.UUID, moduleID int64) (bool, error)
}

// FavoriteService manages a user's bookmarked modules.
type FavoriteService struct {
	reader      FavoriteReader
	writer      FavoriteWriter
	kafkaWriter KafkaWriter
	afterCommit CommitHook
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(reader FavoriteReader, writer FavoriteWriter, kafkaWriter KafkaWriter, opts ...MutationOption) *FavoriteService {
	return &FavoriteService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		afterCommit: newMutationOptions(opts).afterCommit,
	}
}

func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error) {
	favorites, err := s.reader.List(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list favorites", "userID", userID, "error", err)
		return nil, err
	}
	return favorites, nil
}

// Add bookmarks a module. Adding an existing favorite returns it with
// created set to false. A user removed after the token was issued yields
// ErrUserNotFound.
func (s *FavoriteService) Add(ctx context.Context, userID uuid.UUID, moduleID int64) (*models.FavoriteDB, bool, error) {
	favorite, created, err := s.writer.Save(ctx, userID, moduleID)
	if errors.Is(err, repositories.ErrReferenceNotFound) {
		if repositories.ViolatedConstraint(err) == repositories.FavoritesUserFK {
			return nil, false, ErrUserNotFound
		}
		return nil, false, ErrModuleNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to save favorite", "userID", userID, "moduleID", moduleID, "error", err)
		return nil, false, err
	}

	if created {
		s.publish(ctx, newEvent(models.EventFavoriteAdded, userID, moduleID))
	}

	return favorite, created, nil
}

// Remove drops a bookmark. Removing an absent favorite is not an error.
func (s *FavoriteService) Remove(ctx context.Context, userID uuid.UUID, moduleID int64) error {
	existed, err := s.writer.Delete(ctx, userID, moduleID)
	if err != nil {
		logger.Log.Errorw("failed to delete favorite", "userID", userID, "moduleID", moduleID, "error", err)
		return err
	}

	if existed {
		s.publish(ctx, newEvent(models.EventFavoriteRemoved, userID, moduleID))
	}

	return nil
}

func (s *FavoriteService) publish(ctx context.Context, event models.CatalogEvent) {
	s.afterCommit(ctx, func(ctx context.Context) {
		publishEvent(ctx, s.kafkaWriter, event)
	})
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID uuid.UUID, moduleID int64) (bool, error) {
	favorite, err := s.reader.Get(ctx, userID, moduleID)
	if err != nil {
		logger.Log.Errorw("failed to get favorite", "userID", userID, "moduleID", moduleID, "error", err)
		return false, err
	}
	return favorite != nil, nil
}

func (s *FavoriteService) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.reader.Count(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count favorites", "userID", userID, "error", err)
		return 0, err
	}
	return count, nil
}
