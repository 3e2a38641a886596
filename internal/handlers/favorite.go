package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/keuzekompas/internal/models"
	"github.com/sbilibin2017/keuzekompas/internal/services"
)

//go:generate mockgen -source=favorite.go -destination=mock_favorite.go -package=handlers

// FavoriteLister lists the caller's favorites.
type FavoriteLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error)
}

// FavoriteAdder bookmarks a module.
type FavoriteAdder interface {
	Add(ctx context.Context, userID uuid.UUID, moduleID int64) (*models.FavoriteDB, bool, error)
}

// FavoriteRemover drops a bookmark.
type FavoriteRemover interface {
	Remove(ctx context.Context, userID uuid.UUID, moduleID int64) error
}

// FavoriteStatusChecker tells whether a module is bookmarked.
type FavoriteStatusChecker interface {
	IsFavorite(ctx context.Context, userID uuid.UUID, moduleID int64) (bool, error)
}

// FavoriteCounter counts the caller's favorites.
type FavoriteCounter interface {
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

// NewListFavoritesHandler returns the caller's favorites, oldest first.
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.FavoriteDB
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /favorites [get]
func NewListFavoritesHandler(svc FavoriteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFromRequest(w, r)
		if !ok {
			return
		}

		favorites, err := svc.List(r.Context(), id.UserID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if favorites == nil {
			favorites = []models.FavoriteDB{}
		}

		writeJSON(w, http.StatusOK, favorites)
	}
}

// NewAddFavoriteHandler bookmarks a module. Adding an existing favorite returns it with 200.
// @Summary Add favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param favorite body models.FavoriteRequest true "Module to bookmark"
// @Success 201 {object} models.FavoriteDB "Created"
// @Success 200 {object} models.FavoriteDB "Already a favorite"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Module or user not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /favorites [post]
func NewAddFavoriteHandler(svc FavoriteAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFromRequest(w, r)
		if !ok {
			return
		}

		var req models.FavoriteRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		favorite, created, err := svc.Add(r.Context(), id.UserID, req.ModuleID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrModuleNotFound):
				writeError(w, http.StatusNotFound, msgModuleNotFound)
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, favorite)
	}
}

// NewRemoveFavoriteHandler drops a bookmark. Removing an absent one still succeeds.
// @Summary Remove favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param moduleId path int true "Module id"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Invalid module id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /favorites/{moduleId} [delete]
func NewRemoveFavoriteHandler(svc FavoriteRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFromRequest(w, r)
		if !ok {
			return
		}
		moduleID, ok := parseInt64Param(w, r, "moduleId")
		if !ok {
			return
		}

		if err := svc.Remove(r.Context(), id.UserID, moduleID); err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Favorite removed successfully"})
	}
}

// NewFavoriteStatusHandler reports whether a module is among the caller's favorites.
// @Summary Favorite status
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param moduleId path int true "Module id"
// @Success 200 {object} models.FavoriteStatusResponse
// @Failure 400 {object} models.ErrorResponse "Invalid module id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /favorites/{moduleId} [get]
func NewFavoriteStatusHandler(svc FavoriteStatusChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFromRequest(w, r)
		if !ok {
			return
		}
		moduleID, ok := parseInt64Param(w, r, "moduleId")
		if !ok {
			return
		}

		isFavorite, err := svc.IsFavorite(r.Context(), id.UserID, moduleID)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.FavoriteStatusResponse{IsFavorite: isFavorite})
	}
}

// NewFavoriteCountHandler returns how many modules the caller bookmarked.
// @Summary Favorite count
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.FavoriteCountResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /favorites/count [get]
func NewFavoriteCountHandler(svc FavoriteCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFromRequest(w, r)
		if !ok {
			return
		}

		count, err := svc.Count(r.Context(), id.UserID)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.FavoriteCountResponse{Count: count})
	}
}
