package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/keuzekompas/internal/jwt"
	"github.com/sbilibin2017/keuzekompas/internal/models"
	"github.com/sbilibin2017/keuzekompas/internal/services"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=handlers

// UserLister lists accounts.
type UserLister interface {
	List(ctx context.Context, requester jwt.Identity) ([]models.User, error)
}

// UserGetter looks up one account.
type UserGetter interface {
	Get(ctx context.Context, requester jwt.Identity, userID uuid.UUID) (*models.User, error)
}

// UserRemover deletes accounts.
type UserRemover interface {
	Delete(ctx context.Context, requester jwt.Identity, userID uuid.UUID) error
}

func parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return uuid.Nil, false
	}
	return id, true
}

func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	default:
		writeInternalError(w, err)
	}
}

// NewListUsersHandler returns every account.
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := identityFromRequest(w, r)
		if !ok {
			return
		}

		users, err := svc.List(r.Context(), requester)
		if err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// NewGetUserHandler returns one account to an admin or to its owner.
// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse "Invalid user id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := identityFromRequest(w, r)
		if !ok {
			return
		}
		userID, ok := parseUserID(w, r)
		if !ok {
			return
		}

		user, err := svc.Get(r.Context(), requester, userID)
		if err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteUserHandler removes an account and its favorites.
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Invalid user id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := identityFromRequest(w, r)
		if !ok {
			return
		}
		userID, ok := parseUserID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), requester, userID); err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "User successfully deleted"})
	}
}
