package models

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteDB represents a user's bookmark of a module. (user_id, module_id) is unique.
type FavoriteDB struct {
	FavoriteID uuid.UUID `json:"id" db:"favorite_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	ModuleID   int64     `json:"module_id" db:"module_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// FavoriteRequest represents the JSON body for adding a favorite
// swagger:model FavoriteRequest
type FavoriteRequest struct {
	// Module id
	// required: true
	// example: 42
	ModuleID int64 `json:"module_id" validate:"required,gt=0"`
}

// FavoriteStatusResponse tells whether a module is among the caller's favorites
// swagger:model FavoriteStatusResponse
type FavoriteStatusResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

// FavoriteCountResponse carries the number of favorites of the caller
// swagger:model FavoriteCountResponse
type FavoriteCountResponse struct {
	Count int `json:"count"`
}
