package client

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/sbilibin2017/keuzekompas/internal/models"
)

// LoadFavorites replaces the local favorite set with the server's.
func (c *Client) LoadFavorites(ctx context.Context) ([]models.FavoriteDB, error) {
	var favorites []models.FavoriteDB
	if err := c.do(ctx, http.MethodGet, "/favorites", nil, &favorites); err != nil {
		return nil, err
	}

	set := make(map[int64]struct{}, len(favorites))
	for _, f := range favorites {
		set[f.ModuleID] = struct{}{}
	}

	c.mu.Lock()
	c.favorites = set
	c.mu.Unlock()

	return favorites, nil
}

// AddFavorite bookmarks a module. Adding an existing favorite is not an error.
func (c *Client) AddFavorite(ctx context.Context, moduleID int64) error {
	req := models.FavoriteRequest{ModuleID: moduleID}
	if err := c.do(ctx, http.MethodPost, "/favorites", req, nil); err != nil {
		return err
	}

	c.mu.Lock()
	c.favorites[moduleID] = struct{}{}
	c.mu.Unlock()
	return nil
}

func (c *Client) RemoveFavorite(ctx context.Context, moduleID int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/favorites/%d", moduleID), nil, nil); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.favorites, moduleID)
	c.mu.Unlock()
	return nil
}

// ToggleFavorite removes the module when it is a favorite and adds it
// otherwise. It returns whether the module is a favorite afterwards; the
// local set only changes once the server confirmed.
func (c *Client) ToggleFavorite(ctx context.Context, moduleID int64) (bool, error) {
	if c.IsFavorite(moduleID) {
		if err := c.RemoveFavorite(ctx, moduleID); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := c.AddFavorite(ctx, moduleID); err != nil {
		return false, err
	}
	return true, nil
}

// IsFavorite answers from the local set.
func (c *Client) IsFavorite(moduleID int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.favorites[moduleID]
	return ok
}

func (c *Client) FavoriteCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.favorites)
}

// FavoriteIDs returns the local set in ascending order.
func (c *Client) FavoriteIDs() []int64 {
	c.mu.RLock()
	ids := make([]int64, 0, len(c.favorites))
	for id := range c.favorites {
		ids = append(ids, id)
	}
	c.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
