package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/keuzekompas/internal/catalog"
	"github.com/sbilibin2017/keuzekompas/internal/models"
)

// Modules lists the catalog, filtered server side.
func (c *Client) Modules(ctx context.Context, filter catalog.Filter) ([]models.ModuleDB, error) {
	path := "/modules"
	if q := filter.Normalize().Query().Encode(); q != "" {
		path += "?" + q
	}

	var modules []models.ModuleDB
	if err := c.do(ctx, http.MethodGet, path, nil, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

func (c *Client) Module(ctx context.Context, id int64) (*models.ModuleDB, error) {
	var module models.ModuleDB
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/modules/%d", id), nil, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (c *Client) Facets(ctx context.Context) (*models.ModuleFacets, error) {
	var facets models.ModuleFacets
	if err := c.do(ctx, http.MethodGet, "/modules/facets", nil, &facets); err != nil {
		return nil, err
	}
	return &facets, nil
}

func (c *Client) CreateModule(ctx context.Context, req *models.ModuleCreateRequest) (*models.ModuleDB, error) {
	var module models.ModuleDB
	if err := c.do(ctx, http.MethodPost, "/modules", req, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (c *Client) UpdateModule(ctx context.Context, id int64, req *models.ModuleUpdateRequest) (*models.ModuleDB, error) {
	var module models.ModuleDB
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/modules/%d", id), req, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

// DeleteModule removes a module. The server drops its favorites, so the
// local set follows.
func (c *Client) DeleteModule(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/modules/%d", id), nil, nil); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.favorites, id)
	c.mu.Unlock()
	return nil
}
