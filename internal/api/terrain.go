package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gestorverde/gestorverde/internal/models"
)

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q
}

// AllTerrains fetches one page of the public terrain listing.
func (c *HTTPClient) AllTerrains(ctx context.Context, page, size int) (*models.Page[models.Terrain], error) {
	var out models.Page[models.Terrain]
	if err := c.do(ctx, http.MethodGet, c.endpoints.TerrainAll, pageQuery(page, size), nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyTerrains fetches one page of the terrains owned by email.
func (c *HTTPClient) MyTerrains(ctx context.Context, email string, page, size int) (*models.Page[models.Terrain], error) {
	q := pageQuery(page, size)
	q.Set("email", email)

	var out models.Page[models.Terrain]
	if err := c.do(ctx, http.MethodGet, c.endpoints.TerrainMy, q, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// Terrain fetches a single terrain by id, including its crops.
func (c *HTTPClient) Terrain(ctx context.Context, id int64) (*models.Terrain, error) {
	var out models.Terrain
	if err := c.do(ctx, http.MethodGet, expandID(c.endpoints.TerrainByID, id), nil, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTerrain registers a new terrain and returns the server's entity,
// which carries the assigned id.
func (c *HTTPClient) CreateTerrain(ctx context.Context, t *models.Terrain) (*models.Terrain, error) {
	var out models.Terrain
	if err := c.do(ctx, http.MethodPost, c.endpoints.TerrainCreate, nil, t, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTerrain replaces the terrain identified by id.
func (c *HTTPClient) UpdateTerrain(ctx context.Context, id int64, t *models.Terrain) (*models.Terrain, error) {
	var out models.Terrain
	if err := c.do(ctx, http.MethodPut, expandID(c.endpoints.TerrainUpdate, id), nil, t, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTerrain removes the terrain identified by id.
func (c *HTTPClient) DeleteTerrain(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, expandID(c.endpoints.TerrainDelete, id), nil, nil, nil, true)
}
