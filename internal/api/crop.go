package api

import (
	"context"
	"net/http"

	"github.com/gestorverde/gestorverde/internal/models"
)

// SeedTypes fetches the seed-type catalog.
func (c *HTTPClient) SeedTypes(ctx context.Context) ([]models.SeedType, error) {
	var out []models.SeedType
	if err := c.do(ctx, http.MethodGet, c.endpoints.SeedTypes, nil, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCrop attaches a new crop to its terrain and returns the server's
// entity.
func (c *HTTPClient) CreateCrop(ctx context.Context, p *models.CropPayload) (*models.Crop, error) {
	var out models.Crop
	if err := c.do(ctx, http.MethodPost, c.endpoints.Crops, nil, p, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCrop replaces the crop identified by id.
func (c *HTTPClient) UpdateCrop(ctx context.Context, id int64, p *models.CropPayload) (*models.Crop, error) {
	var out models.Crop
	if err := c.do(ctx, http.MethodPut, expandID(c.endpoints.CropByID, id), nil, p, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCrop removes the crop identified by id.
func (c *HTTPClient) DeleteCrop(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, expandID(c.endpoints.CropByID, id), nil, nil, nil, true)
}
