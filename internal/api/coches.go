package api

import (
	"context"
	"fmt"
	"net/http"

	"fleet_admin/internal/models"
)

// ============ COCHES ============

func (c *Client) ListCoches(ctx context.Context) ([]models.Coche, error) {
	var coches []models.Coche
	if err := c.do(ctx, http.MethodGet, "/coches/", nil, &coches); err != nil {
		return nil, err
	}
	return coches, nil
}

func (c *Client) GetCoche(ctx context.Context, id uint) (*models.Coche, error) {
	var coche models.Coche
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/coches/%d", id), nil, &coche); err != nil {
		return nil, err
	}
	return &coche, nil
}

func (c *Client) CreateCoche(ctx context.Context, in models.CocheCreate) (*models.Coche, error) {
	var coche models.Coche
	if err := c.do(ctx, http.MethodPost, "/coches/", in, &coche); err != nil {
		return nil, err
	}
	return &coche, nil
}

// UpdateCoche sends a partial update; only non-nil fields of in reach the backend.
func (c *Client) UpdateCoche(ctx context.Context, id uint, in models.CochePatch) (*models.Coche, error) {
	var coche models.Coche
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/coches/%d", id), in, &coche); err != nil {
		return nil, err
	}
	return &coche, nil
}

func (c *Client) DeleteCoche(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/coches/%d", id), nil, nil)
}
