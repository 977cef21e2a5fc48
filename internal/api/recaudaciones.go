package api

import (
	"context"
	"fmt"
	"net/http"

	"fleet_admin/internal/models"
)

// ============ RECAUDACIONES ============

func (c *Client) ListRecaudaciones(ctx context.Context) ([]models.Recaudacion, error) {
	var recaudaciones []models.Recaudacion
	if err := c.do(ctx, http.MethodGet, "/recaudaciones/", nil, &recaudaciones); err != nil {
		return nil, err
	}
	return recaudaciones, nil
}

func (c *Client) GetRecaudacion(ctx context.Context, id uint) (*models.Recaudacion, error) {
	var recaudacion models.Recaudacion
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/recaudaciones/%d", id), nil, &recaudacion); err != nil {
		return nil, err
	}
	return &recaudacion, nil
}

func (c *Client) CreateRecaudacion(ctx context.Context, in models.RecaudacionCreate) (*models.Recaudacion, error) {
	var recaudacion models.Recaudacion
	if err := c.do(ctx, http.MethodPost, "/recaudaciones/", in, &recaudacion); err != nil {
		return nil, err
	}
	return &recaudacion, nil
}

// UpdateRecaudacion sends a partial update; only non-nil fields of in reach the backend.
func (c *Client) UpdateRecaudacion(ctx context.Context, id uint, in models.RecaudacionPatch) (*models.Recaudacion, error) {
	var recaudacion models.Recaudacion
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/recaudaciones/%d", id), in, &recaudacion); err != nil {
		return nil, err
	}
	return &recaudacion, nil
}

func (c *Client) DeleteRecaudacion(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/recaudaciones/%d", id), nil, nil)
}
