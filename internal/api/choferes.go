package api

import (
	"context"
	"fmt"
	"net/http"

	"fleet_admin/internal/models"
)

// ============ CHOFERES ============

func (c *Client) ListChoferes(ctx context.Context) ([]models.Chofer, error) {
	var choferes []models.Chofer
	if err := c.do(ctx, http.MethodGet, "/choferes/", nil, &choferes); err != nil {
		return nil, err
	}
	return choferes, nil
}

func (c *Client) GetChofer(ctx context.Context, id uint) (*models.Chofer, error) {
	var chofer models.Chofer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/choferes/%d", id), nil, &chofer); err != nil {
		return nil, err
	}
	return &chofer, nil
}

func (c *Client) CreateChofer(ctx context.Context, in models.ChoferCreate) (*models.Chofer, error) {
	var chofer models.Chofer
	if err := c.do(ctx, http.MethodPost, "/choferes/", in, &chofer); err != nil {
		return nil, err
	}
	return &chofer, nil
}

// UpdateChofer sends a partial update; only non-nil fields of in reach the backend.
func (c *Client) UpdateChofer(ctx context.Context, id uint, in models.ChoferPatch) (*models.Chofer, error) {
	var chofer models.Chofer
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/choferes/%d", id), in, &chofer); err != nil {
		return nil, err
	}
	return &chofer, nil
}

func (c *Client) DeleteChofer(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/choferes/%d", id), nil, nil)
}
