// Package repository persists drivers, vehicles and collection records.
package repository

import (
	"context"
	"errors"

	"fleet_admin/internal/models"
)

var (
	// ErrNotFound means no row has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique column (codigo_chofer, matricula) already holds the value.
	ErrDuplicate = errors.New("duplicate value")
	// ErrInUse means the row is still referenced by a collection record.
	ErrInUse = errors.New("record is referenced")
)

// Store is the persistence boundary of the backend handlers.
type Store interface {
	ListChoferes(ctx context.Context) ([]models.Chofer, error)
	GetChofer(ctx context.Context, id uint) (*models.Chofer, error)
	CreateChofer(ctx context.Context, c *models.Chofer) error
	UpdateChofer(ctx context.Context, c *models.Chofer) error
	DeleteChofer(ctx context.Context, id uint) error

	ListCoches(ctx context.Context) ([]models.Coche, error)
	GetCoche(ctx context.Context, id uint) (*models.Coche, error)
	CreateCoche(ctx context.Context, c *models.Coche) error
	UpdateCoche(ctx context.Context, c *models.Coche) error
	DeleteCoche(ctx context.Context, id uint) error

	// Collection records come back with Chofer and Coche loaded.
	ListRecaudaciones(ctx context.Context) ([]models.Recaudacion, error)
	GetRecaudacion(ctx context.Context, id uint) (*models.Recaudacion, error)
	CreateRecaudacion(ctx context.Context, r *models.Recaudacion) error
	UpdateRecaudacion(ctx context.Context, r *models.Recaudacion) error
	DeleteRecaudacion(ctx context.Context, id uint) error
}
