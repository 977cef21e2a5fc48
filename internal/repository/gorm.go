package repository

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleet_admin/internal/models"
)

// Postgres error codes surfaced by lib/pq.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// GormStore is the Postgres-backed Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// translate maps driver errors onto the package sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return ErrDuplicate
		case pqForeignKeyViolation:
			return ErrInUse
		}
	}
	return err
}

func list[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	out := []T{}
	if err := db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func get[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var out T
	if err := db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func create[T any](ctx context.Context, db *gorm.DB, v *T) error {
	return translate(db.WithContext(ctx).Omit(clause.Associations).Create(v).Error)
}

func update[T any](ctx context.Context, db *gorm.DB, v *T) error {
	return translate(db.WithContext(ctx).Omit(clause.Associations).Save(v).Error)
}

func remove[T any](ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListChoferes(ctx context.Context) ([]models.Chofer, error) {
	return list[models.Chofer](ctx, s.db)
}

func (s *GormStore) GetChofer(ctx context.Context, id uint) (*models.Chofer, error) {
	return get[models.Chofer](ctx, s.db, id)
}

func (s *GormStore) CreateChofer(ctx context.Context, c *models.Chofer) error {
	return create(ctx, s.db, c)
}

func (s *GormStore) UpdateChofer(ctx context.Context, c *models.Chofer) error {
	return update(ctx, s.db, c)
}

func (s *GormStore) DeleteChofer(ctx context.Context, id uint) error {
	return remove[models.Chofer](ctx, s.db, id)
}

func (s *GormStore) ListCoches(ctx context.Context) ([]models.Coche, error) {
	return list[models.Coche](ctx, s.db)
}

func (s *GormStore) GetCoche(ctx context.Context, id uint) (*models.Coche, error) {
	return get[models.Coche](ctx, s.db, id)
}

func (s *GormStore) CreateCoche(ctx context.Context, c *models.Coche) error {
	return create(ctx, s.db, c)
}

func (s *GormStore) UpdateCoche(ctx context.Context, c *models.Coche) error {
	return update(ctx, s.db, c)
}

func (s *GormStore) DeleteCoche(ctx context.Context, id uint) error {
	return remove[models.Coche](ctx, s.db, id)
}

func (s *GormStore) withParties() *gorm.DB {
	return s.db.Preload("Chofer").Preload("Coche")
}

func (s *GormStore) ListRecaudaciones(ctx context.Context) ([]models.Recaudacion, error) {
	return list[models.Recaudacion](ctx, s.withParties())
}

func (s *GormStore) GetRecaudacion(ctx context.Context, id uint) (*models.Recaudacion, error) {
	return get[models.Recaudacion](ctx, s.withParties(), id)
}

func (s *GormStore) CreateRecaudacion(ctx context.Context, r *models.Recaudacion) error {
	return create(ctx, s.db, r)
}

func (s *GormStore) UpdateRecaudacion(ctx context.Context, r *models.Recaudacion) error {
	return update(ctx, s.db, r)
}

func (s *GormStore) DeleteRecaudacion(ctx context.Context, id uint) error {
	return remove[models.Recaudacion](ctx, s.db, id)
}
