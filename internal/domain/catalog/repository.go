// internal/domain/catalog/repository.go
package catalog

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrProductNotFound is returned when no active product has the requested id
var ErrProductNotFound = errors.New("product not found")

// Repository reads the product catalog
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a catalog repository backed by gorm
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) List(ctx context.Context) ([]Product, error) {
	var products []Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&products).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "catalog: list products")
	}
	return products, nil
}

func (r *gormRepository) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "catalog: get product %q", slug)
	}
	return &p, nil
}
