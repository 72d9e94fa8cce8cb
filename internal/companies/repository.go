package company

import (
	"context"
	"errors"

	"github.com/stockroomhq/stockroom-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes company lookups.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindByID loads the company, returning (nil, nil) when it does not exist.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

// Exists reports whether the company id is known.
func (r *Repository) Exists(ctx context.Context, id uint) (bool, error) {
	company, err := r.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return company != nil, nil
}

// ListIDs returns every company id, ordered. Used by the scan worker.
func (r *Repository) ListIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Company{}).
		Order("id").
		Pluck("id", &ids).
		Error; err != nil {
		return nil, err
	}
	return ids, nil
}
