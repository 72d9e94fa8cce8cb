package inventory

import (
	"context"
	"errors"

	"github.com/stockroomhq/stockroom-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes inventory row persistence and log appends.
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

// Find loads the inventory row, returning (nil, nil) when it does not exist.
func (r *Repository) Find(ctx context.Context, productID, warehouseID uint) (*models.Inventory, error) {
	var row models.Inventory
	err := r.db.WithContext(ctx).
		First(&row, "product_id = ? AND warehouse_id = ?", productID, warehouseID).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ApplyDelta adds delta to the row's quantity in a single guarded UPDATE.
// The guard keeps the quantity non-negative, so a sale that would overdraw
// the row simply matches nothing. Returns the number of rows updated.
func (r *Repository) ApplyDelta(ctx context.Context, productID, warehouseID uint, delta int) (int64, error) {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE inventory
		 SET quantity = quantity + ?, updated_at = CURRENT_TIMESTAMP
		 WHERE product_id = ? AND warehouse_id = ? AND quantity + ? >= 0`,
		delta, productID, warehouseID, delta,
	)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// AppendLog inserts an immutable stock-movement record.
func (r *Repository) AppendLog(ctx context.Context, log *models.InventoryLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
