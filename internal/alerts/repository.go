package alerts

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// Candidate is a (product, warehouse, inventory, optional supplier) tuple at
// or below its low-stock threshold.
type Candidate struct {
	ProductID         uint           `gorm:"column:product_id"`
	ProductName       string         `gorm:"column:product_name"`
	SKU               string         `gorm:"column:sku"`
	CurrentStock      int            `gorm:"column:current_stock"`
	LowStockThreshold int            `gorm:"column:low_stock_threshold"`
	WarehouseID       uint           `gorm:"column:warehouse_id"`
	WarehouseName     string         `gorm:"column:warehouse_name"`
	SupplierID        sql.NullInt64  `gorm:"column:supplier_id"`
	SupplierName      sql.NullString `gorm:"column:supplier_name"`
	SupplierContact   sql.NullString `gorm:"column:supplier_contact"`
}

const lowStockCandidatesQuery = `
SELECT p.id AS product_id,
       p.name AS product_name,
       p.sku,
       i.quantity AS current_stock,
       p.low_stock_threshold,
       w.id AS warehouse_id,
       w.name AS warehouse_name,
       s.id AS supplier_id,
       s.name AS supplier_name,
       s.contact_email AS supplier_contact
FROM products p
JOIN inventory i ON p.id = i.product_id
JOIN warehouses w ON i.warehouse_id = w.id
LEFT JOIN suppliers s ON p.supplier_id = s.id
WHERE w.company_id = ? AND i.quantity <= p.low_stock_threshold
ORDER BY w.id, p.id
`

const unitsSoldQuery = `
SELECT COALESCE(SUM(quantity_change), 0) AS total
FROM inventory_logs
WHERE product_id = ? AND quantity_change < 0 AND created_at >= ?
`

// Repository runs the alert read queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LowStockCandidates returns the company's low-stock tuples in warehouse,
// product order.
func (r *Repository) LowStockCandidates(ctx context.Context, companyID uint) ([]Candidate, error) {
	var candidates []Candidate
	if err := r.db.WithContext(ctx).
		Raw(lowStockCandidatesQuery, companyID).
		Scan(&candidates).
		Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

// UnitsSoldSince sums the product's outbound movement since the given time
// and returns it as a positive unit count.
func (r *Repository) UnitsSoldSince(ctx context.Context, productID uint, since time.Time) (int, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Raw(unitsSoldQuery, productID, since).
		Scan(&total).
		Error; err != nil {
		return 0, err
	}
	return int(-total), nil
}
