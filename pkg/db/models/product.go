package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item identified platform-wide by its SKU.
type Product struct {
	ID                uint            `gorm:"column:id;primaryKey;autoIncrement"`
	SKU               string          `gorm:"column:sku;not null;uniqueIndex:products_sku_key"`
	Name              string          `gorm:"column:name;not null"`
	Description       *string         `gorm:"column:description"`
	Price             decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	LowStockThreshold int             `gorm:"column:low_stock_threshold;not null;default:10"`
	IsBundle          bool            `gorm:"column:is_bundle;not null;default:false"`
	SupplierID        *uint           `gorm:"column:supplier_id"`
	Supplier          *Supplier       `gorm:"foreignKey:SupplierID"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
