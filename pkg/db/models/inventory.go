package models

import "time"

// Inventory tracks the on-hand quantity of a product at a warehouse.
type Inventory struct {
	ProductID   uint      `gorm:"column:product_id;primaryKey"`
	WarehouseID uint      `gorm:"column:warehouse_id;primaryKey"`
	Quantity    int       `gorm:"column:quantity;not null;default:0"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps the singular table name used by the schema.
func (Inventory) TableName() string {
	return "inventory"
}
