package models

import "time"

// InventoryLog is an append-only record of a stock movement. Negative
// QuantityChange values are sales or outbound transfers, positive values are
// receipts.
type InventoryLog struct {
	ID             uint      `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID      uint      `gorm:"column:product_id;not null;index"`
	WarehouseID    uint      `gorm:"column:warehouse_id;not null;index"`
	QuantityChange int       `gorm:"column:quantity_change;not null"`
	Reason         string    `gorm:"column:reason;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime;index"`
}
