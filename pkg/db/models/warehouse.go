package models

import "time"

// Warehouse is a stocking location owned by a company.
type Warehouse struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	CompanyID uint      `gorm:"column:company_id;not null"`
	Name      string    `gorm:"column:name;not null"`
	Address   *string   `gorm:"column:address"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
