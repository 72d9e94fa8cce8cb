package models

// BundleComponent links a bundle product to one of its contained products.
type BundleComponent struct {
	BundleID    uint `gorm:"column:bundle_id;primaryKey"`
	ComponentID uint `gorm:"column:component_id;primaryKey"`
	Quantity    int  `gorm:"column:quantity;not null;default:1"`
}
