package alerts

// SupplierDTO is the reorder contact embedded in an alert.
type SupplierDTO struct {
	SupplierID   uint    `json:"supplier_id"`
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// AlertDTO is one low-stock alert record. DaysUntilStockout and Supplier
// serialize as null when unknown rather than being omitted.
type AlertDTO struct {
	ProductID         uint         `json:"product_id"`
	ProductName       string       `json:"product_name"`
	SKU               string       `json:"sku"`
	CurrentStock      int          `json:"current_stock"`
	WarehouseID       uint         `json:"warehouse_id"`
	WarehouseName     string       `json:"warehouse_name"`
	DaysUntilStockout *int         `json:"days_until_stockout"`
	Supplier          *SupplierDTO `json:"supplier"`
}

// Report is the alert endpoint response body.
type Report struct {
	CompanyID   uint       `json:"company_id"`
	Alerts      []AlertDTO `json:"alerts"`
	TotalAlerts int        `json:"total_alerts"`
}
