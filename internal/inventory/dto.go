package inventory

// AdjustmentDTO is the wire representation of an applied stock movement.
type AdjustmentDTO struct {
	ProductID      uint   `json:"product_id"`
	WarehouseID    uint   `json:"warehouse_id"`
	Quantity       int    `json:"quantity"`
	QuantityChange int    `json:"quantity_change"`
	Reason         string `json:"reason"`
}

// AdjustResult is the 200 response body for a stock adjustment.
type AdjustResult struct {
	Message    string        `json:"message"`
	Adjustment AdjustmentDTO `json:"adjustment"`
}
