package controllers

import (
	"net/http"

	"github.com/stockroomhq/stockroom-backend/api/responses"
	"github.com/stockroomhq/stockroom-backend/api/validators"
	"github.com/stockroomhq/stockroom-backend/internal/inventory"
	"github.com/stockroomhq/stockroom-backend/pkg/logger"
)

// AdjustStockRequest is the wire body for a stock adjustment.
type AdjustStockRequest struct {
	ProductID      uint   `json:"product_id" validate:"required"`
	WarehouseID    uint   `json:"warehouse_id" validate:"required"`
	QuantityChange int    `json:"quantity_change" validate:"required"`
	Reason         string `json:"reason" validate:"required"`
}

// AdjustStock handles POST /api/v1/inventory/adjustments.
func AdjustStock(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body AdjustStockRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Adjust(r.Context(), inventory.AdjustInput{
			ProductID:      body.ProductID,
			WarehouseID:    body.WarehouseID,
			QuantityChange: body.QuantityChange,
			Reason:         body.Reason,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
