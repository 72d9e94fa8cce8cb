package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stockroomhq/stockroom-backend/internal/inventory"
	pkgerrors "github.com/stockroomhq/stockroom-backend/pkg/errors"
)

type fakeInventoryService struct {
	result *inventory.AdjustResult
	err    error
	input  *inventory.AdjustInput
}

func (f *fakeInventoryService) Adjust(_ context.Context, input inventory.AdjustInput) (*inventory.AdjustResult, error) {
	f.input = &input
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func postAdjustment(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/adjustments", strings.NewReader(body))
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAdjustStock_Success(t *testing.T) {
	svc := &fakeInventoryService{
		result: &inventory.AdjustResult{
			Message: "Inventory adjusted successfully.",
			Adjustment: inventory.AdjustmentDTO{
				ProductID:      1,
				WarehouseID:    2,
				Quantity:       6,
				QuantityChange: -4,
				Reason:         "sale",
			},
		},
	}

	rec := postAdjustment(AdjustStock(svc, nil),
		`{"product_id":1,"warehouse_id":2,"quantity_change":-4,"reason":"sale"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Inventory adjusted successfully.", body["message"])

	require.NotNil(t, svc.input)
	require.Equal(t, -4, svc.input.QuantityChange)
}

func TestAdjustStock_MissingFields(t *testing.T) {
	svc := &fakeInventoryService{}

	rec := postAdjustment(AdjustStock(svc, nil), `{"product_id":1}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Nil(t, svc.input)
}

func TestAdjustStock_InsufficientStock(t *testing.T) {
	svc := &fakeInventoryService{
		err: pkgerrors.New(pkgerrors.CodeConflict, "Insufficient stock for this adjustment."),
	}

	rec := postAdjustment(AdjustStock(svc, nil),
		`{"product_id":1,"warehouse_id":2,"quantity_change":-10,"reason":"sale"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.JSONEq(t, `{"error":"Insufficient stock for this adjustment."}`, rec.Body.String())
}

func TestAdjustStock_UnknownFieldRejected(t *testing.T) {
	svc := &fakeInventoryService{}

	rec := postAdjustment(AdjustStock(svc, nil),
		`{"product_id":1,"warehouse_id":2,"quantity_change":-4,"reason":"sale","extra":true}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Nil(t, svc.input)
}
