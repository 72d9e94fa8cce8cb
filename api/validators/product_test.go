package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/stockroomhq/stockroom-backend/pkg/errors"
)

func parseBody(t *testing.T, body string) (*ProductPayload, error) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(body))
	return ParseProductPayload(req)
}

func assertValidationMessage(t *testing.T, err error, want string) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed validation error, got %v", err)
	}
	if typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %s", typed.Code())
	}
	if typed.Message() != want {
		t.Fatalf("expected message %q, got %q", want, typed.Message())
	}
}

func TestParseProductPayload_Valid(t *testing.T) {
	payload, err := parseBody(t, `{"sku":"WIDGET-1","name":"Widget","warehouse_id":3,"stock_level":15,"description":"A widget"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.SKU != "WIDGET-1" || payload.Name != "Widget" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.WarehouseID != 3 || payload.StockLevel != 15 {
		t.Fatalf("unexpected numeric fields: %+v", payload)
	}
	if payload.Description == nil || *payload.Description != "A widget" {
		t.Fatalf("unexpected description: %v", payload.Description)
	}
}

func TestParseProductPayload_DescriptionOptional(t *testing.T) {
	payload, err := parseBody(t, `{"sku":"WIDGET-1","name":"Widget","warehouse_id":3,"stock_level":0}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Description != nil {
		t.Fatalf("expected nil description, got %v", *payload.Description)
	}
	if payload.StockLevel != 0 {
		t.Fatalf("zero stock level should be accepted, got %d", payload.StockLevel)
	}
}

func TestParseProductPayload_InvalidJSON(t *testing.T) {
	cases := []string{"", "not json", "null", "{}", "[1,2]"}
	for _, body := range cases {
		_, err := parseBody(t, body)
		assertValidationMessage(t, err, "Invalid JSON payload")
	}
}

func TestParseProductPayload_MissingFields(t *testing.T) {
	_, err := parseBody(t, `{"name":"Widget"}`)
	assertValidationMessage(t, err, "Missing required fields: sku, warehouse_id, stock_level")

	_, err = parseBody(t, `{"sku":"W","name":"Widget","warehouse_id":1}`)
	assertValidationMessage(t, err, "Missing required fields: stock_level")
}

func TestParseProductPayload_InvalidStockLevel(t *testing.T) {
	cases := []string{
		`{"sku":"W","name":"Widget","warehouse_id":1,"stock_level":"5"}`,
		`{"sku":"W","name":"Widget","warehouse_id":1,"stock_level":-1}`,
		`{"sku":"W","name":"Widget","warehouse_id":1,"stock_level":2.5}`,
		`{"sku":"W","name":"Widget","warehouse_id":1,"stock_level":true}`,
		`{"sku":"W","name":"Widget","warehouse_id":1,"stock_level":null}`,
	}
	for _, body := range cases {
		_, err := parseBody(t, body)
		assertValidationMessage(t, err, "Field 'stock_level' must be a non-negative integer.")
	}
}

func TestParseProductPayload_InvalidWarehouseID(t *testing.T) {
	_, err := parseBody(t, `{"sku":"W","name":"Widget","warehouse_id":"3","stock_level":5}`)
	assertValidationMessage(t, err, "Field 'warehouse_id' must be an integer.")
}

func TestParseProductPayload_StockLevelCheckedBeforeWarehouseID(t *testing.T) {
	_, err := parseBody(t, `{"sku":"W","name":"Widget","warehouse_id":"3","stock_level":"5"}`)
	assertValidationMessage(t, err, "Field 'stock_level' must be a non-negative integer.")
}
