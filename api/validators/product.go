package validators

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	pkgerrors "github.com/stockroomhq/stockroom-backend/pkg/errors"
)

// ProductPayload is the validated input for product creation.
type ProductPayload struct {
	SKU         string
	Name        string
	Description *string
	WarehouseID int
	StockLevel  int
}

var productRequiredFields = []string{"sku", "name", "warehouse_id", "stock_level"}

// ParseProductPayload decodes and validates the creation body. Checks run in
// a fixed order so a payload with several problems reports the first one:
// parseability, then field presence, then field types. Presence means the key
// exists in the document; a field set to an unusable value is a type error,
// not a missing field.
func ParseProductPayload(r *http.Request) (*ProductPayload, error) {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()

	var data map[string]any
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&data); err != nil || len(data) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid JSON payload")
	}

	missing := []string{}
	for _, field := range productRequiredFields {
		if _, ok := data[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
	}

	stockLevel, ok := asInt(data["stock_level"])
	if !ok || stockLevel < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Field 'stock_level' must be a non-negative integer.")
	}

	warehouseID, ok := asInt(data["warehouse_id"])
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Field 'warehouse_id' must be an integer.")
	}

	sku, ok := data["sku"].(string)
	if !ok || sku == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Field 'sku' must be a non-empty string.")
	}

	name, ok := data["name"].(string)
	if !ok || name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Field 'name' must be a non-empty string.")
	}

	payload := &ProductPayload{
		SKU:         sku,
		Name:        name,
		WarehouseID: warehouseID,
		StockLevel:  stockLevel,
	}

	if raw, ok := data["description"]; ok && raw != nil {
		description, ok := raw.(string)
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Field 'description' must be a string.")
		}
		payload.Description = &description
	}

	return payload, nil
}

// asInt accepts only JSON numbers with no fractional part. Strings, booleans
// and floats are rejected rather than coerced.
func asInt(value any) (int, bool) {
	number, ok := value.(json.Number)
	if !ok {
		return 0, false
	}
	parsed, err := number.Int64()
	if err != nil {
		return 0, false
	}
	return int(parsed), true
}
