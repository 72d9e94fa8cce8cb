package product

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stockroomhq/stockroom-backend/pkg/db"
	"github.com/stockroomhq/stockroom-backend/pkg/db/models"
	pkgerrors "github.com/stockroomhq/stockroom-backend/pkg/errors"
)

const productsDDL = `
CREATE TABLE products (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    sku TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    description TEXT,
    price NUMERIC NOT NULL DEFAULT 0,
    low_stock_threshold INTEGER NOT NULL DEFAULT 10,
    is_bundle INTEGER NOT NULL DEFAULT 0,
    supplier_id INTEGER,
    created_at DATETIME,
    updated_at DATETIME
);
`

const inventoryDDL = `
CREATE TABLE inventory (
    product_id INTEGER NOT NULL,
    warehouse_id INTEGER NOT NULL,
    quantity INTEGER NOT NULL DEFAULT 0,
    updated_at DATETIME,
    PRIMARY KEY (product_id, warehouse_id)
);
`

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, conn.Exec(productsDDL).Error)
	require.NoError(t, conn.Exec(inventoryDDL).Error)
	return conn
}

func newTestService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(NewRepository(conn), db.NewWithConn(conn), nil)
	require.NoError(t, err)
	return svc
}

func strPtr(s string) *string { return &s }

func TestCreateProduct_Success(t *testing.T) {
	conn := newTestDB(t)
	svc := newTestService(t, conn)

	result, err := svc.CreateProduct(context.Background(), CreateProductInput{
		SKU:         "WIDGET-1",
		Name:        "Widget",
		Description: strPtr("A widget"),
		WarehouseID: 3,
		StockLevel:  15,
	})
	require.NoError(t, err)
	require.Equal(t, "Product created successfully.", result.Message)
	require.NotZero(t, result.Product.ID)
	require.Equal(t, "WIDGET-1", result.Product.SKU)
	require.Equal(t, "Widget", result.Product.Name)
	require.NotNil(t, result.Product.Description)
	require.Equal(t, "A widget", *result.Product.Description)

	var inventory models.Inventory
	require.NoError(t, conn.First(&inventory, "product_id = ? AND warehouse_id = ?", result.Product.ID, 3).Error)
	require.Equal(t, 15, inventory.Quantity)
}

func TestCreateProduct_DuplicateSKUPreCheck(t *testing.T) {
	conn := newTestDB(t)
	svc := newTestService(t, conn)

	input := CreateProductInput{SKU: "WIDGET-1", Name: "Widget", WarehouseID: 1, StockLevel: 5}
	_, err := svc.CreateProduct(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.CreateProduct(context.Background(), input)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeConflict, typed.Code())
	require.Equal(t, "Product with SKU 'WIDGET-1' already exists.", typed.Message())

	var count int64
	require.NoError(t, conn.Model(&models.Product{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

// racingTxRunner inserts a product with the same SKU after the pre-check has
// passed, reproducing a concurrent create.
type racingTxRunner struct {
	client *db.Client
	sku    string
}

func (r *racingTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	rival := &models.Product{SKU: r.sku, Name: "Rival"}
	if err := r.client.DB().Create(rival).Error; err != nil {
		return err
	}
	return r.client.WithTx(ctx, fn)
}

func TestCreateProduct_DuplicateSKURace(t *testing.T) {
	conn := newTestDB(t)
	svc, err := NewService(NewRepository(conn), &racingTxRunner{client: db.NewWithConn(conn), sku: "WIDGET-1"}, nil)
	require.NoError(t, err)

	_, err = svc.CreateProduct(context.Background(), CreateProductInput{
		SKU:         "WIDGET-1",
		Name:        "Widget",
		WarehouseID: 1,
		StockLevel:  5,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeConflict, typed.Code())
	require.Equal(t, "Database integrity error. A product with this SKU may have just been created.", typed.Message())

	// only the rival's row survives; no inventory was written
	var inventoryCount int64
	require.NoError(t, conn.Model(&models.Inventory{}).Count(&inventoryCount).Error)
	require.EqualValues(t, 0, inventoryCount)
}

func TestCreateProduct_RollbackOnInventoryFailure(t *testing.T) {
	conn := newTestDB(t)
	svc := newTestService(t, conn)

	require.NoError(t, conn.Exec(`DROP TABLE inventory`).Error)

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		SKU:         "WIDGET-1",
		Name:        "Widget",
		WarehouseID: 1,
		StockLevel:  5,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeDependency, typed.Code())

	var count int64
	require.NoError(t, conn.Model(&models.Product{}).Count(&count).Error)
	require.EqualValues(t, 0, count, "product insert must roll back with the failed inventory insert")
}
