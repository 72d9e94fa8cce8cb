package product

import (
	"context"
	"fmt"

	"github.com/stockroomhq/stockroom-backend/pkg/db"
	"github.com/stockroomhq/stockroom-backend/pkg/db/models"
	pkgerrors "github.com/stockroomhq/stockroom-backend/pkg/errors"
	"github.com/stockroomhq/stockroom-backend/pkg/logger"
	"gorm.io/gorm"
)

const skuUniqueConstraint = "products_sku_key"

// Service exposes product creation.
type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*CreateProductResult, error)
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	SKU         string
	Name        string
	Description *string
	WarehouseID int
	StockLevel  int
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// service implements the product service.
type service struct {
	repo     *Repository
	dbClient txRunner
	logg     *logger.Logger
}

// NewService constructs a product service instance.
func NewService(repo *Repository, dbClient txRunner, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient, logg: logg}, nil
}

// CreateProduct inserts the product and its initial inventory row in one
// transaction. The SKU pre-check gives retries a friendly 409; a concurrent
// insert that slips past it surfaces as a unique violation on commit and is
// mapped to the same status.
func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*CreateProductResult, error) {
	if s.logg != nil {
		ctx = s.logg.WithSKU(ctx, input.SKU)
	}

	existing, err := s.repo.FindBySKU(ctx, input.SKU)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: lookup sku")
	}
	if existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict,
			fmt.Sprintf("Product with SKU '%s' already exists.", input.SKU))
	}

	var created *models.Product
	txErr := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		product := &models.Product{
			SKU:         input.SKU,
			Name:        input.Name,
			Description: input.Description,
		}
		if _, err := txRepo.CreateProduct(ctx, product); err != nil {
			return err
		}

		inventory := &models.Inventory{
			ProductID:   product.ID,
			WarehouseID: uint(input.WarehouseID),
			Quantity:    input.StockLevel,
		}
		if _, err := txRepo.CreateInventory(ctx, inventory); err != nil {
			return err
		}

		created = product
		return nil
	})
	if txErr != nil {
		if db.IsUniqueViolation(txErr, skuUniqueConstraint) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, txErr,
				"Database integrity error. A product with this SKU may have just been created.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, txErr, "db: create product")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{"product_id": created.ID}), "product.created")
	}

	return &CreateProductResult{
		Message: "Product created successfully.",
		Product: *NewProductDTO(created),
	}, nil
}
