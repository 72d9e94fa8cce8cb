package inventory

import (
	"context"
	"fmt"

	"github.com/stockroomhq/stockroom-backend/pkg/db/models"
	pkgerrors "github.com/stockroomhq/stockroom-backend/pkg/errors"
	"github.com/stockroomhq/stockroom-backend/pkg/logger"
	"gorm.io/gorm"
)

// Service exposes stock adjustments.
type Service interface {
	Adjust(ctx context.Context, input AdjustInput) (*AdjustResult, error)
}

// AdjustInput holds the validated payload for a stock adjustment.
type AdjustInput struct {
	ProductID      uint
	WarehouseID    uint
	QuantityChange int
	Reason         string
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo     *Repository
	dbClient txRunner
	logg     *logger.Logger
}

// NewService constructs an inventory service instance.
func NewService(repo *Repository, dbClient txRunner, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient, logg: logg}, nil
}

// Adjust applies the delta to the inventory row and appends the matching
// log entry in one transaction. A delta that would take the quantity below
// zero leaves both the row and the log untouched.
func (s *service) Adjust(ctx context.Context, input AdjustInput) (*AdjustResult, error) {
	if input.QuantityChange == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Field 'quantity_change' must be a non-zero integer.")
	}
	if input.Reason == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Field 'reason' must be a non-empty string.")
	}

	var updated *models.Inventory
	txErr := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		affected, err := txRepo.ApplyDelta(ctx, input.ProductID, input.WarehouseID, input.QuantityChange)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: apply stock delta")
		}
		if affected == 0 {
			row, findErr := txRepo.Find(ctx, input.ProductID, input.WarehouseID)
			if findErr != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, findErr, "db: load inventory row")
			}
			if row == nil {
				return pkgerrors.New(pkgerrors.CodeNotFound, "Inventory record not found")
			}
			return pkgerrors.New(pkgerrors.CodeConflict, "Insufficient stock for this adjustment.")
		}

		log := &models.InventoryLog{
			ProductID:      input.ProductID,
			WarehouseID:    input.WarehouseID,
			QuantityChange: input.QuantityChange,
			Reason:         input.Reason,
		}
		if err := txRepo.AppendLog(ctx, log); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: append inventory log")
		}

		row, err := txRepo.Find(ctx, input.ProductID, input.WarehouseID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: reload inventory row")
		}
		updated = row
		return nil
	})
	if txErr != nil {
		if pkgerrors.As(txErr) != nil {
			return nil, txErr
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, txErr, "adjust inventory")
	}

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"product_id":      input.ProductID,
			"warehouse_id":    input.WarehouseID,
			"quantity_change": input.QuantityChange,
		})
		s.logg.Info(ctx, "inventory.adjusted")
	}

	return &AdjustResult{
		Message: "Inventory adjusted successfully.",
		Adjustment: AdjustmentDTO{
			ProductID:      updated.ProductID,
			WarehouseID:    updated.WarehouseID,
			Quantity:       updated.Quantity,
			QuantityChange: input.QuantityChange,
			Reason:         input.Reason,
		},
	}, nil
}
