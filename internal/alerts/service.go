package alerts

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/stockroomhq/stockroom-backend/pkg/errors"
	"github.com/stockroomhq/stockroom-backend/pkg/logger"
)

// salesWindowDays is the trailing window used to estimate daily turnover.
// The divisor is fixed: a product stocked for less than the full window is
// treated as if it had sold at the same rate for all 30 days.
const salesWindowDays = 30

// Service exposes the low-stock alert reporter.
type Service interface {
	GetLowStockAlerts(ctx context.Context, companyID uint) (*Report, error)
}

type companyChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type service struct {
	repo      *Repository
	companies companyChecker
	logg      *logger.Logger
	now       func() time.Time
}

// NewService constructs an alert service instance.
func NewService(repo *Repository, companies companyChecker, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("alerts repository required")
	}
	if companies == nil {
		return nil, fmt.Errorf("company repository required")
	}
	return &service{repo: repo, companies: companies, logg: logg, now: time.Now}, nil
}

// GetLowStockAlerts builds the company's alert report. Candidates with no
// recorded sales in the trailing window are skipped; an empty report is a
// valid result.
func (s *service) GetLowStockAlerts(ctx context.Context, companyID uint) (*Report, error) {
	if s.logg != nil {
		ctx = s.logg.WithCompanyID(ctx, companyID)
	}

	known, err := s.companies.Exists(ctx, companyID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: lookup company")
	}
	if !known {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Company not found")
	}

	candidates, err := s.repo.LowStockCandidates(ctx, companyID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load low-stock candidates")
	}

	windowStart := s.now().UTC().AddDate(0, 0, -salesWindowDays)
	alerts := []AlertDTO{}

	for _, candidate := range candidates {
		totalSold, err := s.repo.UnitsSoldSince(ctx, candidate.ProductID, windowStart)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: sum recent sales")
		}
		if totalSold <= 0 {
			continue
		}

		alert := AlertDTO{
			ProductID:     candidate.ProductID,
			ProductName:   candidate.ProductName,
			SKU:           candidate.SKU,
			CurrentStock:  candidate.CurrentStock,
			WarehouseID:   candidate.WarehouseID,
			WarehouseName: candidate.WarehouseName,
		}

		avgDailySales := float64(totalSold) / float64(salesWindowDays)
		if avgDailySales > 0 {
			days := int(float64(candidate.CurrentStock) / avgDailySales)
			alert.DaysUntilStockout = &days
		}

		if candidate.SupplierID.Valid {
			supplier := &SupplierDTO{
				SupplierID: uint(candidate.SupplierID.Int64),
				Name:       candidate.SupplierName.String,
			}
			if candidate.SupplierContact.Valid {
				contact := candidate.SupplierContact.String
				supplier.ContactEmail = &contact
			}
			alert.Supplier = supplier
		}

		alerts = append(alerts, alert)
	}

	return &Report{
		CompanyID:   companyID,
		Alerts:      alerts,
		TotalAlerts: len(alerts),
	}, nil
}
