package cron

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/stockroomhq/stockroom-backend/internal/alerts"
	"github.com/stockroomhq/stockroom-backend/pkg/logger"
	"github.com/stockroomhq/stockroom-backend/pkg/metrics"
)

const lowStockScanJobName = "low-stock-scan"

type companyLister interface {
	ListIDs(ctx context.Context) ([]uint, error)
}

type alertReporter interface {
	GetLowStockAlerts(ctx context.Context, companyID uint) (*alerts.Report, error)
}

// LowStockScanJobParams configure the scan job.
type LowStockScanJobParams struct {
	Logger    *logger.Logger
	Companies companyLister
	Alerts    alertReporter
	Metrics   *metrics.CronJobMetrics
}

// NewLowStockScanJob builds the job that reports low-stock alerts for every
// company.
func NewLowStockScanJob(params LowStockScanJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Companies == nil {
		return nil, fmt.Errorf("company repository required")
	}
	if params.Alerts == nil {
		return nil, fmt.Errorf("alert service required")
	}
	return &lowStockScanJob{
		logg:      params.Logger,
		companies: params.Companies,
		alerts:    params.Alerts,
		metrics:   params.Metrics,
	}, nil
}

type lowStockScanJob struct {
	logg      *logger.Logger
	companies companyLister
	alerts    alertReporter
	metrics   *metrics.CronJobMetrics
}

func (j *lowStockScanJob) Name() string { return lowStockScanJobName }

// Run scans every company. A failing company does not stop the scan; the
// failures are aggregated and returned together.
func (j *lowStockScanJob) Run(ctx context.Context) error {
	companyIDs, err := j.companies.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("list companies: %w", err)
	}

	var errs error
	totalAlerts := 0
	for _, companyID := range companyIDs {
		report, reportErr := j.alerts.GetLowStockAlerts(ctx, companyID)
		if reportErr != nil {
			errs = multierr.Append(errs, fmt.Errorf("company %d: %w", companyID, reportErr))
			continue
		}

		companyCtx := j.logg.WithCompanyID(ctx, companyID)
		for _, alert := range report.Alerts {
			alertCtx := j.logg.WithFields(companyCtx, map[string]any{
				"product_id":          alert.ProductID,
				"sku":                 alert.SKU,
				"warehouse_id":        alert.WarehouseID,
				"current_stock":       alert.CurrentStock,
				"days_until_stockout": alert.DaysUntilStockout,
			})
			j.logg.Warn(alertCtx, "low stock alert")
		}

		summaryCtx := j.logg.WithField(companyCtx, "total_alerts", report.TotalAlerts)
		j.logg.Info(summaryCtx, "company scan complete")
		totalAlerts += report.TotalAlerts
	}

	if j.metrics != nil {
		j.metrics.AddAlerts(lowStockScanJobName, totalAlerts)
	}
	return errs
}
