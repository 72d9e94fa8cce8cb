package cron

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/stockroomhq/stockroom-backend/internal/alerts"
	"github.com/stockroomhq/stockroom-backend/pkg/logger"
)

type fakeCompanyLister struct {
	ids []uint
	err error
}

func (f *fakeCompanyLister) ListIDs(context.Context) ([]uint, error) {
	return f.ids, f.err
}

type fakeAlertReporter struct {
	reports map[uint]*alerts.Report
	errs    map[uint]error
	calls   []uint
}

func (f *fakeAlertReporter) GetLowStockAlerts(_ context.Context, companyID uint) (*alerts.Report, error) {
	f.calls = append(f.calls, companyID)
	if err, ok := f.errs[companyID]; ok {
		return nil, err
	}
	return f.reports[companyID], nil
}

func newTestLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "cron-test"})
}

func TestLowStockScanJob_ScansEveryCompany(t *testing.T) {
	reporter := &fakeAlertReporter{
		reports: map[uint]*alerts.Report{
			1: {CompanyID: 1, Alerts: []alerts.AlertDTO{{ProductID: 7, SKU: "WIDGET-1"}}, TotalAlerts: 1},
			2: {CompanyID: 2, Alerts: []alerts.AlertDTO{}, TotalAlerts: 0},
		},
	}

	job, err := NewLowStockScanJob(LowStockScanJobParams{
		Logger:    newTestLogger(),
		Companies: &fakeCompanyLister{ids: []uint{1, 2}},
		Alerts:    reporter,
	})
	require.NoError(t, err)

	require.NoError(t, job.Run(context.Background()))
	require.Equal(t, []uint{1, 2}, reporter.calls)
}

func TestLowStockScanJob_AggregatesCompanyFailures(t *testing.T) {
	boom := errors.New("boom")
	reporter := &fakeAlertReporter{
		reports: map[uint]*alerts.Report{
			3: {CompanyID: 3, TotalAlerts: 0},
		},
		errs: map[uint]error{2: boom},
	}

	job, err := NewLowStockScanJob(LowStockScanJobParams{
		Logger:    newTestLogger(),
		Companies: &fakeCompanyLister{ids: []uint{2, 3}},
		Alerts:    reporter,
	})
	require.NoError(t, err)

	runErr := job.Run(context.Background())
	require.Error(t, runErr)
	require.Len(t, multierr.Errors(runErr), 1)
	require.ErrorIs(t, runErr, boom)
	// the failing company does not stop the scan
	require.Equal(t, []uint{2, 3}, reporter.calls)
}

func TestLowStockScanJob_ListFailureStopsRun(t *testing.T) {
	job, err := NewLowStockScanJob(LowStockScanJobParams{
		Logger:    newTestLogger(),
		Companies: &fakeCompanyLister{err: errors.New("db down")},
		Alerts:    &fakeAlertReporter{},
	})
	require.NoError(t, err)
	require.Error(t, job.Run(context.Background()))
}

func TestNewLowStockScanJob_RequiresDeps(t *testing.T) {
	_, err := NewLowStockScanJob(LowStockScanJobParams{})
	require.Error(t, err)
}
