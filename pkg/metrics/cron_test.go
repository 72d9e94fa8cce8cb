package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCronJobMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCronJobMetrics(reg)

	m.ObserveDuration("low_stock_scan", 250*time.Millisecond)
	m.IncSuccess("low_stock_scan")
	m.IncFailure("low_stock_scan")
	m.IncFailure("low_stock_scan")
	m.AddAlerts("low_stock_scan", 3)
	m.AddAlerts("low_stock_scan", 0)

	if got := testutil.ToFloat64(m.success.WithLabelValues("low_stock_scan")); got != 1 {
		t.Fatalf("expected 1 success, got %v", got)
	}
	if got := testutil.ToFloat64(m.failure.WithLabelValues("low_stock_scan")); got != 2 {
		t.Fatalf("expected 2 failures, got %v", got)
	}
	if got := testutil.ToFloat64(m.alerts.WithLabelValues("low_stock_scan")); got != 3 {
		t.Fatalf("expected 3 alerts, got %v", got)
	}
}

func TestCronJobMetricsNilSafe(t *testing.T) {
	var m *CronJobMetrics
	m.ObserveDuration("x", time.Second)
	m.IncSuccess("x")
	m.IncFailure("x")
	m.AddAlerts("x", 1)

	empty := NewCronJobMetrics(nil)
	empty.IncSuccess("")
}
