package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/luisrmz-dev/vendoria-backend/internal/analytics"
	"github.com/luisrmz-dev/vendoria-backend/pkg/config"
	"github.com/luisrmz-dev/vendoria-backend/pkg/db/models"
	"github.com/luisrmz-dev/vendoria-backend/pkg/metrics"
)

type emptyRepo struct{}

func (emptyRepo) OrdersBetween(context.Context, time.Time, time.Time, analytics.OrderQuery) ([]models.Order, error) {
	return nil, nil
}

func (emptyRepo) OrderItemsBetween(context.Context, time.Time, time.Time, analytics.ItemQuery) ([]models.OrderItem, error) {
	return nil, nil
}

func (emptyRepo) ActiveSKUs(context.Context, analytics.SKUQuery) ([]models.ProductSKU, error) {
	return nil, nil
}

func (emptyRepo) ActiveCategories(context.Context) ([]models.Category, error) {
	return nil, nil
}

func (emptyRepo) CountOrdersBetween(context.Context, time.Time, time.Time) (int64, error) {
	return 0, nil
}

func (emptyRepo) CountActiveUsersBetween(context.Context, time.Time, time.Time) (int64, error) {
	return 0, nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	registry := prometheus.NewRegistry()
	service, err := analytics.NewService(emptyRepo{}, metrics.NewReportMetrics(registry))
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	cfg := &config.Config{
		App: config.AppConfig{Env: config.AppEnvDev},
		Analytics: config.AnalyticsConfig{
			MaxPeriodDays: 365,
			MaxWeeks:      104,
			MaxLimit:      100,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	return NewRouter(cfg, nil, okPinger{}, service, registry)
}

func TestRouterServesAllReports(t *testing.T) {
	router := newTestRouter(t)

	paths := []string{
		"/health/live",
		"/health/ready",
		"/metrics",
		"/analytics/cards",
		"/analytics/chart",
		"/analytics/top-products",
		"/analytics/top-products-metrics",
		"/analytics/category-performance",
		"/analytics/daily-cash-summary",
		"/analytics/low-stock-alerts",
		"/analytics/profit-tracking",
		"/analytics/best-selling-products",
		"/analytics/hourly-pattern",
		"/analytics/stock-value",
		"/analytics/weekly-trends",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
	}
}

func TestRouterRejectsUnknownPath(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/analytics/unknown", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestRouterValidationFailure(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/analytics/cards?period=0", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
