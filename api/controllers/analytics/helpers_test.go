package analytics

import (
	"context"

	"github.com/luisrmz-dev/vendoria-backend/internal/analytics"
)

// stubService records the last invocation so handler tests can assert on
// parameter plumbing without a database.
type stubService struct {
	lastReport    string
	lastPeriod    int
	lastWeeks     int
	lastLimit     int
	lastThreshold *int
	calls         int
	err           error
}

func (s *stubService) record(report string) {
	s.lastReport = report
	s.calls++
}

func (s *stubService) Cards(_ context.Context, period int) ([]analytics.Card, error) {
	s.record("cards")
	s.lastPeriod = period
	return []analytics.Card{}, s.err
}

func (s *stubService) ChartData(_ context.Context, period int) ([]analytics.ChartPoint, error) {
	s.record("chart")
	s.lastPeriod = period
	return []analytics.ChartPoint{}, s.err
}

func (s *stubService) TopProducts(_ context.Context, period int) ([]analytics.TopProduct, error) {
	s.record("top-products")
	s.lastPeriod = period
	return []analytics.TopProduct{}, s.err
}

func (s *stubService) TopProductsMetrics(_ context.Context, period int) ([]analytics.TopProductMetric, error) {
	s.record("top-products-metrics")
	s.lastPeriod = period
	return []analytics.TopProductMetric{}, s.err
}

func (s *stubService) CategoryPerformance(_ context.Context, period int) ([]analytics.CategoryPerformanceDay, error) {
	s.record("category-performance")
	s.lastPeriod = period
	return []analytics.CategoryPerformanceDay{}, s.err
}

func (s *stubService) DailyCashSummary(_ context.Context, period int) (*analytics.DailyCashSummary, error) {
	s.record("daily-cash-summary")
	s.lastPeriod = period
	return &analytics.DailyCashSummary{}, s.err
}

func (s *stubService) LowStockAlerts(_ context.Context, threshold *int) ([]analytics.LowStockAlert, error) {
	s.record("low-stock-alerts")
	s.lastThreshold = threshold
	return []analytics.LowStockAlert{}, s.err
}

func (s *stubService) ProfitTracking(_ context.Context, period int) (*analytics.ProfitSummary, error) {
	s.record("profit-tracking")
	s.lastPeriod = period
	return &analytics.ProfitSummary{}, s.err
}

func (s *stubService) BestSellingProducts(_ context.Context, period, limit int) ([]analytics.BestSellingProduct, error) {
	s.record("best-selling-products")
	s.lastPeriod = period
	s.lastLimit = limit
	return []analytics.BestSellingProduct{}, s.err
}

func (s *stubService) HourlyPattern(_ context.Context, period int) (*analytics.HourlyPatternSummary, error) {
	s.record("hourly-pattern")
	s.lastPeriod = period
	return &analytics.HourlyPatternSummary{}, s.err
}

func (s *stubService) StockValue(_ context.Context) (*analytics.StockValueSummary, error) {
	s.record("stock-value")
	return &analytics.StockValueSummary{}, s.err
}

func (s *stubService) WeeklyTrends(_ context.Context, weeks int) (*analytics.WeeklyTrendsSummary, error) {
	s.record("weekly-trends")
	s.lastWeeks = weeks
	return &analytics.WeeklyTrendsSummary{}, s.err
}
