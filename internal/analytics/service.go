package analytics

import (
	"context"
	"time"

	"github.com/luisrmz-dev/vendoria-backend/pkg/errors"
	"github.com/luisrmz-dev/vendoria-backend/pkg/metrics"
)

// Service assembles the back-office analytics reports. Every report is
// recomputed from the repository on each call; nothing is cached between
// requests, so two calls against unchanged data return identical payloads.
type Service interface {
	Cards(ctx context.Context, period int) ([]Card, error)
	ChartData(ctx context.Context, period int) ([]ChartPoint, error)
	TopProducts(ctx context.Context, period int) ([]TopProduct, error)
	TopProductsMetrics(ctx context.Context, period int) ([]TopProductMetric, error)
	CategoryPerformance(ctx context.Context, period int) ([]CategoryPerformanceDay, error)
	DailyCashSummary(ctx context.Context, period int) (*DailyCashSummary, error)
	LowStockAlerts(ctx context.Context, threshold *int) ([]LowStockAlert, error)
	ProfitTracking(ctx context.Context, period int) (*ProfitSummary, error)
	BestSellingProducts(ctx context.Context, period, limit int) ([]BestSellingProduct, error)
	HourlyPattern(ctx context.Context, period int) (*HourlyPatternSummary, error)
	StockValue(ctx context.Context) (*StockValueSummary, error)
	WeeklyTrends(ctx context.Context, weeks int) (*WeeklyTrendsSummary, error)
}

type service struct {
	repo    Repository
	metrics *metrics.ReportMetrics
	now     func() time.Time
}

// NewService wires a report service over the given repository. The metrics
// collector may be nil.
func NewService(repo Repository, reportMetrics *metrics.ReportMetrics) (Service, error) {
	if repo == nil {
		return nil, errors.New(errors.CodeInternal, "analytics: repository is required")
	}
	return &service{
		repo:    repo,
		metrics: reportMetrics,
		now:     time.Now,
	}, nil
}

// instrument records duration and outcome for one report computation.
func (s *service) instrument(report string, started time.Time, err error) {
	s.metrics.ObserveDuration(report, time.Since(started))
	if err != nil {
		s.metrics.IncFailure(report)
		return
	}
	s.metrics.IncSuccess(report)
}
