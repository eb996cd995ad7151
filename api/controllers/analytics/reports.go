package analytics

import (
	"net/http"

	"github.com/luisrmz-dev/vendoria-backend/api/responses"
	"github.com/luisrmz-dev/vendoria-backend/internal/analytics"
	"github.com/luisrmz-dev/vendoria-backend/pkg/config"
	"github.com/luisrmz-dev/vendoria-backend/pkg/logger"
)

func Cards(service analytics.Service, cfg config.AnalyticsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithReport(r.Context(), "cards")
		period, err := parsePeriod(r, cfg, defaultPeriodDays)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := service.Cards(ctx, period)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func ChartData(service analytics.Service, cfg config.AnalyticsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithReport(r.Context(), "chart_data")
		period, err := parsePeriod(r, cfg, defaultPeriodDays)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := service.ChartData(ctx, period)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func TopProducts(service analytics.Service, cfg config.AnalyticsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithReport(r.Context(), "top_products")
		period, err := parsePeriod(r, cfg, defaultPeriodDays)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := service.TopProducts(ctx, period)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func TopProductsMetrics(service analytics.Service, cfg config.AnalyticsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithReport(r.Context(), "top_products_metrics")
		period, err := parsePeriod(r, cfg, defaultPeriodDays)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := service.TopProductsMetrics(ctx, period)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func CategoryPerformance(service analytics.Service, cfg config.AnalyticsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithReport(r.Context(), "category_performance")
		period, err := parsePeriod(r, cfg, defaultPeriodDays)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := service.CategoryPerformance(ctx, period)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func DailyCashSummary(service analytics.Service, cfg config.AnalyticsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithReport(r.Context(), "daily_cash_summary")
		period, err := parsePeriod(r, cfg, defaultCashDays)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := service.DailyCashSummary(ctx, period)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func LowStockAlerts(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithReport(r.Context(), "low_stock_alerts")
		threshold, err := parseThreshold(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := service.LowStockAlerts(ctx, threshold)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func ProfitTracking(service analytics.Service, cfg config.AnalyticsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithReport(r.Context(), "profit_tracking")
		period, err := parsePeriod(r, cfg, defaultPeriodDays)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := service.ProfitTracking(ctx, period)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func BestSellingProducts(service analytics.Service, cfg config.AnalyticsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithReport(r.Context(), "best_selling_products")
		period, err := parsePeriod(r, cfg, defaultPeriodDays)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		limit, err := parseLimit(r, cfg)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := service.BestSellingProducts(ctx, period, limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func HourlyPattern(service analytics.Service, cfg config.AnalyticsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithReport(r.Context(), "hourly_pattern")
		period, err := parsePeriod(r, cfg, defaultPeriodDays)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := service.HourlyPattern(ctx, period)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func StockValue(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithReport(r.Context(), "stock_value")
		result, err := service.StockValue(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func WeeklyTrends(service analytics.Service, cfg config.AnalyticsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithReport(r.Context(), "weekly_trends")
		weeks, err := parseWeeks(r, cfg)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := service.WeeklyTrends(ctx, weeks)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
