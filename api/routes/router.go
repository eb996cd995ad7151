package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/luisrmz-dev/vendoria-backend/api/controllers"
	analyticscontrollers "github.com/luisrmz-dev/vendoria-backend/api/controllers/analytics"
	"github.com/luisrmz-dev/vendoria-backend/api/middleware"
	"github.com/luisrmz-dev/vendoria-backend/internal/analytics"
	"github.com/luisrmz-dev/vendoria-backend/pkg/config"
	"github.com/luisrmz-dev/vendoria-backend/pkg/db"
	"github.com/luisrmz-dev/vendoria-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	analyticsService analytics.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/analytics", func(r chi.Router) {
		limits := cfg.Analytics
		r.Get("/cards", analyticscontrollers.Cards(analyticsService, limits, logg))
		r.Get("/chart", analyticscontrollers.ChartData(analyticsService, limits, logg))
		r.Get("/top-products", analyticscontrollers.TopProducts(analyticsService, limits, logg))
		r.Get("/top-products-metrics", analyticscontrollers.TopProductsMetrics(analyticsService, limits, logg))
		r.Get("/category-performance", analyticscontrollers.CategoryPerformance(analyticsService, limits, logg))
		r.Get("/daily-cash-summary", analyticscontrollers.DailyCashSummary(analyticsService, limits, logg))
		r.Get("/low-stock-alerts", analyticscontrollers.LowStockAlerts(analyticsService, logg))
		r.Get("/profit-tracking", analyticscontrollers.ProfitTracking(analyticsService, limits, logg))
		r.Get("/best-selling-products", analyticscontrollers.BestSellingProducts(analyticsService, limits, logg))
		r.Get("/hourly-pattern", analyticscontrollers.HourlyPattern(analyticsService, limits, logg))
		r.Get("/stock-value", analyticscontrollers.StockValue(analyticsService, logg))
		r.Get("/weekly-trends", analyticscontrollers.WeeklyTrends(analyticsService, limits, logg))
	})

	return r
}
