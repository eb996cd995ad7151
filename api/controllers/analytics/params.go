package analytics

import (
	"net/http"

	"github.com/luisrmz-dev/vendoria-backend/api/validators"
	"github.com/luisrmz-dev/vendoria-backend/pkg/config"
)

const (
	defaultPeriodDays = 30
	defaultCashDays   = 1
	defaultWeeks      = 12
	defaultLimit      = 10

	maxThreshold = 1_000_000
)

func parsePeriod(r *http.Request, cfg config.AnalyticsConfig, defaultDays int) (int, error) {
	return validators.ParseQueryInt(r, "period", defaultDays, 1, cfg.MaxPeriodDays)
}

func parseWeeks(r *http.Request, cfg config.AnalyticsConfig) (int, error) {
	return validators.ParseQueryInt(r, "weeks", defaultWeeks, 1, cfg.MaxWeeks)
}

func parseLimit(r *http.Request, cfg config.AnalyticsConfig) (int, error) {
	return validators.ParseQueryInt(r, "limit", defaultLimit, 1, cfg.MaxLimit)
}

func parseThreshold(r *http.Request) (*int, error) {
	return validators.ParseOptionalQueryInt(r, "threshold", 0, maxThreshold)
}
