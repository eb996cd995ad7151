package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luisrmz-dev/vendoria-backend/pkg/errors"
)

// WeeklyTrends folds orders into Monday-to-Sunday weeks, oldest first, and
// computes week-over-week growth against the preceding week. The first week
// has no predecessor and reports zero growth.
func (s *service) WeeklyTrends(ctx context.Context, weeks int) (summary *WeeklyTrendsSummary, err error) {
	started := time.Now()
	defer func() { s.instrument("weekly_trends", started, err) }()

	now := s.now()
	windows := weekWindows(now, weeks)
	weekly := make([]WeeklyTrendData, 0, weeks)
	for i, window := range windows {
		orders, err := s.repo.OrdersBetween(ctx, window.Start, window.End, OrderQuery{
			ExcludeCancelled: true,
			WithItems:        true,
		})
		if err != nil {
			return nil, errors.Wrap(errors.CodeDependency, err, "fetch weekly orders")
		}

		revenue := decimal.Zero
		itemsSold := 0
		customers := make(map[string]struct{})
		for _, order := range orders {
			revenue = revenue.Add(order.TotalAmount)
			customers[order.CustomerPhone] = struct{}{}
			for _, item := range order.Items {
				itemsSold += item.Quantity
			}
		}
		averageOrderValue := decimal.Zero
		if len(orders) > 0 {
			averageOrderValue = revenue.Div(decimal.NewFromInt(int64(len(orders))))
		}

		week := WeeklyTrendData{
			WeekNumber:        i + 1,
			WeekLabel:         window.Start.Format("Jan 02") + "-" + window.lastDay().Format("02"),
			StartDate:         dayKey(window.Start, now.Location()),
			EndDate:           dayKey(window.lastDay(), now.Location()),
			OrdersCount:       len(orders),
			Revenue:           revenue,
			ItemsSold:         itemsSold,
			AverageOrderValue: averageOrderValue,
			UniqueCustomers:   len(customers),
		}
		if i > 0 {
			previous := weekly[i-1]
			week.RevenueGrowth = growthRateDecimal(week.Revenue, previous.Revenue)
			week.OrdersGrowth = growthRate(float64(week.OrdersCount), float64(previous.OrdersCount))
		}
		weekly = append(weekly, week)
	}

	summary = &WeeklyTrendsSummary{
		WeeklyData:           weekly,
		AverageWeeklyRevenue: decimal.Zero,
		BestWeek:             weekly[0],
		WorstWeek:            weekly[0],
		WeeksAnalyzed:        weeks,
	}
	totalOrders := 0
	totalRevenue := decimal.Zero
	for _, week := range weekly {
		totalOrders += week.OrdersCount
		totalRevenue = totalRevenue.Add(week.Revenue)
		if week.Revenue.GreaterThan(summary.BestWeek.Revenue) {
			summary.BestWeek = week
		}
		if week.Revenue.LessThan(summary.WorstWeek.Revenue) {
			summary.WorstWeek = week
		}
	}
	summary.AverageWeeklyRevenue = totalRevenue.Div(decimal.NewFromInt(int64(weeks)))
	summary.AverageWeeklyOrders = float64(totalOrders) / float64(weeks)
	summary.OverallGrowthRate = growthRateDecimal(weekly[len(weekly)-1].Revenue, weekly[0].Revenue)
	summary.TrendDirection = trendDirectionFor(summary.OverallGrowthRate)
	return summary, nil
}
