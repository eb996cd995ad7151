package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luisrmz-dev/vendoria-backend/pkg/errors"
)

// ProfitTracking breaks revenue, cost of goods and gross profit down per day
// and surfaces the best and worst days by profit.
func (s *service) ProfitTracking(ctx context.Context, period int) (summary *ProfitSummary, err error) {
	started := time.Now()
	defer func() { s.instrument("profit_tracking", started, err) }()

	now := s.now()
	orders, err := s.repo.OrdersBetween(ctx, now.AddDate(0, 0, -period), now, OrderQuery{
		ExcludeCancelled: true,
		WithItemSKUs:     true,
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "fetch profit orders")
	}

	buckets := dayBuckets(now, period)
	type dayAgg struct {
		revenue decimal.Decimal
		cost    decimal.Decimal
		orders  int
	}
	byDay := make(map[string]*dayAgg, len(buckets))
	for _, key := range buckets {
		byDay[key] = &dayAgg{revenue: decimal.Zero, cost: decimal.Zero}
	}
	for _, order := range orders {
		agg, ok := byDay[dayKey(order.CreatedAt, now.Location())]
		if !ok {
			continue
		}
		agg.orders++
		agg.revenue = agg.revenue.Add(order.TotalAmount)
		for _, item := range order.Items {
			agg.cost = agg.cost.Add(itemCost(item))
		}
	}

	breakdown := make([]DailyProfit, 0, len(buckets))
	for _, key := range buckets {
		agg := byDay[key]
		profit := agg.revenue.Sub(agg.cost)
		margin := 0.0
		if !agg.revenue.IsZero() {
			margin = profit.Div(agg.revenue).InexactFloat64() * 100
		}
		breakdown = append(breakdown, DailyProfit{
			Date:         key,
			Revenue:      agg.revenue,
			CostOfGoods:  agg.cost,
			GrossProfit:  profit,
			ProfitMargin: margin,
			OrdersCount:  agg.orders,
		})
	}

	summary = &ProfitSummary{
		TotalRevenue:   decimal.Zero,
		TotalCost:      decimal.Zero,
		DailyBreakdown: breakdown,
		BestDay:        breakdown[0],
		WorstDay:       breakdown[0],
	}
	for _, day := range breakdown {
		summary.TotalRevenue = summary.TotalRevenue.Add(day.Revenue)
		summary.TotalCost = summary.TotalCost.Add(day.CostOfGoods)
		if day.GrossProfit.GreaterThan(summary.BestDay.GrossProfit) {
			summary.BestDay = day
		}
		if day.GrossProfit.LessThan(summary.WorstDay.GrossProfit) {
			summary.WorstDay = day
		}
	}
	summary.TotalProfit = summary.TotalRevenue.Sub(summary.TotalCost)
	if !summary.TotalRevenue.IsZero() {
		summary.AverageProfitMargin = summary.TotalProfit.Div(summary.TotalRevenue).InexactFloat64() * 100
	}
	return summary, nil
}
