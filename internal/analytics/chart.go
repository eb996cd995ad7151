package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luisrmz-dev/vendoria-backend/pkg/db/models"
	"github.com/luisrmz-dev/vendoria-backend/pkg/enums"
	"github.com/luisrmz-dev/vendoria-backend/pkg/errors"
)

// ChartData buckets delivered-and-paid orders per day. The result always
// carries period+1 points, oldest first, zero-filled where nothing sold.
func (s *service) ChartData(ctx context.Context, period int) (points []ChartPoint, err error) {
	started := time.Now()
	defer func() { s.instrument("chart_data", started, err) }()

	now := s.now()
	orders, err := s.repo.OrdersBetween(ctx, now.AddDate(0, 0, -period), now, OrderQuery{
		Status:        enums.OrderStatusDelivered,
		PaymentStatus: enums.PaymentStatusCompleted,
		WithItems:     true,
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "fetch chart orders")
	}

	buckets := dayBuckets(now, period)
	byDay := make(map[string]*ChartPoint, len(buckets))
	for _, key := range buckets {
		byDay[key] = &ChartPoint{Date: key, Revenue: decimal.Zero}
	}
	for _, order := range orders {
		point, ok := byDay[dayKey(order.CreatedAt, now.Location())]
		if !ok {
			continue
		}
		point.Orders++
		point.Revenue = point.Revenue.Add(order.TotalAmount)
		for _, item := range order.Items {
			point.Products += item.Quantity
		}
	}

	points = make([]ChartPoint, 0, len(buckets))
	for _, key := range buckets {
		points = append(points, *byDay[key])
	}
	return points, nil
}

// TopProducts ranks product names by units ordered across all order
// statuses, so demand is visible even before fulfilment.
func (s *service) TopProducts(ctx context.Context, period int) (top []TopProduct, err error) {
	started := time.Now()
	defer func() { s.instrument("top_products", started, err) }()

	now := s.now()
	items, err := s.repo.OrderItemsBetween(ctx, now.AddDate(0, 0, -period), now, ItemQuery{})
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "fetch top product items")
	}

	names, unitsByName, _ := groupItemsByName(items)
	top = make([]TopProduct, 0, len(names))
	for _, name := range names {
		top = append(top, TopProduct{ProductName: name, TotalOrdered: unitsByName[name]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].TotalOrdered > top[j].TotalOrdered })
	if len(top) > 10 {
		top = top[:10]
	}
	return top, nil
}

// groupItemsByName folds order lines per product name, keeping first-seen
// name order so equal unit counts rank deterministically.
func groupItemsByName(items []models.OrderItem) ([]string, map[string]int, map[string]decimal.Decimal) {
	names := make([]string, 0)
	units := make(map[string]int)
	revenue := make(map[string]decimal.Decimal)
	for _, item := range items {
		if _, seen := units[item.ProductName]; !seen {
			names = append(names, item.ProductName)
			revenue[item.ProductName] = decimal.Zero
		}
		units[item.ProductName] += item.Quantity
		revenue[item.ProductName] = revenue[item.ProductName].Add(item.TotalPrice)
	}
	return names, units, revenue
}

// TopProductsMetrics is the charting variant of the ranking: revenue comes
// along and cancelled orders are excluded.
func (s *service) TopProductsMetrics(ctx context.Context, period int) (top []TopProductMetric, err error) {
	started := time.Now()
	defer func() { s.instrument("top_products_metrics", started, err) }()

	now := s.now()
	items, err := s.repo.OrderItemsBetween(ctx, now.AddDate(0, 0, -period), now, ItemQuery{ExcludeCancelled: true})
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "fetch top product metrics items")
	}

	names, unitsByName, revenueByName := groupItemsByName(items)
	top = make([]TopProductMetric, 0, len(names))
	for _, name := range names {
		top = append(top, TopProductMetric{
			Label:        name,
			TotalOrdered: unitsByName[name],
			TotalRevenue: revenueByName[name],
		})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].TotalOrdered > top[j].TotalOrdered })
	if len(top) > 10 {
		top = top[:10]
	}
	return top, nil
}
