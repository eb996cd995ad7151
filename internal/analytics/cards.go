package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luisrmz-dev/vendoria-backend/pkg/db/models"
	"github.com/luisrmz-dev/vendoria-backend/pkg/errors"
)

// Cards builds the four headline cards. Growth compares the trailing period
// against the equally sized window immediately before it.
func (s *service) Cards(ctx context.Context, period int) (cards []Card, err error) {
	started := time.Now()
	defer func() { s.instrument("cards", started, err) }()

	now := s.now()
	currentStart := now.AddDate(0, 0, -period)
	previousStart := now.AddDate(0, 0, -2*period)

	currentOrders, err := s.repo.CountOrdersBetween(ctx, currentStart, now)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "count current orders")
	}
	previousOrders, err := s.repo.CountOrdersBetween(ctx, previousStart, currentStart)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "count previous orders")
	}

	currentRevenue, err := s.revenueBetween(ctx, currentStart, now)
	if err != nil {
		return nil, err
	}
	previousRevenue, err := s.revenueBetween(ctx, previousStart, currentStart)
	if err != nil {
		return nil, err
	}

	currentUsers, err := s.repo.CountActiveUsersBetween(ctx, currentStart, now)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "count current active users")
	}
	previousUsers, err := s.repo.CountActiveUsersBetween(ctx, previousStart, currentStart)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "count previous active users")
	}

	currentSold, err := s.unitsSoldBetween(ctx, currentStart, now)
	if err != nil {
		return nil, err
	}
	previousSold, err := s.unitsSoldBetween(ctx, previousStart, currentStart)
	if err != nil {
		return nil, err
	}

	return []Card{
		{
			Title:       "Total Orders",
			Count:       decimal.NewFromInt(currentOrders),
			Growth:      growthRate(float64(currentOrders), float64(previousOrders)),
			Description: fmt.Sprintf("Orders placed in the last %d days", period),
		},
		{
			Title:       "Total Revenue",
			Count:       currentRevenue,
			Growth:      growthRateDecimal(currentRevenue, previousRevenue),
			Description: fmt.Sprintf("Revenue earned in the last %d days", period),
		},
		{
			Title:       "Active Users",
			Count:       decimal.NewFromInt(currentUsers),
			Growth:      growthRate(float64(currentUsers), float64(previousUsers)),
			Description: fmt.Sprintf("Users active in the last %d days", period),
		},
		{
			Title:       "Products Sold",
			Count:       decimal.NewFromInt(int64(currentSold)),
			Growth:      growthRate(float64(currentSold), float64(previousSold)),
			Description: fmt.Sprintf("Units sold in the last %d days", period),
		},
	}, nil
}

// revenueBetween sums order totals in [start, end), skipping cancellations.
func (s *service) revenueBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	orders, err := s.repo.OrdersBetween(ctx, start, end, OrderQuery{ExcludeCancelled: true})
	if err != nil {
		return decimal.Zero, errors.Wrap(errors.CodeDependency, err, "fetch revenue orders")
	}
	return sumOrderTotals(orders), nil
}

// unitsSoldBetween counts units across order lines in [start, end), skipping
// cancellations.
func (s *service) unitsSoldBetween(ctx context.Context, start, end time.Time) (int, error) {
	items, err := s.repo.OrderItemsBetween(ctx, start, end, ItemQuery{ExcludeCancelled: true})
	if err != nil {
		return 0, errors.Wrap(errors.CodeDependency, err, "fetch sold items")
	}
	sold := 0
	for _, item := range items {
		sold += item.Quantity
	}
	return sold, nil
}

func sumOrderTotals(orders []models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(order.TotalAmount)
	}
	return total
}
