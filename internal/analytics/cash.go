package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luisrmz-dev/vendoria-backend/pkg/enums"
	"github.com/luisrmz-dev/vendoria-backend/pkg/errors"
)

// DailyCashSummary totals cash over whole calendar days: from the start of
// the day period-1 days ago through the end of today. Payments are split by
// settlement state.
func (s *service) DailyCashSummary(ctx context.Context, period int) (summary *DailyCashSummary, err error) {
	started := time.Now()
	defer func() { s.instrument("daily_cash_summary", started, err) }()

	now := s.now()
	windowStart := dayStart(now.AddDate(0, 0, -(period - 1)))
	windowEnd := dayStart(now).AddDate(0, 0, 1)

	orders, err := s.repo.OrdersBetween(ctx, windowStart, windowEnd, OrderQuery{
		ExcludeCancelled: true,
		WithItems:        true,
		WithPayments:     true,
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "fetch cash summary orders")
	}

	summary = &DailyCashSummary{
		Date:              dayKey(now, now.Location()),
		TotalCash:         decimal.Zero,
		AverageOrderValue: decimal.Zero,
		CompletedPayments: decimal.Zero,
		PendingPayments:   decimal.Zero,
	}
	for _, order := range orders {
		summary.OrdersCount++
		summary.TotalCash = summary.TotalCash.Add(order.TotalAmount)
		for _, item := range order.Items {
			summary.ItemsSold += item.Quantity
		}
		for _, payment := range order.Payments {
			switch payment.Status {
			case enums.PaymentStatusCompleted:
				summary.CompletedPayments = summary.CompletedPayments.Add(payment.Amount)
			case enums.PaymentStatusPending:
				summary.PendingPayments = summary.PendingPayments.Add(payment.Amount)
			}
		}
	}
	if summary.OrdersCount > 0 {
		summary.AverageOrderValue = summary.TotalCash.Div(decimal.NewFromInt(int64(summary.OrdersCount)))
	}
	return summary, nil
}
