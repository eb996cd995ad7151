package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luisrmz-dev/vendoria-backend/pkg/errors"
)

// HourlyPattern merges orders from the whole period into 24 hour-of-day
// buckets and flags the busiest quarter of the day as peak hours.
func (s *service) HourlyPattern(ctx context.Context, period int) (summary *HourlyPatternSummary, err error) {
	started := time.Now()
	defer func() { s.instrument("hourly_pattern", started, err) }()

	now := s.now()
	orders, err := s.repo.OrdersBetween(ctx, now.AddDate(0, 0, -period), now, OrderQuery{
		ExcludeCancelled: true,
		WithItems:        true,
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "fetch hourly pattern orders")
	}

	entries := make([]HourlyPatternEntry, 24)
	for hour := range entries {
		entries[hour] = HourlyPatternEntry{
			Hour:           hour,
			HourLabel:      hourLabel(hour),
			TotalRevenue:   decimal.Zero,
			AverageRevenue: decimal.Zero,
		}
	}
	itemsByHour := make([]int, 24)
	for _, order := range orders {
		hour := order.CreatedAt.In(now.Location()).Hour()
		entries[hour].TotalOrders++
		entries[hour].TotalRevenue = entries[hour].TotalRevenue.Add(order.TotalAmount)
		for _, item := range order.Items {
			itemsByHour[hour] += item.Quantity
		}
	}

	days := decimal.NewFromInt(int64(period))
	for hour := range entries {
		entries[hour].AverageOrders = float64(entries[hour].TotalOrders) / float64(period)
		entries[hour].AverageRevenue = entries[hour].TotalRevenue.Div(days)
		entries[hour].AverageItemsSold = float64(itemsByHour[hour]) / float64(period)
	}
	markPeakHours(entries)

	busiest, slowest := entries[0], entries[0]
	peaks := make([]HourlyPatternEntry, 0, 6)
	for _, entry := range entries {
		if entry.TotalOrders > busiest.TotalOrders {
			busiest = entry
		}
		// ties go to the later hour, mirroring the tail of a stable
		// count-descending ranking
		if entry.TotalOrders <= slowest.TotalOrders {
			slowest = entry
		}
		if entry.IsPeakHour {
			peaks = append(peaks, entry)
		}
	}

	return &HourlyPatternSummary{
		HourlyData:   entries,
		BusiestHour:  busiest,
		SlowestHour:  slowest,
		PeakHours:    peaks,
		DaysAnalyzed: period,
	}, nil
}
