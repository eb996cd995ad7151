package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luisrmz-dev/vendoria-backend/pkg/db/models"
	"github.com/luisrmz-dev/vendoria-backend/pkg/enums"
)

func TestHourlyPattern(t *testing.T) {
	atHour := func(daysAgo, hour int, total string) models.Order {
		order := testOrder(daysAgo, enums.OrderStatusDelivered, total)
		base := dayStart(testNow.AddDate(0, 0, -daysAgo))
		order.CreatedAt = base.Add(time.Duration(hour) * time.Hour)
		return order
	}

	// Two lunch rushes on different days land in the same bucket.
	lunchOne := atHour(1, 12, "40.00")
	lunchTwo := atHour(2, 12, "60.00")
	evening := atHour(1, 19, "25.00")
	lunchOne.Items = []models.OrderItem{testItem(&lunchOne, "Espresso Beans", 2, "20.00")}

	repo := &stubRepo{orders: []models.Order{lunchOne, lunchTwo, evening}}
	svc := newTestService(repo)

	summary, err := svc.HourlyPattern(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, summary.HourlyData, 24)
	assert.Equal(t, 10, summary.DaysAnalyzed)

	for hour, entry := range summary.HourlyData {
		assert.Equal(t, hour, entry.Hour)
	}

	noon := summary.HourlyData[12]
	assert.Equal(t, "12:00 PM", noon.HourLabel)
	assert.Equal(t, 2, noon.TotalOrders)
	assert.True(t, money("100.00").Equal(noon.TotalRevenue))
	assert.InDelta(t, 0.2, noon.AverageOrders, 1e-9)
	assert.True(t, money("10.00").Equal(noon.AverageRevenue))
	assert.InDelta(t, 0.2, noon.AverageItemsSold, 1e-9)
	assert.True(t, noon.IsPeakHour)

	assert.Equal(t, 12, summary.BusiestHour.Hour)
	// all empty hours tie at zero; the latest one wins
	assert.Equal(t, 23, summary.SlowestHour.Hour)

	// A quarter of the day is flagged peak; with only two busy hours the
	// rest of the set fills from the earliest empty buckets. The list
	// itself stays in hour order.
	require.Len(t, summary.PeakHours, 6)
	peakHours := make([]int, 0, 6)
	for _, peak := range summary.PeakHours {
		assert.True(t, peak.IsPeakHour)
		peakHours = append(peakHours, peak.Hour)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 12, 19}, peakHours)
}

func TestHourlyPatternEmptyWindow(t *testing.T) {
	svc := newTestService(&stubRepo{})

	summary, err := svc.HourlyPattern(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, summary.HourlyData, 24)
	assert.Zero(t, summary.BusiestHour.TotalOrders)
	assert.Equal(t, 0, summary.BusiestHour.Hour)
	assert.Equal(t, 23, summary.SlowestHour.Hour)
	assert.Len(t, summary.PeakHours, 6)
}
