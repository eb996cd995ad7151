package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luisrmz-dev/vendoria-backend/pkg/db/models"
	"github.com/luisrmz-dev/vendoria-backend/pkg/enums"
)

func TestGrowthRate(t *testing.T) {
	assert.InDelta(t, 10, growthRate(1100, 1000), 1e-9)
	assert.InDelta(t, -50, growthRate(50, 100), 1e-9)
	assert.InDelta(t, 100, growthRate(42, 0), 1e-9)
	assert.InDelta(t, 100, growthRate(0, 0), 1e-9)
	assert.InDelta(t, -100, growthRate(0, 200), 1e-9)
}

func TestItemCost(t *testing.T) {
	cost := money("4.00")

	withBasis := models.OrderItem{
		Quantity:  3,
		UnitPrice: money("10.00"),
		SKU:       &models.ProductSKU{InitPrice: &cost},
	}
	assert.True(t, money("12.00").Equal(itemCost(withBasis)))

	withoutBasis := models.OrderItem{Quantity: 2, UnitPrice: money("10.00")}
	assert.True(t, money("13.00").Equal(itemCost(withoutBasis)))

	noSKU := models.OrderItem{Quantity: 1, UnitPrice: money("100.00")}
	assert.True(t, money("65.00").Equal(itemCost(noSKU)))
}

func TestAlertSeverity(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		stock     int
		want      int
	}{
		{name: "seventy percent depleted", threshold: 10, stock: 3, want: 70},
		{name: "empty shelf", threshold: 10, stock: 0, want: 100},
		{name: "at threshold", threshold: 10, stock: 10, want: 0},
		{name: "above threshold clamps to zero", threshold: 10, stock: 25, want: 0},
		{name: "zero threshold is maximal", threshold: 0, stock: 0, want: 100},
		{name: "rounds to nearest", threshold: 3, stock: 2, want: 33},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := alertSeverity(tc.threshold, tc.stock)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestStockoutDays(t *testing.T) {
	days := stockoutDays(30, 15, 30)
	require.NotNil(t, days)
	assert.InDelta(t, 60, *days, 1e-9)

	assert.Nil(t, stockoutDays(0, 15, 30))
	assert.Nil(t, stockoutDays(30, 0, 30))
}

func TestStockStatusFor(t *testing.T) {
	fiveDays := 5.0
	thirtyDays := 30.0

	assert.Equal(t, enums.StockStatusOutOfStock, stockStatusFor(0, nil))
	assert.Equal(t, enums.StockStatusLow, stockStatusFor(10, &fiveDays))
	assert.Equal(t, enums.StockStatusOK, stockStatusFor(10, &thirtyDays))
	assert.Equal(t, enums.StockStatusOK, stockStatusFor(10, nil))
}

func TestTrendDirectionFor(t *testing.T) {
	assert.Equal(t, enums.TrendGrowing, trendDirectionFor(5.1))
	assert.Equal(t, enums.TrendStable, trendDirectionFor(5))
	assert.Equal(t, enums.TrendStable, trendDirectionFor(0))
	assert.Equal(t, enums.TrendStable, trendDirectionFor(-5))
	assert.Equal(t, enums.TrendDeclining, trendDirectionFor(-5.1))
}

func TestCategoryKey(t *testing.T) {
	assert.Equal(t, "homeappliances", categoryKey("Home Appliances"))
	assert.Equal(t, "drinks", categoryKey("Drinks"))
	assert.Equal(t, "coldbrewcoffee", categoryKey("  Cold Brew\tCoffee "))
}

func TestMarkPeakHours(t *testing.T) {
	entries := make([]HourlyPatternEntry, 24)
	for hour := range entries {
		entries[hour] = HourlyPatternEntry{Hour: hour, TotalOrders: hour % 8, TotalRevenue: decimal.Zero}
	}
	markPeakHours(entries)

	flagged := 0
	for _, entry := range entries {
		if entry.IsPeakHour {
			flagged++
		}
	}
	assert.Equal(t, 6, flagged)
	// Counts 7 and 6 appear three times each; all six are the peak set.
	for _, entry := range entries {
		assert.Equal(t, entry.TotalOrders >= 6, entry.IsPeakHour, "hour %d", entry.Hour)
	}
}
