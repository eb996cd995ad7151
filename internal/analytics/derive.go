package analytics

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/luisrmz-dev/vendoria-backend/pkg/db/models"
	"github.com/luisrmz-dev/vendoria-backend/pkg/enums"
)

// fallbackCostFactor estimates cost of goods as 65% of the sale price for
// SKUs with no recorded cost basis.
var fallbackCostFactor = decimal.NewFromFloat(0.65)

var whitespacePattern = regexp.MustCompile(`\s+`)

// growthRate returns the period-over-period change in percent. A zero base
// reads as 100 so the first nonzero window registers as full growth; a drop
// back to zero still reads as -100.
func growthRate(current, previous float64) float64 {
	if previous == 0 {
		return 100
	}
	return (current - previous) / previous * 100
}

func growthRateDecimal(current, previous decimal.Decimal) float64 {
	return growthRate(current.InexactFloat64(), previous.InexactFloat64())
}

// itemCost estimates cost of goods for one order line.
func itemCost(item models.OrderItem) decimal.Decimal {
	qty := decimal.NewFromInt(int64(item.Quantity))
	if item.SKU != nil && item.SKU.InitPrice != nil {
		return item.SKU.InitPrice.Mul(qty)
	}
	return item.UnitPrice.Mul(fallbackCostFactor).Mul(qty)
}

// alertSeverity maps how far stock sits below its threshold onto 0..100.
// A zero threshold is treated as maximally severe.
func alertSeverity(threshold, stock int) int {
	if threshold <= 0 {
		return 100
	}
	severity := int(math.Round(float64(threshold-stock) / float64(threshold) * 100))
	if severity < 0 {
		return 0
	}
	if severity > 100 {
		return 100
	}
	return severity
}

// stockoutDays projects days until stock runs out at the period's sales rate.
// Returns nil when stock is already gone or nothing sold.
func stockoutDays(totalStock, unitsSold, periodDays int) *float64 {
	if totalStock <= 0 || unitsSold <= 0 || periodDays <= 0 {
		return nil
	}
	rate := float64(unitsSold) / float64(periodDays)
	days := float64(totalStock) / rate
	return &days
}

// stockStatusFor classifies replenishment urgency.
func stockStatusFor(totalStock int, daysLeft *float64) enums.StockStatus {
	switch {
	case totalStock == 0:
		return enums.StockStatusOutOfStock
	case daysLeft != nil && *daysLeft < 7:
		return enums.StockStatusLow
	default:
		return enums.StockStatusOK
	}
}

// trendDirectionFor classifies the overall growth rate with a ±5% dead band.
func trendDirectionFor(overallGrowth float64) enums.TrendDirection {
	switch {
	case overallGrowth > 5:
		return enums.TrendGrowing
	case overallGrowth < -5:
		return enums.TrendDeclining
	default:
		return enums.TrendStable
	}
}

// categoryKey normalizes a category name into a stable grouping key.
func categoryKey(name string) string {
	return whitespacePattern.ReplaceAllString(strings.ToLower(name), "")
}

// markPeakHours flags the top quarter of hour buckets by order count.
// Ties keep the earlier hour ahead. The input stays in hour order.
func markPeakHours(entries []HourlyPatternEntry) {
	ranked := make([]*HourlyPatternEntry, len(entries))
	for i := range entries {
		ranked[i] = &entries[i]
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalOrders > ranked[j].TotalOrders
	})
	peakCount := int(math.Ceil(float64(len(entries)) * 0.25))
	for i := 0; i < peakCount && i < len(ranked); i++ {
		ranked[i].IsPeakHour = true
	}
}
