package analytics

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luisrmz-dev/vendoria-backend/pkg/enums"
)

func init() {
	// Reports emit money as bare JSON numbers rather than quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Card is one headline metric with its growth versus the prior window.
type Card struct {
	Title       string          `json:"title"`
	Count       decimal.Decimal `json:"count"`
	Growth      float64         `json:"growth"`
	Description string          `json:"description"`
}

// ChartPoint is one day of the orders/revenue/products chart.
type ChartPoint struct {
	Date     string          `json:"date"`
	Orders   int             `json:"orders"`
	Revenue  decimal.Decimal `json:"revenue"`
	Products int             `json:"products"`
}

// TopProduct ranks a product name by units ordered.
type TopProduct struct {
	ProductName  string `json:"productName"`
	TotalOrdered int    `json:"totalOrdered"`
}

// TopProductMetric carries the charting variant of the top-products ranking.
type TopProductMetric struct {
	Label        string          `json:"label"`
	TotalOrdered int             `json:"totalOrdered"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// CategoryDayTotals is a category's totals within a single day.
type CategoryDayTotals struct {
	CategoryID    uuid.UUID       `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	Key           string          `json:"key"`
	TotalOrders   int             `json:"totalOrders"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalProducts int             `json:"totalProducts"`
}

// CategoryPerformanceDay groups per-category totals under one calendar day.
// Every active category appears on every day, zero-filled when nothing sold.
type CategoryPerformanceDay struct {
	Date       string              `json:"date"`
	Categories []CategoryDayTotals `json:"categories"`
}

// DailyCashSummary is the single-window cash report.
type DailyCashSummary struct {
	Date              string          `json:"date"`
	TotalCash         decimal.Decimal `json:"totalCash"`
	OrdersCount       int             `json:"ordersCount"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
	CompletedPayments decimal.Decimal `json:"completedPayments"`
	PendingPayments   decimal.Decimal `json:"pendingPayments"`
	ItemsSold         int             `json:"itemsSold"`
}

// LowStockAlert flags a SKU at or below its restock threshold.
type LowStockAlert struct {
	SKUID         uuid.UUID       `json:"skuId"`
	SKU           string          `json:"sku"`
	ProductName   string          `json:"productName"`
	VariantName   string          `json:"variantName"`
	CurrentStock  int             `json:"currentStock"`
	LowStockAlert int             `json:"lowStockAlert"`
	Price         decimal.Decimal `json:"price"`
	CoverImage    *string         `json:"coverImage"`
	AlertSeverity int             `json:"alertSeverity"`
}

// DailyProfit is one day of the profit breakdown.
type DailyProfit struct {
	Date         string          `json:"date"`
	Revenue      decimal.Decimal `json:"revenue"`
	CostOfGoods  decimal.Decimal `json:"costOfGoods"`
	GrossProfit  decimal.Decimal `json:"grossProfit"`
	ProfitMargin float64         `json:"profitMargin"`
	OrdersCount  int             `json:"ordersCount"`
}

// ProfitSummary aggregates the profit breakdown over the whole period.
type ProfitSummary struct {
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalCost           decimal.Decimal `json:"totalCost"`
	TotalProfit         decimal.Decimal `json:"totalProfit"`
	AverageProfitMargin float64         `json:"averageProfitMargin"`
	DailyBreakdown      []DailyProfit   `json:"dailyBreakdown"`
	BestDay             DailyProfit     `json:"bestDay"`
	WorstDay            DailyProfit     `json:"worstDay"`
}

// BestSellingProduct ranks a product by units sold with reorder insight.
type BestSellingProduct struct {
	ProductID         uuid.UUID         `json:"productId"`
	ProductName       string            `json:"productName"`
	UnitsSold         int               `json:"unitsSold"`
	TotalRevenue      decimal.Decimal   `json:"totalRevenue"`
	OrdersCount       int               `json:"ordersCount"`
	AveragePrice      decimal.Decimal   `json:"averagePrice"`
	CurrentStock      int               `json:"currentStock"`
	CoverImage        *string           `json:"coverImage"`
	StockStatus       enums.StockStatus `json:"stockStatus"`
	DaysUntilStockout *float64          `json:"daysUntilStockout"`
}

// HourlyPatternEntry is one hour-of-day bucket merged across the period.
type HourlyPatternEntry struct {
	Hour             int             `json:"hour"`
	HourLabel        string          `json:"hourLabel"`
	AverageOrders    float64         `json:"averageOrders"`
	TotalOrders      int             `json:"totalOrders"`
	AverageRevenue   decimal.Decimal `json:"averageRevenue"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	AverageItemsSold float64         `json:"averageItemsSold"`
	IsPeakHour       bool            `json:"isPeakHour"`
}

// HourlyPatternSummary is the busy-times report.
type HourlyPatternSummary struct {
	HourlyData   []HourlyPatternEntry `json:"hourlyData"`
	BusiestHour  HourlyPatternEntry   `json:"busiestHour"`
	SlowestHour  HourlyPatternEntry   `json:"slowestHour"`
	PeakHours    []HourlyPatternEntry `json:"peakHours"`
	DaysAnalyzed int                  `json:"daysAnalyzed"`
}

// StockValueByCategory is the shelf value attributed to one category.
type StockValueByCategory struct {
	CategoryID        uuid.UUID       `json:"categoryId"`
	CategoryName      string          `json:"categoryName"`
	TotalStock        int             `json:"totalStock"`
	StockValue        decimal.Decimal `json:"stockValue"`
	ProductsCount     int             `json:"productsCount"`
	PercentageOfTotal float64         `json:"percentageOfTotal"`
}

// StockValueByProduct is the shelf value held by one product.
type StockValueByProduct struct {
	ProductID     uuid.UUID       `json:"productId"`
	ProductName   string          `json:"productName"`
	TotalStock    int             `json:"totalStock"`
	AveragePrice  decimal.Decimal `json:"averagePrice"`
	StockValue    decimal.Decimal `json:"stockValue"`
	VariantsCount int             `json:"variantsCount"`
	CoverImage    *string         `json:"coverImage"`
}

// StockValueSummary is the current-inventory valuation snapshot.
type StockValueSummary struct {
	TotalStockValue    decimal.Decimal        `json:"totalStockValue"`
	TotalUnits         int                    `json:"totalUnits"`
	UniqueProducts     int                    `json:"uniqueProducts"`
	UniqueSKUs         int                    `json:"uniqueSkus"`
	AverageValuePerSKU decimal.Decimal        `json:"averageValuePerSku"`
	LowStockValue      decimal.Decimal        `json:"lowStockValue"`
	OutOfStockValue    decimal.Decimal        `json:"outOfStockValue"`
	ByCategory         []StockValueByCategory `json:"byCategory"`
	TopProducts        []StockValueByProduct  `json:"topProducts"`
}

// WeeklyTrendData is one Monday-Sunday week of trend metrics.
type WeeklyTrendData struct {
	WeekNumber        int             `json:"weekNumber"`
	WeekLabel         string          `json:"weekLabel"`
	StartDate         string          `json:"startDate"`
	EndDate           string          `json:"endDate"`
	OrdersCount       int             `json:"ordersCount"`
	Revenue           decimal.Decimal `json:"revenue"`
	ItemsSold         int             `json:"itemsSold"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
	UniqueCustomers   int             `json:"uniqueCustomers"`
	RevenueGrowth     float64         `json:"revenueGrowth"`
	OrdersGrowth      float64         `json:"ordersGrowth"`
}

// WeeklyTrendsSummary is the week-over-week growth report.
type WeeklyTrendsSummary struct {
	WeeklyData           []WeeklyTrendData    `json:"weeklyData"`
	AverageWeeklyRevenue decimal.Decimal      `json:"averageWeeklyRevenue"`
	AverageWeeklyOrders  float64              `json:"averageWeeklyOrders"`
	BestWeek             WeeklyTrendData      `json:"bestWeek"`
	WorstWeek            WeeklyTrendData      `json:"worstWeek"`
	TrendDirection       enums.TrendDirection `json:"trendDirection"`
	OverallGrowthRate    float64              `json:"overallGrowthRate"`
	WeeksAnalyzed        int                  `json:"weeksAnalyzed"`
}
