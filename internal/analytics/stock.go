package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luisrmz-dev/vendoria-backend/pkg/db/models"
	"github.com/luisrmz-dev/vendoria-backend/pkg/errors"
)

// LowStockAlerts lists active SKUs at or below their restock threshold,
// lowest stock first. A non-nil threshold overrides every SKU's own
// low-stock setting with a single fixed level.
func (s *service) LowStockAlerts(ctx context.Context, threshold *int) (alerts []LowStockAlert, err error) {
	started := time.Now()
	defer func() { s.instrument("low_stock_alerts", started, err) }()

	q := SKUQuery{AtOrBelowAlert: true}
	if threshold != nil {
		q = SKUQuery{MaxStock: threshold}
	}
	skus, err := s.repo.ActiveSKUs(ctx, q)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "fetch low stock skus")
	}

	alerts = make([]LowStockAlert, 0, len(skus))
	for _, sku := range skus {
		level := sku.LowStockAlert
		if threshold != nil {
			level = *threshold
		}
		alert := LowStockAlert{
			SKUID:         sku.ID,
			SKU:           sku.SKU,
			CurrentStock:  sku.Stock,
			LowStockAlert: sku.LowStockAlert,
			Price:         sku.Price,
			CoverImage:    sku.CoverImage,
			AlertSeverity: alertSeverity(level, sku.Stock),
		}
		if sku.Variant != nil {
			alert.VariantName = sku.Variant.Name
			if sku.Variant.Product != nil {
				alert.ProductName = sku.Variant.Product.Name
			}
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

// StockValue is the current-inventory valuation snapshot across active SKUs.
// It reads no order history: only what sits on the shelf right now.
func (s *service) StockValue(ctx context.Context) (summary *StockValueSummary, err error) {
	started := time.Now()
	defer func() { s.instrument("stock_value", started, err) }()

	skus, err := s.repo.ActiveSKUs(ctx, SKUQuery{})
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "fetch active skus")
	}

	summary = &StockValueSummary{
		TotalStockValue:    decimal.Zero,
		AverageValuePerSKU: decimal.Zero,
		LowStockValue:      decimal.Zero,
		OutOfStockValue:    decimal.Zero,
		ByCategory:         []StockValueByCategory{},
		TopProducts:        []StockValueByProduct{},
	}

	type categoryAgg struct {
		category *models.Category
		stock    int
		value    decimal.Decimal
		products map[uuid.UUID]struct{}
	}
	type productAgg struct {
		product    *models.Product
		stock      int
		priceSum   decimal.Decimal
		priceCount int
		skus       int
	}
	categoryOrder := make([]uuid.UUID, 0)
	byCategory := make(map[uuid.UUID]*categoryAgg)
	productOrder := make([]uuid.UUID, 0)
	byProduct := make(map[uuid.UUID]*productAgg)

	uniqueProducts := make(map[uuid.UUID]struct{})
	for _, sku := range skus {
		value := decimal.NewFromInt(int64(sku.Stock)).Mul(sku.Price)
		summary.TotalStockValue = summary.TotalStockValue.Add(value)
		summary.TotalUnits += sku.Stock
		if sku.Stock <= sku.LowStockAlert {
			summary.LowStockValue = summary.LowStockValue.Add(value)
		}

		if sku.Variant == nil || sku.Variant.Product == nil {
			continue
		}
		product := sku.Variant.Product
		uniqueProducts[product.ID] = struct{}{}

		if len(product.Categories) > 0 {
			category := &product.Categories[0]
			agg, ok := byCategory[category.ID]
			if !ok {
				agg = &categoryAgg{
					category: category,
					value:    decimal.Zero,
					products: make(map[uuid.UUID]struct{}),
				}
				byCategory[category.ID] = agg
				categoryOrder = append(categoryOrder, category.ID)
			}
			agg.stock += sku.Stock
			agg.value = agg.value.Add(value)
			agg.products[product.ID] = struct{}{}
		}

		agg, ok := byProduct[product.ID]
		if !ok {
			agg = &productAgg{product: product, priceSum: decimal.Zero}
			byProduct[product.ID] = agg
			productOrder = append(productOrder, product.ID)
		}
		agg.stock += sku.Stock
		agg.priceSum = agg.priceSum.Add(sku.Price)
		agg.priceCount++
		agg.skus++
	}

	summary.UniqueProducts = len(uniqueProducts)
	summary.UniqueSKUs = len(skus)
	if len(skus) > 0 {
		summary.AverageValuePerSKU = summary.TotalStockValue.Div(decimal.NewFromInt(int64(len(skus))))
	}

	for _, id := range categoryOrder {
		agg := byCategory[id]
		percentage := 0.0
		if !summary.TotalStockValue.IsZero() {
			percentage = agg.value.Div(summary.TotalStockValue).InexactFloat64() * 100
		}
		summary.ByCategory = append(summary.ByCategory, StockValueByCategory{
			CategoryID:        id,
			CategoryName:      agg.category.Name,
			TotalStock:        agg.stock,
			StockValue:        agg.value,
			ProductsCount:     len(agg.products),
			PercentageOfTotal: percentage,
		})
	}
	sort.SliceStable(summary.ByCategory, func(i, j int) bool {
		return summary.ByCategory[i].StockValue.GreaterThan(summary.ByCategory[j].StockValue)
	})

	for _, id := range productOrder {
		agg := byProduct[id]
		averagePrice := decimal.Zero
		if agg.priceCount > 0 {
			averagePrice = agg.priceSum.Div(decimal.NewFromInt(int64(agg.priceCount)))
		}
		summary.TopProducts = append(summary.TopProducts, StockValueByProduct{
			ProductID:     id,
			ProductName:   agg.product.Name,
			TotalStock:    agg.stock,
			AveragePrice:  averagePrice,
			StockValue:    decimal.NewFromInt(int64(agg.stock)).Mul(averagePrice),
			VariantsCount: agg.skus,
			CoverImage:    agg.product.CoverImage,
		})
	}
	sort.SliceStable(summary.TopProducts, func(i, j int) bool {
		return summary.TopProducts[i].StockValue.GreaterThan(summary.TopProducts[j].StockValue)
	})
	if len(summary.TopProducts) > 10 {
		summary.TopProducts = summary.TopProducts[:10]
	}
	return summary, nil
}
