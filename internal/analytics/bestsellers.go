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

// BestSellingProducts ranks products by units sold in the period and projects
// how many days of stock remain at the observed sales rate.
func (s *service) BestSellingProducts(ctx context.Context, period, limit int) (bestsellers []BestSellingProduct, err error) {
	started := time.Now()
	defer func() { s.instrument("best_selling_products", started, err) }()

	now := s.now()
	items, err := s.repo.OrderItemsBetween(ctx, now.AddDate(0, 0, -period), now, ItemQuery{
		ExcludeCancelled: true,
		WithCatalog:      true,
		WithProductStock: true,
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "fetch best seller items")
	}

	type productAgg struct {
		product    *models.Product
		unitsSold  int
		revenue    decimal.Decimal
		priceSum   decimal.Decimal
		priceCount int
		orders     map[uuid.UUID]struct{}
		totalStock int
	}
	order := make([]uuid.UUID, 0)
	byProduct := make(map[uuid.UUID]*productAgg)
	for _, item := range items {
		if item.SKU == nil || item.SKU.Variant == nil || item.SKU.Variant.Product == nil {
			continue
		}
		product := item.SKU.Variant.Product
		agg, ok := byProduct[product.ID]
		if !ok {
			agg = &productAgg{
				product:    product,
				revenue:    decimal.Zero,
				priceSum:   decimal.Zero,
				orders:     make(map[uuid.UUID]struct{}),
				totalStock: productStock(product),
			}
			byProduct[product.ID] = agg
			order = append(order, product.ID)
		}
		agg.unitsSold += item.Quantity
		agg.revenue = agg.revenue.Add(item.TotalPrice)
		agg.priceSum = agg.priceSum.Add(item.UnitPrice)
		agg.priceCount++
		agg.orders[item.OrderID] = struct{}{}
	}

	bestsellers = make([]BestSellingProduct, 0, len(order))
	for _, id := range order {
		agg := byProduct[id]
		averagePrice := decimal.Zero
		if agg.priceCount > 0 {
			averagePrice = agg.priceSum.Div(decimal.NewFromInt(int64(agg.priceCount)))
		}
		daysLeft := stockoutDays(agg.totalStock, agg.unitsSold, period)
		bestsellers = append(bestsellers, BestSellingProduct{
			ProductID:         id,
			ProductName:       agg.product.Name,
			UnitsSold:         agg.unitsSold,
			TotalRevenue:      agg.revenue,
			OrdersCount:       len(agg.orders),
			AveragePrice:      averagePrice,
			CurrentStock:      agg.totalStock,
			CoverImage:        agg.product.CoverImage,
			StockStatus:       stockStatusFor(agg.totalStock, daysLeft),
			DaysUntilStockout: daysLeft,
		})
	}
	sort.SliceStable(bestsellers, func(i, j int) bool {
		return bestsellers[i].UnitsSold > bestsellers[j].UnitsSold
	})
	if len(bestsellers) > limit {
		bestsellers = bestsellers[:limit]
	}
	return bestsellers, nil
}

// productStock totals current stock across every SKU of the product.
func productStock(product *models.Product) int {
	total := 0
	for _, variant := range product.Variants {
		for _, sku := range variant.SKUs {
			total += sku.Stock
		}
	}
	return total
}
