package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luisrmz-dev/vendoria-backend/pkg/db/models"
	"github.com/luisrmz-dev/vendoria-backend/pkg/errors"
)

// CategoryPerformance buckets sales per day and category. Every active
// category appears on every day, zero-filled; an order line is attributed to
// the first category of its product and a multi-line order counts once per
// (day, category) pair.
func (s *service) CategoryPerformance(ctx context.Context, period int) (days []CategoryPerformanceDay, err error) {
	started := time.Now()
	defer func() { s.instrument("category_performance", started, err) }()

	now := s.now()
	categories, err := s.repo.ActiveCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "fetch active categories")
	}
	items, err := s.repo.OrderItemsBetween(ctx, now.AddDate(0, 0, -period), now, ItemQuery{
		ExcludeCancelled: true,
		WithCatalog:      true,
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "fetch category items")
	}

	buckets := dayBuckets(now, period)
	byDay := make(map[string]map[string]*CategoryDayTotals, len(buckets))
	for _, day := range buckets {
		entries := make(map[string]*CategoryDayTotals, len(categories))
		for _, category := range categories {
			key := categoryKey(category.Name)
			entries[key] = &CategoryDayTotals{
				CategoryID:   category.ID,
				CategoryName: category.Name,
				Key:          key,
				TotalRevenue: decimal.Zero,
			}
		}
		byDay[day] = entries
	}

	// One order may hold several lines of the same category; count the
	// order once per (day, category).
	countedOrders := make(map[string]struct{})
	for _, item := range items {
		if item.Order == nil {
			continue
		}
		day := dayKey(item.Order.CreatedAt, now.Location())
		entries, ok := byDay[day]
		if !ok {
			continue
		}
		category := firstCategory(item)
		if category == nil {
			continue
		}
		entry, ok := entries[categoryKey(category.Name)]
		if !ok {
			// Product tagged with an inactive category.
			continue
		}
		entry.TotalProducts += item.Quantity
		entry.TotalRevenue = entry.TotalRevenue.Add(item.TotalPrice)
		orderKey := day + "|" + entry.Key + "|" + item.OrderID.String()
		if _, counted := countedOrders[orderKey]; !counted {
			countedOrders[orderKey] = struct{}{}
			entry.TotalOrders++
		}
	}

	days = make([]CategoryPerformanceDay, 0, len(buckets))
	for _, day := range buckets {
		entries := make([]CategoryDayTotals, 0, len(categories))
		for _, category := range categories {
			entries = append(entries, *byDay[day][categoryKey(category.Name)])
		}
		days = append(days, CategoryPerformanceDay{Date: day, Categories: entries})
	}
	return days, nil
}

// firstCategory walks the catalog chain to the category a line is attributed
// to. Returns nil when the chain is incomplete or the product is untagged.
func firstCategory(item models.OrderItem) *models.Category {
	if item.SKU == nil || item.SKU.Variant == nil || item.SKU.Variant.Product == nil {
		return nil
	}
	categories := item.SKU.Variant.Product.Categories
	if len(categories) == 0 {
		return nil
	}
	return &categories[0]
}
