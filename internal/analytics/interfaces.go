package analytics

import (
	"context"
	"time"

	"github.com/luisrmz-dev/vendoria-backend/pkg/db/models"
	"github.com/luisrmz-dev/vendoria-backend/pkg/enums"
)

// OrderQuery narrows an order fetch. Zero values mean no filter.
type OrderQuery struct {
	Status           enums.OrderStatus
	PaymentStatus    enums.PaymentStatus
	ExcludeCancelled bool
	WithItems        bool
	WithItemSKUs     bool
	WithPayments     bool
}

// ItemQuery narrows an order-item fetch. The time range always applies to the
// parent order's creation time.
type ItemQuery struct {
	ExcludeCancelled bool
	// WithCatalog preloads SKU -> Variant -> Product -> Categories.
	WithCatalog bool
	// WithProductStock additionally preloads every sibling SKU of the
	// product so current stock can be totalled.
	WithProductStock bool
}

// SKUQuery narrows an active-SKU fetch.
type SKUQuery struct {
	// MaxStock keeps SKUs at or below a fixed stock level.
	MaxStock *int
	// AtOrBelowAlert keeps SKUs at or below their own low-stock threshold.
	AtOrBelowAlert bool
}

// Repository is the record fetcher the report assemblers run on. All time
// ranges are half-open [start, end).
type Repository interface {
	OrdersBetween(ctx context.Context, start, end time.Time, q OrderQuery) ([]models.Order, error)
	OrderItemsBetween(ctx context.Context, start, end time.Time, q ItemQuery) ([]models.OrderItem, error)
	ActiveSKUs(ctx context.Context, q SKUQuery) ([]models.ProductSKU, error)
	ActiveCategories(ctx context.Context) ([]models.Category, error)
	CountOrdersBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountActiveUsersBetween(ctx context.Context, start, end time.Time) (int64, error)
}
