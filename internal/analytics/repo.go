package analytics

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/luisrmz-dev/vendoria-backend/pkg/db/models"
	"github.com/luisrmz-dev/vendoria-backend/pkg/enums"
)

type repository struct {
	db *gorm.DB
}

// NewRepository returns a Repository backed by the given database handle.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) OrdersBetween(ctx context.Context, start, end time.Time, q OrderQuery) ([]models.Order, error) {
	query := r.db.WithContext(ctx).
		Where("orders.created_at >= ? AND orders.created_at < ?", start, end)
	if q.Status != "" {
		query = query.Where("orders.status = ?", q.Status)
	}
	if q.PaymentStatus != "" {
		query = query.Where("orders.payment_status = ?", q.PaymentStatus)
	}
	if q.ExcludeCancelled {
		query = query.Where("orders.status <> ?", enums.OrderStatusCancelled)
	}
	switch {
	case q.WithItemSKUs:
		query = query.Preload("Items.SKU")
	case q.WithItems:
		query = query.Preload("Items")
	}
	if q.WithPayments {
		query = query.Preload("Payments")
	}

	var orders []models.Order
	if err := query.Order("orders.created_at ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) OrderItemsBetween(ctx context.Context, start, end time.Time, q ItemQuery) ([]models.OrderItem, error) {
	query := r.db.WithContext(ctx).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ? AND orders.created_at < ?", start, end).
		Preload("Order")
	if q.ExcludeCancelled {
		query = query.Where("orders.status <> ?", enums.OrderStatusCancelled)
	}
	if q.WithCatalog {
		query = query.Preload("SKU.Variant.Product.Categories")
	}
	if q.WithProductStock {
		query = query.Preload("SKU.Variant.Product.Variants.SKUs")
	}

	var items []models.OrderItem
	if err := query.Order("orders.created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ActiveSKUs(ctx context.Context, q SKUQuery) ([]models.ProductSKU, error) {
	query := r.db.WithContext(ctx).
		Where("product_skus.is_active = ?", true).
		Preload("Variant.Product.Categories")
	switch {
	case q.MaxStock != nil:
		query = query.Where("product_skus.stock <= ?", *q.MaxStock)
	case q.AtOrBelowAlert:
		query = query.Where("product_skus.stock <= product_skus.low_stock_alert")
	}

	var skus []models.ProductSKU
	if err := query.Order("product_skus.stock ASC").Find(&skus).Error; err != nil {
		return nil, err
	}
	return skus, nil
}

func (r *repository) ActiveCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) CountOrdersBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) CountActiveUsersBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("is_active = ? AND last_login_at >= ? AND last_login_at < ?", true, start, end).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
