package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luisrmz-dev/vendoria-backend/pkg/db/models"
	"github.com/luisrmz-dev/vendoria-backend/pkg/enums"
)

// testNow is a fixed Wednesday afternoon; its week runs Jun 08 - Jun 14.
var testNow = time.Date(2026, time.June, 10, 15, 0, 0, 0, time.UTC)

// stubRepo serves canned records, applying the same window and status
// filters the real repository would.
type stubRepo struct {
	orders     []models.Order
	items      []models.OrderItem
	skus       []models.ProductSKU
	categories []models.Category
	users      []models.User
	err        error
}

func (s *stubRepo) OrdersBetween(_ context.Context, start, end time.Time, q OrderQuery) ([]models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Order
	for _, order := range s.orders {
		if order.CreatedAt.Before(start) || !order.CreatedAt.Before(end) {
			continue
		}
		if q.Status != "" && order.Status != q.Status {
			continue
		}
		if q.PaymentStatus != "" && order.PaymentStatus != q.PaymentStatus {
			continue
		}
		if q.ExcludeCancelled && order.Status == enums.OrderStatusCancelled {
			continue
		}
		out = append(out, order)
	}
	return out, nil
}

func (s *stubRepo) OrderItemsBetween(_ context.Context, start, end time.Time, q ItemQuery) ([]models.OrderItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.OrderItem
	for _, item := range s.items {
		if item.Order == nil {
			continue
		}
		if item.Order.CreatedAt.Before(start) || !item.Order.CreatedAt.Before(end) {
			continue
		}
		if q.ExcludeCancelled && item.Order.Status == enums.OrderStatusCancelled {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *stubRepo) ActiveSKUs(_ context.Context, q SKUQuery) ([]models.ProductSKU, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.ProductSKU
	for _, sku := range s.skus {
		if !sku.IsActive {
			continue
		}
		if q.MaxStock != nil && sku.Stock > *q.MaxStock {
			continue
		}
		if q.MaxStock == nil && q.AtOrBelowAlert && sku.Stock > sku.LowStockAlert {
			continue
		}
		out = append(out, sku)
	}
	return out, nil
}

func (s *stubRepo) ActiveCategories(_ context.Context) ([]models.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Category
	for _, category := range s.categories {
		if category.IsActive {
			out = append(out, category)
		}
	}
	return out, nil
}

func (s *stubRepo) CountOrdersBetween(_ context.Context, start, end time.Time) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var count int64
	for _, order := range s.orders {
		if !order.CreatedAt.Before(start) && order.CreatedAt.Before(end) {
			count++
		}
	}
	return count, nil
}

func (s *stubRepo) CountActiveUsersBetween(_ context.Context, start, end time.Time) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var count int64
	for _, user := range s.users {
		if !user.IsActive || user.LastLoginAt == nil {
			continue
		}
		if !user.LastLoginAt.Before(start) && user.LastLoginAt.Before(end) {
			count++
		}
	}
	return count, nil
}

func newTestService(repo Repository) *service {
	return &service{
		repo: repo,
		now:  func() time.Time { return testNow },
	}
}

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func testOrder(daysAgo int, status enums.OrderStatus, total string) models.Order {
	return models.Order{
		ID:            uuid.New(),
		OrderNumber:   uuid.NewString(),
		Status:        status,
		PaymentStatus: enums.PaymentStatusCompleted,
		TotalAmount:   money(total),
		CustomerName:  "Walk-in",
		CustomerPhone: "555-0000",
		CreatedAt:     testNow.AddDate(0, 0, -daysAgo),
	}
}

func testItem(order *models.Order, name string, quantity int, unitPrice string) models.OrderItem {
	price := money(unitPrice)
	return models.OrderItem{
		ID:          uuid.New(),
		OrderID:     order.ID,
		SKUID:       uuid.New(),
		ProductName: name,
		Quantity:    quantity,
		UnitPrice:   price,
		TotalPrice:  price.Mul(decimal.NewFromInt(int64(quantity))),
		Order:       order,
	}
}

// testCatalogItem builds an order line wired to a full catalog chain so
// category and stock reports can walk it.
func testCatalogItem(order *models.Order, product *models.Product, quantity int, unitPrice string) models.OrderItem {
	variant := &product.Variants[0]
	sku := &variant.SKUs[0]
	price := money(unitPrice)
	return models.OrderItem{
		ID:          uuid.New(),
		OrderID:     order.ID,
		SKUID:       sku.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   price,
		TotalPrice:  price.Mul(decimal.NewFromInt(int64(quantity))),
		Order:       order,
		SKU: &models.ProductSKU{
			ID:        sku.ID,
			VariantID: variant.ID,
			SKU:       sku.SKU,
			Stock:     sku.Stock,
			Price:     sku.Price,
			InitPrice: sku.InitPrice,
			IsActive:  true,
			Variant: &models.Variant{
				ID:        variant.ID,
				ProductID: product.ID,
				Name:      variant.Name,
				Product:   product,
				SKUs:      variant.SKUs,
			},
		},
	}
}

// testProduct builds a product with one variant and one SKU.
func testProduct(name string, stock int, price string, category *models.Category) *models.Product {
	product := &models.Product{
		ID:       uuid.New(),
		Name:     name,
		IsActive: true,
	}
	if category != nil {
		product.Categories = []models.Category{*category}
	}
	variant := models.Variant{
		ID:        uuid.New(),
		ProductID: product.ID,
		Name:      "Default",
	}
	variant.SKUs = []models.ProductSKU{{
		ID:            uuid.New(),
		VariantID:     variant.ID,
		SKU:           name + "-SKU",
		Stock:         stock,
		Price:         money(price),
		LowStockAlert: 5,
		IsActive:      true,
	}}
	product.Variants = []models.Variant{variant}
	return product
}

func testCategory(name string) *models.Category {
	return &models.Category{
		ID:       uuid.New(),
		Name:     name,
		IsActive: true,
	}
}
