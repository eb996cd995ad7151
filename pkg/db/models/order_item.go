package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is the per-SKU line of an order. ProductName is a denormalized
// snapshot of the product title at purchase time.
type OrderItem struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID     uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index"`
	SKUID       uuid.UUID       `gorm:"column:sku_id;type:uuid;not null"`
	ProductName string          `gorm:"column:product_name;not null"`
	Quantity    int             `gorm:"column:quantity;not null"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	TotalPrice  decimal.Decimal `gorm:"column:total_price;type:numeric(12,2);not null"`
	Order       *Order          `gorm:"foreignKey:OrderID"`
	SKU         *ProductSKU     `gorm:"foreignKey:SKUID"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

// TableName implements schema.Tabler.
func (OrderItem) TableName() string { return "order_items" }
