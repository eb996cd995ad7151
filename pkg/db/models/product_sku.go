package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSKU is the sellable unit: it owns stock, pricing and the per-row
// low-stock alert threshold. InitPrice is the acquisition cost basis and may
// be missing for legacy rows.
type ProductSKU struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	VariantID     uuid.UUID        `gorm:"column:variant_id;type:uuid;not null;index"`
	SKU           string           `gorm:"column:sku;not null;uniqueIndex"`
	Stock         int              `gorm:"column:stock;not null;default:0"`
	Price         decimal.Decimal  `gorm:"column:price;type:numeric(12,2);not null"`
	InitPrice     *decimal.Decimal `gorm:"column:init_price;type:numeric(12,2)"`
	LowStockAlert int              `gorm:"column:low_stock_alert;not null;default:5"`
	IsActive      bool             `gorm:"column:is_active;not null;default:true"`
	CoverImage    *string          `gorm:"column:cover_image"`
	Variant       *Variant         `gorm:"foreignKey:VariantID"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements schema.Tabler.
func (ProductSKU) TableName() string { return "product_skus" }
