package models

import (
	"time"

	"github.com/google/uuid"
)

// Variant groups the SKUs of a product (size, color, and so on).
type Variant struct {
	ID        uuid.UUID    `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID    `gorm:"column:product_id;type:uuid;not null;index"`
	Name      string       `gorm:"column:name;not null"`
	Product   *Product     `gorm:"foreignKey:ProductID"`
	SKUs      []ProductSKU `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time    `gorm:"column:created_at;autoCreateTime"`
}

// TableName implements schema.Tabler.
func (Variant) TableName() string { return "variants" }
