package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is the sellable catalog entry. Category attribution in reports uses
// the first category of the association, in join order.
type Product struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name       string     `gorm:"column:name;not null"`
	CoverImage *string    `gorm:"column:cover_image"`
	IsActive   bool       `gorm:"column:is_active;not null;default:true"`
	Categories []Category `gorm:"many2many:product_categories"`
	Variants   []Variant  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements schema.Tabler.
func (Product) TableName() string { return "products" }
