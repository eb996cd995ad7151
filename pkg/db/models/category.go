package models

import (
	"time"

	"github.com/google/uuid"
)

// Category labels products; reports only consider active categories.
type Category struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null;uniqueIndex"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName implements schema.Tabler.
func (Category) TableName() string { return "categories" }
