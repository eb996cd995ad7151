package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luisrmz-dev/vendoria-backend/pkg/enums"
)

// Payment records an amount collected (or awaited) against an order.
type Payment struct {
	ID        uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID   uuid.UUID           `gorm:"column:order_id;type:uuid;not null;index"`
	Amount    decimal.Decimal     `gorm:"column:amount;type:numeric(12,2);not null"`
	Status    enums.PaymentStatus `gorm:"column:status;type:text;not null;default:'PENDING'"`
	Method    string              `gorm:"column:method;not null;default:'cash'"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`
}

// TableName implements schema.Tabler.
func (Payment) TableName() string { return "payments" }
