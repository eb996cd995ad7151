package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a back-office operator account. Only the activity fields matter to
// the analytics core (active-user card); credentials live elsewhere.
type User struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email       string     `gorm:"column:email;not null;uniqueIndex"`
	DisplayName string     `gorm:"column:display_name;not null"`
	IsActive    bool       `gorm:"column:is_active;not null;default:true"`
	LastLoginAt *time.Time `gorm:"column:last_login_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements schema.Tabler.
func (User) TableName() string { return "users" }
