package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

type User struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	Name            string         `json:"name"`
	Email           string         `json:"email" gorm:"unique"`
	Password        string         `json:"password,omitempty"` // bcrypt hash; empty for OAuth-only accounts
	Role            string         `json:"role" gorm:"default:customer"`
	Avatar          string         `json:"avatar"`
	Phone           string         `json:"phone"`
	Address         string         `json:"address"`
	EmailVerified   bool           `json:"email_verified"`
	DigitalCurrency float64        `json:"digital_currency" gorm:"default:0"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	return nil
}
