package models

import (
	"time"

	"gorm.io/gorm"
)

// Reply is a provider's answer to a review. It is the only thing a provider
// may write on a review, and setting it replaces any previous reply.
type Reply struct {
	Content string     `json:"content"`
	Date    *time.Time `json:"date,omitempty"`
}

type Review struct {
	gorm.Model
	UserID     uint     `json:"user_id" gorm:"uniqueIndex:idx_reviews_user_service"`
	User       User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ServiceID  uint     `json:"service_id" gorm:"uniqueIndex:idx_reviews_user_service"`
	Service    Service  `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	ProviderID uint     `json:"provider_id"`
	Provider   Provider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	BookingID  *uint    `json:"booking_id,omitempty"`
	Rating     int      `json:"rating"`
	Comment    string   `json:"comment"`
	Images     []string `json:"images" gorm:"serializer:json"`
	Reply      Reply    `json:"reply" gorm:"embedded;embeddedPrefix:reply_"`
}
