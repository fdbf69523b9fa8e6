package models

import (
	"gorm.io/gorm"
)

// Provider is the business profile a user registers to offer services.
// At most one provider exists per user; creating one flips the owning
// user's role to "provider" and deleting it flips the role back.
type Provider struct {
	gorm.Model
	UserID        uint       `json:"user_id" gorm:"uniqueIndex"`
	User          User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	BusinessName  string     `json:"business_name"`
	BusinessType  string     `json:"business_type"`
	Description   string     `json:"description"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	ZipCode       string     `json:"zip_code"`
	Country       string     `json:"country"`
	ContactEmail  string     `json:"contact_email"`
	ContactPhone  string     `json:"contact_phone"`
	Website       string     `json:"website"`
	Services      []Service  `json:"services,omitempty" gorm:"foreignKey:ProviderID"`
	Categories    []Category `json:"categories,omitempty" gorm:"many2many:provider_categories;"`
	AverageRating float64    `json:"average_rating" gorm:"type:decimal(2,1);default:0"`
	ReviewCount   int64      `json:"review_count" gorm:"default:0"`
	Verified      bool       `json:"verified" gorm:"default:false"`
}
