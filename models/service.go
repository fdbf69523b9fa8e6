package models

import (
	"gorm.io/gorm"
)

const (
	PriceFixed  = "fixed"
	PriceHourly = "hourly"
	PriceDaily  = "daily"
	PriceCustom = "custom"
)

type Service struct {
	gorm.Model
	ProviderID    uint     `json:"provider_id"`
	Provider      Provider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	CategoryID    uint     `json:"category_id"`
	Category      Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	PriceType     string   `json:"price_type" gorm:"default:fixed"`
	Images        []string `json:"images" gorm:"serializer:json"`
	Features      []string `json:"features" gorm:"serializer:json"`
	IsRemote      bool     `json:"is_remote" gorm:"default:false"`
	AverageRating float64  `json:"average_rating" gorm:"type:decimal(2,1);default:0"`
	ReviewCount   int64    `json:"review_count" gorm:"default:0"`
	Active        bool     `json:"active" gorm:"default:true"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.PriceType == "" {
		s.PriceType = PriceFixed
	}
	return nil
}
