// Package store is the persistence contract the service layer works
// against. The gorm implementation lives in gorm.go; tests substitute mocks.
package store

import "github.com/servicehubhq/servicehub/models"

// RatingAggregate is the result of averaging reviews for a service or a
// provider.
type RatingAggregate struct {
	Average float64
	Count   int64
}

type UserStore interface {
	Create(u *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(id uint, fields map[string]any) error
	Delete(id uint) error
	SetRole(id uint, role string) error
}

type ProviderStore interface {
	Create(p *models.Provider) error
	GetByID(id uint) (*models.Provider, error)
	GetByUserID(userID uint) (*models.Provider, error)
	Update(id uint, fields map[string]any) error
	Delete(id uint) error
	SetRatingStats(id uint, average float64, count int64) error
}

type ServiceStore interface {
	Create(s *models.Service) error
	GetByID(id uint) (*models.Service, error)
	Update(id uint, fields map[string]any) error
	Delete(id uint) error
	SetRatingStats(id uint, average float64, count int64) error
}

type BookingStore interface {
	Create(b *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	Update(id uint, fields map[string]any) error
	Delete(id uint) error
	SetReviewed(id uint, reviewed bool) error
}

type ReviewStore interface {
	Create(r *models.Review) error
	GetByID(id uint) (*models.Review, error)
	GetByUserAndService(userID, serviceID uint) (*models.Review, error)
	Update(id uint, fields map[string]any) error
	Delete(id uint) error
	AggregateByService(serviceID uint) (RatingAggregate, error)
	AggregateByProvider(providerID uint) (RatingAggregate, error)
}

type CategoryStore interface {
	Create(c *models.Category) error
	GetByID(id uint) (*models.Category, error)
	Save(c *models.Category) error
	Delete(id uint) error
}
