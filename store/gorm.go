package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/servicehubhq/servicehub/apperr"
	"github.com/servicehubhq/servicehub/models"
)

// Stores bundles the gorm-backed implementations of every entity store.
type Stores struct {
	Users      UserStore
	Providers  ProviderStore
	Services   ServiceStore
	Bookings   BookingStore
	Reviews    ReviewStore
	Categories CategoryStore
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		Users:      &gormUsers{db: db},
		Providers:  &gormProviders{db: db},
		Services:   &gormServices{db: db},
		Bookings:   &gormBookings{db: db},
		Reviews:    &gormReviews{db: db},
		Categories: &gormCategories{db: db},
	}
}

func notFound(err error, resource string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(resource, id)
	}
	return err
}

type gormUsers struct{ db *gorm.DB }

func (s *gormUsers) Create(u *models.User) error {
	return s.db.Create(u).Error
}

func (s *gormUsers) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns (nil, nil) when no user exists for the email.
func (s *gormUsers) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := s.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *gormUsers) Update(id uint, fields map[string]any) error {
	return s.db.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

func (s *gormUsers) Delete(id uint) error {
	return s.db.Delete(&models.User{}, id).Error
}

func (s *gormUsers) SetRole(id uint, role string) error {
	return s.db.Model(&models.User{}).Where("id = ?", id).Update("role", role).Error
}

type gormProviders struct{ db *gorm.DB }

func (s *gormProviders) Create(p *models.Provider) error {
	return s.db.Create(p).Error
}

func (s *gormProviders) GetByID(id uint) (*models.Provider, error) {
	var p models.Provider
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, notFound(err, "provider", id)
	}
	return &p, nil
}

// GetByUserID returns (nil, nil) when the user owns no provider.
func (s *gormProviders) GetByUserID(userID uint) (*models.Provider, error) {
	var p models.Provider
	err := s.db.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *gormProviders) Update(id uint, fields map[string]any) error {
	return s.db.Model(&models.Provider{}).Where("id = ?", id).Updates(fields).Error
}

func (s *gormProviders) Delete(id uint) error {
	return s.db.Delete(&models.Provider{}, id).Error
}

func (s *gormProviders) SetRatingStats(id uint, average float64, count int64) error {
	return s.db.Model(&models.Provider{}).Where("id = ?", id).Updates(map[string]any{
		"average_rating": average,
		"review_count":   count,
	}).Error
}

type gormServices struct{ db *gorm.DB }

func (s *gormServices) Create(svc *models.Service) error {
	return s.db.Create(svc).Error
}

func (s *gormServices) GetByID(id uint) (*models.Service, error) {
	var svc models.Service
	if err := s.db.First(&svc, id).Error; err != nil {
		return nil, notFound(err, "service", id)
	}
	return &svc, nil
}

func (s *gormServices) Update(id uint, fields map[string]any) error {
	return s.db.Model(&models.Service{}).Where("id = ?", id).Updates(fields).Error
}

func (s *gormServices) Delete(id uint) error {
	return s.db.Delete(&models.Service{}, id).Error
}

func (s *gormServices) SetRatingStats(id uint, average float64, count int64) error {
	return s.db.Model(&models.Service{}).Where("id = ?", id).Updates(map[string]any{
		"average_rating": average,
		"review_count":   count,
	}).Error
}

type gormBookings struct{ db *gorm.DB }

func (s *gormBookings) Create(b *models.Booking) error {
	return s.db.Create(b).Error
}

func (s *gormBookings) GetByID(id uint) (*models.Booking, error) {
	var b models.Booking
	if err := s.db.First(&b, id).Error; err != nil {
		return nil, notFound(err, "booking", id)
	}
	return &b, nil
}

func (s *gormBookings) Update(id uint, fields map[string]any) error {
	return s.db.Model(&models.Booking{}).Where("id = ?", id).Updates(fields).Error
}

func (s *gormBookings) Delete(id uint) error {
	return s.db.Delete(&models.Booking{}, id).Error
}

func (s *gormBookings) SetReviewed(id uint, reviewed bool) error {
	return s.db.Model(&models.Booking{}).Where("id = ?", id).Update("reviewed", reviewed).Error
}

type gormReviews struct{ db *gorm.DB }

func (s *gormReviews) Create(r *models.Review) error {
	return s.db.Create(r).Error
}

func (s *gormReviews) GetByID(id uint) (*models.Review, error) {
	var r models.Review
	if err := s.db.First(&r, id).Error; err != nil {
		return nil, notFound(err, "review", id)
	}
	return &r, nil
}

// GetByUserAndService returns (nil, nil) when the user has not reviewed the
// service.
func (s *gormReviews) GetByUserAndService(userID, serviceID uint) (*models.Review, error) {
	var r models.Review
	err := s.db.Where("user_id = ? AND service_id = ?", userID, serviceID).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *gormReviews) Update(id uint, fields map[string]any) error {
	return s.db.Model(&models.Review{}).Where("id = ?", id).Updates(fields).Error
}

func (s *gormReviews) Delete(id uint) error {
	return s.db.Delete(&models.Review{}, id).Error
}

func (s *gormReviews) AggregateByService(serviceID uint) (RatingAggregate, error) {
	var agg RatingAggregate
	err := s.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as count").
		Where("service_id = ?", serviceID).
		Scan(&agg).Error
	return agg, err
}

func (s *gormReviews) AggregateByProvider(providerID uint) (RatingAggregate, error) {
	var agg RatingAggregate
	err := s.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as count").
		Where("provider_id = ?", providerID).
		Scan(&agg).Error
	return agg, err
}

type gormCategories struct{ db *gorm.DB }

func (s *gormCategories) Create(c *models.Category) error {
	return s.db.Create(c).Error
}

func (s *gormCategories) GetByID(id uint) (*models.Category, error) {
	var c models.Category
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, notFound(err, "category", id)
	}
	return &c, nil
}

// Save goes through gorm's save path so the slug hook runs.
func (s *gormCategories) Save(c *models.Category) error {
	return s.db.Save(c).Error
}

func (s *gormCategories) Delete(id uint) error {
	return s.db.Delete(&models.Category{}, id).Error
}
