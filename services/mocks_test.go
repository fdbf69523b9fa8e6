package services

import (
	"github.com/stretchr/testify/mock"

	"github.com/servicehubhq/servicehub/models"
	"github.com/servicehubhq/servicehub/store"
)

// MockUserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(u *models.User) error {
	args := m.Called(u)
	return args.Error(0)
}
func (m *MockUserStore) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserStore) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserStore) Update(id uint, fields map[string]any) error {
	args := m.Called(id, fields)
	return args.Error(0)
}
func (m *MockUserStore) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockUserStore) SetRole(id uint, role string) error {
	args := m.Called(id, role)
	return args.Error(0)
}

// MockProviderStore
type MockProviderStore struct {
	mock.Mock
}

func (m *MockProviderStore) Create(p *models.Provider) error {
	args := m.Called(p)
	return args.Error(0)
}
func (m *MockProviderStore) GetByID(id uint) (*models.Provider, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Provider), args.Error(1)
}
func (m *MockProviderStore) GetByUserID(userID uint) (*models.Provider, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Provider), args.Error(1)
}
func (m *MockProviderStore) Update(id uint, fields map[string]any) error {
	args := m.Called(id, fields)
	return args.Error(0)
}
func (m *MockProviderStore) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockProviderStore) SetRatingStats(id uint, average float64, count int64) error {
	args := m.Called(id, average, count)
	return args.Error(0)
}

// MockServiceStore
type MockServiceStore struct {
	mock.Mock
}

func (m *MockServiceStore) Create(s *models.Service) error {
	args := m.Called(s)
	return args.Error(0)
}
func (m *MockServiceStore) GetByID(id uint) (*models.Service, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}
func (m *MockServiceStore) Update(id uint, fields map[string]any) error {
	args := m.Called(id, fields)
	return args.Error(0)
}
func (m *MockServiceStore) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockServiceStore) SetRatingStats(id uint, average float64, count int64) error {
	args := m.Called(id, average, count)
	return args.Error(0)
}

// MockBookingStore
type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) Create(b *models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}
func (m *MockBookingStore) GetByID(id uint) (*models.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
func (m *MockBookingStore) Update(id uint, fields map[string]any) error {
	args := m.Called(id, fields)
	return args.Error(0)
}
func (m *MockBookingStore) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockBookingStore) SetReviewed(id uint, reviewed bool) error {
	args := m.Called(id, reviewed)
	return args.Error(0)
}

// MockReviewStore
type MockReviewStore struct {
	mock.Mock
}

func (m *MockReviewStore) Create(r *models.Review) error {
	args := m.Called(r)
	return args.Error(0)
}
func (m *MockReviewStore) GetByID(id uint) (*models.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}
func (m *MockReviewStore) GetByUserAndService(userID, serviceID uint) (*models.Review, error) {
	args := m.Called(userID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}
func (m *MockReviewStore) Update(id uint, fields map[string]any) error {
	args := m.Called(id, fields)
	return args.Error(0)
}
func (m *MockReviewStore) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockReviewStore) AggregateByService(serviceID uint) (store.RatingAggregate, error) {
	args := m.Called(serviceID)
	return args.Get(0).(store.RatingAggregate), args.Error(1)
}
func (m *MockReviewStore) AggregateByProvider(providerID uint) (store.RatingAggregate, error) {
	args := m.Called(providerID)
	return args.Get(0).(store.RatingAggregate), args.Error(1)
}

// MockCategoryStore
type MockCategoryStore struct {
	mock.Mock
}

func (m *MockCategoryStore) Create(c *models.Category) error {
	args := m.Called(c)
	return args.Error(0)
}
func (m *MockCategoryStore) GetByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}
func (m *MockCategoryStore) Save(c *models.Category) error {
	args := m.Called(c)
	return args.Error(0)
}
func (m *MockCategoryStore) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
