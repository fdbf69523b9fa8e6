package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/servicehubhq/servicehub/apperr"
	"github.com/servicehubhq/servicehub/models"
	"github.com/servicehubhq/servicehub/policy"
)

func newServiceService() (*ServiceService, *MockServiceStore, *MockProviderStore) {
	servicesStore := new(MockServiceStore)
	providers := new(MockProviderStore)
	return &ServiceService{Services: servicesStore, Providers: providers}, servicesStore, providers
}

func TestCreateServiceResolvesProviderFromActor(t *testing.T) {
	svc, servicesStore, providers := newServiceService()

	providers.On("GetByUserID", uint(9)).Return(&models.Provider{
		Model:  gorm.Model{ID: 3},
		UserID: 9,
	}, nil)
	servicesStore.On("Create", mock.AnythingOfType("*models.Service")).Return(nil)

	created, err := svc.Create(9, CreateServiceInput{
		CategoryID:  1,
		Title:       "Deep clean",
		Description: "whole house",
		Price:       120,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), created.ProviderID)
	assert.True(t, created.Active)
}

func TestCreateServiceWithoutProviderProfile(t *testing.T) {
	svc, _, providers := newServiceService()
	providers.On("GetByUserID", uint(9)).Return(nil, nil)

	_, err := svc.Create(9, CreateServiceInput{CategoryID: 1, Title: "x", Description: "y", Price: 1})
	var notFound *apperr.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestUpdateServiceOtherProvider(t *testing.T) {
	svc, servicesStore, providers := newServiceService()

	servicesStore.On("GetByID", uint(2)).Return(&models.Service{
		Model:      gorm.Model{ID: 2},
		ProviderID: 3,
	}, nil)
	providers.On("GetByUserID", uint(20)).Return(&models.Provider{
		Model:  gorm.Model{ID: 8},
		UserID: 20,
	}, nil)

	_, err := svc.Update(policy.Actor{ID: 20, Role: models.RoleProvider}, 2, map[string]any{"price": 1})
	var forbidden *apperr.ForbiddenError
	require.True(t, errors.As(err, &forbidden))
	servicesStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateServiceStripsDerivedFields(t *testing.T) {
	svc, servicesStore, providers := newServiceService()
	listing := &models.Service{Model: gorm.Model{ID: 2}, ProviderID: 3}

	servicesStore.On("GetByID", uint(2)).Return(listing, nil)
	providers.On("GetByUserID", uint(9)).Return(&models.Provider{
		Model:  gorm.Model{ID: 3},
		UserID: 9,
	}, nil)
	servicesStore.On("Update", uint(2), map[string]any{"price": 150.0}).Return(nil)

	owner := policy.Actor{ID: 9, Role: models.RoleProvider}
	_, err := svc.Update(owner, 2, map[string]any{
		"price":          150.0,
		"average_rating": 5.0,
		"provider_id":    99,
	})
	require.NoError(t, err)
	servicesStore.AssertCalled(t, "Update", uint(2), map[string]any{"price": 150.0})
}

func TestCategoryWritesAdminOnly(t *testing.T) {
	categories := new(MockCategoryStore)
	svc := &CategoryService{Categories: categories}

	_, err := svc.Create(policy.Actor{ID: 9, Role: models.RoleProvider}, CreateCategoryInput{Name: "Plumbing", Description: "pipes"})
	var forbidden *apperr.ForbiddenError
	require.True(t, errors.As(err, &forbidden))

	categories.On("Create", mock.AnythingOfType("*models.Category")).Return(nil)
	_, err = svc.Create(policy.Actor{ID: 1, Role: models.RoleAdmin}, CreateCategoryInput{Name: "Plumbing", Description: "pipes"})
	require.NoError(t, err)
}

func TestCategoryUpdateGoesThroughSavePath(t *testing.T) {
	categories := new(MockCategoryStore)
	svc := &CategoryService{Categories: categories}

	categories.On("GetByID", uint(4)).Return(&models.Category{
		Model: gorm.Model{ID: 4},
		Name:  "Home Cleaning",
		Slug:  "home-cleaning",
	}, nil)
	categories.On("Save", mock.AnythingOfType("*models.Category")).Return(nil)

	updated, err := svc.Update(policy.Actor{ID: 1, Role: models.RoleAdmin}, 4, CreateCategoryInput{
		Name:        "Office Cleaning",
		Description: "commercial",
	})
	require.NoError(t, err)
	assert.Equal(t, "Office Cleaning", updated.Name)
	categories.AssertCalled(t, "Save", mock.AnythingOfType("*models.Category"))
}
