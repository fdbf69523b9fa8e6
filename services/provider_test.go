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

func newProviderService() (*ProviderService, *MockProviderStore, *MockUserStore) {
	providers := new(MockProviderStore)
	users := new(MockUserStore)
	return &ProviderService{Providers: providers, Users: users}, providers, users
}

func TestCreateProviderPromotesUser(t *testing.T) {
	svc, providers, users := newProviderService()

	providers.On("GetByUserID", uint(7)).Return(nil, nil)
	providers.On("Create", mock.AnythingOfType("*models.Provider")).Return(nil)
	users.On("SetRole", uint(7), models.RoleProvider).Return(nil)

	provider, err := svc.Create(7, CreateProviderInput{
		BusinessName: "Sparkle Cleaning",
		BusinessType: "cleaning",
		Description:  "homes and offices",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), provider.UserID)
	users.AssertCalled(t, "SetRole", uint(7), models.RoleProvider)
}

func TestCreateProviderTwice(t *testing.T) {
	svc, providers, users := newProviderService()

	providers.On("GetByUserID", uint(7)).Return(&models.Provider{
		Model:  gorm.Model{ID: 3},
		UserID: 7,
	}, nil)

	_, err := svc.Create(7, CreateProviderInput{BusinessName: "x", BusinessType: "y", Description: "z"})
	var conflict *apperr.ConflictError
	require.True(t, errors.As(err, &conflict))
	users.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything)
}

func TestUpdateProviderStripsDerivedFields(t *testing.T) {
	svc, providers, _ := newProviderService()
	provider := &models.Provider{Model: gorm.Model{ID: 3}, UserID: 7}

	providers.On("GetByID", uint(3)).Return(provider, nil)
	providers.On("Update", uint(3), map[string]any{"business_name": "Renamed"}).Return(nil)

	owner := policy.Actor{ID: 7, Role: models.RoleProvider}
	_, err := svc.Update(owner, 3, map[string]any{
		"business_name":  "Renamed",
		"average_rating": 5.0,
		"review_count":   9000,
		"user_id":        1,
	})
	require.NoError(t, err)
	providers.AssertCalled(t, "Update", uint(3), map[string]any{"business_name": "Renamed"})
}

func TestUpdateProviderNotOwner(t *testing.T) {
	svc, providers, _ := newProviderService()
	providers.On("GetByID", uint(3)).Return(&models.Provider{Model: gorm.Model{ID: 3}, UserID: 7}, nil)

	_, err := svc.Update(policy.Actor{ID: 50, Role: models.RoleCustomer}, 3, map[string]any{"city": "Austin"})
	var forbidden *apperr.ForbiddenError
	assert.True(t, errors.As(err, &forbidden))
}

func TestDeleteProviderDemotesUser(t *testing.T) {
	svc, providers, users := newProviderService()

	providers.On("GetByID", uint(3)).Return(&models.Provider{Model: gorm.Model{ID: 3}, UserID: 7}, nil)
	providers.On("Delete", uint(3)).Return(nil)
	users.On("SetRole", uint(7), models.RoleCustomer).Return(nil)

	require.NoError(t, svc.Delete(policy.Actor{ID: 7, Role: models.RoleProvider}, 3))
	users.AssertCalled(t, "SetRole", uint(7), models.RoleCustomer)
}
