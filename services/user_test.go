package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/servicehubhq/servicehub/apperr"
	"github.com/servicehubhq/servicehub/models"
	"github.com/servicehubhq/servicehub/policy"
)

func newUserService() (*UserService, *MockUserStore) {
	users := new(MockUserStore)
	return &UserService{Users: users}, users
}

func TestUserManagementAdminOnly(t *testing.T) {
	svc, users := newUserService()
	customer := policy.Actor{ID: 7, Role: models.RoleCustomer}

	_, err := svc.Get(customer, 2)
	var forbidden *apperr.ForbiddenError
	require.True(t, errors.As(err, &forbidden))

	_, err = svc.Update(customer, 2, map[string]any{"name": "x"})
	require.True(t, errors.As(err, &forbidden))

	err = svc.Delete(customer, 2)
	require.True(t, errors.As(err, &forbidden))

	users.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestUpdateUserStripsProtectedFields(t *testing.T) {
	svc, users := newUserService()

	users.On("GetByID", uint(2)).Return(&models.User{ID: 2, Name: "Sam"}, nil)
	users.On("Update", uint(2), map[string]any{"name": "Samantha"}).Return(nil)

	admin := policy.Actor{ID: 1, Role: models.RoleAdmin}
	_, err := svc.Update(admin, 2, map[string]any{
		"name":             "Samantha",
		"password":         "sneaky",
		"role":             models.RoleAdmin,
		"digital_currency": 9000,
	})
	require.NoError(t, err)
	users.AssertCalled(t, "Update", uint(2), map[string]any{"name": "Samantha"})
}

func TestDeleteUserAsAdmin(t *testing.T) {
	svc, users := newUserService()

	users.On("GetByID", uint(2)).Return(&models.User{ID: 2}, nil)
	users.On("Delete", uint(2)).Return(nil)

	require.NoError(t, svc.Delete(policy.Actor{ID: 1, Role: models.RoleAdmin}, 2))
	users.AssertCalled(t, "Delete", uint(2))
}

func TestChangePassword(t *testing.T) {
	svc, users := newUserService()

	hash, err := bcrypt.GenerateFromPassword([]byte("old-secret"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetByID", uint(7)).Return(&models.User{ID: 7, Password: string(hash)}, nil)
	users.On("Update", uint(7), mock.MatchedBy(func(fields map[string]any) bool {
		stored, ok := fields["password"].(string)
		return ok && bcrypt.CompareHashAndPassword([]byte(stored), []byte("new-secret")) == nil
	})).Return(nil)

	require.NoError(t, svc.ChangePassword(7, "old-secret", "new-secret"))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc, users := newUserService()

	hash, err := bcrypt.GenerateFromPassword([]byte("old-secret"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetByID", uint(7)).Return(&models.User{ID: 7, Password: string(hash)}, nil)

	err = svc.ChangePassword(7, "guess", "new-secret")
	var forbidden *apperr.ForbiddenError
	require.True(t, errors.As(err, &forbidden))
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangePasswordOAuthOnlyAccount(t *testing.T) {
	svc, users := newUserService()
	users.On("GetByID", uint(7)).Return(&models.User{ID: 7, Password: ""}, nil)

	err := svc.ChangePassword(7, "", "new-secret")
	var forbidden *apperr.ForbiddenError
	assert.True(t, errors.As(err, &forbidden))
}

func TestChangePasswordTooShort(t *testing.T) {
	svc, users := newUserService()

	err := svc.ChangePassword(7, "old-secret", "tiny")
	var validation *apperr.ValidationError
	require.True(t, errors.As(err, &validation))
	users.AssertNotCalled(t, "GetByID", mock.Anything)
}
