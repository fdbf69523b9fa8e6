package policy

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servicehubhq/servicehub/apperr"
	"github.com/servicehubhq/servicehub/models"
)

func TestFilterBookingUpdateCustomerOwner(t *testing.T) {
	customer := Actor{ID: 7, Role: models.RoleCustomer}
	ref := BookingRef{CustomerID: 7, ProviderID: 3}

	payload := map[string]any{
		"status":                "confirmed",
		"notes":                 "please ring the bell",
		"customer_requirements": "need a ladder",
		"attachments":           []string{"a.pdf"},
		"price":                 1.0,
	}

	filtered, err := FilterBookingUpdate(customer, ref, 0, payload)
	require.NoError(t, err)

	// status and price are dropped silently, never rejected
	assert.Equal(t, map[string]any{
		"notes":                 "please ring the bell",
		"customer_requirements": "need a ladder",
		"attachments":           []string{"a.pdf"},
	}, filtered)
}

func TestFilterBookingUpdateOwningProvider(t *testing.T) {
	provider := Actor{ID: 9, Role: models.RoleProvider}
	ref := BookingRef{CustomerID: 7, ProviderID: 3}

	payload := map[string]any{
		"status":                "confirmed",
		"notes":                 "see you then",
		"customer_requirements": "sneaky edit",
	}

	filtered, err := FilterBookingUpdate(provider, ref, 3, payload)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"status": "confirmed",
		"notes":  "see you then",
	}, filtered)
}

func TestFilterBookingUpdateStrangerDenied(t *testing.T) {
	stranger := Actor{ID: 99, Role: models.RoleCustomer}
	ref := BookingRef{CustomerID: 7, ProviderID: 3}

	_, err := FilterBookingUpdate(stranger, ref, 0, map[string]any{"notes": "x"})
	var forbidden *apperr.ForbiddenError
	assert.True(t, errors.As(err, &forbidden))
}

func TestFilterBookingUpdateOtherProviderDenied(t *testing.T) {
	provider := Actor{ID: 9, Role: models.RoleProvider}
	ref := BookingRef{CustomerID: 7, ProviderID: 3}

	_, err := FilterBookingUpdate(provider, ref, 5, map[string]any{"status": "confirmed"})
	var forbidden *apperr.ForbiddenError
	assert.True(t, errors.As(err, &forbidden))
}

func TestFilterBookingUpdateAdminKeepsMutableFields(t *testing.T) {
	admin := Actor{ID: 1, Role: models.RoleAdmin}
	ref := BookingRef{CustomerID: 7, ProviderID: 3}

	filtered, err := FilterBookingUpdate(admin, ref, 0, map[string]any{
		"status":      "cancelled",
		"notes":       "refund issued",
		"customer_id": 42,
		"price":       0.0,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"status": "cancelled",
		"notes":  "refund issued",
	}, filtered)
}

func TestBookingReadAndDeleteRules(t *testing.T) {
	ref := BookingRef{CustomerID: 7, ProviderID: 3}

	owner := Actor{ID: 7, Role: models.RoleCustomer}
	provider := Actor{ID: 9, Role: models.RoleProvider}
	admin := Actor{ID: 1, Role: models.RoleAdmin}
	stranger := Actor{ID: 50, Role: models.RoleCustomer}

	assert.True(t, CanReadBooking(owner, ref, 0))
	assert.True(t, CanReadBooking(provider, ref, 3))
	assert.True(t, CanReadBooking(admin, ref, 0))
	assert.False(t, CanReadBooking(provider, ref, 5))
	assert.False(t, CanReadBooking(stranger, ref, 0))

	// the owning provider may read but not delete
	assert.True(t, CanDeleteBooking(owner, ref))
	assert.True(t, CanDeleteBooking(admin, ref))
	assert.False(t, CanDeleteBooking(provider, ref))
}

func TestFilterReviewUpdateAuthorSilentDrop(t *testing.T) {
	author := Actor{ID: 7, Role: models.RoleCustomer}
	ref := ReviewRef{UserID: 7, ProviderID: 3}

	filtered, err := FilterReviewUpdate(author, ref, 0, map[string]any{
		"rating":      4,
		"comment":     "updated",
		"images":      []string{"x.jpg"},
		"provider_id": 99,
		"reply":       "nope",
	}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"rating":  4,
		"comment": "updated",
		"images":  []string{"x.jpg"},
	}, filtered)
}

func TestFilterReviewUpdateProviderReplyReplacesPayload(t *testing.T) {
	provider := Actor{ID: 9, Role: models.RoleProvider}
	ref := ReviewRef{UserID: 7, ProviderID: 3}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	filtered, err := FilterReviewUpdate(provider, ref, 3, map[string]any{
		"reply":   "thanks for the feedback",
		"rating":  1,
		"comment": "overwritten",
	}, now)
	require.NoError(t, err)

	// whole payload replaced; only the reply survives
	assert.Equal(t, map[string]any{
		"reply_content": "thanks for the feedback",
		"reply_date":    now,
	}, filtered)
}

func TestFilterReviewUpdateProviderWithoutReplyRejected(t *testing.T) {
	provider := Actor{ID: 9, Role: models.RoleProvider}
	ref := ReviewRef{UserID: 7, ProviderID: 3}

	// unlike booking filtering this is a hard failure, not a silent drop
	_, err := FilterReviewUpdate(provider, ref, 3, map[string]any{"rating": 1}, time.Now())
	var validation *apperr.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "reply", validation.Field)
}

func TestFilterReviewUpdateStrangerDenied(t *testing.T) {
	stranger := Actor{ID: 42, Role: models.RoleCustomer}
	ref := ReviewRef{UserID: 7, ProviderID: 3}

	_, err := FilterReviewUpdate(stranger, ref, 0, map[string]any{"comment": "x"}, time.Now())
	var forbidden *apperr.ForbiddenError
	assert.True(t, errors.As(err, &forbidden))
}

func TestCanDeleteReview(t *testing.T) {
	ref := ReviewRef{UserID: 7, ProviderID: 3}

	assert.True(t, CanDeleteReview(Actor{ID: 7, Role: models.RoleCustomer}, ref))
	assert.True(t, CanDeleteReview(Actor{ID: 1, Role: models.RoleAdmin}, ref))
	assert.False(t, CanDeleteReview(Actor{ID: 9, Role: models.RoleProvider}, ref))
}

func TestManagementRules(t *testing.T) {
	admin := Actor{ID: 1, Role: models.RoleAdmin}
	owner := Actor{ID: 9, Role: models.RoleProvider}

	assert.True(t, CanManageProvider(owner, 9))
	assert.True(t, CanManageProvider(admin, 9))
	assert.False(t, CanManageProvider(Actor{ID: 2, Role: models.RoleCustomer}, 9))

	assert.True(t, CanManageService(owner, 3, 3))
	assert.True(t, CanManageService(admin, 3, 0))
	assert.False(t, CanManageService(owner, 3, 5))

	assert.True(t, CanManageCategories(admin))
	assert.False(t, CanManageCategories(owner))
}
