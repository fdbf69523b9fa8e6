// Package policy holds the pure authorization decisions for bookings,
// reviews, providers and services. Nothing in here touches the database;
// callers resolve ownership (in particular the provider owned by the acting
// user) and pass the facts in.
package policy

import (
	"time"

	"github.com/servicehubhq/servicehub/apperr"
	"github.com/servicehubhq/servicehub/models"
)

// Actor is the authenticated user performing an operation.
type Actor struct {
	ID   uint
	Role string
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// BookingRef carries the ownership facts of a booking that decisions need.
type BookingRef struct {
	CustomerID uint
	ProviderID uint
}

// ReviewRef carries the ownership facts of a review.
type ReviewRef struct {
	UserID     uint
	ProviderID uint
}

// Booking fields that must never change after creation, regardless of role.
var bookingImmutable = map[string]bool{
	"id":          true,
	"customer_id": true,
	"service_id":  true,
	"provider_id": true,
	"price":       true,
	"reviewed":    true,
}

var customerBookingFields = map[string]bool{
	"notes":                 true,
	"customer_requirements": true,
	"attachments":           true,
}

var providerBookingFields = map[string]bool{
	"status": true,
	"notes":  true,
}

var authorReviewFields = map[string]bool{
	"rating":  true,
	"comment": true,
	"images":  true,
}

// FilterBookingUpdate decides whether actor may update the booking and
// returns the payload with disallowed fields silently dropped. The
// customer-owner keeps notes, customer requirements and attachments; the
// owning provider (actorProviderID matches the booking) keeps status and
// notes; admins keep everything mutable. Dropped fields are not an error.
func FilterBookingUpdate(actor Actor, b BookingRef, actorProviderID uint, payload map[string]any) (map[string]any, error) {
	filtered := make(map[string]any, len(payload))

	switch {
	case actor.IsAdmin():
		for k, v := range payload {
			if !bookingImmutable[k] {
				filtered[k] = v
			}
		}
	case actor.ID == b.CustomerID:
		for k, v := range payload {
			if customerBookingFields[k] {
				filtered[k] = v
			}
		}
	case actorProviderID != 0 && actorProviderID == b.ProviderID:
		for k, v := range payload {
			if providerBookingFields[k] {
				filtered[k] = v
			}
		}
	default:
		return nil, apperr.Forbidden("not authorized to update this booking")
	}

	return filtered, nil
}

// CanReadBooking permits the customer-owner, the owning provider, and admins.
func CanReadBooking(actor Actor, b BookingRef, actorProviderID uint) bool {
	if actor.IsAdmin() || actor.ID == b.CustomerID {
		return true
	}
	return actorProviderID != 0 && actorProviderID == b.ProviderID
}

// CanDeleteBooking permits the customer-owner and admins only.
func CanDeleteBooking(actor Actor, b BookingRef) bool {
	return actor.IsAdmin() || actor.ID == b.CustomerID
}

// FilterReviewUpdate decides whether actor may update the review and returns
// the fields to persist. The authoring user edits content fields with the
// same silent-drop behavior bookings have. The owning provider may only
// reply: the whole payload is replaced with the reply, and a payload without
// one is rejected as a validation error rather than filtered. The two
// behaviors are deliberately asymmetric.
func FilterReviewUpdate(actor Actor, r ReviewRef, actorProviderID uint, payload map[string]any, now time.Time) (map[string]any, error) {
	if actor.ID == r.UserID || actor.IsAdmin() {
		filtered := make(map[string]any, len(payload))
		for k, v := range payload {
			if authorReviewFields[k] {
				filtered[k] = v
			}
		}
		return filtered, nil
	}

	if actorProviderID != 0 && actorProviderID == r.ProviderID {
		reply, ok := payload["reply"].(string)
		if !ok || reply == "" {
			return nil, apperr.Validation("reply", "providers can only add a reply to reviews")
		}
		return map[string]any{
			"reply_content": reply,
			"reply_date":    now,
		}, nil
	}

	return nil, apperr.Forbidden("not authorized to update this review")
}

// CanDeleteReview permits the authoring user and admins only.
func CanDeleteReview(actor Actor, r ReviewRef) bool {
	return actor.IsAdmin() || actor.ID == r.UserID
}

// CanManageProvider permits the owning user and admins.
func CanManageProvider(actor Actor, ownerUserID uint) bool {
	return actor.IsAdmin() || actor.ID == ownerUserID
}

// CanManageService permits the owning provider and admins.
func CanManageService(actor Actor, serviceProviderID, actorProviderID uint) bool {
	if actor.IsAdmin() {
		return true
	}
	return actorProviderID != 0 && actorProviderID == serviceProviderID
}

// CanManageCategories restricts category writes to admins.
func CanManageCategories(actor Actor) bool {
	return actor.IsAdmin()
}

// CanManageUsers restricts user administration to admins.
func CanManageUsers(actor Actor) bool {
	return actor.IsAdmin()
}
