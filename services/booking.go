package services

import (
	"time"

	"github.com/servicehubhq/servicehub/apperr"
	"github.com/servicehubhq/servicehub/models"
	"github.com/servicehubhq/servicehub/policy"
	"github.com/servicehubhq/servicehub/store"
)

// BookingService implements the booking lifecycle: creation with provider
// denormalization, role-filtered updates with status transition checks, and
// owner-scoped deletes.
type BookingService struct {
	Bookings  store.BookingStore
	Services  store.ServiceStore
	Providers store.ProviderStore
}

func NewBookingService(s *store.Stores) *BookingService {
	return &BookingService{Bookings: s.Bookings, Services: s.Services, Providers: s.Providers}
}

type CreateBookingInput struct {
	ServiceID            uint            `json:"service_id" validate:"required"`
	Date                 time.Time       `json:"date" validate:"required"`
	TimeSlot             models.TimeSlot `json:"time_slot" validate:"required"`
	PaymentMethod        string          `json:"payment_method" validate:"omitempty,oneof=cash credit_card digital_currency other"`
	Notes                string          `json:"notes"`
	CustomerRequirements string          `json:"customer_requirements"`
	Attachments          []string        `json:"attachments"`
}

// Create books a service for the customer. The provider and price are
// copied from the service at this moment and never change afterwards.
func (s *BookingService) Create(customerID uint, in CreateBookingInput) (*models.Booking, error) {
	svc, err := s.Services.GetByID(in.ServiceID)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		CustomerID:           customerID,
		ServiceID:            svc.ID,
		ProviderID:           svc.ProviderID,
		Date:                 in.Date,
		TimeSlot:             in.TimeSlot,
		Status:               models.StatusPending,
		Price:                svc.Price,
		PaymentStatus:        models.PaymentPending,
		PaymentMethod:        in.PaymentMethod,
		Notes:                in.Notes,
		CustomerRequirements: in.CustomerRequirements,
		Attachments:          in.Attachments,
	}
	if err := s.Bookings.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Get enforces the read rule: customer-owner, owning provider, or admin.
func (s *BookingService) Get(actor policy.Actor, id uint) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	actorProviderID, err := s.actorProviderID(actor)
	if err != nil {
		return nil, err
	}
	ref := policy.BookingRef{CustomerID: booking.CustomerID, ProviderID: booking.ProviderID}
	if !policy.CanReadBooking(actor, ref, actorProviderID) {
		return nil, apperr.Forbidden("not authorized to access this booking")
	}
	return booking, nil
}

// Update applies the role-scoped field whitelist, then validates any status
// change against the lifecycle before persisting. Disallowed fields are
// dropped, not rejected. Payment status is never derived from status.
func (s *BookingService) Update(actor policy.Actor, id uint, payload map[string]any) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	actorProviderID, err := s.actorProviderID(actor)
	if err != nil {
		return nil, err
	}

	ref := policy.BookingRef{CustomerID: booking.CustomerID, ProviderID: booking.ProviderID}
	filtered, err := policy.FilterBookingUpdate(actor, ref, actorProviderID, payload)
	if err != nil {
		return nil, err
	}

	if raw, ok := filtered["status"]; ok {
		status, ok := raw.(string)
		if !ok {
			return nil, apperr.Validation("status", "status must be a string")
		}
		if err := models.TransitionStatus(booking.Status, models.BookingStatus(status)); err != nil {
			return nil, apperr.InvalidState(err.Error())
		}
	}

	if len(filtered) > 0 {
		if err := s.Bookings.Update(id, filtered); err != nil {
			return nil, err
		}
	}
	return s.Bookings.GetByID(id)
}

// Delete is permitted to the customer-owner and admins. Reviews referencing
// the booking are left in place; a dangling booking reference is tolerated.
func (s *BookingService) Delete(actor policy.Actor, id uint) error {
	booking, err := s.Bookings.GetByID(id)
	if err != nil {
		return err
	}
	ref := policy.BookingRef{CustomerID: booking.CustomerID, ProviderID: booking.ProviderID}
	if !policy.CanDeleteBooking(actor, ref) {
		return apperr.Forbidden("not authorized to delete this booking")
	}
	return s.Bookings.Delete(id)
}

// actorProviderID resolves the provider owned by the actor, zero when the
// actor owns none.
func (s *BookingService) actorProviderID(actor policy.Actor) (uint, error) {
	if actor.Role != models.RoleProvider {
		return 0, nil
	}
	p, err := s.Providers.GetByUserID(actor.ID)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, nil
	}
	return p.ID, nil
}
