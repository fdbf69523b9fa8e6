package services

import (
	"log"
	"math"
	"time"

	"github.com/servicehubhq/servicehub/apperr"
	"github.com/servicehubhq/servicehub/models"
	"github.com/servicehubhq/servicehub/policy"
	"github.com/servicehubhq/servicehub/store"
)

// ReviewService implements review creation with the booking-completion gate
// and the one-review-per-user-per-service rule, the owner/provider update
// split, and the rating aggregation side effect.
type ReviewService struct {
	Reviews   store.ReviewStore
	Bookings  store.BookingStore
	Services  store.ServiceStore
	Providers store.ProviderStore

	// Now is the clock used for reply timestamps; tests override it.
	Now func() time.Time
}

func NewReviewService(s *store.Stores) *ReviewService {
	return &ReviewService{
		Reviews:   s.Reviews,
		Bookings:  s.Bookings,
		Services:  s.Services,
		Providers: s.Providers,
		Now:       time.Now,
	}
}

type CreateReviewInput struct {
	ServiceID uint     `json:"service_id" validate:"required"`
	BookingID *uint    `json:"booking_id"`
	Rating    int      `json:"rating" validate:"required,min=1,max=5"`
	Comment   string   `json:"comment" validate:"required"`
	Images    []string `json:"images"`
}

// Create adds a review for a service. When a booking is referenced it must
// belong to the reviewing user and be completed, and it is marked reviewed
// as part of the same operation. The application-level duplicate check is
// advisory; the unique (user_id, service_id) index is the real safety net.
func (s *ReviewService) Create(userID uint, in CreateReviewInput) (*models.Review, error) {
	svc, err := s.Services.GetByID(in.ServiceID)
	if err != nil {
		return nil, err
	}

	if in.BookingID != nil && *in.BookingID > 0 {
		booking, err := s.Bookings.GetByID(*in.BookingID)
		if err != nil {
			return nil, err
		}
		if booking.CustomerID != userID {
			return nil, apperr.Forbidden("not authorized to review this booking")
		}
		if booking.Status != models.StatusCompleted {
			return nil, apperr.InvalidState("cannot review a booking that is not completed")
		}
		if err := s.Bookings.SetReviewed(booking.ID, true); err != nil {
			return nil, err
		}
	}

	existing, err := s.Reviews.GetByUserAndService(userID, svc.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("user already reviewed this service")
	}

	review := &models.Review{
		UserID:     userID,
		ServiceID:  svc.ID,
		ProviderID: svc.ProviderID,
		BookingID:  in.BookingID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		Images:     in.Images,
	}
	if err := s.Reviews.Create(review); err != nil {
		return nil, err
	}

	s.RecalcRatings(svc.ID)
	return review, nil
}

// Update routes to one of two disjoint modes: the author edits content
// fields (silent drop), the owning provider replaces the payload with a
// reply object (reject when absent). See policy.FilterReviewUpdate.
func (s *ReviewService) Update(actor policy.Actor, id uint, payload map[string]any) (*models.Review, error) {
	review, err := s.Reviews.GetByID(id)
	if err != nil {
		return nil, err
	}
	actorProviderID, err := s.actorProviderID(actor)
	if err != nil {
		return nil, err
	}

	ref := policy.ReviewRef{UserID: review.UserID, ProviderID: review.ProviderID}
	filtered, err := policy.FilterReviewUpdate(actor, ref, actorProviderID, payload, s.Now())
	if err != nil {
		return nil, err
	}

	if raw, ok := filtered["rating"]; ok {
		rating, ok := ratingValue(raw)
		if !ok {
			return nil, apperr.Validation("rating", "rating must be an integer between 1 and 5")
		}
		filtered["rating"] = rating
	}

	if len(filtered) > 0 {
		if err := s.Reviews.Update(id, filtered); err != nil {
			return nil, err
		}
	}

	// Aggregates are recomputed on create and delete only; an edited rating
	// leaves them stale until the next review mutation.
	return s.Reviews.GetByID(id)
}

// Delete removes a review (author or admin) and reaggregates ratings for
// the service it pointed at. The removed review is returned so callers can
// invalidate caches keyed by its provider.
func (s *ReviewService) Delete(actor policy.Actor, id uint) (*models.Review, error) {
	review, err := s.Reviews.GetByID(id)
	if err != nil {
		return nil, err
	}
	ref := policy.ReviewRef{UserID: review.UserID, ProviderID: review.ProviderID}
	if !policy.CanDeleteReview(actor, ref) {
		return nil, apperr.Forbidden("not authorized to delete this review")
	}
	if err := s.Reviews.Delete(id); err != nil {
		return nil, err
	}
	s.RecalcRatings(review.ServiceID)
	return review, nil
}

// RecalcRatings recomputes the service's average rating and count from its
// reviews, then does the same for the owning provider across all its
// services. It runs synchronously inside create/update/delete but never
// fails the triggering operation: errors are logged and swallowed. When no
// reviews remain, nothing is written; ratings are never reset to zero.
func (s *ReviewService) RecalcRatings(serviceID uint) {
	agg, err := s.Reviews.AggregateByService(serviceID)
	if err != nil {
		log.Printf("rating aggregation failed for service %d: %v", serviceID, err)
		return
	}
	if agg.Count == 0 {
		return
	}
	if err := s.Services.SetRatingStats(serviceID, round1(agg.Average), agg.Count); err != nil {
		log.Printf("rating aggregation failed for service %d: %v", serviceID, err)
		return
	}

	svc, err := s.Services.GetByID(serviceID)
	if err != nil {
		log.Printf("rating aggregation failed for service %d: %v", serviceID, err)
		return
	}
	pagg, err := s.Reviews.AggregateByProvider(svc.ProviderID)
	if err != nil {
		log.Printf("rating aggregation failed for provider %d: %v", svc.ProviderID, err)
		return
	}
	if pagg.Count == 0 {
		return
	}
	if err := s.Providers.SetRatingStats(svc.ProviderID, round1(pagg.Average), pagg.Count); err != nil {
		log.Printf("rating aggregation failed for provider %d: %v", svc.ProviderID, err)
	}
}

func (s *ReviewService) actorProviderID(actor policy.Actor) (uint, error) {
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

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ratingValue normalizes a JSON rating to an int and checks the 1..5 range.
// Decoded JSON numbers arrive as float64.
func ratingValue(raw any) (int, bool) {
	var rating int
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		rating = int(v)
	case int:
		rating = v
	default:
		return 0, false
	}
	if rating < 1 || rating > 5 {
		return 0, false
	}
	return rating, true
}
