package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusRejected  BookingStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Booking captures the service price and provider at creation time so that
// later changes to the service do not affect existing bookings.
type Booking struct {
	gorm.Model
	CustomerID           uint          `json:"customer_id"`
	Customer             User          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ServiceID            uint          `json:"service_id"`
	Service              Service       `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	ProviderID           uint          `json:"provider_id"`
	Provider             Provider      `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Date                 time.Time     `json:"date"`
	TimeSlot             TimeSlot      `json:"time_slot" gorm:"embedded;embeddedPrefix:time_slot_"`
	Status               BookingStatus `json:"status" gorm:"default:pending"`
	Price                float64       `json:"price"`
	PaymentStatus        PaymentStatus `json:"payment_status" gorm:"default:pending"`
	PaymentMethod        string        `json:"payment_method" gorm:"default:cash"`
	Notes                string        `json:"notes"`
	CustomerRequirements string        `json:"customer_requirements"`
	Attachments          []string      `json:"attachments" gorm:"serializer:json"`
	Reviewed             bool          `json:"reviewed" gorm:"default:false"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentPending
	}
	return nil
}

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// TransitionStatus validates a status change against the booking lifecycle:
// pending may move to confirmed, rejected or cancelled; confirmed may move to
// completed or cancelled; completed, cancelled and rejected are terminal.
// Requesting the current status again is a no-op, not an error.
func TransitionStatus(current, requested BookingStatus) error {
	if !ValidStatus(requested) {
		return fmt.Errorf("unknown booking status %q", requested)
	}
	if current == requested {
		return nil
	}
	switch current {
	case StatusPending:
		if requested != StatusConfirmed && requested != StatusRejected && requested != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", requested)
		}
	case StatusConfirmed:
		if requested != StatusCompleted && requested != StatusCancelled {
			return fmt.Errorf("invalid transition from confirmed to %s", requested)
		}
	default:
		return fmt.Errorf("no transitions allowed from %s", current)
	}
	return nil
}
