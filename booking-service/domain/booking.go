package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/stagepass/booking-system/shared/models"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusPaid      BookingStatus = "PAID"
	BookingStatusFailed    BookingStatus = "FAILED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusRefunded  BookingStatus = "REFUNDED"
)

// MaxTicketsPerUser caps the active (PENDING + PAID) tickets a user may hold
// for a single performance.
const MaxTicketsPerUser = 10

// ShouldSkipStatusWrite applies the idempotency rules that guard every
// status write: REFUNDED is never overwritten, a PAID booking never regresses
// to FAILED, and a same-status write is a no-op. Webhooks and the
// reconciliation sweep may both deliver the same outcome, so these rules, not
// arrival order, carry correctness.
func ShouldSkipStatusWrite(current, desired BookingStatus) bool {
	if current == BookingStatusRefunded {
		return true
	}
	if current == BookingStatusPaid && desired == BookingStatusFailed {
		return true
	}
	return current == desired
}

// Booking is the central entity, one per purchase attempt. Bookings are
// retained as purchase history and never deleted by this service.
type Booking struct {
	ID            string
	UserID        string
	PerformanceID int64
	Quantity      int
	PaymentMethod string
	TotalAmount   int64
	SeatIDs       []string
	ReservationID *int64
	Status        BookingStatus
	Timestamps    models.Timestamps
}

// NewBooking creates a PENDING booking with a deterministic identifier
// derived from performance, user, and creation instant.
func NewBooking(userID string, performanceID int64, quantity int, paymentMethod string) *Booking {
	return &Booking{
		ID:            generateBookingID(performanceID, userID, time.Now().UTC()),
		UserID:        userID,
		PerformanceID: performanceID,
		Quantity:      quantity,
		PaymentMethod: paymentMethod,
		Status:        BookingStatusPending,
		Timestamps:    models.NewTimestamps(),
	}
}

// generateBookingID builds "<performanceId>-<userId>-<yyyymmddhhmmssmmm>".
// Unique enough to avoid collisions within the same millisecond for one
// performance-user pair; not meant to be unguessable.
func generateBookingID(performanceID int64, userID string, now time.Time) string {
	stamp := strings.Replace(now.Format("20060102150405.000"), ".", "", 1)
	return fmt.Sprintf("%d-%s-%s", performanceID, userID, stamp)
}

// HasReservation reports whether inventory has been reserved for the booking.
func (b *Booking) HasReservation() bool {
	return b.ReservationID != nil
}
