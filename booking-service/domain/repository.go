package domain

import "context"

// BookingRepository is the keyed booking store. FindByID returns (nil, nil)
// for an unknown booking.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	FindByID(ctx context.Context, id string) (*Booking, error)
	FindByUserID(ctx context.Context, userID string) ([]*Booking, error)
	CountActiveTickets(ctx context.Context, userID string, performanceID int64) (int, error)

	// UpdateStatus re-reads the current status inside a per-booking
	// transaction, applies ShouldSkipStatusWrite, and reports whether the
	// write was applied. Concurrent webhook and sweep activity both funnel
	// through this guard.
	UpdateStatus(ctx context.Context, id string, status BookingStatus) (bool, error)

	// UpdateReservationID sets the reservation id at most once; an already
	// set reservation id is never overwritten.
	UpdateReservationID(ctx context.Context, id string, reservationID int64) error

	UpdateDetails(ctx context.Context, id string, totalAmount int64, seatIDs []string) error
}
