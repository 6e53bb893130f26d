package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/shared/apperrors"
)

// GetMyBookings lists a user's bookings, newest first.
type GetMyBookings struct {
	bookingRepository domain.BookingRepository
}

// NewGetMyBookings creates a new GetMyBookings use case
func NewGetMyBookings(bookingRepository domain.BookingRepository) *GetMyBookings {
	return &GetMyBookings{bookingRepository: bookingRepository}
}

// Execute returns the user's booking history ordered by creation time,
// descending.
func (uc *GetMyBookings) Execute(ctx context.Context, userID string) ([]*domain.Booking, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorized("User identification is missing.")
	}

	bookings, err := uc.bookingRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}
