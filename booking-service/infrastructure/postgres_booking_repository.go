package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/shared/models"
)

var _ domain.BookingRepository = (*PostgresBookingRepository)(nil)

// PostgresBookingRepository implements BookingRepository using PostgreSQL
type PostgresBookingRepository struct {
	db *sqlx.DB
}

// NewPostgresBookingRepository creates a new PostgresBookingRepository
func NewPostgresBookingRepository(db *sqlx.DB) *PostgresBookingRepository {
	return &PostgresBookingRepository{db: db}
}

// postgresBooking represents a booking row
type postgresBooking struct {
	ID            string         `db:"id"`
	UserID        string         `db:"user_id"`
	PerformanceID int64          `db:"performance_id"`
	Quantity      int            `db:"quantity"`
	PaymentMethod string         `db:"payment_method"`
	TotalAmount   sql.NullInt64  `db:"total_amount"`
	SeatIDs       pq.StringArray `db:"seat_ids"`
	ReservationID sql.NullInt64  `db:"reservation_id"`
	Status        string         `db:"status"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

const bookingColumns = `id, user_id, performance_id, quantity, payment_method,
	total_amount, seat_ids, reservation_id, status, created_at, updated_at`

// Create inserts a new booking row
func (r *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (
			id, user_id, performance_id, quantity, payment_method,
			total_amount, seat_ids, reservation_id, status, created_at, updated_at
		) VALUES (
			:id, :user_id, :performance_id, :quantity, :payment_method,
			:total_amount, :seat_ids, :reservation_id, :status, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, r.toPostgres(booking))
	if err != nil {
		return errors.Wrap(err, "failed to insert booking")
	}

	return nil
}

// FindByID loads one booking, returning (nil, nil) when absent
func (r *PostgresBookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var row postgresBooking
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find booking")
	}

	return r.toDomain(&row), nil
}

// FindByUserID lists a user's bookings, newest first
func (r *PostgresBookingRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`

	var rows []postgresBooking
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	bookings := make([]*domain.Booking, len(rows))
	for i := range rows {
		bookings[i] = r.toDomain(&rows[i])
	}
	return bookings, nil
}

// CountActiveTickets sums quantities of the user's PENDING and PAID
// bookings for a performance
func (r *PostgresBookingRepository) CountActiveTickets(ctx context.Context, userID string, performanceID int64) (int, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM bookings
		WHERE user_id = $1 AND performance_id = $2 AND status IN ($3, $4)`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, performanceID,
		string(domain.BookingStatusPending), string(domain.BookingStatusPaid))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active tickets")
	}

	return count, nil
}

// UpdateStatus writes the status inside a per-booking transaction. The
// current status is re-read under a row lock and the skip rules applied
// right before the write, so a concurrent webhook and sweep cannot lose
// updates to each other.
func (r *PostgresBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	var current string
	err = tx.GetContext(ctx, &current, `SELECT status FROM bookings WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, errors.Errorf("booking %s not found", id)
		}
		return false, errors.Wrap(err, "failed to read booking status")
	}

	if domain.ShouldSkipStatusWrite(domain.BookingStatus(current), status) {
		return false, nil
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), time.Now(), id)
	if err != nil {
		return false, errors.Wrap(err, "failed to update booking status")
	}

	if err := tx.Commit(); err != nil {
		return false, errors.Wrap(err, "failed to commit status update")
	}

	return true, nil
}

// UpdateReservationID records the reservation id, once. An already set
// reservation id is left untouched.
func (r *PostgresBookingRepository) UpdateReservationID(ctx context.Context, id string, reservationID int64) error {
	query := `
		UPDATE bookings
		SET reservation_id = $1, updated_at = $2
		WHERE id = $3 AND reservation_id IS NULL`

	_, err := r.db.ExecContext(ctx, query, reservationID, time.Now(), id)
	if err != nil {
		return errors.Wrap(err, "failed to update reservation id")
	}

	return nil
}

// UpdateDetails records the computed amount and assigned seats
func (r *PostgresBookingRepository) UpdateDetails(ctx context.Context, id string, totalAmount int64, seatIDs []string) error {
	query := `
		UPDATE bookings
		SET total_amount = $1, seat_ids = $2, updated_at = $3
		WHERE id = $4`

	_, err := r.db.ExecContext(ctx, query, totalAmount, pq.StringArray(seatIDs), time.Now(), id)
	if err != nil {
		return errors.Wrap(err, "failed to update booking details")
	}

	return nil
}

func (r *PostgresBookingRepository) toPostgres(booking *domain.Booking) *postgresBooking {
	row := &postgresBooking{
		ID:            booking.ID,
		UserID:        booking.UserID,
		PerformanceID: booking.PerformanceID,
		Quantity:      booking.Quantity,
		PaymentMethod: booking.PaymentMethod,
		SeatIDs:       pq.StringArray(booking.SeatIDs),
		Status:        string(booking.Status),
		CreatedAt:     booking.Timestamps.CreatedAt,
		UpdatedAt:     booking.Timestamps.UpdatedAt,
	}

	if booking.TotalAmount > 0 {
		row.TotalAmount = sql.NullInt64{Int64: booking.TotalAmount, Valid: true}
	}
	if booking.ReservationID != nil {
		row.ReservationID = sql.NullInt64{Int64: *booking.ReservationID, Valid: true}
	}

	return row
}

func (r *PostgresBookingRepository) toDomain(row *postgresBooking) *domain.Booking {
	booking := &domain.Booking{
		ID:            row.ID,
		UserID:        row.UserID,
		PerformanceID: row.PerformanceID,
		Quantity:      row.Quantity,
		PaymentMethod: row.PaymentMethod,
		SeatIDs:       []string(row.SeatIDs),
		Status:        domain.BookingStatus(row.Status),
		Timestamps: models.Timestamps{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}

	if row.TotalAmount.Valid {
		booking.TotalAmount = row.TotalAmount.Int64
	}
	if row.ReservationID.Valid {
		reservationID := row.ReservationID.Int64
		booking.ReservationID = &reservationID
	}

	return booking
}
