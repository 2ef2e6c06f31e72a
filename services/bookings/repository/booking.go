package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	"github.com/BidumanADT/bellwood-admin/services/bookings"
)

// BookingRepo persists quotes and bookings in Postgres
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

const bookingColumns = `
	id, quote_id, booker_email, passenger_name, passenger_email,
	pickup_lat, pickup_lon, pickup_addr,
	dropoff_lat, dropoff_lon, dropoff_addr,
	scheduled_at, driver_uid, ride_status, booking_status,
	created_at, updated_at
`

// CreateQuote stores a priced quote
func (r *BookingRepo) CreateQuote(ctx context.Context, quote *models.Quote) error {
	if quote.ID == "" {
		quote.ID = uuid.New().String()
	}
	if quote.CreatedAt.IsZero() {
		quote.CreatedAt = models.Now()
	}

	query := `
		INSERT INTO quotes (
			id, booker_email,
			pickup_lat, pickup_lon, pickup_addr,
			dropoff_lat, dropoff_lon, dropoff_addr,
			distance_km, estimated_fare, currency, status, created_at
		) VALUES (:id, :booker_email,
			:pickup_lat, :pickup_lon, :pickup_addr,
			:dropoff_lat, :dropoff_lon, :dropoff_addr,
			:distance_km, :estimated_fare, :currency, :status, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, quote)
	if err != nil {
		return fmt.Errorf("failed to insert quote: %w", err)
	}

	return nil
}

// GetQuote returns a quote, nil when it does not exist
func (r *BookingRepo) GetQuote(ctx context.Context, quoteID string) (*models.Quote, error) {
	query := `
		SELECT id, booker_email,
			pickup_lat, pickup_lon, pickup_addr,
			dropoff_lat, dropoff_lon, dropoff_addr,
			distance_km, estimated_fare, currency, status, created_at
		FROM quotes
		WHERE id = $1
	`

	var quote models.Quote
	err := r.db.GetContext(ctx, &quote, query, quoteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}

	return &quote, nil
}

// UpdateQuoteStatus moves a quote through its lifecycle
func (r *BookingRepo) UpdateQuoteStatus(ctx context.Context, quoteID string, status models.QuoteStatus) error {
	query := `UPDATE quotes SET status = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, quoteID)
	if err != nil {
		return fmt.Errorf("failed to update quote status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check quote update: %w", err)
	}
	if rows == 0 {
		return bookings.ErrQuoteNotFound
	}

	return nil
}

// CreateBooking inserts a new booking
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	prepareBooking(booking)

	_, err := r.db.NamedExecContext(ctx, insertBookingQuery, booking)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

// CreateBookingFromQuote inserts the booking and marks its quote accepted
// in one transaction
func (r *BookingRepo) CreateBookingFromQuote(ctx context.Context, booking *models.Booking) error {
	if booking.QuoteID == nil {
		return fmt.Errorf("booking has no quote id")
	}
	prepareBooking(booking)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.NamedExecContext(ctx, insertBookingQuery, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE quotes SET status = $1 WHERE id = $2`,
		models.QuoteStatusAccepted, *booking.QuoteID,
	); err != nil {
		return fmt.Errorf("failed to mark quote accepted: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetBooking returns a booking, nil when it does not exist
func (r *BookingRepo) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

// ListBookings returns all bookings, newest first
func (r *BookingRepo) ListBookings(ctx context.Context) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`

	var list []models.Booking
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return list, nil
}

// ListBookingsByBooker returns the bookings owned by a booker email,
// newest first
func (r *BookingRepo) ListBookingsByBooker(ctx context.Context, bookerEmail string) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE lower(booker_email) = lower($1) ORDER BY created_at DESC`

	var list []models.Booking
	if err := r.db.SelectContext(ctx, &list, query, bookerEmail); err != nil {
		return nil, fmt.Errorf("failed to list bookings for booker: %w", err)
	}

	return list, nil
}

// AssignDriver sets the driver and booking status on a booking
func (r *BookingRepo) AssignDriver(ctx context.Context, bookingID, driverUID string, status models.BookingStatus) error {
	query := `
		UPDATE bookings
		SET driver_uid = $1, booking_status = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, driverUID, status, models.Now(), bookingID)
	if err != nil {
		return fmt.Errorf("failed to assign driver: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check driver assignment: %w", err)
	}
	if rows == 0 {
		return bookings.ErrBookingNotFound
	}

	return nil
}

// UpdateRideStatus persists a ride status transition and its booking
// status side effect
func (r *BookingRepo) UpdateRideStatus(ctx context.Context, rideID string, rideStatus models.RideStatus, bookingStatus models.BookingStatus) error {
	query := `
		UPDATE bookings
		SET ride_status = $1, booking_status = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, rideStatus, bookingStatus, models.Now(), rideID)
	if err != nil {
		return fmt.Errorf("failed to update ride status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check ride status update: %w", err)
	}
	if rows == 0 {
		return bookings.ErrBookingNotFound
	}

	return nil
}

// GetDriverName returns the active driver's display name
func (r *BookingRepo) GetDriverName(ctx context.Context, driverUID string) (string, error) {
	query := `SELECT full_name FROM drivers WHERE uid = $1 AND is_active = true`

	var name string
	err := r.db.GetContext(ctx, &name, query, driverUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", bookings.ErrDriverNotFound
		}
		return "", fmt.Errorf("failed to get driver name: %w", err)
	}

	return name, nil
}

const insertBookingQuery = `
	INSERT INTO bookings (
		id, quote_id, booker_email, passenger_name, passenger_email,
		pickup_lat, pickup_lon, pickup_addr,
		dropoff_lat, dropoff_lon, dropoff_addr,
		scheduled_at, driver_uid, ride_status, booking_status,
		created_at, updated_at
	) VALUES (:id, :quote_id, :booker_email, :passenger_name, :passenger_email,
		:pickup_lat, :pickup_lon, :pickup_addr,
		:dropoff_lat, :dropoff_lon, :dropoff_addr,
		:scheduled_at, :driver_uid, :ride_status, :booking_status,
		:created_at, :updated_at)
`

// prepareBooking fills generated fields before insert
func prepareBooking(booking *models.Booking) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}

	now := models.Now()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	booking.UpdatedAt = now

	if booking.RideStatus == "" {
		booking.RideStatus = models.RideStatusScheduled
	}
	if booking.BookingStatus == "" {
		booking.BookingStatus = models.BookingStatusPending
	}
}
