package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/travelhub/booking-backend-go/internal/models"
)

// BookingRepository handles database operations for bookings
type BookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, reference, user_id, package_id, preferences_json, travel_json,
	breakdown_json, total_amount, status, created_at`

// Create persists a booking
func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	prefs, err := encodeJSON(b.Preferences)
	if err != nil {
		return err
	}
	travel, err := encodeJSON(b.Travel)
	if err != nil {
		return err
	}
	breakdown, err := encodeJSON(b.Breakdown)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO bookings (`+bookingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Reference, b.UserID, b.PackageID, prefs, travel, breakdown, b.TotalAmount, b.Status, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// FindByID retrieves a booking by ID, returning nil if it does not exist
func (r *BookingRepository) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE id = ?", id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return b, nil
}

// ListByUser retrieves a user's bookings, newest first
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+bookingColumns+
		" FROM bookings WHERE user_id = ? ORDER BY created_at DESC, id ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}

	return bookings, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(s scanner) (*models.Booking, error) {
	var (
		b                        models.Booking
		prefs, travel, breakdown string
	)
	err := s.Scan(&b.ID, &b.Reference, &b.UserID, &b.PackageID, &prefs, &travel,
		&breakdown, &b.TotalAmount, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := decodeJSON(prefs, &b.Preferences); err != nil {
		return nil, err
	}
	if err := decodeJSON(travel, &b.Travel); err != nil {
		return nil, err
	}
	if err := decodeJSON(breakdown, &b.Breakdown); err != nil {
		return nil, err
	}
	return &b, nil
}
