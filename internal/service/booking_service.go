package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/travelhub/booking-backend-go/internal/models"
)

// BookingService handles business logic for package bookings
type BookingService struct {
	pricing  *PricingEngine
	bookings BookingStore
	now      func() time.Time
}

// NewBookingService creates a new booking service
func NewBookingService(pricing *PricingEngine, bookings BookingStore) *BookingService {
	return &BookingService{pricing: pricing, bookings: bookings, now: time.Now}
}

// CreateBooking prices the request and stores a pending booking.
// The stored total is recomputed from the breakdown components.
func (s *BookingService) CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.Booking, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, invalid("userId", "is required")
	}

	travel, err := ParseTravelDetails(req.StartDate, req.EndDate, req.Travelers)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.pricing.CalculatePackagePrice(ctx, req.PackageID, req.Preferences, travel)
	if err != nil {
		return nil, err
	}
	breakdown.Recompute()

	id := uuid.New()
	b := &models.Booking{
		ID:          id.String(),
		Reference:   bookingReference(id),
		UserID:      userID,
		PackageID:   req.PackageID,
		Preferences: req.Preferences,
		Travel:      travel,
		Breakdown:   *breakdown,
		TotalAmount: breakdown.TotalAmount,
		Status:      models.BookingStatusPending,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, upstream("booking", err)
	}
	return b, nil
}

// GetBooking returns one of the user's bookings. Bookings of other users are reported as missing.
func (s *BookingService) GetBooking(ctx context.Context, userID, id string) (*models.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, invalid("id", "must be a booking id")
	}

	b, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, upstream("booking", err)
	}
	if b == nil || b.UserID != userID {
		return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	return b, nil
}

// ListBookings returns the user's bookings, newest first
func (s *BookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, upstream("booking", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func bookingReference(id uuid.UUID) string {
	return "TRV-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}
