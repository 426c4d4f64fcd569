package models

import "time"

// Booking is a persisted package booking with its recomputed price breakdown.
type Booking struct {
	ID          string             `json:"id" db:"id"`
	Reference   string             `json:"reference" db:"reference"`
	UserID      string             `json:"user_id" db:"user_id"`
	PackageID   int64              `json:"package_id" db:"package_id"`
	Preferences PricingPreferences `json:"preferences" db:"preferences_json"`
	Travel      TravelDetails      `json:"travel" db:"travel_json"`
	Breakdown   PricingBreakdown   `json:"breakdown" db:"breakdown_json"`
	TotalAmount float64            `json:"total_amount" db:"total_amount"`
	Status      string             `json:"status" db:"status"`
	CreatedAt   time.Time          `json:"created_at" db:"created_at"`
}

// Booking statuses
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// PriceRequest is the body of a pricing call.
type PriceRequest struct {
	Preferences PricingPreferences `json:"preferences" binding:"required"`
	StartDate   string             `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate     string             `json:"end_date" binding:"required"`   // YYYY-MM-DD
	Travelers   int                `json:"travelers"`
}

// BookingRequest is the body of a booking call.
type BookingRequest struct {
	PackageID int64 `json:"package_id" binding:"required"`
	PriceRequest
}
