package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/travelhub/booking-backend-go/internal/models"
	"github.com/travelhub/booking-backend-go/internal/pricing"
)

// DateLayout is the wire format of travel dates.
const DateLayout = "2006-01-02"

// PricingEngine prices package bookings against the stored pricing tables
type PricingEngine struct {
	packages PackageStore
	now      func() time.Time
}

// NewPricingEngine creates a new pricing engine
func NewPricingEngine(packages PackageStore) *PricingEngine {
	return &PricingEngine{packages: packages, now: time.Now}
}

// WithClock replaces the clock used for the early-bird discount
func (e *PricingEngine) WithClock(now func() time.Time) *PricingEngine {
	e.now = now
	return e
}

// CalculatePackagePrice returns the full cost breakdown of a booking.
// Requests are validated before the package is read.
func (e *PricingEngine) CalculatePackagePrice(ctx context.Context, packageID int64, prefs models.PricingPreferences, travel models.TravelDetails) (*models.PricingBreakdown, error) {
	if err := validatePreferences(prefs); err != nil {
		return nil, err
	}
	if err := validateTravel(travel); err != nil {
		return nil, err
	}

	pkg, err := e.findPackage(ctx, packageID)
	if err != nil {
		return nil, err
	}

	b := pricing.Calculate(pkg, prefs, travel, e.now())
	return &b, nil
}

// GetPackageOptions returns the package's option tables, or the fallback tables where unset
func (e *PricingEngine) GetPackageOptions(ctx context.Context, packageID int64) (*models.PackageOptions, error) {
	pkg, err := e.findPackage(ctx, packageID)
	if err != nil {
		return nil, err
	}

	opts := pricing.Options(pkg)
	return &opts, nil
}

func (e *PricingEngine) findPackage(ctx context.Context, id int64) (*models.Package, error) {
	if id <= 0 {
		return nil, invalid("packageId", "must be a positive integer")
	}

	pkg, err := e.packages.FindByID(ctx, id)
	if err != nil {
		return nil, upstream("package", err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %d: %w", id, ErrNotFound)
	}
	return pkg, nil
}

// ParseTravelDetails builds TravelDetails from wire dates. Range checks are left to the engine.
func ParseTravelDetails(startDate, endDate string, travelers int) (models.TravelDetails, error) {
	start, err := parseDate("startDate", startDate)
	if err != nil {
		return models.TravelDetails{}, err
	}
	end, err := parseDate("endDate", endDate)
	if err != nil {
		return models.TravelDetails{}, err
	}
	return models.TravelDetails{StartDate: start, EndDate: end, NumberOfTravelers: travelers}, nil
}

func parseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, invalid(field, "is required")
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, invalid(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

func validatePreferences(p models.PricingPreferences) error {
	if !models.IsValidHotelCategory(p.HotelCategory) {
		return invalid("hotelCategory", "must be one of budget, standard, luxury")
	}
	if !models.IsValidTransportType(p.TransportType) {
		return invalid("transportType", "must be one of flight, train, bus")
	}
	for i, a := range p.AddOns {
		if strings.TrimSpace(a.Name) == "" {
			return invalid(fmt.Sprintf("addOns[%d].name", i), "is required")
		}
		if a.Price < 0 {
			return invalid(fmt.Sprintf("addOns[%d].price", i), "must not be negative")
		}
	}
	return nil
}

func validateTravel(t models.TravelDetails) error {
	if t.StartDate.IsZero() {
		return invalid("startDate", "is required")
	}
	if t.EndDate.IsZero() {
		return invalid("endDate", "is required")
	}
	if !t.EndDate.After(t.StartDate) {
		return invalid("endDate", "must be after startDate")
	}
	if t.NumberOfTravelers < 1 {
		return invalid("numberOfTravelers", "must be at least 1")
	}
	return nil
}
