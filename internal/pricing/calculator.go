// Package pricing holds the package price formula. Everything here is pure:
// callers supply the package, the request and the clock.
package pricing

import (
	"math"
	"time"

	"github.com/travelhub/booking-backend-go/internal/models"
)

const (
	TaxRate        = 0.18
	ServiceFeeRate = 0.02
	MinServiceFee  = 100.0
	MaxServiceFee  = 500.0

	EarlyBirdRate     = 0.05
	EarlyBirdLeadTime = 30 * 24 * time.Hour
	GroupRate         = 0.03
	GroupMinTravelers = 4
	OffPeakRate       = 0.02

	OccupantsPerRoom = 2
	RoundTripLegs    = 2 // transport is always priced as a round trip
)

// Nights counts started 24h periods between start and end.
func Nights(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// RoomsNeeded assumes two occupants per room.
func RoomsNeeded(travelers int) int {
	return (travelers + OccupantsPerRoom - 1) / OccupantsPerRoom
}

// BasePrice is the per-person base price: the pricing table's base price,
// then the package base price, then the legacy flat price.
func BasePrice(pkg *models.Package) float64 {
	switch {
	case pkg.Pricing.BasePackagePrice != nil:
		return *pkg.Pricing.BasePackagePrice
	case pkg.BasePrice != nil:
		return *pkg.BasePrice
	case pkg.Price != nil:
		return *pkg.Price
	}
	return 0
}

// AddOnsPrice charges every add-on once per traveler.
func AddOnsPrice(addOns []models.AddOn, travelers int) float64 {
	var total float64
	for _, a := range addOns {
		total += a.Price * float64(travelers)
	}
	return total
}

// Taxes is the flat GST-style tax, rounded to a whole currency unit.
func Taxes(subtotal float64) float64 {
	return math.Round(subtotal * TaxRate)
}

// ServiceFee is 2% of subtotal clamped to [MinServiceFee, MaxServiceFee].
func ServiceFee(subtotal float64) float64 {
	return math.Min(math.Max(subtotal*ServiceFeeRate, MinServiceFee), MaxServiceFee)
}

// IsOffPeak reports whether a trip starting at start falls in June through September.
func IsOffPeak(start time.Time) bool {
	m := start.Month()
	return m >= time.June && m <= time.September
}

// Discounts sums the early-bird, group and off-peak discounts. The rates add
// up on the same subtotal; they never compound.
func Discounts(subtotal float64, travel models.TravelDetails, now time.Time) (float64, []models.AppliedDiscount) {
	var applied []models.AppliedDiscount
	add := func(kind string, rate float64) {
		applied = append(applied, models.AppliedDiscount{Type: kind, Percent: rate * 100, Amount: subtotal * rate})
	}

	if travel.StartDate.Sub(now) >= EarlyBirdLeadTime {
		add(models.DiscountEarlyBird, EarlyBirdRate)
	}
	if travel.NumberOfTravelers >= GroupMinTravelers {
		add(models.DiscountGroup, GroupRate)
	}
	if IsOffPeak(travel.StartDate) {
		add(models.DiscountOffPeak, OffPeakRate)
	}

	var total float64
	for _, d := range applied {
		total += d.Amount
	}
	return math.Round(total), applied
}

// Calculate prices one package booking. Inputs are assumed validated.
func Calculate(pkg *models.Package, prefs models.PricingPreferences, travel models.TravelDetails, now time.Time) models.PricingBreakdown {
	travelers := travel.NumberOfTravelers
	nights := Nights(travel.StartDate, travel.EndDate)
	rooms := RoomsNeeded(travelers)
	perPerson := BasePrice(pkg)

	b := models.PricingBreakdown{
		Nights:             nights,
		Travelers:          travelers,
		RoomsNeeded:        rooms,
		BasePricePerPerson: perPerson,
		BasePackagePrice:   perPerson * float64(travelers),
		HotelPrice:         HotelRate(pkg.Pricing.HotelOptions, prefs.HotelCategory) * float64(nights) * float64(rooms),
		TransportPrice:     TransportRate(pkg.Pricing.TransportOptions, prefs.TransportType, prefs.TransportClass) * float64(travelers) * RoundTripLegs,
		AddOnsPrice:        AddOnsPrice(prefs.AddOns, travelers),
	}
	b.Subtotal = b.ComputedSubtotal()
	b.Taxes = Taxes(b.Subtotal)
	b.ServiceFee = ServiceFee(b.Subtotal)
	b.Discount, b.AppliedDiscounts = Discounts(b.Subtotal, travel, now)
	b.TotalAmount = b.ComputedTotal()
	return b
}
