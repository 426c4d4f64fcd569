package models

import "time"

// PricingPreferences are the user-selected options for one package booking.
type PricingPreferences struct {
	HotelCategory  string  `json:"hotel_category" binding:"required"`
	TransportType  string  `json:"transport_type" binding:"required"`
	TransportClass string  `json:"transport_class,omitempty"`
	AddOns         []AddOn `json:"add_ons,omitempty" binding:"dive"`
}

// TravelDetails are the trip parameters of a pricing request.
type TravelDetails struct {
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	NumberOfTravelers int       `json:"number_of_travelers"`
}

// AppliedDiscount records one discount rule that fired.
type AppliedDiscount struct {
	Type    string  `json:"type"` // EARLY_BIRD, GROUP, OFF_PEAK
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"` // unrounded share of the total discount
}

// PricingBreakdown is the full cost breakdown of a package booking.
type PricingBreakdown struct {
	Nights             int     `json:"nights"`
	Travelers          int     `json:"travelers"`
	RoomsNeeded        int     `json:"rooms_needed"`
	BasePricePerPerson float64 `json:"base_price_per_person"`
	BasePackagePrice   float64 `json:"base_package_price"` // scaled by travelers
	HotelPrice         float64 `json:"hotel_price"`
	TransportPrice     float64 `json:"transport_price"`
	AddOnsPrice        float64 `json:"add_ons_price"`
	Subtotal           float64 `json:"subtotal"`
	Taxes              float64 `json:"taxes"`
	ServiceFee         float64 `json:"service_fee"`
	Discount           float64 `json:"discount"`
	TotalAmount        float64 `json:"total_amount"`

	AppliedDiscounts []AppliedDiscount `json:"applied_discounts,omitempty"`
}

// Discount types
const (
	DiscountEarlyBird = "EARLY_BIRD"
	DiscountGroup     = "GROUP"
	DiscountOffPeak   = "OFF_PEAK"
)

// ComputedSubtotal sums the priced components.
func (b *PricingBreakdown) ComputedSubtotal() float64 {
	return b.BasePackagePrice + b.HotelPrice + b.TransportPrice + b.AddOnsPrice
}

// ComputedTotal applies taxes, fee and discount to the component subtotal.
func (b *PricingBreakdown) ComputedTotal() float64 {
	return b.ComputedSubtotal() + b.Taxes + b.ServiceFee - b.Discount
}

// Recompute overwrites Subtotal and TotalAmount from the component fields.
func (b *PricingBreakdown) Recompute() {
	b.Subtotal = b.ComputedSubtotal()
	b.TotalAmount = b.ComputedTotal()
}
