package models

import "time"

// Package is a travel product template. Pricing and search treat it as read-only.
type Package struct {
	ID             int64        `json:"id" db:"id"`
	Name           string       `json:"name" db:"name"`
	Description    string       `json:"description,omitempty" db:"description"`
	DurationNights int          `json:"duration_nights" db:"duration_nights"`
	Destinations   []string     `json:"destinations" db:"destinations_json"`
	Category       string       `json:"category" db:"category"`
	BasePrice      *float64     `json:"base_price,omitempty" db:"base_price"`
	Price          *float64     `json:"price,omitempty" db:"price"` // legacy flat price, last in the fallback chain
	Pricing        PricingTable `json:"pricing" db:"pricing_json"`
	Inclusions     []string     `json:"inclusions,omitempty" db:"inclusions_json"`
	Exclusions     []string     `json:"exclusions,omitempty" db:"exclusions_json"`
	Rating         float64      `json:"rating" db:"rating"` // 0-5
	IsActive       bool         `json:"is_active" db:"is_active"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at" db:"updated_at"`
}

// PricingTable is the per-package price configuration.
type PricingTable struct {
	BasePackagePrice *float64                   `json:"base_package_price,omitempty"`
	HotelOptions     map[string]HotelOption     `json:"hotel_options,omitempty"`     // keyed by hotel category
	TransportOptions map[string]TransportOption `json:"transport_options,omitempty"` // keyed by transport type
	AddOns           []AddOn                    `json:"add_ons,omitempty"`
}

// HotelOption is the nightly rate for one hotel tier.
type HotelOption struct {
	PricePerNight float64 `json:"price_per_night"`
	Description   string  `json:"description,omitempty"`
}

// TransportOption is the per-person, per-direction base price for one transport type.
type TransportOption struct {
	Class string  `json:"class"`
	Price float64 `json:"price"`
}

// AddOn is an optional extra charged per traveler.
type AddOn struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
}

// PackageOptions is the option table exposed to clients before pricing.
type PackageOptions struct {
	PackageID        int64                      `json:"package_id"`
	HotelOptions     map[string]HotelOption     `json:"hotel_options"`
	TransportOptions map[string]TransportOption `json:"transport_options"`
	AddOns           []AddOn                    `json:"add_ons"`
}

// Package categories
const (
	CategoryAdventure  = "adventure"
	CategoryLeisure    = "leisure"
	CategoryBusiness   = "business"
	CategoryFamily     = "family"
	CategoryHoneymoon  = "honeymoon"
	CategoryPilgrimage = "pilgrimage"
)

// Hotel categories
const (
	HotelBudget   = "budget"
	HotelStandard = "standard"
	HotelLuxury   = "luxury"
)

// Transport types
const (
	TransportFlight = "flight"
	TransportTrain  = "train"
	TransportBus    = "bus"
)

// IsValidCategory reports whether c is one of the package categories.
func IsValidCategory(c string) bool {
	switch c {
	case CategoryAdventure, CategoryLeisure, CategoryBusiness, CategoryFamily, CategoryHoneymoon, CategoryPilgrimage:
		return true
	}
	return false
}

// IsValidHotelCategory reports whether c is budget, standard or luxury.
func IsValidHotelCategory(c string) bool {
	return c == HotelBudget || c == HotelStandard || c == HotelLuxury
}

// IsValidTransportType reports whether t is flight, train or bus.
func IsValidTransportType(t string) bool {
	return t == TransportFlight || t == TransportTrain || t == TransportBus
}
