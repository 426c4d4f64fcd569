package models

// SearchQuery is the raw package search request.
type SearchQuery struct {
	From        string `form:"from"`
	Destination string `form:"destination"`
	StartDate   string `form:"startDate"` // YYYY-MM-DD
	EndDate     string `form:"endDate"`   // YYYY-MM-DD
	Travelers   int    `form:"travelers"`
	Transport   string `form:"transport"` // any, flight, train, bus
	Budget      string `form:"budget"`    // budget, medium, luxury
}

// Search transport preferences and budget tiers
const (
	TransportAny = "any"

	BudgetLow    = "budget"
	BudgetMedium = "medium"
	BudgetLuxury = "luxury"
)

// Package types assigned by position inside the budget band
const (
	PackageTypeValue    = "Value"
	PackageTypeStandard = "Standard"
	PackageTypePremium  = "Premium"
)

// HotelCandidate is a hotel priced for the whole stay.
type HotelCandidate struct {
	HotelID       int64    `json:"hotel_id"`
	Name          string   `json:"name"`
	City          string   `json:"city"`
	PricePerNight float64  `json:"price_per_night"`
	Nights        int      `json:"nights"`
	TotalPrice    float64  `json:"total_price"`
	Rating        *float64 `json:"rating,omitempty"`
	Photos        []string `json:"photos,omitempty"`
	Lat           float64  `json:"-"`
	Lon           float64  `json:"-"`
}

// TransportCandidate is one priced transport option, possibly a round trip of two legs.
type TransportCandidate struct {
	Type            string  `json:"type"` // flight, train, bus
	LegIDs          []int64 `json:"leg_ids"`
	CarrierName     string  `json:"carrier_name"`
	Class           string  `json:"class,omitempty"`
	TotalPrice      float64 `json:"total_price"`
	DurationMinutes int     `json:"duration_minutes"`
	RoundTrip       bool    `json:"round_trip"`
}

// PackageCombination pairs one hotel with one transport option.
type PackageCombination struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Hotel           HotelCandidate     `json:"hotel"`
	Transport       TransportCandidate `json:"transport"`
	TotalPrice      float64            `json:"total_price"`
	Savings         float64            `json:"savings"`
	OverallRating   float64            `json:"overall_rating"`
	PackageType     string             `json:"package_type"`
	Nights          int                `json:"nights"`
	Travelers       int                `json:"travelers"`
	HotelDistanceKm *float64           `json:"hotel_distance_km,omitempty"`
}

// SourceStatus reports how one inventory category fared during a search.
type SourceStatus struct {
	Category   string `json:"category"`
	Status     string `json:"status"` // succeeded, failed, skipped
	Candidates int    `json:"candidates"`
}

// Source statuses
const (
	SourceSucceeded = "succeeded"
	SourceFailed    = "failed"
	SourceSkipped   = "skipped"
)

// PriceRange summarises combined prices across every admissible combination.
type PriceRange struct {
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// SearchResult is the ranked, truncated search output.
type SearchResult struct {
	Packages   []PackageCombination `json:"packages"`
	TotalFound int                  `json:"total_found"`
	PriceRange *PriceRange          `json:"price_range,omitempty"` // nil when nothing was found
	Sources    []SourceStatus       `json:"sources"`
}
