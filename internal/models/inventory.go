package models

import "time"

// City is a destination with a reference point used for distance metadata.
type City struct {
	ID   int64   `json:"id" db:"id"`
	Name string  `json:"name" db:"name"`
	Lat  float64 `json:"lat" db:"lat"`
	Lon  float64 `json:"lon" db:"lon"`
}

// Hotel is an inventory hotel with its cheapest nightly rate.
type Hotel struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	City          string    `json:"city" db:"city"`
	Address       string    `json:"address,omitempty" db:"address"`
	CheapestPrice float64   `json:"cheapest_price" db:"cheapest_price"`
	Rating        *float64  `json:"rating,omitempty" db:"rating"`
	Photos        []string  `json:"photos,omitempty" db:"photos_json"`
	Lat           float64   `json:"lat,omitempty" db:"lat"`
	Lon           float64   `json:"lon,omitempty" db:"lon"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// HotelQuery filters hotels by city and nightly price ceiling.
type HotelQuery struct {
	City             string
	MaxPricePerNight float64
	Limit            int
}

// LegQuery filters transport legs by route and departure date (YYYY-MM-DD).
type LegQuery struct {
	Origin      string
	Destination string
	Date        string
	MinSeats    int
}

// FlightFares holds the per-person fare of each cabin class. Zero means the class is not sold.
type FlightFares struct {
	Economy  float64 `json:"economy"`
	Business float64 `json:"business,omitempty"`
	First    float64 `json:"first,omitempty"`
}

// Flight classes
const (
	ClassEconomy  = "economy"
	ClassBusiness = "business"
	ClassFirst    = "first"
)

// Flight is a single flight leg.
type Flight struct {
	ID              int64       `json:"id" db:"id"`
	Airline         string      `json:"airline" db:"airline"`
	FlightNumber    string      `json:"flight_number" db:"flight_number"`
	Origin          string      `json:"origin" db:"origin"`
	Destination     string      `json:"destination" db:"destination"`
	DepartDate      string      `json:"depart_date" db:"depart_date"`
	DepartTime      string      `json:"depart_time,omitempty" db:"depart_time"`
	DurationMinutes int         `json:"duration_minutes" db:"duration_minutes"`
	Fares           FlightFares `json:"fares" db:"-"`
	SeatsAvailable  int         `json:"seats_available" db:"seats_available"`
}

// FareFor returns the fare of class and whether that class is sold on the flight.
func (f *Flight) FareFor(class string) (float64, bool) {
	var fare float64
	switch class {
	case ClassEconomy, "":
		fare = f.Fares.Economy
	case ClassBusiness:
		fare = f.Fares.Business
	case ClassFirst:
		fare = f.Fares.First
	}
	return fare, fare > 0
}

// Train is a train service between two stations on one date.
type Train struct {
	ID              int64              `json:"id" db:"id"`
	Operator        string             `json:"operator" db:"operator"`
	TrainNumber     string             `json:"train_number" db:"train_number"`
	Origin          string             `json:"origin" db:"origin"`
	Destination     string             `json:"destination" db:"destination"`
	DepartDate      string             `json:"depart_date" db:"depart_date"`
	DurationMinutes int                `json:"duration_minutes" db:"duration_minutes"`
	Fares           map[string]float64 `json:"fares" db:"fares_json"` // class (SL, 3A, 2A, 1A) -> fare
}

// Bus is a bus service between two cities on one date.
type Bus struct {
	ID              int64              `json:"id" db:"id"`
	Operator        string             `json:"operator" db:"operator"`
	Origin          string             `json:"origin" db:"origin"`
	Destination     string             `json:"destination" db:"destination"`
	DepartDate      string             `json:"depart_date" db:"depart_date"`
	DurationMinutes int                `json:"duration_minutes" db:"duration_minutes"`
	Fares           map[string]float64 `json:"fares" db:"fares_json"` // seat type (ac, non-ac, sleeper) -> fare
}

// CheapestFare returns the lowest positive fare and its class.
func CheapestFare(fares map[string]float64) (class string, fare float64, ok bool) {
	for c, f := range fares {
		if f <= 0 {
			continue
		}
		// ties resolved by class name so the choice is stable across map iteration
		if !ok || f < fare || (f == fare && c < class) {
			class, fare, ok = c, f, true
		}
	}
	return class, fare, ok
}
