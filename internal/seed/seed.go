// Package seed loads demo inventory: cities, packages, hotels and
// daily flight, train and bus schedules between the demo cities.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/travelhub/booking-backend-go/internal/models"
	"github.com/travelhub/booking-backend-go/internal/repository"
	"github.com/travelhub/booking-backend-go/internal/spatial"
)

var cities = []models.City{
	{Name: "Mumbai", Lat: 19.0760, Lon: 72.8777},
	{Name: "Delhi", Lat: 28.6139, Lon: 77.2090},
	{Name: "Goa", Lat: 15.4909, Lon: 73.8278},
	{Name: "Jaipur", Lat: 26.9124, Lon: 75.7873},
}

// hotel tiers seeded in every city: name suffix, nightly price, rating, offset from centre
var hotelTiers = []struct {
	suffix string
	price  float64
	rating float64
	dLat   float64
	dLon   float64
}{
	{"Residency", 1800, 3.6, 0.010, 0.012},
	{"Grand", 3200, 4.1, -0.020, 0.015},
	{"Palace", 5500, 4.5, 0.030, -0.025},
	{"Royal Retreat", 9000, 4.8, -0.045, -0.040},
}

func float(v float64) *float64 { return &v }

func packages() []models.Package {
	return []models.Package{
		{
			Name:           "Goa Beach Escape",
			Description:    "Four nights on the north Goa coast",
			DurationNights: 4,
			Destinations:   []string{"Goa"},
			Category:       models.CategoryLeisure,
			BasePrice:      float(9000),
			Pricing: models.PricingTable{
				BasePackagePrice: float(8000),
				HotelOptions: map[string]models.HotelOption{
					models.HotelBudget:   {PricePerNight: 1800, Description: "Guesthouse near Calangute"},
					models.HotelStandard: {PricePerNight: 3000, Description: "3-star beach resort"},
					models.HotelLuxury:   {PricePerNight: 7500, Description: "5-star sea view"},
				},
				TransportOptions: map[string]models.TransportOption{
					models.TransportFlight: {Class: "economy", Price: 5500},
					models.TransportTrain:  {Class: "3A", Price: 1400},
				},
				AddOns: []models.AddOn{
					{Name: "Scuba diving", Price: 3500},
					{Name: "Dudhsagar day trip", Price: 2200},
				},
			},
			Inclusions: []string{"Breakfast", "Airport transfers"},
			Exclusions: []string{"Lunch and dinner"},
			Rating:     4.4,
			IsActive:   true,
		},
		{
			Name:           "Royal Rajasthan",
			Description:    "Forts and palaces of Jaipur",
			DurationNights: 3,
			Destinations:   []string{"Jaipur"},
			Category:       models.CategoryFamily,
			Pricing: models.PricingTable{
				BasePackagePrice: float(10000),
				HotelOptions: map[string]models.HotelOption{
					models.HotelLuxury: {PricePerNight: 9000, Description: "Heritage palace hotel"},
				},
			},
			Inclusions: []string{"Guided city tour"},
			Rating:     4.6,
			IsActive:   true,
		},
		{
			Name:           "Delhi Business Stopover",
			DurationNights: 2,
			Destinations:   []string{"Delhi"},
			Category:       models.CategoryBusiness,
			Price:          float(6500),
			Rating:         3.9,
			IsActive:       true,
		},
	}
}

type stores struct {
	cities   *repository.CityRepository
	packages *repository.PackageRepository
	hotels   *repository.HotelRepository
	flights  *repository.FlightRepository
	trains   *repository.TrainRepository
	buses    *repository.BusRepository
}

// Run inserts demo data with schedules for days consecutive days from start.
// It does nothing when packages already exist.
func Run(ctx context.Context, db *sql.DB, start time.Time, days int) error {
	s := stores{
		cities:   repository.NewCityRepository(db),
		packages: repository.NewPackageRepository(db),
		hotels:   repository.NewHotelRepository(db),
		flights:  repository.NewFlightRepository(db),
		trains:   repository.NewTrainRepository(db),
		buses:    repository.NewBusRepository(db),
	}

	n, err := s.packages.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("Seed skipped: %d packages already present", n)
		return nil
	}

	for i := range cities {
		c := cities[i]
		if err := s.cities.Create(ctx, &c); err != nil {
			return err
		}
		if err := seedHotels(ctx, s.hotels, c); err != nil {
			return err
		}
	}

	for _, p := range packages() {
		if err := s.packages.Create(ctx, &p); err != nil {
			return err
		}
	}

	legs := 0
	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d).Format("2006-01-02")
		for i, from := range cities {
			for j, to := range cities {
				if i == j {
					continue
				}
				if err := seedRoute(ctx, s, from, to, date, i*len(cities)+j); err != nil {
					return err
				}
				legs += 3
			}
		}
	}

	log.Printf("Seeded %d cities, %d packages, %d transport legs", len(cities), len(packages()), legs)
	return nil
}

func seedHotels(ctx context.Context, repo *repository.HotelRepository, c models.City) error {
	for _, tier := range hotelTiers {
		h := &models.Hotel{
			Name:          c.Name + " " + tier.suffix,
			City:          c.Name,
			CheapestPrice: tier.price,
			Rating:        float(tier.rating),
			Lat:           c.Lat + tier.dLat,
			Lon:           c.Lon + tier.dLon,
		}
		if err := repo.Create(ctx, h); err != nil {
			return err
		}
	}
	return nil
}

// seedRoute adds one flight, train and bus from -> to on date, priced by distance
func seedRoute(ctx context.Context, s stores, from, to models.City, date string, route int) error {
	km := spatial.DistanceKm(from.Lat, from.Lon, to.Lat, to.Lon)

	flight := &models.Flight{
		Airline:         "IndiGo",
		FlightNumber:    fmt.Sprintf("6E-%03d", 100+route),
		Origin:          from.Name,
		Destination:     to.Name,
		DepartDate:      date,
		DepartTime:      "09:30",
		DurationMinutes: 60 + int(km/12),
		Fares: models.FlightFares{
			Economy:  fare(2500 + 4*km),
			Business: fare(2.5 * (2500 + 4*km)),
		},
		SeatsAvailable: 60,
	}
	if err := s.flights.Create(ctx, flight); err != nil {
		return err
	}

	train := &models.Train{
		Operator:        "Indian Railways",
		TrainNumber:     fmt.Sprintf("12%03d", route),
		Origin:          from.Name,
		Destination:     to.Name,
		DepartDate:      date,
		DurationMinutes: int(km),
		Fares: map[string]float64{
			"SL": fare(150 + 0.4*km),
			"3A": fare(300 + 0.9*km),
			"2A": fare(500 + 1.4*km),
		},
	}
	if err := s.trains.Create(ctx, train); err != nil {
		return err
	}

	bus := &models.Bus{
		Operator:        "VRL Travels",
		Origin:          from.Name,
		Destination:     to.Name,
		DepartDate:      date,
		DurationMinutes: int(km / 45 * 60),
		Fares: map[string]float64{
			"non-ac": fare(150 + 0.8*km),
			"ac":     fare(200 + 1.1*km),
		},
	}
	return s.buses.Create(ctx, bus)
}

func fare(v float64) float64 {
	return math.Round(v/10) * 10
}
