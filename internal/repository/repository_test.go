package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelhub/booking-backend-go/internal/database"
	"github.com/travelhub/booking-backend-go/internal/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func ptr(v float64) *float64 { return &v }

func TestPackageRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewPackageRepository(setupTestDB(t))

	pkg := &models.Package{
		Name:           "Kerala Backwaters",
		DurationNights: 4,
		Destinations:   []string{"Kochi", "Alleppey"},
		Category:       models.CategoryLeisure,
		BasePrice:      ptr(12000),
		Pricing: models.PricingTable{
			BasePackagePrice: ptr(11000),
			HotelOptions:     map[string]models.HotelOption{models.HotelLuxury: {PricePerNight: 7000, Description: "Houseboat"}},
			TransportOptions: map[string]models.TransportOption{models.TransportTrain: {Class: "2A", Price: 3100}},
			AddOns:           []models.AddOn{{Name: "Ayurveda session", Price: 1800}},
		},
		Rating:   4.6,
		IsActive: true,
	}
	require.NoError(t, repo.Create(ctx, pkg))
	require.NotZero(t, pkg.ID)

	got, err := repo.FindByID(ctx, pkg.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Kerala Backwaters", got.Name)
	assert.Equal(t, []string{"Kochi", "Alleppey"}, got.Destinations)
	require.NotNil(t, got.BasePrice)
	assert.Equal(t, 12000.0, *got.BasePrice)
	assert.Nil(t, got.Price)
	require.NotNil(t, got.Pricing.BasePackagePrice)
	assert.Equal(t, 11000.0, *got.Pricing.BasePackagePrice)
	assert.Equal(t, 7000.0, got.Pricing.HotelOptions[models.HotelLuxury].PricePerNight)
	assert.Equal(t, "2A", got.Pricing.TransportOptions[models.TransportTrain].Class)
	assert.Len(t, got.Pricing.AddOns, 1)
	assert.True(t, got.IsActive)
}

func TestPackageRepository_FindMissingReturnsNil(t *testing.T) {
	repo := NewPackageRepository(setupTestDB(t))

	got, err := repo.FindByID(context.Background(), 404)
	assert.NoError(t, err)
	assert.Nil(t, got)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPackageRepository_RejectsUnknownCategory(t *testing.T) {
	repo := NewPackageRepository(setupTestDB(t))

	err := repo.Create(context.Background(), &models.Package{Name: "Odd", Category: "space"})
	assert.Error(t, err)
}

func TestHotelRepository_SearchFiltersByCityAndPrice(t *testing.T) {
	ctx := context.Background()
	repo := NewHotelRepository(setupTestDB(t))

	for _, h := range []models.Hotel{
		{Name: "Sea Breeze", City: "Goa", CheapestPrice: 2500, Rating: ptr(4.1)},
		{Name: "Palm Stay", City: "Goa", CheapestPrice: 1800},
		{Name: "Fort House", City: "Goa", CheapestPrice: 9000, Rating: ptr(4.8)},
		{Name: "Lake View", City: "Udaipur", CheapestPrice: 2000},
	} {
		h := h
		require.NoError(t, repo.Create(ctx, &h))
	}

	hotels, err := repo.Search(ctx, models.HotelQuery{City: "goa", MaxPricePerNight: 3000})
	require.NoError(t, err)
	require.Len(t, hotels, 2)
	assert.Equal(t, "Palm Stay", hotels[0].Name)
	assert.Nil(t, hotels[0].Rating)
	assert.Equal(t, "Sea Breeze", hotels[1].Name)
	require.NotNil(t, hotels[1].Rating)
	assert.Equal(t, 4.1, *hotels[1].Rating)

	limited, err := repo.Search(ctx, models.HotelQuery{City: "Goa", MaxPricePerNight: 10000, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestFlightRepository_SearchRespectsSeatsAndRoute(t *testing.T) {
	ctx := context.Background()
	repo := NewFlightRepository(setupTestDB(t))

	for _, f := range []models.Flight{
		{Airline: "IndiGo", FlightNumber: "6E-201", Origin: "DEL", Destination: "GOI", DepartDate: "2026-03-10", DurationMinutes: 150, Fares: models.FlightFares{Economy: 5200}, SeatsAvailable: 12},
		{Airline: "Vistara", FlightNumber: "UK-845", Origin: "DEL", Destination: "GOI", DepartDate: "2026-03-10", DurationMinutes: 155, Fares: models.FlightFares{Economy: 4800, Business: 15000}, SeatsAvailable: 1},
		{Airline: "Air India", FlightNumber: "AI-883", Origin: "GOI", Destination: "DEL", DepartDate: "2026-03-10", DurationMinutes: 160, Fares: models.FlightFares{Economy: 4500}, SeatsAvailable: 30},
	} {
		f := f
		require.NoError(t, repo.Create(ctx, &f))
	}

	flights, err := repo.Search(ctx, models.LegQuery{Origin: "DEL", Destination: "GOI", Date: "2026-03-10", MinSeats: 1})
	require.NoError(t, err)
	require.Len(t, flights, 2)
	assert.Equal(t, "UK-845", flights[0].FlightNumber)
	assert.Equal(t, 15000.0, flights[0].Fares.Business)

	flights, err = repo.Search(ctx, models.LegQuery{Origin: "DEL", Destination: "GOI", Date: "2026-03-10", MinSeats: 2})
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "6E-201", flights[0].FlightNumber)
}

func TestGroundRepositories_DecodeFares(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	trains := NewTrainRepository(db)
	buses := NewBusRepository(db)

	require.NoError(t, trains.Create(ctx, &models.Train{
		Operator: "Indian Railways", TrainNumber: "12051", Origin: "Mumbai", Destination: "Goa",
		DepartDate: "2026-03-10", DurationMinutes: 540, Fares: map[string]float64{"SL": 600, "3A": 1500},
	}))
	require.NoError(t, buses.Create(ctx, &models.Bus{
		Operator: "Paulo Travels", Origin: "Mumbai", Destination: "Goa",
		DepartDate: "2026-03-10", DurationMinutes: 720, Fares: map[string]float64{"ac": 1400, "sleeper": 1100},
	}))

	gotTrains, err := trains.Search(ctx, models.LegQuery{Origin: "Mumbai", Destination: "Goa", Date: "2026-03-10"})
	require.NoError(t, err)
	require.Len(t, gotTrains, 1)
	assert.Equal(t, 600.0, gotTrains[0].Fares["SL"])

	gotBuses, err := buses.Search(ctx, models.LegQuery{Origin: "Mumbai", Destination: "Goa", Date: "2026-03-10"})
	require.NoError(t, err)
	require.Len(t, gotBuses, 1)
	assert.Equal(t, 1100.0, gotBuses[0].Fares["sleeper"])

	none, err := buses.Search(ctx, models.LegQuery{Origin: "Goa", Destination: "Mumbai", Date: "2026-03-10"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBookingRepository_CreateFindList(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	pkgRepo := NewPackageRepository(db)
	repo := NewBookingRepository(db)

	pkg := &models.Package{Name: "Goa", Category: models.CategoryLeisure, BasePrice: ptr(8000)}
	require.NoError(t, pkgRepo.Create(ctx, pkg))

	start := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	first := &models.Booking{
		ID: "b-1", Reference: "TRV-00000001", UserID: "user-1", PackageID: pkg.ID,
		Preferences: models.PricingPreferences{HotelCategory: models.HotelStandard, TransportType: models.TransportFlight},
		Travel:      models.TravelDetails{StartDate: start, EndDate: start.AddDate(0, 0, 2), NumberOfTravelers: 2},
		Breakdown:   models.PricingBreakdown{Subtotal: 54000, TotalAmount: 61520},
		TotalAmount: 61520, Status: models.BookingStatusPending,
		CreatedAt: time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC),
	}
	second := *first
	second.ID, second.Reference = "b-2", "TRV-00000002"
	second.CreatedAt = first.CreatedAt.Add(time.Hour)

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, &second))

	got, err := repo.FindByID(ctx, "b-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 61520.0, got.TotalAmount)
	assert.Equal(t, models.HotelStandard, got.Preferences.HotelCategory)
	assert.True(t, start.Equal(got.Travel.StartDate))

	list, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b-2", list[0].ID)

	missing, err := repo.FindByID(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBookingRepository_RequiresExistingPackage(t *testing.T) {
	repo := NewBookingRepository(setupTestDB(t))

	err := repo.Create(context.Background(), &models.Booking{ID: "x", Reference: "TRV-X", UserID: "u", PackageID: 999, Status: "pending", CreatedAt: time.Now()})
	assert.Error(t, err)
}

func TestCityRepository_FindByNameIgnoresCase(t *testing.T) {
	ctx := context.Background()
	repo := NewCityRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, &models.City{Name: "Goa", Lat: 15.4909, Lon: 73.8278}))

	c, err := repo.FindByName(ctx, "GOA")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, 15.4909, c.Lat)

	missing, err := repo.FindByName(ctx, "Atlantis")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
