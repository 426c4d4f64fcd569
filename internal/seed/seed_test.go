package seed

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelhub/booking-backend-go/internal/database"
	"github.com/travelhub/booking-backend-go/internal/models"
	"github.com/travelhub/booking-backend-go/internal/repository"
	"github.com/travelhub/booking-backend-go/internal/service"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

var start = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func TestRun_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	require.NoError(t, Run(ctx, db, start, 2))
	require.NoError(t, Run(ctx, db, start, 2))

	n, err := repository.NewPackageRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(packages()), n)

	var flights int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM flights").Scan(&flights))
	assert.Equal(t, 2*len(cities)*(len(cities)-1), flights)
}

func TestRun_InventoryIsSearchable(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, Run(ctx, db, start, 7))

	engine := service.NewPackageSearchEngine(
		repository.NewHotelRepository(db),
		repository.NewFlightRepository(db),
		repository.NewTrainRepository(db),
		repository.NewBusRepository(db),
		repository.NewCityRepository(db),
	)

	res, err := engine.SearchPackages(ctx, models.SearchQuery{
		From:        "Mumbai",
		Destination: "Goa",
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-05",
		Travelers:   2,
		Budget:      models.BudgetMedium,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Packages)

	for _, p := range res.Packages {
		assert.GreaterOrEqual(t, p.TotalPrice, 15000.0)
		assert.LessOrEqual(t, p.TotalPrice, 30000.0)
		assert.NotNil(t, p.HotelDistanceKm)
	}
	for _, s := range res.Sources {
		assert.Equal(t, models.SourceSucceeded, s.Status, s.Category)
	}
}

func TestRun_PackagesArePriceable(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, Run(ctx, db, start, 1))

	engine := service.NewPricingEngine(repository.NewPackageRepository(db))
	travel, err := service.ParseTravelDetails("2026-05-01", "2026-05-04", 2)
	require.NoError(t, err)

	for id := int64(1); id <= int64(len(packages())); id++ {
		b, err := engine.CalculatePackagePrice(ctx, id, models.PricingPreferences{
			HotelCategory: models.HotelStandard,
			TransportType: models.TransportTrain,
		}, travel)
		require.NoError(t, err, "package %d", id)
		assert.Positive(t, b.TotalAmount)
	}
}
