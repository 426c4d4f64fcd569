package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelhub/booking-backend-go/internal/config"
	"github.com/travelhub/booking-backend-go/internal/database"
	"github.com/travelhub/booking-backend-go/internal/middleware"
	"github.com/travelhub/booking-backend-go/internal/models"
	"github.com/travelhub/booking-backend-go/internal/seed"
)

const testSecret = "test-secret"

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, seed.Run(context.Background(), db, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), 7))

	limiter := middleware.NewMemoryLimiter(limit, time.Minute)
	t.Cleanup(func() {
		limiter.Close()
		db.Close()
	})

	cfg := &config.Config{
		JWTSecret:            testSecret,
		SearchTimeout:        5 * time.Second,
		SearchCandidateLimit: 50,
	}
	return SetupRouter(cfg, db, limiter)
}

func do(t *testing.T, r *gin.Engine, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Code != http.StatusNoContent && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func token(t *testing.T, user string) string {
	tok, err := middleware.IssueToken(testSecret, user, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestHealth(t *testing.T) {
	r := setupRouter(t, 100)

	w, _ := do(t, r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestPackageOptions(t *testing.T) {
	r := setupRouter(t, 100)

	w, env := do(t, r, http.MethodGet, "/api/v1/packages/1/options", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var opts models.PackageOptions
	require.NoError(t, json.Unmarshal(env.Data, &opts))
	assert.Equal(t, 3000.0, opts.HotelOptions[models.HotelStandard].PricePerNight)
	assert.Len(t, opts.AddOns, 2)

	w, _ = do(t, r, http.MethodGet, "/api/v1/packages/abc/options", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/packages/999/options", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, env.Code)
}

func TestCalculatePrice(t *testing.T) {
	r := setupRouter(t, 100)
	body := `{"preferences":{"hotel_category":"standard","transport_type":"flight"},
		"start_date":"2027-02-10","end_date":"2027-02-12","travelers":2}`

	w, env := do(t, r, http.MethodPost, "/api/v1/packages/1/price", body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var b models.PricingBreakdown
	require.NoError(t, json.Unmarshal(env.Data, &b))
	assert.Equal(t, 44000.0, b.Subtotal)
	assert.Equal(t, 7920.0, b.Taxes)
	assert.Equal(t, 500.0, b.ServiceFee)
	assert.Equal(t, b.Subtotal+b.Taxes+b.ServiceFee-b.Discount, b.TotalAmount)
}

func TestCalculatePrice_BadRequests(t *testing.T) {
	r := setupRouter(t, 100)

	tests := []struct {
		name string
		path string
		body string
		code int
	}{
		{"malformed json", "/api/v1/packages/1/price", `{`, http.StatusBadRequest},
		{"missing preferences", "/api/v1/packages/1/price", `{"start_date":"2027-02-10","end_date":"2027-02-12","travelers":1}`, http.StatusBadRequest},
		{"unknown hotel category", "/api/v1/packages/1/price",
			`{"preferences":{"hotel_category":"palace","transport_type":"flight"},"start_date":"2027-02-10","end_date":"2027-02-12","travelers":1}`, http.StatusBadRequest},
		{"zero travelers", "/api/v1/packages/1/price",
			`{"preferences":{"hotel_category":"budget","transport_type":"bus"},"start_date":"2027-02-10","end_date":"2027-02-12"}`, http.StatusBadRequest},
		{"unknown package", "/api/v1/packages/999/price",
			`{"preferences":{"hotel_category":"budget","transport_type":"bus"},"start_date":"2027-02-10","end_date":"2027-02-12","travelers":1}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := do(t, r, http.MethodPost, tt.path, tt.body, "")
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestSearchPackages(t *testing.T) {
	r := setupRouter(t, 100)

	w, env := do(t, r, http.MethodGet,
		"/api/v1/search/packages?from=Mumbai&destination=Goa&startDate=2026-03-02&endDate=2026-03-05&travelers=2&budget=medium", "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res models.SearchResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.NotEmpty(t, res.Packages)
	assert.LessOrEqual(t, len(res.Packages), 20)
	assert.GreaterOrEqual(t, res.TotalFound, len(res.Packages))
	assert.Len(t, res.Sources, 4)

	w, _ = do(t, r, http.MethodGet, "/api/v1/search/packages?destination=Goa&startDate=2026-03-02&endDate=2026-03-05", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/v1/search/packages?from=Mumbai&destination=Goa&startDate=2026-03-02&endDate=2026-03-05&travelers=two", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookings(t *testing.T) {
	r := setupRouter(t, 100)
	body := `{"package_id":1,"preferences":{"hotel_category":"luxury","transport_type":"train","add_ons":[{"name":"Scuba diving","price":3500}]},
		"start_date":"2027-01-10","end_date":"2027-01-14","travelers":3}`

	w, _ := do(t, r, http.MethodPost, "/api/v1/bookings", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	alice := token(t, "alice")
	w, env := do(t, r, http.MethodPost, "/api/v1/bookings", body, alice)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "alice", created.UserID)
	assert.Equal(t, models.BookingStatusPending, created.Status)
	assert.Equal(t, created.Breakdown.ComputedTotal(), created.TotalAmount)
	assert.Equal(t, 2, created.Breakdown.RoomsNeeded)

	w, env = do(t, r, http.MethodGet, "/api/v1/bookings/"+created.ID, "", alice)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, created.Reference, got.Reference)

	w, _ = do(t, r, http.MethodGet, "/api/v1/bookings/"+created.ID, "", token(t, "bob"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/bookings", "", alice)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data  []models.Booking `json:"data"`
		Total int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Total)
}

func TestRateLimit(t *testing.T) {
	r := setupRouter(t, 1)

	w, _ := do(t, r, http.MethodGet, "/api/v1/packages/1/options", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := do(t, r, http.MethodGet, "/api/v1/packages/1/options", "", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, http.StatusTooManyRequests, env.Code)

	w, _ = do(t, r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
