package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/travelhub/booking-backend-go/internal/models"
)

var errStoreDown = errors.New("connection refused")

type fakePackageStore struct {
	packages map[int64]*models.Package
	err      error
	calls    atomic.Int32
}

func (f *fakePackageStore) FindByID(_ context.Context, id int64) (*models.Package, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.packages[id], nil
}

type fakeHotelStore struct {
	hotels []models.Hotel
	err    error
	block  bool
	calls  atomic.Int32
}

func (f *fakeHotelStore) Search(ctx context.Context, q models.HotelQuery) ([]models.Hotel, error) {
	f.calls.Add(1)
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Hotel
	for _, h := range f.hotels {
		if h.City == q.City {
			out = append(out, h)
		}
	}
	return out, nil
}

// legKey is origin>destination@date
func legKey(origin, destination, date string) string {
	return origin + ">" + destination + "@" + date
}

type fakeFlightStore struct {
	legs  map[string][]models.Flight
	err   error
	calls atomic.Int32
}

func (f *fakeFlightStore) Search(_ context.Context, q models.LegQuery) ([]models.Flight, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.legs[legKey(q.Origin, q.Destination, q.Date)], nil
}

type fakeTrainStore struct {
	trains []models.Train
	err    error
	calls  atomic.Int32
}

func (f *fakeTrainStore) Search(_ context.Context, q models.LegQuery) ([]models.Train, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.trains, nil
}

type fakeBusStore struct {
	buses []models.Bus
	err   error
	calls atomic.Int32
}

func (f *fakeBusStore) Search(_ context.Context, q models.LegQuery) ([]models.Bus, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.buses, nil
}

type fakeCityStore struct {
	cities map[string]*models.City
}

func (f *fakeCityStore) FindByName(_ context.Context, name string) (*models.City, error) {
	return f.cities[name], nil
}

type fakeBookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
	err      error
}

func (f *fakeBookingStore) Create(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingStore) FindByID(_ context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingStore) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Booking
	for i := len(f.bookings) - 1; i >= 0; i-- {
		if f.bookings[i].UserID == userID {
			out = append(out, f.bookings[i])
		}
	}
	return out, nil
}

func ptr(v float64) *float64 { return &v }
