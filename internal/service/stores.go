package service

import (
	"context"

	"github.com/travelhub/booking-backend-go/internal/models"
)

// PackageStore looks up packages. A missing package is (nil, nil).
type PackageStore interface {
	FindByID(ctx context.Context, id int64) (*models.Package, error)
}

// HotelStore searches hotel inventory.
type HotelStore interface {
	Search(ctx context.Context, q models.HotelQuery) ([]models.Hotel, error)
}

// FlightStore searches flight legs.
type FlightStore interface {
	Search(ctx context.Context, q models.LegQuery) ([]models.Flight, error)
}

// TrainStore searches train services.
type TrainStore interface {
	Search(ctx context.Context, q models.LegQuery) ([]models.Train, error)
}

// BusStore searches bus services.
type BusStore interface {
	Search(ctx context.Context, q models.LegQuery) ([]models.Bus, error)
}

// CityStore resolves destination reference points. A missing city is (nil, nil).
type CityStore interface {
	FindByName(ctx context.Context, name string) (*models.City, error)
}

// BookingStore persists bookings. A missing booking is (nil, nil).
type BookingStore interface {
	Create(ctx context.Context, b *models.Booking) error
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
}
