package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/travelhub/booking-backend-go/internal/models"
)

// HotelRepository handles database operations for hotels
type HotelRepository struct {
	db *sql.DB
}

// NewHotelRepository creates a new hotel repository
func NewHotelRepository(db *sql.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// Create inserts a hotel and sets its ID
func (r *HotelRepository) Create(ctx context.Context, h *models.Hotel) error {
	photos, err := encodeJSON(nonNilStrings(h.Photos))
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `INSERT INTO hotels
		(name, city, address, cheapest_price, rating, photos_json, lat, lon, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.Name, h.City, h.Address, h.CheapestPrice, nullableFloat(h.Rating), photos, h.Lat, h.Lon, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert hotel: %w", err)
	}

	h.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read hotel id: %w", err)
	}
	h.CreatedAt = now
	return nil
}

// Search returns hotels in a city at or under the nightly price ceiling,
// cheapest first
func (r *HotelRepository) Search(ctx context.Context, q models.HotelQuery) ([]models.Hotel, error) {
	query := `SELECT id, name, city, address, cheapest_price, rating, photos_json, lat, lon, created_at
		FROM hotels
		WHERE city = ? AND cheapest_price <= ?
		ORDER BY cheapest_price ASC, rating DESC, id ASC`
	args := []interface{}{q.City, q.MaxPricePerNight}

	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query hotels: %w", err)
	}
	defer rows.Close()

	var hotels []models.Hotel
	for rows.Next() {
		var (
			h      models.Hotel
			rating sql.NullFloat64
			photos string
		)
		if err := rows.Scan(&h.ID, &h.Name, &h.City, &h.Address, &h.CheapestPrice, &rating, &photos, &h.Lat, &h.Lon, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan hotel: %w", err)
		}
		h.Rating = floatPtr(rating)
		if err := decodeJSON(photos, &h.Photos); err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}

	return hotels, rows.Err()
}
