package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/travelhub/booking-backend-go/internal/models"
)

// CityRepository handles database operations for destination cities
type CityRepository struct {
	db *sql.DB
}

// NewCityRepository creates a new city repository
func NewCityRepository(db *sql.DB) *CityRepository {
	return &CityRepository{db: db}
}

// Create inserts a city and sets its ID
func (r *CityRepository) Create(ctx context.Context, c *models.City) error {
	res, err := r.db.ExecContext(ctx, "INSERT INTO cities (name, lat, lon) VALUES (?, ?, ?)", c.Name, c.Lat, c.Lon)
	if err != nil {
		return fmt.Errorf("failed to insert city: %w", err)
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read city id: %w", err)
	}
	return nil
}

// FindByName retrieves a city by case-insensitive name, returning nil if unknown
func (r *CityRepository) FindByName(ctx context.Context, name string) (*models.City, error) {
	var c models.City
	err := r.db.QueryRowContext(ctx, "SELECT id, name, lat, lon FROM cities WHERE name = ?", name).
		Scan(&c.ID, &c.Name, &c.Lat, &c.Lon)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get city: %w", err)
	}
	return &c, nil
}
