package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/travelhub/booking-backend-go/internal/models"
)

// PackageRepository handles database operations for packages
type PackageRepository struct {
	db *sql.DB
}

// NewPackageRepository creates a new package repository
func NewPackageRepository(db *sql.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

// Create inserts a package and sets its ID
func (r *PackageRepository) Create(ctx context.Context, p *models.Package) error {
	destinations, err := encodeJSON(nonNilStrings(p.Destinations))
	if err != nil {
		return err
	}
	pricing, err := encodeJSON(p.Pricing)
	if err != nil {
		return err
	}
	inclusions, err := encodeJSON(nonNilStrings(p.Inclusions))
	if err != nil {
		return err
	}
	exclusions, err := encodeJSON(nonNilStrings(p.Exclusions))
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `INSERT INTO packages
		(name, description, duration_nights, destinations_json, category, base_price, price,
		 pricing_json, inclusions_json, exclusions_json, rating, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Description, p.DurationNights, destinations, p.Category,
		nullableFloat(p.BasePrice), nullableFloat(p.Price),
		pricing, inclusions, exclusions, p.Rating, p.IsActive, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert package: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read package id: %w", err)
	}
	p.ID, p.CreatedAt, p.UpdatedAt = id, now, now
	return nil
}

// FindByID retrieves a package by ID, returning nil if it does not exist
func (r *PackageRepository) FindByID(ctx context.Context, id int64) (*models.Package, error) {
	query := `SELECT id, name, description, duration_nights, destinations_json, category,
		base_price, price, pricing_json, inclusions_json, exclusions_json,
		rating, is_active, created_at, updated_at
		FROM packages WHERE id = ?`

	var (
		p                                 models.Package
		basePrice, price                  sql.NullFloat64
		destinations, pricing, incl, excl string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.DurationNights, &destinations, &p.Category,
		&basePrice, &price, &pricing, &incl, &excl,
		&p.Rating, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	p.BasePrice, p.Price = floatPtr(basePrice), floatPtr(price)
	for _, col := range []struct {
		raw string
		dst interface{}
	}{
		{destinations, &p.Destinations},
		{pricing, &p.Pricing},
		{incl, &p.Inclusions},
		{excl, &p.Exclusions},
	} {
		if err := decodeJSON(col.raw, col.dst); err != nil {
			return nil, fmt.Errorf("package %d: %w", id, err)
		}
	}

	return &p, nil
}

// Count returns the number of stored packages
func (r *PackageRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM packages").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count packages: %w", err)
	}
	return n, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
