package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/travelhub/booking-backend-go/internal/models"
)

// TrainRepository handles database operations for trains
type TrainRepository struct {
	db *sql.DB
}

// NewTrainRepository creates a new train repository
func NewTrainRepository(db *sql.DB) *TrainRepository {
	return &TrainRepository{db: db}
}

// Create inserts a train service and sets its ID
func (r *TrainRepository) Create(ctx context.Context, t *models.Train) error {
	fares, err := encodeJSON(t.Fares)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `INSERT INTO trains
		(operator, train_number, origin, destination, depart_date, duration_minutes, fares_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Operator, t.TrainNumber, t.Origin, t.Destination, t.DepartDate, t.DurationMinutes, fares,
	)
	if err != nil {
		return fmt.Errorf("failed to insert train: %w", err)
	}

	t.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read train id: %w", err)
	}
	return nil
}

// Search retrieves trains on a route and date
func (r *TrainRepository) Search(ctx context.Context, q models.LegQuery) ([]models.Train, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, operator, train_number, origin, destination,
		depart_date, duration_minutes, fares_json
		FROM trains
		WHERE origin = ? AND destination = ? AND depart_date = ?
		ORDER BY id ASC`, q.Origin, q.Destination, q.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to query trains: %w", err)
	}
	defer rows.Close()

	var trains []models.Train
	for rows.Next() {
		var (
			t     models.Train
			fares string
		)
		if err := rows.Scan(&t.ID, &t.Operator, &t.TrainNumber, &t.Origin, &t.Destination, &t.DepartDate, &t.DurationMinutes, &fares); err != nil {
			return nil, fmt.Errorf("failed to scan train: %w", err)
		}
		if err := decodeJSON(fares, &t.Fares); err != nil {
			return nil, err
		}
		trains = append(trains, t)
	}

	return trains, rows.Err()
}

// BusRepository handles database operations for buses
type BusRepository struct {
	db *sql.DB
}

// NewBusRepository creates a new bus repository
func NewBusRepository(db *sql.DB) *BusRepository {
	return &BusRepository{db: db}
}

// Create inserts a bus service and sets its ID
func (r *BusRepository) Create(ctx context.Context, b *models.Bus) error {
	fares, err := encodeJSON(b.Fares)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `INSERT INTO buses
		(operator, origin, destination, depart_date, duration_minutes, fares_json)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.Operator, b.Origin, b.Destination, b.DepartDate, b.DurationMinutes, fares,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bus: %w", err)
	}

	b.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read bus id: %w", err)
	}
	return nil
}

// Search retrieves buses on a route and date
func (r *BusRepository) Search(ctx context.Context, q models.LegQuery) ([]models.Bus, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, operator, origin, destination,
		depart_date, duration_minutes, fares_json
		FROM buses
		WHERE origin = ? AND destination = ? AND depart_date = ?
		ORDER BY id ASC`, q.Origin, q.Destination, q.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to query buses: %w", err)
	}
	defer rows.Close()

	var buses []models.Bus
	for rows.Next() {
		var (
			b     models.Bus
			fares string
		)
		if err := rows.Scan(&b.ID, &b.Operator, &b.Origin, &b.Destination, &b.DepartDate, &b.DurationMinutes, &fares); err != nil {
			return nil, fmt.Errorf("failed to scan bus: %w", err)
		}
		if err := decodeJSON(fares, &b.Fares); err != nil {
			return nil, err
		}
		buses = append(buses, b)
	}

	return buses, rows.Err()
}
