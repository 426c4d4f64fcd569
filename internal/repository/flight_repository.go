package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/travelhub/booking-backend-go/internal/models"
)

// FlightRepository handles database operations for flights
type FlightRepository struct {
	db *sql.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *sql.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// Create inserts a flight leg and sets its ID
func (r *FlightRepository) Create(ctx context.Context, f *models.Flight) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO flights
		(airline, flight_number, origin, destination, depart_date, depart_time, duration_minutes,
		 price_economy, price_business, price_first, seats_available)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.Airline, f.FlightNumber, f.Origin, f.Destination, f.DepartDate, f.DepartTime, f.DurationMinutes,
		f.Fares.Economy, f.Fares.Business, f.Fares.First, f.SeatsAvailable,
	)
	if err != nil {
		return fmt.Errorf("failed to insert flight: %w", err)
	}

	f.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read flight id: %w", err)
	}
	return nil
}

// Search retrieves flights on a route and date with enough free seats, cheapest economy fare first
func (r *FlightRepository) Search(ctx context.Context, q models.LegQuery) ([]models.Flight, error) {
	query := `SELECT id, airline, flight_number, origin, destination, depart_date, depart_time,
		duration_minutes, price_economy, price_business, price_first, seats_available
		FROM flights
		WHERE origin = ? AND destination = ? AND depart_date = ? AND seats_available >= ?
		ORDER BY price_economy ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, q.Origin, q.Destination, q.Date, q.MinSeats)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	var flights []models.Flight
	for rows.Next() {
		var f models.Flight
		err := rows.Scan(
			&f.ID, &f.Airline, &f.FlightNumber, &f.Origin, &f.Destination, &f.DepartDate, &f.DepartTime,
			&f.DurationMinutes, &f.Fares.Economy, &f.Fares.Business, &f.Fares.First, &f.SeatsAvailable,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}
		flights = append(flights, f)
	}

	return flights, rows.Err()
}
