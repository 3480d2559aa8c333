package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nevodrive/nevo_testdrive_service/internal/core/domain"
	"github.com/nevodrive/nevo_testdrive_service/internal/core/ports"

	"github.com/lib/pq"
)

type VehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{
		db,
	}
}

func (r *VehicleRepository) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	query := `INSERT INTO vehicles (id, type, location, available_from_time, available_to_time, available_days, minimum_minutes_between_bookings)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		vehicle.ID,
		vehicle.Type,
		vehicle.Location,
		vehicle.AvailableFromTime,
		vehicle.AvailableToTime,
		pq.Array(vehicle.AvailableDays),
		vehicle.MinimumMinutesBetweenBookings,
	).Scan(
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, fmt.Errorf("required field is missing")
			case "23505":
				return nil, fmt.Errorf("vehicle %s already exists", vehicle.ID)
			default:
				return nil, err
			}
		}
		return nil, err
	}
	return vehicle, nil
}

func (r *VehicleRepository) GetVehicleByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := `SELECT id, type, location, available_from_time, available_to_time, available_days, minimum_minutes_between_bookings, created_at, updated_at
              FROM vehicles WHERE id = $1`

	vehicle := &domain.Vehicle{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&vehicle.ID,
		&vehicle.Type,
		&vehicle.Location,
		&vehicle.AvailableFromTime,
		&vehicle.AvailableToTime,
		pq.Array(&vehicle.AvailableDays),
		&vehicle.MinimumMinutesBetweenBookings,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, domain.ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}

	return vehicle, nil
}

func (r *VehicleRepository) FindVehicles(ctx context.Context, filter ports.VehicleFilter) ([]*domain.Vehicle, error) {
	query := `SELECT id, type, location, available_from_time, available_to_time, available_days, minimum_minutes_between_bookings, created_at, updated_at
              FROM vehicles
              WHERE ($1 = '' OR LOWER(type) = LOWER($1))
                AND ($2 = '' OR LOWER(location) = LOWER($2))
              ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, filter.Type, filter.Location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle

	for rows.Next() {
		vehicle := &domain.Vehicle{}
		err := rows.Scan(
			&vehicle.ID,
			&vehicle.Type,
			&vehicle.Location,
			&vehicle.AvailableFromTime,
			&vehicle.AvailableToTime,
			pq.Array(&vehicle.AvailableDays),
			&vehicle.MinimumMinutesBetweenBookings,
			&vehicle.CreatedAt,
			&vehicle.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) ListLocations(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT location FROM vehicles ORDER BY location`
	return r.listStrings(ctx, query)
}

func (r *VehicleRepository) ListTypes(ctx context.Context, location string) ([]string, error) {
	query := `SELECT DISTINCT type FROM vehicles
              WHERE ($1 = '' OR LOWER(location) = LOWER($1))
              ORDER BY type`

	rows, err := r.db.QueryContext(ctx, query, location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStrings(rows)
}

func (r *VehicleRepository) listStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStrings(rows)
}

func scanStrings(rows *sql.Rows) ([]string, error) {
	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return values, nil
}
