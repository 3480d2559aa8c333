package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nevodrive/nevo_testdrive_service/internal/core/domain"

	"github.com/lib/pq"
)

type ReservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{
		db,
	}
}

func (r *ReservationRepository) CreateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	query := `INSERT INTO reservations (id, vehicle_id, start_date_time, end_date_time, customer_name, customer_email, customer_phone)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		reservation.ID,
		reservation.VehicleID,
		reservation.StartDateTime,
		reservation.EndDateTime,
		reservation.CustomerName,
		reservation.CustomerEmail,
		reservation.CustomerPhone,
	).Scan(
		&reservation.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, fmt.Errorf("required field is missing")
			case "23503":
				return nil, domain.ErrVehicleNotFound
			default:
				return nil, err
			}
		}
		return nil, err
	}
	return reservation, nil
}

func (r *ReservationRepository) FindByVehicleID(ctx context.Context, vehicleID string) ([]*domain.Reservation, error) {
	query := `SELECT id, vehicle_id, start_date_time, end_date_time, customer_name, customer_email, customer_phone, created_at
              FROM reservations WHERE vehicle_id = $1
              ORDER BY start_date_time`

	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []*domain.Reservation

	for rows.Next() {
		reservation := &domain.Reservation{}
		err := rows.Scan(
			&reservation.ID,
			&reservation.VehicleID,
			&reservation.StartDateTime,
			&reservation.EndDateTime,
			&reservation.CustomerName,
			&reservation.CustomerEmail,
			&reservation.CustomerPhone,
			&reservation.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return reservations, nil
}

// FindConflicting applies the three-way overlap test against stored
// reservations widened by the buffer. Boundary treatment follows
// domain.Overlaps: half-open without a buffer, closed with one.
func (r *ReservationRepository) FindConflicting(ctx context.Context, vehicleID string, start, end time.Time, bufferMins int) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM reservations
		WHERE vehicle_id = $1
		  AND (
			(start_date_time - make_interval(mins => $4::int) <= $2 AND $2 < end_date_time + make_interval(mins => $4::int))
			OR (start_date_time - make_interval(mins => $4::int) < $3 AND $3 <= end_date_time + make_interval(mins => $4::int))
			OR ($2 <= start_date_time - make_interval(mins => $4::int) AND end_date_time + make_interval(mins => $4::int) <= $3)
		  )
	)`
	if bufferMins > 0 {
		query = `SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE vehicle_id = $1
			  AND (
				(start_date_time - make_interval(mins => $4::int) <= $2 AND $2 <= end_date_time + make_interval(mins => $4::int))
				OR (start_date_time - make_interval(mins => $4::int) <= $3 AND $3 <= end_date_time + make_interval(mins => $4::int))
				OR ($2 <= start_date_time - make_interval(mins => $4::int) AND end_date_time + make_interval(mins => $4::int) <= $3)
			  )
		)`
	}

	var conflict bool
	err := r.db.QueryRowContext(ctx, query, vehicleID, start, end, bufferMins).Scan(&conflict)
	if err != nil {
		return false, err
	}
	return conflict, nil
}
