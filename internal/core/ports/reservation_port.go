package ports

import (
	"context"
	"time"

	"github.com/nevodrive/nevo_testdrive_service/internal/core/domain"
)

type ReservationRepository interface {
	CreateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	FindByVehicleID(ctx context.Context, vehicleID string) ([]*domain.Reservation, error)
	// FindConflicting reports whether any stored reservation for the vehicle
	// overlaps [start, end) once the stored bounds are widened by bufferMins
	// on each side.
	FindConflicting(ctx context.Context, vehicleID string, start, end time.Time, bufferMins int) (bool, error)
}

type ReservationService interface {
	Schedule(ctx context.Context, in ScheduleInput) (*domain.Reservation, error)
	CheckAvailability(ctx context.Context, location, vehicleType, startDateTime string, durationMins int) (*domain.AvailabilityResult, error)
	CheckAndBook(ctx context.Context, location, vehicleType string, in ScheduleInput) (*domain.Reservation, error)
	AvailableTimeSlots(ctx context.Context, vehicleID, date string, durationMins int) ([]string, error)
}

// ScheduleInput carries a booking request into the engine. Field-level
// validation happens once at the service boundary, never deeper.
type ScheduleInput struct {
	VehicleID     string `validate:"required"`
	StartDateTime string `validate:"required"`
	DurationMins  int    `validate:"required,min=1,max=480"`
	CustomerName  string `validate:"required"`
	CustomerEmail string `validate:"required,email"`
	CustomerPhone string `validate:"required"`
}
