package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nevodrive/nevo_testdrive_service/internal/core/domain"
	"github.com/nevodrive/nevo_testdrive_service/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	bookingHorizonDays = 14
	slotStepMinutes    = 30
)

// ReservationService validates booking requests against a vehicle's weekly
// schedule and existing reservations, and persists accepted bookings.
//
// There is no transaction spanning the conflict check and the insert: two
// concurrent requests for the same slot can both pass the check and both
// write.
type ReservationService struct {
	reservationRepo ports.ReservationRepository
	vehicleRepo     ports.VehicleRepository
	logger          ports.LoggerPort
	validate        *validator.Validate
	clock           func() time.Time
}

func NewReservationService(
	reservationRepo ports.ReservationRepository,
	vehicleRepo ports.VehicleRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		logger:          logger,
		validate:        validate,
		clock:           time.Now,
	}
}

// bookingWindowReason runs the vehicle-independent checks on a proposed start.
// An empty result means the window is acceptable.
func (s *ReservationService) bookingWindowReason(start, now time.Time) string {
	if start.Before(now) {
		return "Cannot book in the past"
	}
	if domain.CalendarDaysBetween(now, start) > bookingHorizonDays {
		return "Bookings allowed up to 14 days in advance"
	}
	return ""
}

// vehicleSlotReason checks [start, end) against one vehicle: day of week,
// daily window, then conflicts. First failure wins.
func (s *ReservationService) vehicleSlotReason(ctx context.Context, vehicle *domain.Vehicle, start, end time.Time) (string, error) {
	day := domain.DayShortName(start)
	if !vehicle.AllowsDay(day) {
		return fmt.Sprintf("Vehicle not available on %s", day), nil
	}

	fromMin, toMin, err := vehicle.Window()
	if err != nil {
		s.logger.Warn("Vehicle has malformed availability window", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicle.ID,
		})
		return "Vehicle availability window is invalid", nil
	}

	// Minutes are taken from the UTC time-of-day components only. An
	// interval crossing midnight wraps endMin below startMin and is
	// rejected regardless of the window bounds.
	startMin := domain.MinuteOfDay(start)
	endMin := domain.MinuteOfDay(end)
	if endMin < startMin || !(startMin >= fromMin && endMin <= toMin) {
		return "Requested time outside vehicle availability", nil
	}

	conflict, err := s.reservationRepo.FindConflicting(ctx, vehicle.ID, start, end, vehicle.MinimumMinutesBetweenBookings)
	if err != nil {
		return "", fmt.Errorf("checking conflicts: %w", err)
	}
	if conflict {
		if vehicle.MinimumMinutesBetweenBookings > 0 {
			return fmt.Sprintf("Vehicle requires %d minutes between bookings", vehicle.MinimumMinutesBetweenBookings), nil
		}
		return "Vehicle already booked for that time", nil
	}

	return "", nil
}

func (s *ReservationService) Schedule(ctx context.Context, in ports.ScheduleInput) (*domain.Reservation, error) {
	if err := s.validate.Struct(in); err != nil {
		s.logger.Error("Reservation validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, in.VehicleID)
	if err != nil {
		s.logger.Error("Failed to look up vehicle", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": in.VehicleID,
		})
		return nil, err
	}

	start, err := domain.ParseStartDateTime(in.StartDateTime)
	if err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(in.DurationMins) * time.Minute)
	now := s.clock().UTC()

	if reason := s.bookingWindowReason(start, now); reason != "" {
		return nil, errors.New(reason)
	}

	reason, err := s.vehicleSlotReason(ctx, vehicle, start, end)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return nil, errors.New(reason)
	}

	reservation := &domain.Reservation{
		ID:            uuid.New(),
		VehicleID:     vehicle.ID,
		StartDateTime: start,
		EndDateTime:   end,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
	}

	created, err := s.reservationRepo.CreateReservation(ctx, reservation)
	if err != nil {
		s.logger.Error("Failed to create reservation", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicle.ID,
		})
		return nil, err
	}

	s.logger.Info("Reservation created", map[string]interface{}{
		"reservation_id": created.ID,
		"vehicle_id":     created.VehicleID,
		"start":          created.StartDateTime,
	})

	return created, nil
}

// CheckAvailability never errors for "nothing available": that outcome is
// returned as data. Only malformed filters and store failures error out.
func (s *ReservationService) CheckAvailability(ctx context.Context, location, vehicleType, startDateTime string, durationMins int) (*domain.AvailabilityResult, error) {
	start, err := domain.ParseStartDateTime(startDateTime)
	if err != nil {
		return &domain.AvailabilityResult{Available: false, Reason: "Invalid startDateTime format"}, nil
	}
	end := start.Add(time.Duration(durationMins) * time.Minute)
	now := s.clock().UTC()

	if reason := s.bookingWindowReason(start, now); reason != "" {
		return &domain.AvailabilityResult{Available: false, Reason: reason}, nil
	}

	vehicles, err := s.vehicleRepo.FindVehicles(ctx, ports.VehicleFilter{
		Type:     strings.ToLower(vehicleType),
		Location: strings.ToLower(location),
	})
	if err != nil {
		return nil, fmt.Errorf("error checking availability: %w", err)
	}
	if len(vehicles) == 0 {
		return &domain.AvailabilityResult{
			Available: false,
			Reason:    fmt.Sprintf("No %s vehicles available at %s", vehicleType, location),
		}, nil
	}

	// First passing vehicle in stored order wins.
	for _, vehicle := range vehicles {
		reason, err := s.vehicleSlotReason(ctx, vehicle, start, end)
		if err != nil {
			return nil, fmt.Errorf("error checking availability: %w", err)
		}
		if reason == "" {
			return &domain.AvailabilityResult{Available: true, Vehicle: vehicle}, nil
		}
	}

	return &domain.AvailabilityResult{Available: false, Reason: "No available vehicles"}, nil
}

func (s *ReservationService) CheckAndBook(ctx context.Context, location, vehicleType string, in ports.ScheduleInput) (*domain.Reservation, error) {
	result, err := s.CheckAvailability(ctx, location, vehicleType, in.StartDateTime, in.DurationMins)
	if err != nil {
		return nil, err
	}
	if !result.Available {
		return nil, errors.New(result.Reason)
	}

	in.VehicleID = result.Vehicle.ID
	reservation, err := s.Schedule(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("booking failed: %w", err)
	}
	return reservation, nil
}

// AvailableTimeSlots lists bookable "HH:MM" starts for a vehicle on a date,
// stepping every 30 minutes across the vehicle's daily window.
func (s *ReservationService) AvailableTimeSlots(ctx context.Context, vehicleID, date string, durationMins int) ([]string, error) {
	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, domain.ErrInvalidDateTime
	}

	slots := []string{}
	if !vehicle.AllowsDay(domain.DayShortName(day)) {
		return slots, nil
	}

	fromMin, toMin, err := vehicle.Window()
	if err != nil {
		return nil, fmt.Errorf("vehicle %s availability window: %w", vehicle.ID, err)
	}

	existing, err := s.reservationRepo.FindByVehicleID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	for m := fromMin; m+durationMins <= toMin; m += slotStepMinutes {
		start := day.Add(time.Duration(m) * time.Minute)
		if start.Before(now) {
			continue
		}
		end := start.Add(time.Duration(durationMins) * time.Minute)

		conflict := false
		for _, r := range existing {
			if domain.Overlaps(start, end, r.StartDateTime, r.EndDateTime, vehicle.MinimumMinutesBetweenBookings) {
				conflict = true
				break
			}
		}
		if !conflict {
			slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
		}
	}

	return slots, nil
}
