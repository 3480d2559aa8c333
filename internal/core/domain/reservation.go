package domain

import (
	"time"

	"github.com/google/uuid"
)

// swagger:model domain.Reservation
type Reservation struct {
	ID            uuid.UUID `json:"id"`
	VehicleID     string    `json:"vehicleId"`
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AvailabilityResult is the outcome of an availability check. Unavailability
// is data, not an error: Reason explains why no vehicle could take the slot.
type AvailabilityResult struct {
	Available bool     `json:"available"`
	Reason    string   `json:"reason,omitempty"`
	Vehicle   *Vehicle `json:"vehicle,omitempty"`
}
