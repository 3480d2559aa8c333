package domain

import (
	"strings"
	"time"
)

// swagger:model domain.Vehicle
type Vehicle struct {
	ID                            string    `json:"id"`
	Type                          string    `json:"type"`
	Location                      string    `json:"location"`
	AvailableFromTime             string    `json:"availableFromTime"`
	AvailableToTime               string    `json:"availableToTime"`
	AvailableDays                 []string  `json:"availableDays"`
	MinimumMinutesBetweenBookings int       `json:"minimumMinutesBetweenBookings"`
	CreatedAt                     time.Time `json:"createdAt"`
	UpdatedAt                     time.Time `json:"updatedAt"`
}

// AllowsDay reports whether day (a short name like "mon") is one of the
// vehicle's available days. Comparison is case-insensitive.
func (v *Vehicle) AllowsDay(day string) bool {
	for _, d := range v.AvailableDays {
		if strings.EqualFold(d, day) {
			return true
		}
	}
	return false
}

// Window returns the vehicle's daily availability window as minutes since
// midnight UTC.
func (v *Vehicle) Window() (fromMin, toMin int, err error) {
	fromMin, err = TimeToMinutes(v.AvailableFromTime)
	if err != nil {
		return 0, 0, err
	}
	toMin, err = TimeToMinutes(v.AvailableToTime)
	if err != nil {
		return 0, 0, err
	}
	return fromMin, toMin, nil
}
