package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Day short names indexed by UTC day-of-week, 0 = Sunday.
var dayShortNames = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// DayShortName returns the lowercase short name of t's UTC weekday.
func DayShortName(t time.Time) string {
	return dayShortNames[int(t.UTC().Weekday())]
}

// TimeToMinutes parses a time-of-day string ("HH:MM" or "HH:MM:SS") into
// minutes since midnight. A missing minute component counts as 0; a seconds
// component is ignored. Non-numeric or out-of-range components are an error.
func TimeToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	minute := 0
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	return hour*60 + minute, nil
}

// MinuteOfDay returns t's UTC time-of-day as minutes since midnight.
func MinuteOfDay(t time.Time) int {
	t = t.UTC()
	return t.Hour()*60 + t.Minute()
}

// CalendarDaysBetween returns the number of calendar days between the UTC
// dates of from and to, ignoring the time-of-day components.
func CalendarDaysBetween(from, to time.Time) int {
	from = from.UTC()
	to = to.UTC()
	fromDate := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDate := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDate.Sub(fromDate) / (24 * time.Hour))
}

var startDateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseStartDateTime parses an ISO-8601 instant and normalizes it to UTC.
// Inputs without an explicit offset are taken as UTC.
func ParseStartDateTime(s string) (time.Time, error) {
	for _, layout := range startDateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}

// Overlaps reports whether the proposed interval [start, end) conflicts with
// a stored reservation interval after the stored bounds are widened by
// bufferMins on each side. Only the stored side is widened: the buffer is the
// existing booking's protection, not the new request's.
//
// With a zero buffer the stored interval keeps half-open semantics, so
// back-to-back bookings are allowed. With a non-zero buffer the widened
// interval is closed on both ends: a booking starting exactly at
// existingEnd+buffer minutes is still a conflict, the first accepted start is
// one minute later.
func Overlaps(start, end, existingStart, existingEnd time.Time, bufferMins int) bool {
	buf := time.Duration(bufferMins) * time.Minute
	s2 := existingStart.Add(-buf)
	e2 := existingEnd.Add(buf)

	if bufferMins > 0 {
		startInside := !start.Before(s2) && !start.After(e2)
		endInside := !end.Before(s2) && !end.After(e2)
		contains := !start.After(s2) && !end.Before(e2)
		return startInside || endInside || contains
	}

	startInside := !start.Before(s2) && start.Before(e2)
	endInside := s2.Before(end) && !end.After(e2)
	contains := !start.After(s2) && !end.Before(e2)
	return startInside || endInside || contains
}
