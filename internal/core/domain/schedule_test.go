package domain

import (
	"errors"
	"testing"
	"time"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"08:00", 480},
		{"8:05", 485},
		{"08:30:15", 510},
		{"18", 1080},
		{"00:00", 0},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := TimeToMinutes(tc.in)
		if err != nil {
			t.Fatalf("TimeToMinutes(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("TimeToMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"", "ab:00", "25:00", "08:61", "-1:00"} {
		if _, err := TimeToMinutes(in); err == nil {
			t.Fatalf("TimeToMinutes(%q): expected error", in)
		}
	}
}

func TestDayShortName(t *testing.T) {
	sunday := time.Date(2026, time.September, 6, 12, 0, 0, 0, time.UTC)
	if got := DayShortName(sunday); got != "sun" {
		t.Fatalf("expected sun, got %s", got)
	}
	monday := time.Date(2026, time.September, 7, 12, 0, 0, 0, time.UTC)
	if got := DayShortName(monday); got != "mon" {
		t.Fatalf("expected mon, got %s", got)
	}

	// Local weekday differs from the UTC one here; UTC wins.
	plus2 := time.FixedZone("UTC+2", 2*60*60)
	lateSunday := time.Date(2026, time.September, 7, 0, 30, 0, 0, plus2)
	if got := DayShortName(lateSunday); got != "sun" {
		t.Fatalf("expected sun for UTC-normalized instant, got %s", got)
	}
}

func TestCalendarDaysBetween(t *testing.T) {
	from := time.Date(2026, time.September, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2026, time.September, 2, 0, 1, 0, 0, time.UTC)
	if got := CalendarDaysBetween(from, to); got != 1 {
		t.Fatalf("expected 1 calendar day, got %d", got)
	}

	from = time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)
	to = time.Date(2026, time.September, 15, 23, 0, 0, 0, time.UTC)
	if got := CalendarDaysBetween(from, to); got != 14 {
		t.Fatalf("expected 14 calendar days, got %d", got)
	}

	if got := CalendarDaysBetween(from, from); got != 0 {
		t.Fatalf("expected 0 calendar days, got %d", got)
	}
}

func TestParseStartDateTime(t *testing.T) {
	got, err := ParseStartDateTime("2026-09-08T10:00:00Z")
	if err != nil {
		t.Fatalf("ParseStartDateTime: %v", err)
	}
	if got.Hour() != 10 || got.Location() != time.UTC {
		t.Fatalf("expected 10:00 UTC, got %v", got)
	}

	// Offset inputs are normalized to UTC.
	got, err = ParseStartDateTime("2026-09-08T12:00:00+02:00")
	if err != nil {
		t.Fatalf("ParseStartDateTime: %v", err)
	}
	if got.Hour() != 10 {
		t.Fatalf("expected 10:00 UTC after normalization, got %v", got)
	}

	// Inputs with no offset are taken as UTC.
	got, err = ParseStartDateTime("2026-09-08T10:00:00")
	if err != nil {
		t.Fatalf("ParseStartDateTime: %v", err)
	}
	if got.Hour() != 10 {
		t.Fatalf("expected 10:00 UTC, got %v", got)
	}

	if _, err := ParseStartDateTime("not-a-date"); !errors.Is(err, ErrInvalidDateTime) {
		t.Fatalf("expected ErrInvalidDateTime, got %v", err)
	}
}

func TestOverlapsNoBuffer(t *testing.T) {
	day := time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h*60+m) * time.Minute) }

	existingStart := at(10, 0)
	existingEnd := at(10, 45)

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"identical", at(10, 0), at(10, 45), true},
		{"start inside", at(10, 30), at(11, 0), true},
		{"end inside", at(9, 30), at(10, 15), true},
		{"contains existing", at(9, 0), at(11, 0), true},
		{"back-to-back after", at(10, 45), at(11, 15), false},
		{"back-to-back before", at(9, 15), at(10, 0), false},
		{"disjoint", at(12, 0), at(12, 30), false},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.start, tc.end, existingStart, existingEnd, 0); got != tc.want {
			t.Fatalf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestOverlapsWithBuffer(t *testing.T) {
	day := time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h*60+m) * time.Minute) }

	// Existing booking 10:00-10:45 protected by a 15 minute buffer widens
	// to 09:45-11:00 on the stored side only.
	existingStart := at(10, 0)
	existingEnd := at(10, 45)

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"adjacent no gap", at(10, 45), at(11, 15), true},
		{"start at widened end", at(11, 0), at(11, 30), true},
		{"one minute past widened end", at(11, 1), at(11, 30), false},
		{"end at widened start", at(9, 0), at(9, 45), true},
		{"ends before widened start", at(9, 0), at(9, 44), false},
		{"well clear", at(13, 0), at(13, 45), false},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.start, tc.end, existingStart, existingEnd, 15); got != tc.want {
			t.Fatalf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestVehicleAllowsDay(t *testing.T) {
	v := &Vehicle{AvailableDays: []string{"Mon", "TUE", "wed"}}
	if !v.AllowsDay("mon") {
		t.Fatalf("expected case-insensitive day match")
	}
	if v.AllowsDay("sun") {
		t.Fatalf("expected sun to be unavailable")
	}
}

func TestVehicleWindow(t *testing.T) {
	v := &Vehicle{AvailableFromTime: "08:00", AvailableToTime: "18:00"}
	fromMin, toMin, err := v.Window()
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if fromMin != 480 || toMin != 1080 {
		t.Fatalf("expected 480..1080, got %d..%d", fromMin, toMin)
	}

	v = &Vehicle{AvailableFromTime: "bad", AvailableToTime: "18:00"}
	if _, _, err := v.Window(); err == nil {
		t.Fatalf("expected error for malformed window")
	}
}
