package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate_DateOnly(t *testing.T) {
	got, err := ParseDate("2024-01-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseDate_RFC3339(t *testing.T) {
	got, err := ParseDate("2024-01-05T23:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Day() != 5 || got.Hour() != 23 {
		t.Errorf("unexpected parse result: %v", got)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"not-a-date", "05/01/2024", ""} {
		_, err := ParseDate(s)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseDate(%q): expected ErrInvalidInput, got %v", s, err)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 1, 5, 14, 45, 0, 0, time.UTC)
	if got := FormatDate(d); got != "Fri Jan 05 2024" {
		t.Errorf("expected %q, got %q", "Fri Jan 05 2024", got)
	}
}

func TestWithinRange_InclusiveBounds(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"exactly from", from, true},
		{"exactly to", to, true},
		{"inside", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), true},
		{"before", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{"after", time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		if got := WithinRange(tc.date, from, to); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestWithinRange_IgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2024, 1, 5, 22, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 5, 1, 0, 0, 0, time.UTC)
	date := time.Date(2024, 1, 5, 12, 30, 0, 0, time.UTC)

	// All three arguments land on the same calendar day, so the entry matches
	// even though the raw timestamps would read from > date > to.
	if !WithinRange(date, from, to) {
		t.Error("same-day entry must match regardless of time-of-day")
	}
}
