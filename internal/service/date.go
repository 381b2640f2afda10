package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/fitlog/fitlog/internal/model"
)

// ErrInvalidDate is returned when a date input cannot be interpreted as a
// year-month-day value.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// Today returns the current calendar date at UTC midnight.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate interprets input as a dash-separated year-month-day value and
// returns it as a UTC-midnight time. An empty input yields today's date.
//
// The month field is 1-indexed. Out-of-range month or day values normalize
// forward calendar-style ("2023-13-01" is Jan 01 2024), but a field that is
// not an integer is an error. Computing in UTC keeps the calendar day
// independent of the host timezone.
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Today(), nil
	}

	parts := strings.Split(input, "-")
	if len(parts) != 3 {
		return time.Time{}, ErrInvalidDate
	}

	fields := make([]int, 3)
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, ErrInvalidDate
		}
		fields[i] = value
	}

	if fields[0] <= 0 || fields[1] <= 0 || fields[2] <= 0 {
		return time.Time{}, ErrInvalidDate
	}

	return time.Date(fields[0], time.Month(fields[1]), fields[2], 0, 0, 0, 0, time.UTC), nil
}

// DisplayDate renders t in the canonical wire format, e.g. "Sun Jan 01 2023".
func DisplayDate(t time.Time) string {
	return t.UTC().Format(model.DisplayDateLayout)
}

// DateOnly truncates t to UTC midnight, discarding any time-of-day component.
func DateOnly(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
