package service

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/fitlog/fitlog/internal/model"
)

// ErrInvalidDuration is returned when a duration value is missing,
// non-numeric, or outside the accepted range.
var ErrInvalidDuration = errors.New("duration must be a number of minutes between 0 and 600")

// ParseMinutes parses raw as integer minutes. The input may carry a
// fractional part, which is truncated, not rounded. Valid results lie in
// [MinDurationMinutes, MaxDurationMinutes].
func ParseMinutes(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidDuration
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrInvalidDuration
	}

	minutes := int(value) // truncates toward zero
	if minutes < model.MinDurationMinutes || minutes > model.MaxDurationMinutes {
		return 0, ErrInvalidDuration
	}

	return minutes, nil
}

// IsValidDuration reports whether raw parses to an acceptable duration.
func IsValidDuration(raw string) bool {
	_, err := ParseMinutes(raw)
	return err == nil
}
