package service

import (
	"time"

	"github.com/fitlog/fitlog/internal/model"
)

// FilterLog returns the order-preserving subsequence of entries whose
// calendar date falls within the inclusive [from, to] window. Comparison is
// at date granularity; time-of-day never affects inclusion. A nil bound is
// open-ended, so a lone from or lone to still filters.
//
// When limit is non-nil, the surviving sequence is truncated to its first
// *limit entries in existing order, not the most recent ones.
func FilterLog(entries []*model.Exercise, from, to *time.Time, limit *int) []*model.Exercise {
	var fromDay, toDay time.Time
	if from != nil {
		fromDay = DateOnly(*from)
	}
	if to != nil {
		toDay = DateOnly(*to)
	}

	filtered := make([]*model.Exercise, 0, len(entries))
	for _, entry := range entries {
		day := DateOnly(entry.Date)
		if from != nil && day.Before(fromDay) {
			continue
		}
		if to != nil && day.After(toDay) {
			continue
		}
		filtered = append(filtered, entry)
	}

	if limit != nil && *limit >= 0 && len(filtered) > *limit {
		filtered = filtered[:*limit]
	}

	return filtered
}
