package service

import (
	"testing"
	"time"

	"github.com/fitlog/fitlog/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(id string, date time.Time) *model.Exercise {
	return &model.Exercise{ID: id, Description: "run", Duration: 30, Date: date}
}

func ids(entries []*model.Exercise) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterLog(t *testing.T) {
	// Deliberately not sorted by date; the filter must preserve
	// insertion order, not re-sort.
	entries := []*model.Exercise{
		entry("a", day(2023, time.January, 15)),
		entry("b", day(2022, time.December, 31)),
		entry("c", day(2023, time.January, 1)),
		entry("d", day(2023, time.January, 31)),
		entry("e", day(2023, time.February, 1)),
	}

	from := day(2023, time.January, 1)
	to := day(2023, time.January, 31)
	limitThree := 3
	limitZero := 0

	tests := []struct {
		name  string
		from  *time.Time
		to    *time.Time
		limit *int
		want  []string
	}{
		{"no_filters", nil, nil, nil, []string{"a", "b", "c", "d", "e"}},
		{"full_range", &from, &to, nil, []string{"a", "c", "d"}},
		{"lone_from_open_ended", &from, nil, nil, []string{"a", "c", "d", "e"}},
		{"lone_to_open_ended", nil, &to, nil, []string{"a", "b", "c", "d"}},
		{"limit_only", nil, nil, &limitThree, []string{"a", "b", "c"}},
		{"limit_zero", nil, nil, &limitZero, []string{}},
		{"range_then_limit", &from, &to, &limitThree, []string{"a", "c", "d"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := FilterLog(entries, test.from, test.to, test.limit)
			if !equalIDs(ids(got), test.want) {
				t.Fatalf("expected %v, got %v", test.want, ids(got))
			}
		})
	}
}

func TestFilterLog_DateGranularity(t *testing.T) {
	// Boundary entries carry a time-of-day component; inclusion must not
	// depend on it.
	entries := []*model.Exercise{
		entry("start", time.Date(2023, time.January, 1, 23, 59, 0, 0, time.UTC)),
		entry("end", time.Date(2023, time.January, 31, 0, 0, 1, 0, time.UTC)),
	}

	from := day(2023, time.January, 1)
	to := day(2023, time.January, 31)

	got := FilterLog(entries, &from, &to, nil)
	if !equalIDs(ids(got), []string{"start", "end"}) {
		t.Fatalf("expected both boundary entries, got %v", ids(got))
	}
}

func TestFilterLog_LimitLargerThanLog(t *testing.T) {
	entries := []*model.Exercise{
		entry("a", day(2023, time.March, 1)),
		entry("b", day(2023, time.March, 2)),
	}

	limit := 5
	got := FilterLog(entries, nil, nil, &limit)
	if len(got) != 2 {
		t.Fatalf("expected all 2 entries, got %d", len(got))
	}
}
