package matches

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Filter selects which statuses a view shows.
type Filter string

const FilterAll Filter = "all"

// ParseFilter accepts "all", "scheduled" or "completed" (case-insensitive, empty means all).
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FilterAll:
		return FilterAll, nil
	case Filter(StatusScheduled), Filter(StatusCompleted):
		return f, nil
	default:
		return "", &ValidationError{Fields: []string{"status"}}
	}
}

// Project filters records by status and sorts them by start time, earliest first.
// Records with the same start keep their input order. The input is not modified.
func Project(records []Match, filter Filter) ([]Match, error) {
	type keyed struct {
		m     Match
		start time.Time
	}
	out := make([]keyed, 0, len(records))
	for _, m := range records {
		if filter != FilterAll && Filter(m.Status) != filter {
			continue
		}
		w, err := m.Window()
		if err != nil {
			return nil, fmt.Errorf("match %s: %w", m.ID, err)
		}
		out = append(out, keyed{m: m, start: w.Start})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].start.Before(out[j].start) })

	list := make([]Match, len(out))
	for i, k := range out {
		list[i] = k.m
	}
	return list, nil
}

// Arrange orders records for export: those with a valid window by start time,
// then the malformed ones in input order. Nothing is dropped.
func Arrange(records []Match) []Match {
	var bad []Match
	ok := make([]Match, 0, len(records))
	for _, m := range records {
		if _, err := m.Window(); err != nil {
			bad = append(bad, m)
			continue
		}
		ok = append(ok, m)
	}
	// ok holds only parseable records, so Project cannot fail here
	sorted, _ := Project(ok, FilterAll)
	return append(sorted, bad...)
}
