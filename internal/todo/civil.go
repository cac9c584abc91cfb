package todo

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// civilLayouts are the accepted input forms, tried in order.
var civilLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// zoneProbe is how far either side of a civil time we look for a zone
// transition. It must exceed the largest UTC offset plus the widest shift.
const zoneProbe = 36 * time.Hour

// CivilTime is a calendar date and wall-clock time without a zone.
type CivilTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// ParseCivilTime parses user input such as "2025-03-09 02:30".
// A bare date means midnight.
func ParseCivilTime(s string) (CivilTime, error) {
	s = strings.TrimSpace(s)
	for _, layout := range civilLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return civilOf(t), nil
		}
	}
	return CivilTime{}, fmt.Errorf("%w %q: expected YYYY-MM-DD, YYYY-MM-DD HH:MM or YYYY-MM-DD HH:MM:SS", ErrInvalidCivilTime, s)
}

func civilOf(t time.Time) CivilTime {
	return CivilTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

func (c CivilTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", c.Year, int(c.Month), c.Day, c.Hour, c.Minute, c.Second)
}

// In resolves c against loc. It fails with *InvalidDateTimeError when the
// wall-clock time is skipped by a forward transition or repeated by a
// backward one.
func (c CivilTime) In(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	naive := time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, 0, time.UTC)

	var offsets []int
	for _, probe := range []time.Time{naive.Add(-zoneProbe), naive, naive.Add(zoneProbe)} {
		_, off := probe.In(loc).Zone()
		if !slices.Contains(offsets, off) {
			offsets = append(offsets, off)
		}
	}

	var matches []time.Time
	for _, off := range offsets {
		candidate := naive.Add(-time.Duration(off) * time.Second).In(loc)
		if _, got := candidate.Zone(); got != off || civilOf(candidate) != c {
			continue
		}
		if !containsTime(matches, candidate) {
			matches = append(matches, candidate)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return time.Time{}, &InvalidDateTimeError{Civil: c, Location: loc.String(), Reason: "does not exist"}
	default:
		return time.Time{}, &InvalidDateTimeError{Civil: c, Location: loc.String(), Reason: "is ambiguous"}
	}
}

func containsTime(ts []time.Time, v time.Time) bool {
	for _, t := range ts {
		if t.Equal(v) {
			return true
		}
	}
	return false
}
