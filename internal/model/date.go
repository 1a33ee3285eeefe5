package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidDate is returned by ParseDateStrict for input ParseDate cannot read.
var ErrInvalidDate = errors.New("invalid date")

// maxEpochMillis bounds epoch-millisecond input to +/-100,000,000 days.
const maxEpochMillis = 8.64e15

// Layouts carrying a zone designator name an absolute instant.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04Z07:00",
}

// Layouts without an explicit offset are read in local time.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// ParseDate normalizes v into a time.Time. It understands time values,
// ISO-8601 strings and epoch milliseconds. Anything else yields the zero
// time, which the rest of the package treats as an invalid date.
func ParseDate(v any) time.Time {
	switch x := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return x
	case *time.Time:
		if x == nil {
			return time.Time{}
		}
		return *x
	case string:
		return parseDateString(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return fromMillis(float64(n))
		}
		if f, err := x.Float64(); err == nil {
			return fromMillis(f)
		}
		return time.Time{}
	case int:
		return fromMillis(float64(x))
	case int8:
		return fromMillis(float64(x))
	case int16:
		return fromMillis(float64(x))
	case int32:
		return fromMillis(float64(x))
	case int64:
		return fromMillis(float64(x))
	case uint:
		return fromMillis(float64(x))
	case uint8:
		return fromMillis(float64(x))
	case uint16:
		return fromMillis(float64(x))
	case uint32:
		return fromMillis(float64(x))
	case uint64:
		return fromMillis(float64(x))
	case float32:
		return fromMillis(float64(x))
	case float64:
		return fromMillis(x)
	}
	return time.Time{}
}

// ParseDateStrict is ParseDate with an error instead of the zero time.
func ParseDateStrict(v any) (time.Time, error) {
	t := ParseDate(v)
	if !ValidDate(t) {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, v)
	}
	return t, nil
}

// ValidDate reports whether t holds a real date.
func ValidDate(t time.Time) bool { return !t.IsZero() }

// SameDay compares the local calendar day of a and b. Two invalid dates
// compare equal; an invalid date never matches a valid one.
func SameDay(a, b time.Time) bool {
	if !ValidDate(a) || !ValidDate(b) {
		return !ValidDate(a) && !ValidDate(b)
	}
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

func parseDateString(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

func fromMillis(ms float64) time.Time {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}
	}
	return time.UnixMilli(int64(ms))
}
