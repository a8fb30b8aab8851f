package feed

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var ErrInvalidDuration = errors.New("invalid duration")

const day = 24 * time.Hour

// Months and years follow the usual human-readable convention of 30.44 and
// 365.25 days.
var durationUnits = map[string]time.Duration{
	"nsec": time.Nanosecond, "ns": time.Nanosecond,
	"usec": time.Microsecond, "us": time.Microsecond,
	"msec": time.Millisecond, "ms": time.Millisecond,
	"seconds": time.Second, "second": time.Second, "sec": time.Second, "s": time.Second,
	"minutes": time.Minute, "minute": time.Minute, "min": time.Minute, "m": time.Minute,
	"hours": time.Hour, "hour": time.Hour, "hr": time.Hour, "h": time.Hour,
	"days": day, "day": day, "d": day,
	"weeks": 7 * day, "week": 7 * day, "w": 7 * day,
	"months": 2_630_016 * time.Second, "month": 2_630_016 * time.Second, "M": 2_630_016 * time.Second,
	"years": 31_557_600 * time.Second, "year": 31_557_600 * time.Second, "y": 31_557_600 * time.Second,
}

// ParseDuration parses durations such as "5h", "2 months" or "1w 3d".
func ParseDuration(s string) (time.Duration, error) {
	rest := strings.TrimSpace(s)
	if rest == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidDuration)
	}

	var total time.Duration
	for rest != "" {
		digits := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsDigit(r) })
		if digits == 0 {
			return 0, fmt.Errorf("%w %q: expected number", ErrInvalidDuration, s)
		}
		if digits < 0 {
			return 0, fmt.Errorf("%w %q: missing unit after %s", ErrInvalidDuration, s, rest)
		}

		n, err := strconv.ParseInt(rest[:digits], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %v", ErrInvalidDuration, s, err)
		}
		rest = strings.TrimLeft(rest[digits:], " ")

		end := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsLetter(r) })
		if end < 0 {
			end = len(rest)
		}
		name := rest[:end]
		unit, ok := durationUnits[name]
		if !ok {
			return 0, fmt.Errorf("%w %q: unknown unit %q", ErrInvalidDuration, s, name)
		}
		rest = strings.TrimLeft(rest[end:], " ")

		if n > int64(math.MaxInt64/unit) {
			return 0, fmt.Errorf("%w %q: out of range", ErrInvalidDuration, s)
		}
		part := time.Duration(n) * unit
		if total > math.MaxInt64-part {
			return 0, fmt.Errorf("%w %q: out of range", ErrInvalidDuration, s)
		}
		total += part
	}

	return total, nil
}

// wholeDays drops any remainder below one day.
func wholeDays(d time.Duration) int64 {
	return int64(d / day)
}
