package domain

import (
	"fmt"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// Date is a calendar day without a time of day. It is stored as midnight UTC.
type Date struct {
	t time.Time
}

// Dates are limited to four-digit years. Arithmetic that leaves this range
// counts as overflow.
var (
	MinDate = Date{t: time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)}
	MaxDate = Date{t: time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)}
)

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the UTC calendar day of t.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// AddDays returns d shifted by n days. ok is false when the result leaves
// the MinDate..MaxDate range.
func (d Date) AddDays(n int64) (Date, bool) {
	const maxSpan = int64(3_700_000) // wider than the whole supported range
	if n > maxSpan || n < -maxSpan {
		return Date{}, false
	}

	shifted := Date{t: d.t.AddDate(0, 0, int(n))}
	if shifted.Before(MinDate) || shifted.After(MaxDate) {
		return Date{}, false
	}
	return shifted, true
}

func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

// Days returns the number of days since 0001-01-01.
func (d Date) Days() int64 {
	return (d.t.Unix() - MinDate.t.Unix()) / secondsPerDay
}

func (d Date) Format(layout string) string {
	return d.t.Format(layout)
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}
