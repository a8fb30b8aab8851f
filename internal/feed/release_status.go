package feed

import (
	"errors"
	"fmt"
	"time"

	"movie_feed/internal/domain"
)

var (
	ErrMaxAgeSmaller        = errors.New("max_age must be larger than min_age")
	ErrUnknownReleaseStatus = errors.New("unknown release status")
)

type StatusKind int

// The zero StatusKind is HasReleaseDate, the default filter.
const (
	StatusHasReleaseDate StatusKind = iota
	StatusUnreleased
	StatusReleased
	StatusNoReleaseDate
	StatusAll
)

var statusNames = map[StatusKind]string{
	StatusHasReleaseDate: "HasReleaseDate",
	StatusUnreleased:     "Unreleased",
	StatusReleased:       "Released",
	StatusNoReleaseDate:  "NoReleaseDate",
	StatusAll:            "All",
}

func (k StatusKind) String() string {
	if name, ok := statusNames[k]; ok {
		return name
	}
	return fmt.Sprintf("StatusKind(%d)", int(k))
}

// ParseStatusKind accepts the query parameter spelling of a status.
func ParseStatusKind(s string) (StatusKind, error) {
	for kind, name := range statusNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownReleaseStatus, s)
}

// ReleaseStatus selects credits by release date relative to a given day.
// Bounds that are nil are not applied. The zero value admits every credit
// with a known release date.
type ReleaseStatus struct {
	kind                StatusKind
	maxTimeUntilRelease *time.Duration
	maxAge              *time.Duration
	minAge              *time.Duration
}

// Unreleased admits credits without a release date or releasing after today,
// optionally no further out than maxTimeUntilRelease.
func Unreleased(maxTimeUntilRelease *time.Duration) ReleaseStatus {
	return ReleaseStatus{kind: StatusUnreleased, maxTimeUntilRelease: maxTimeUntilRelease}
}

// Released admits credits released on or before today. maxAge bounds how old
// the release may be, minAge how recent.
func Released(maxAge, minAge *time.Duration) (ReleaseStatus, error) {
	if maxAge != nil && minAge != nil && *maxAge < *minAge {
		return ReleaseStatus{}, ErrMaxAgeSmaller
	}
	return ReleaseStatus{kind: StatusReleased, maxAge: maxAge, minAge: minAge}, nil
}

// HasReleaseDate admits any credit with a release date. Future releases are
// bounded by maxTimeUntilRelease, past ones by maxAge.
func HasReleaseDate(maxTimeUntilRelease, maxAge *time.Duration) ReleaseStatus {
	return ReleaseStatus{kind: StatusHasReleaseDate, maxTimeUntilRelease: maxTimeUntilRelease, maxAge: maxAge}
}

func NoReleaseDate() ReleaseStatus {
	return ReleaseStatus{kind: StatusNoReleaseDate}
}

func All() ReleaseStatus {
	return ReleaseStatus{kind: StatusAll}
}

func (s ReleaseStatus) Kind() StatusKind                    { return s.kind }
func (s ReleaseStatus) MaxTimeUntilRelease() *time.Duration { return s.maxTimeUntilRelease }
func (s ReleaseStatus) MaxAge() *time.Duration              { return s.maxAge }
func (s ReleaseStatus) MinAge() *time.Duration              { return s.minAge }

// Admits reports whether a credit released on release (nil when unknown)
// passes the filter on day now.
func (s ReleaseStatus) Admits(now domain.Date, release *domain.Date) bool {
	switch s.kind {
	case StatusUnreleased:
		if release == nil {
			return true
		}
		return release.After(now) && withinTimeUntilRelease(now, *release, s.maxTimeUntilRelease)
	case StatusReleased:
		if release == nil {
			return false
		}
		return !release.After(now) &&
			withinMaxAge(now, *release, s.maxAge) &&
			beyondMinAge(now, *release, s.minAge)
	case StatusHasReleaseDate:
		if release == nil {
			return false
		}
		return withinTimeUntilRelease(now, *release, s.maxTimeUntilRelease) &&
			withinMaxAge(now, *release, s.maxAge)
	case StatusNoReleaseDate:
		return release == nil
	case StatusAll:
		return true
	default:
		return false
	}
}

func (s ReleaseStatus) String() string {
	return s.kind.String()
}

func withinTimeUntilRelease(now, release domain.Date, bound *time.Duration) bool {
	if bound == nil {
		return true
	}
	limit, ok := now.AddDays(wholeDays(*bound))
	if !ok {
		return false
	}
	return release.Before(limit)
}

func withinMaxAge(now, release domain.Date, bound *time.Duration) bool {
	if bound == nil {
		return true
	}
	oldest, ok := now.AddDays(-wholeDays(*bound))
	if !ok {
		return false
	}
	return !release.Before(oldest)
}

func beyondMinAge(now, release domain.Date, bound *time.Duration) bool {
	if bound == nil {
		return true
	}
	newest, ok := now.AddDays(-wholeDays(*bound))
	if !ok {
		return false
	}
	return !release.After(newest)
}
