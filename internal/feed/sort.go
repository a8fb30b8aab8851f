package feed

import (
	"errors"
	"fmt"
	"slices"

	"movie_feed/internal/domain"
)

var ErrUnknownSortOrder = errors.New("unknown sort order")

// SortOrder orders credits by release date. Credits without a release date
// always come last.
type SortOrder int

const (
	SortDescending SortOrder = iota
	SortAscending
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "Descending":
		return SortDescending, nil
	case "Ascending":
		return SortAscending, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSortOrder, s)
	}
}

func (o SortOrder) String() string {
	if o == SortAscending {
		return "Ascending"
	}
	return "Descending"
}

// Compare orders two release dates for o.
func (o SortOrder) Compare(a, b *domain.Date) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case o == SortAscending:
		return a.Compare(*b)
	default:
		return b.Compare(*a)
	}
}

// Sort orders credits in place. Credits with equal dates keep their order.
func (o SortOrder) Sort(credits []domain.Credit) {
	slices.SortStableFunc(credits, func(a, b domain.Credit) int {
		return o.Compare(a.ReleaseDate(), b.ReleaseDate())
	})
}
