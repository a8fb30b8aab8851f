package feed

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Request is a validated feed request.
type Request struct {
	Size          Size
	ReleaseStatus ReleaseStatus
	SortOrder     SortOrder
}

// ParseQuery builds a Request from the size, sort_order and release_status
// parameters plus the duration parameters of the chosen status
// (max_time_until_release, max_age, min_age). Missing parameters take their
// defaults.
func ParseQuery(values url.Values) (Request, error) {
	var req Request

	if raw := values.Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Request{}, fmt.Errorf("size: invalid number %q", raw)
		}
		size, err := NewSize(n)
		if err != nil {
			return Request{}, fmt.Errorf("size: %w", err)
		}
		req.Size = size
	}

	if raw := values.Get("sort_order"); raw != "" {
		order, err := ParseSortOrder(raw)
		if err != nil {
			return Request{}, fmt.Errorf("sort_order: %w", err)
		}
		req.SortOrder = order
	}

	status, err := parseReleaseStatus(values)
	if err != nil {
		return Request{}, err
	}
	req.ReleaseStatus = status

	return req, nil
}

func parseReleaseStatus(values url.Values) (ReleaseStatus, error) {
	raw := values.Get("release_status")
	if raw == "" {
		return ReleaseStatus{}, nil
	}

	kind, err := ParseStatusKind(raw)
	if err != nil {
		return ReleaseStatus{}, fmt.Errorf("release_status: %w", err)
	}

	switch kind {
	case StatusUnreleased:
		untilRelease, err := durationParam(values, "max_time_until_release")
		if err != nil {
			return ReleaseStatus{}, err
		}
		return Unreleased(untilRelease), nil
	case StatusReleased:
		maxAge, err := durationParam(values, "max_age")
		if err != nil {
			return ReleaseStatus{}, err
		}
		minAge, err := durationParam(values, "min_age")
		if err != nil {
			return ReleaseStatus{}, err
		}
		return Released(maxAge, minAge)
	case StatusHasReleaseDate:
		untilRelease, err := durationParam(values, "max_time_until_release")
		if err != nil {
			return ReleaseStatus{}, err
		}
		maxAge, err := durationParam(values, "max_age")
		if err != nil {
			return ReleaseStatus{}, err
		}
		return HasReleaseDate(untilRelease, maxAge), nil
	case StatusNoReleaseDate:
		return NoReleaseDate(), nil
	default:
		return All(), nil
	}
}

func durationParam(values url.Values, name string) (*time.Duration, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := ParseDuration(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &d, nil
}
