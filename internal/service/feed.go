package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sourcegraph/conc/pool"

	"movie_feed/internal/domain"
	"movie_feed/internal/feed"
)

// WatchList is the set of people the watcher refreshes and the request used
// to render their feeds.
type WatchList struct {
	Persons []int64
	Request feed.Request
}

type FeedService struct {
	source    CreditSource
	builder   *feed.Builder
	publisher Publisher
	logger    *slog.Logger
	watch     WatchList
	workers   int
}

func NewFeedService(
	source CreditSource,
	builder *feed.Builder,
	publisher Publisher,
	logger *slog.Logger,
	watch WatchList,
) *FeedService {
	return &FeedService{
		source:    source,
		builder:   builder,
		publisher: publisher,
		logger:    logger.With("component", "feed"),
		watch:     watch,
		workers:   4,
	}
}

// Feed fetches a person and their credits concurrently and builds the feed
// for req. If either upstream call fails the other is canceled and no feed
// is built.
func (s *FeedService) Feed(ctx context.Context, personID int64, req feed.Request) (domain.Feed, error) {
	if err := ctx.Err(); err != nil {
		return domain.Feed{}, fmt.Errorf("fetch person %d: %w", personID, err)
	}

	var (
		person     domain.Person
		cast, crew []domain.Credit
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		person, err = s.source.PersonDetails(ctx, personID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		cast, crew, err = s.source.CombinedCredits(ctx, personID)
		return err
	})
	if err := p.Wait(); err != nil {
		s.logUpstreamError(personID, err)
		return domain.Feed{}, fmt.Errorf("fetch person %d: %w", personID, err)
	}

	f := s.builder.Build(person, cast, crew, req)

	s.logger.Debug("built feed",
		"person_id", personID,
		"cast", len(cast),
		"crew", len(crew),
		"items", len(f.Items),
		"release_status", req.ReleaseStatus.String(),
		"sort_order", req.SortOrder.String(),
		"size", req.Size.Int(),
	)

	return f, nil
}

// logUpstreamError logs service and credential failures at error level and
// everything else at warn.
func (s *FeedService) logUpstreamError(personID int64, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}

	var severe interface{ Severe() bool }
	if errors.As(err, &severe) && severe.Severe() {
		s.logger.Error("upstream request failed", "person_id", personID, "error", err)
		return
	}
	s.logger.Warn("upstream request failed", "person_id", personID, "error", err)
}
