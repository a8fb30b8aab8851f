package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"movie_feed/internal/domain"
)

// Refresh renders the feed of every watched person and publishes each item.
// A person whose feed cannot be built is counted as an error and skipped.
func (s *FeedService) Refresh(ctx context.Context) (*domain.RefreshStats, error) {
	startTime := time.Now()
	s.logger.Info("starting refresh", "persons", len(s.watch.Persons))

	feeds := make([]*domain.Feed, len(s.watch.Persons))

	p := pool.New().WithMaxGoroutines(s.workers)
	for i, personID := range s.watch.Persons {
		p.Go(func() {
			f, err := s.Feed(ctx, personID, s.watch.Request)
			if err != nil {
				return
			}
			feeds[i] = &f
		})
	}
	p.Wait()

	stats := &domain.RefreshStats{Persons: len(s.watch.Persons)}

	for i, f := range feeds {
		if f == nil {
			stats.Errors++
			continue
		}
		personID := s.watch.Persons[i]
		stats.Items += len(f.Items)

		if s.publisher == nil {
			continue
		}
		for j := range f.Items {
			if err := s.publisher.Publish(ctx, personID, &f.Items[j]); err != nil {
				s.logger.Warn("failed to publish item",
					"person_id", personID,
					"guid", f.Items[j].GUID,
					"error", err,
				)
				stats.Errors++
				continue
			}
			stats.Published++
		}
	}

	stats.Duration = time.Since(startTime)

	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("refresh: %w", err)
	}

	s.logger.Info("refresh completed",
		"persons", stats.Persons,
		"items", stats.Items,
		"published", stats.Published,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}
