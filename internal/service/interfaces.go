package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"movie_feed/internal/domain"
)

type CreditSource interface {
	PersonDetails(ctx context.Context, personID int64) (domain.Person, error)
	CombinedCredits(ctx context.Context, personID int64) (cast, crew []domain.Credit, err error)
}

type Publisher interface {
	Publish(ctx context.Context, personID int64, item *domain.FeedItem) error
	Close() error
}
