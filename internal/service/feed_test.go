package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"movie_feed/internal/domain"
	"movie_feed/internal/feed"
	"movie_feed/internal/service/mocks"
)

type severeError struct{}

func (severeError) Error() string { return "invalid api key" }
func (severeError) Severe() bool  { return true }

type FeedServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source    *mocks.MockCreditSource
	publisher *mocks.MockPublisher

	builder *feed.Builder
	logger  *slog.Logger
	now     time.Time
}

func (s *FeedServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockCreditSource(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.now = time.Date(2025, time.September, 18, 12, 0, 0, 0, time.UTC)
	s.builder = feed.NewBuilder(feed.WithClock(func() time.Time { return s.now }))
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func (s *FeedServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFeedServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeedServiceTestSuite))
}

func (s *FeedServiceTestSuite) newService(watch WatchList, publisher Publisher) *FeedService {
	return NewFeedService(s.source, s.builder, publisher, s.logger, watch)
}

func (s *FeedServiceTestSuite) credit(id int64, title string, year int) domain.Credit {
	release := domain.NewDate(year, time.May, 1)
	credit, err := domain.NewCastCredit(domain.MediaMovie, domain.Media{
		ID:               id,
		Title:            title,
		OriginalTitle:    title,
		ReleaseDate:      &release,
		OriginalLanguage: "en",
	}, nil)
	s.Require().NoError(err)
	return credit
}

func (s *FeedServiceTestSuite) expectPerson(personID int64, name string, cast []domain.Credit) {
	s.source.EXPECT().PersonDetails(gomock.Any(), personID).Return(domain.Person{ID: personID, Name: name}, nil)
	s.source.EXPECT().CombinedCredits(gomock.Any(), personID).Return(cast, nil, nil)
}

func (s *FeedServiceTestSuite) TestFeed() {
	ctx := context.Background()
	cast := []domain.Credit{s.credit(1, "Old", 1999), s.credit(2, "New", 2020)}
	crew := []domain.Credit{s.credit(3, "Middle", 2010)}

	s.source.EXPECT().PersonDetails(gomock.Any(), int64(19498)).Return(domain.Person{ID: 19498, Name: "Jon Bernthal"}, nil)
	s.source.EXPECT().CombinedCredits(gomock.Any(), int64(19498)).Return(cast, crew, nil)

	f, err := s.newService(WatchList{}, nil).Feed(ctx, 19498, feed.Request{})

	s.Require().NoError(err)
	s.Equal("Jon Bernthal - Combined Credits", f.Title)
	s.Require().Len(f.Items, 3)
	s.Equal("New", f.Items[0].Title)
	s.Equal("Middle", f.Items[1].Title)
	s.Equal("Old", f.Items[2].Title)
}

func (s *FeedServiceTestSuite) TestFeed_PersonDetailsError() {
	ctx := context.Background()
	upstream := errors.New("connection refused")

	s.source.EXPECT().PersonDetails(gomock.Any(), int64(1)).Return(domain.Person{}, upstream)
	s.source.EXPECT().CombinedCredits(gomock.Any(), int64(1)).Return(nil, nil, nil).MaxTimes(1)

	_, err := s.newService(WatchList{}, nil).Feed(ctx, 1, feed.Request{})

	s.ErrorIs(err, upstream)
}

func (s *FeedServiceTestSuite) TestFeed_CombinedCreditsError() {
	ctx := context.Background()

	s.source.EXPECT().PersonDetails(gomock.Any(), int64(1)).Return(domain.Person{ID: 1}, nil).MaxTimes(1)
	s.source.EXPECT().CombinedCredits(gomock.Any(), int64(1)).Return(nil, nil, severeError{})

	_, err := s.newService(WatchList{}, nil).Feed(ctx, 1, feed.Request{})

	var severe severeError
	s.ErrorAs(err, &severe)
}

func (s *FeedServiceTestSuite) TestRefresh() {
	ctx := context.Background()
	watch := WatchList{Persons: []int64{10, 20}, Request: feed.Request{ReleaseStatus: feed.All()}}

	s.expectPerson(10, "First", []domain.Credit{s.credit(1, "A", 2001), s.credit(2, "B", 2002)})
	s.expectPerson(20, "Second", []domain.Credit{s.credit(3, "C", 2003)})

	s.publisher.EXPECT().Publish(gomock.Any(), int64(10), gomock.Any()).Return(nil).Times(2)
	s.publisher.EXPECT().Publish(gomock.Any(), int64(20), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, item *domain.FeedItem) error {
			s.Equal("C", item.Title)
			return nil
		},
	)

	stats, err := s.newService(watch, s.publisher).Refresh(ctx)

	s.Require().NoError(err)
	s.Equal(2, stats.Persons)
	s.Equal(3, stats.Items)
	s.Equal(3, stats.Published)
	s.Equal(0, stats.Errors)
}

func (s *FeedServiceTestSuite) TestRefresh_SkipsFailedPerson() {
	ctx := context.Background()
	watch := WatchList{Persons: []int64{10, 20}}

	s.source.EXPECT().PersonDetails(gomock.Any(), int64(10)).Return(domain.Person{}, errors.New("boom"))
	s.source.EXPECT().CombinedCredits(gomock.Any(), int64(10)).Return(nil, nil, nil).MaxTimes(1)
	s.expectPerson(20, "Second", []domain.Credit{s.credit(3, "C", 2003)})

	s.publisher.EXPECT().Publish(gomock.Any(), int64(20), gomock.Any()).Return(nil)

	stats, err := s.newService(watch, s.publisher).Refresh(ctx)

	s.Require().NoError(err)
	s.Equal(1, stats.Items)
	s.Equal(1, stats.Published)
	s.Equal(1, stats.Errors)
}

func (s *FeedServiceTestSuite) TestRefresh_PublishError() {
	ctx := context.Background()
	watch := WatchList{Persons: []int64{10}}

	s.expectPerson(10, "First", []domain.Credit{s.credit(1, "A", 2001), s.credit(2, "B", 2002)})

	gomock.InOrder(
		s.publisher.EXPECT().Publish(gomock.Any(), int64(10), gomock.Any()).Return(errors.New("channel closed")),
		s.publisher.EXPECT().Publish(gomock.Any(), int64(10), gomock.Any()).Return(nil),
	)

	stats, err := s.newService(watch, s.publisher).Refresh(ctx)

	s.Require().NoError(err)
	s.Equal(2, stats.Items)
	s.Equal(1, stats.Published)
	s.Equal(1, stats.Errors)
}

func (s *FeedServiceTestSuite) TestRefresh_WithoutPublisher() {
	ctx := context.Background()
	watch := WatchList{Persons: []int64{10}}

	s.expectPerson(10, "First", []domain.Credit{s.credit(1, "A", 2001)})

	stats, err := s.newService(watch, nil).Refresh(ctx)

	s.Require().NoError(err)
	s.Equal(1, stats.Items)
	s.Equal(0, stats.Published)
}

func (s *FeedServiceTestSuite) TestRefresh_Canceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	watch := WatchList{Persons: []int64{10}}

	s.source.EXPECT().PersonDetails(gomock.Any(), int64(10)).Return(domain.Person{}, context.Canceled).MaxTimes(1)
	s.source.EXPECT().CombinedCredits(gomock.Any(), int64(10)).Return(nil, nil, context.Canceled).MaxTimes(1)

	stats, err := s.newService(watch, s.publisher).Refresh(ctx)

	s.ErrorIs(err, context.Canceled)
	s.Equal(1, stats.Errors)
}
