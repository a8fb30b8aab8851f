package feed

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/suite"

	"movie_feed/internal/domain"
)

type BuilderTestSuite struct {
	suite.Suite
	now     time.Time
	builder *Builder
	person  domain.Person
}

func (s *BuilderTestSuite) SetupTest() {
	s.now = time.Date(2025, time.September, 18, 15, 30, 0, 0, time.UTC)
	s.builder = NewBuilder(WithClock(func() time.Time { return s.now }))

	bio := "Line one.\nLine two."
	s.person = domain.Person{ID: 19498, Name: "Jon Bernthal", Biography: &bio}
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func (s *BuilderTestSuite) cast(id int64, title string, release *domain.Date, character *string) domain.Credit {
	credit, err := domain.NewCastCredit(domain.MediaMovie, domain.Media{
		ID:               id,
		Title:            title,
		OriginalTitle:    title,
		ReleaseDate:      release,
		OriginalLanguage: "en",
	}, character)
	s.Require().NoError(err)
	return credit
}

func (s *BuilderTestSuite) crew(id int64, title string, release *domain.Date) domain.Credit {
	department, job := "Directing", "Director"
	credit, err := domain.NewCrewCredit(domain.MediaShow, domain.Media{
		ID:               id,
		Title:            title,
		OriginalTitle:    title,
		ReleaseDate:      release,
		OriginalLanguage: "en",
	}, &department, &job)
	s.Require().NoError(err)
	return credit
}

func (s *BuilderTestSuite) TestBuild_Channel() {
	feed := s.builder.Build(s.person, nil, nil, Request{})

	s.Equal("Jon Bernthal - Combined Credits", feed.Title)
	s.Equal("https://www.themoviedb.org/person/19498", feed.Link)
	s.Equal(Generator, feed.Generator)
	s.Equal(Docs, feed.Docs)
	s.Equal(60*time.Minute, feed.TTL)
	s.True(s.now.Equal(feed.LastBuildDate))
	s.Empty(feed.Items)

	s.Require().NotNil(feed.Description)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(*feed.Description))
	s.Require().NoError(err)
	s.Equal(1, doc.Find("br").Length())
	s.Equal("Line one.Line two.", doc.Text())
}

func (s *BuilderTestSuite) TestBuild_NoBiography() {
	s.person.Biography = nil

	feed := s.builder.Build(s.person, nil, nil, Request{})

	s.Nil(feed.Description)
}

func (s *BuilderTestSuite) TestBuild_AllDescendingPutsUndatedLast() {
	d2026 := domain.NewDate(2026, time.January, 1)
	d1990 := domain.NewDate(1990, time.June, 1)
	cast := []domain.Credit{
		s.cast(1, "Future", &d2026, nil),
		s.cast(2, "Undated", nil, nil),
		s.cast(3, "Past", &d1990, nil),
	}

	feed := s.builder.Build(s.person, cast, nil, Request{ReleaseStatus: All()})

	s.Require().Len(feed.Items, 3)
	s.Equal("Future", feed.Items[0].Title)
	s.Equal("Past", feed.Items[1].Title)
	s.Equal("Undated", feed.Items[2].Title)
}

func (s *BuilderTestSuite) TestBuild_NoReleaseDate() {
	d2026 := domain.NewDate(2026, time.January, 1)
	d1990 := domain.NewDate(1990, time.June, 1)
	cast := []domain.Credit{
		s.cast(1, "Future", &d2026, nil),
		s.cast(2, "Undated", nil, nil),
		s.cast(3, "Past", &d1990, nil),
	}

	feed := s.builder.Build(s.person, cast, nil, Request{ReleaseStatus: NoReleaseDate()})

	s.Require().Len(feed.Items, 1)
	s.Equal("Undated", feed.Items[0].Title)
}

func (s *BuilderTestSuite) TestBuild_TruncatesToSize() {
	var cast []domain.Credit
	for i := range 30 {
		release := domain.NewDate(2000+i, time.March, 1)
		cast = append(cast, s.cast(int64(i+1), fmt.Sprintf("Movie %d", i), &release, nil))
	}
	size, err := NewSize(5)
	s.Require().NoError(err)

	feed := s.builder.Build(s.person, cast, nil, Request{Size: size})

	s.Require().Len(feed.Items, 5)
	s.Equal("Movie 29", feed.Items[0].Title)
	s.Equal("Movie 25", feed.Items[4].Title)
}

func (s *BuilderTestSuite) TestBuild_DefaultSize() {
	var cast []domain.Credit
	for i := range 30 {
		release := domain.NewDate(1980+i, time.March, 1)
		cast = append(cast, s.cast(int64(i+1), fmt.Sprintf("Movie %d", i), &release, nil))
	}

	feed := s.builder.Build(s.person, cast, nil, Request{})

	s.Len(feed.Items, DefaultSize)
}

func (s *BuilderTestSuite) TestBuild_ReadsClockOnce() {
	calls := 0
	builder := NewBuilder(WithClock(func() time.Time {
		calls++
		return s.now
	}))
	release := domain.NewDate(2020, time.January, 1)

	builder.Build(s.person, []domain.Credit{s.cast(1, "A", &release, nil), s.cast(2, "B", &release, nil)}, nil, Request{})

	s.Equal(1, calls)
}

func (s *BuilderTestSuite) TestBuild_ClockInOtherZone() {
	zone := time.FixedZone("UTC+10", 10*60*60)
	s.now = time.Date(2025, time.September, 19, 5, 0, 0, 0, zone)
	tomorrow := domain.NewDate(2025, time.September, 19)

	feed := s.builder.Build(s.person, []domain.Credit{s.cast(1, "Tomorrow", &tomorrow, nil)}, nil, Request{ReleaseStatus: Unreleased(nil)})

	s.Len(feed.Items, 1)
	s.Equal(time.UTC, feed.LastBuildDate.Location())
}

func (s *BuilderTestSuite) TestSelect_MergesCastBeforeCrew() {
	same := domain.NewDate(2024, time.March, 7)
	cast := []domain.Credit{s.cast(1, "Cast", &same, nil)}
	crew := []domain.Credit{s.crew(2, "Crew", &same)}

	selected := Select(domain.DateOf(s.now), cast, crew, Request{})

	s.Require().Len(selected, 2)
	s.Equal(domain.RoleCast, selected[0].RoleKind())
	s.Equal(domain.RoleCrew, selected[1].RoleKind())
}

func (s *BuilderTestSuite) TestItem_Cast() {
	character := "Alejandro"
	credit, err := domain.NewCastCredit(domain.MediaMovie, sicario(), &character)
	s.Require().NoError(err)

	item := s.builder.Item(credit)

	s.Equal("Sicario", item.Title)
	s.Equal("https://www.themoviedb.org/movie/273481", item.Link)
	s.Equal(GUID(credit), item.GUID)
	s.Equal([]string{"Movie", "Alejandro", "Action", "Crime", "Thriller"}, item.Categories)
	s.Equal("<p>Character: Alejandro<br>Genres: Action, Crime, Thriller<br>Language: en<br>Release Date: 17-Sep-2015</p>"+
		"<p>An idealistic FBI agent is enlisted by a government task force.</p>", item.Description)
}

func (s *BuilderTestSuite) TestItem_CrewWithoutDate() {
	item := s.builder.Item(s.crew(236235, "The Gentlemen", nil))

	s.Equal("https://www.themoviedb.org/tv/236235", item.Link)
	s.Equal([]string{"TV"}, item.Categories)
	s.Equal("<p>Department: Directing<br>Job: Director<br>Genres: <br>Language: en<br>Release Date: TBA</p>", item.Description)
}

func (s *BuilderTestSuite) TestItem_CastWithoutCharacter() {
	item := s.builder.Item(s.cast(1, "Untitled", nil, nil))

	s.Equal([]string{"Movie"}, item.Categories)
	s.True(strings.HasPrefix(item.Description, "<p>Character: TBA<br>"))
}

func (s *BuilderTestSuite) TestItem_SanitizesUpstreamText() {
	character := `<script>alert(1)</script>Frank <b>Castle</b>`
	info := sicario()
	info.Title = `<i>Bold</i> & Co`
	overview := "First line\n<img src=x onerror=alert(1)>Second line"
	info.Overview = &overview
	credit, err := domain.NewCastCredit(domain.MediaMovie, info, &character)
	s.Require().NoError(err)

	item := s.builder.Item(credit)

	s.Equal("Bold & Co", item.Title)
	s.NotContains(item.Description, "<script")
	s.NotContains(item.Description, "<img")
	s.NotContains(item.Description, "<b>")
	for _, category := range item.Categories {
		s.NotContains(category, "<")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(item.Description))
	s.Require().NoError(err)
	s.Equal(2, doc.Find("p").Length())
	s.Equal(0, doc.Find("script").Length())
	s.Equal("First lineSecond line", doc.Find("p").Last().Text())
}

func (s *BuilderTestSuite) TestItem_ParagraphTagsInUpstreamText() {
	character := "Hero</p>"
	info := sicario()
	overview := "Plot</p><p>twist<p>open"
	info.Overview = &overview
	credit, err := domain.NewCastCredit(domain.MediaMovie, info, &character)
	s.Require().NoError(err)

	item := s.builder.Item(credit)

	s.Equal("<p>Character: Hero<br>Genres: Action, Crime, Thriller<br>Language: en<br>Release Date: 17-Sep-2015</p>"+
		"<p>Plot</p><p>twist</p><p>open</p>", item.Description)
	s.Equal(strings.Count(item.Description, "<p>"), strings.Count(item.Description, "</p>"))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(item.Description))
	s.Require().NoError(err)
	s.Equal(4, doc.Find("p").Length())
	s.Equal("Character: HeroGenres: Action, Crime, ThrillerLanguage: enRelease Date: 17-Sep-2015", doc.Find("p").First().Text())
	s.Equal([]string{"Movie", "Hero", "Action", "Crime", "Thriller"}, item.Categories)
}

func (s *BuilderTestSuite) TestItem_EscapedMarkupStaysEscaped() {
	info := sicario()
	info.Title = "&lt;img src=x onerror=alert(1)&gt; Fast & Furious"
	character := "&lt;b&gt;Dom&lt;/b&gt;"
	credit, err := domain.NewCastCredit(domain.MediaMovie, info, &character)
	s.Require().NoError(err)

	item := s.builder.Item(credit)

	s.Equal("&lt;img src=x onerror=alert(1)&gt; Fast & Furious", item.Title)
	s.NotContains(item.Title, "<")
	s.Equal("&lt;b&gt;Dom&lt;/b&gt;", item.Categories[1])
	s.True(strings.HasPrefix(item.Description, "<p>Character: &lt;b&gt;Dom&lt;/b&gt;<br>"))
}
