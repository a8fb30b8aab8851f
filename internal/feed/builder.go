package feed

import (
	"strings"
	"time"

	"movie_feed/internal/domain"
)

const (
	Generator = "Movie Feed"
	Docs      = "https://www.rssboard.org/rss-specification"
	TTL       = 60 * time.Minute

	releaseDateLayout = "02-Jan-2006"
)

// Builder turns a person's credits into a feed.
type Builder struct {
	now       func() time.Time
	sanitizer *Sanitizer
}

type Option func(*Builder)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		now:       time.Now,
		sanitizer: NewSanitizer(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build runs the credit pipeline for one request: merge, filter, sort,
// truncate and render. The clock is read once per call.
func (b *Builder) Build(person domain.Person, cast, crew []domain.Credit, req Request) domain.Feed {
	now := b.now().UTC()

	credits := Select(domain.DateOf(now), cast, crew, req)

	items := make([]domain.FeedItem, 0, len(credits))
	for _, credit := range credits {
		items = append(items, b.Item(credit))
	}

	feed := domain.Feed{
		Title:         b.sanitizer.Text(person.Name + " - Combined Credits"),
		Link:          person.URL(),
		Generator:     Generator,
		Docs:          Docs,
		TTL:           TTL,
		LastBuildDate: now,
		Items:         items,
	}
	if person.Biography != nil {
		bio := b.sanitizer.HTML(*person.Biography)
		feed.Description = &bio
	}

	return feed
}

// Merge concatenates cast credits and then crew credits, keeping the order
// of each list.
func Merge(cast, crew []domain.Credit) []domain.Credit {
	merged := make([]domain.Credit, 0, len(cast)+len(crew))
	merged = append(merged, cast...)
	return append(merged, crew...)
}

// Select returns the credits of a request in feed order, at most
// req.Size of them.
func Select(today domain.Date, cast, crew []domain.Credit, req Request) []domain.Credit {
	merged := Merge(cast, crew)

	selected := merged[:0]
	for _, credit := range merged {
		if req.ReleaseStatus.Admits(today, credit.ReleaseDate()) {
			selected = append(selected, credit)
		}
	}

	req.SortOrder.Sort(selected)

	if n := req.Size.Int(); len(selected) > n {
		selected = selected[:n]
	}
	return selected
}

// Item renders one credit. Credit fields are inserted as plain text and the
// assembled description goes through the markup policy once.
func (b *Builder) Item(credit domain.Credit) domain.FeedItem {
	s := b.sanitizer

	categories := []string{s.Text(credit.MediaKind().String())}

	var desc strings.Builder
	desc.WriteString("<p>")

	switch credit.RoleKind() {
	case domain.RoleCast:
		desc.WriteString("Character: ")
		if character := credit.Character(); character != nil {
			desc.WriteString(s.Inline(*character))
			categories = append(categories, s.Text(*character))
		} else {
			desc.WriteString("TBA")
		}
	case domain.RoleCrew:
		desc.WriteString("Department: ")
		desc.WriteString(orTBA(s, credit.Department()))
		desc.WriteString("<br>Job: ")
		desc.WriteString(orTBA(s, credit.Job()))
	}

	desc.WriteString("<br>Genres: ")
	for i, genre := range credit.Genres() {
		if i > 0 {
			desc.WriteString(", ")
		}
		desc.WriteString(s.Inline(genre))
		categories = append(categories, s.Text(genre))
	}

	desc.WriteString("<br>Language: ")
	desc.WriteString(s.Inline(credit.OriginalLanguage()))

	desc.WriteString("<br>Release Date: ")
	if date := credit.ReleaseDate(); date != nil {
		desc.WriteString(date.Format(releaseDateLayout))
	} else {
		desc.WriteString("TBA")
	}
	desc.WriteString("</p>")

	if overview := credit.Overview(); overview != nil {
		desc.WriteString("<p>")
		desc.WriteString(strings.ReplaceAll(*overview, "\n", "<br>"))
		desc.WriteString("</p>")
	}

	return domain.FeedItem{
		GUID:        GUID(credit),
		Categories:  categories,
		Link:        credit.MediaURL(),
		Title:       s.Text(credit.Title()),
		Description: s.Markup(desc.String()),
	}
}

func orTBA(s *Sanitizer, text *string) string {
	if text == nil {
		return "TBA"
	}
	return s.Inline(*text)
}
