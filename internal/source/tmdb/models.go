package tmdb

import (
	"errors"
	"fmt"

	"movie_feed/internal/domain"
)

var errMissingTitle = errors.New("missing title")

// PersonDetails is the subset of GET person/{id} the feed uses.
type PersonDetails struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Biography          *string `json:"biography"`
	KnownForDepartment string  `json:"known_for_department"`
	ImdbID             *string `json:"imdb_id"`
}

// CombinedCredits is the response of GET person/{id}/combined_credits.
type CombinedCredits struct {
	ID   *int64        `json:"id"`
	Cast []CreditEntry `json:"cast"`
	Crew []CreditEntry `json:"crew"`
}

// CreditEntry holds the union of movie and TV fields of a cast or crew
// entry. Movies carry title/release_date, shows name/first_air_date.
type CreditEntry struct {
	ID               int64   `json:"id"`
	MediaType        *string `json:"media_type"`
	Title            *string `json:"title"`
	OriginalTitle    *string `json:"original_title"`
	ReleaseDate      *string `json:"release_date"`
	Name             *string `json:"name"`
	OriginalName     *string `json:"original_name"`
	FirstAirDate     *string `json:"first_air_date"`
	GenreIDs         []int   `json:"genre_ids"`
	Overview         *string `json:"overview"`
	OriginalLanguage string  `json:"original_language"`
	CreditID         *string `json:"credit_id"`

	Character  *string `json:"character"`
	Department *string `json:"department"`
	Job        *string `json:"job"`
}

func (e CreditEntry) mediaKind() domain.MediaKind {
	if mediaType := nonEmpty(e.MediaType); mediaType != nil {
		return domain.ParseMediaKind(*mediaType)
	}
	switch {
	case nonEmpty(e.Title) != nil || nonEmpty(e.OriginalTitle) != nil:
		return domain.MediaMovie
	case nonEmpty(e.Name) != nil || nonEmpty(e.OriginalName) != nil:
		return domain.MediaShow
	default:
		return domain.MediaUnknown
	}
}

func (e CreditEntry) toCredit(role domain.RoleKind) (domain.Credit, error) {
	kind := e.mediaKind()

	var title, originalTitle, date *string
	var genres func(int) string
	switch kind {
	case domain.MediaMovie:
		title, originalTitle, date, genres = e.Title, e.OriginalTitle, e.ReleaseDate, MovieGenre
	case domain.MediaShow:
		title, originalTitle, date, genres = e.Name, e.OriginalName, e.FirstAirDate, ShowGenre
	default:
		return domain.Credit{}, domain.ErrUnknownMediaKind
	}

	title, originalTitle = nonEmpty(title), nonEmpty(originalTitle)
	switch {
	case title == nil && originalTitle == nil:
		return domain.Credit{}, fmt.Errorf("%s %d: %w", kind, e.ID, errMissingTitle)
	case title == nil:
		title = originalTitle
	case originalTitle == nil:
		originalTitle = title
	}

	info := domain.Media{
		ID:               e.ID,
		Title:            *title,
		OriginalTitle:    *originalTitle,
		Genres:           make([]string, 0, len(e.GenreIDs)),
		ReleaseDate:      parseDate(date),
		OriginalLanguage: e.OriginalLanguage,
		Overview:         nonEmpty(e.Overview),
		CreditID:         nonEmpty(e.CreditID),
	}
	for _, id := range e.GenreIDs {
		info.Genres = append(info.Genres, genres(id))
	}

	if role == domain.RoleCrew {
		return domain.NewCrewCredit(kind, info, nonEmpty(e.Department), nonEmpty(e.Job))
	}
	return domain.NewCastCredit(kind, info, nonEmpty(e.Character))
}

// nonEmpty treats empty strings as absent.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// parseDate treats empty and malformed dates as absent.
func parseDate(s *string) *domain.Date {
	if nonEmpty(s) == nil {
		return nil
	}
	d, err := domain.ParseDate(*s)
	if err != nil {
		return nil
	}
	return &d
}
