package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// SiteURL is the public movie database site credits and people link to.
const SiteURL = "https://www.themoviedb.org/"

var ErrUnknownMediaKind = errors.New("unknown media kind")

type MediaKind int

const (
	MediaUnknown MediaKind = iota
	MediaMovie
	MediaShow
)

// ParseMediaKind maps the upstream media_type value ("movie", "tv") to a MediaKind.
func ParseMediaKind(s string) MediaKind {
	switch s {
	case "movie", "Movie", "MOVIE":
		return MediaMovie
	case "tv", "TV", "Tv":
		return MediaShow
	default:
		return MediaUnknown
	}
}

// URLPrefix is the site path segment for the media kind.
func (k MediaKind) URLPrefix() (string, bool) {
	switch k {
	case MediaMovie:
		return "movie", true
	case MediaShow:
		return "tv", true
	default:
		return "", false
	}
}

func (k MediaKind) String() string {
	switch k {
	case MediaMovie:
		return "Movie"
	case MediaShow:
		return "TV"
	default:
		return "Unknown"
	}
}

type RoleKind int

const (
	RoleCast RoleKind = iota
	RoleCrew
)

func (k RoleKind) String() string {
	if k == RoleCrew {
		return "Crew"
	}
	return "Cast"
}

// Media holds the fields shared by every credit. For shows, Title is the show
// name and ReleaseDate is the first air date.
type Media struct {
	ID               int64
	Title            string
	OriginalTitle    string
	Genres           []string
	ReleaseDate      *Date
	OriginalLanguage string
	Overview         *string
	CreditID         *string
}

// Credit is one cast or crew engagement on a movie or show. Media and role
// kind are fixed at construction.
type Credit struct {
	media MediaKind
	role  RoleKind
	info  Media

	character  *string
	department *string
	job        *string
}

func NewCastCredit(kind MediaKind, info Media, character *string) (Credit, error) {
	if _, ok := kind.URLPrefix(); !ok {
		return Credit{}, fmt.Errorf("cast credit %d: %w", info.ID, ErrUnknownMediaKind)
	}
	return Credit{
		media:     kind,
		role:      RoleCast,
		info:      info,
		character: character,
	}, nil
}

func NewCrewCredit(kind MediaKind, info Media, department, job *string) (Credit, error) {
	if _, ok := kind.URLPrefix(); !ok {
		return Credit{}, fmt.Errorf("crew credit %d: %w", info.ID, ErrUnknownMediaKind)
	}
	return Credit{
		media:      kind,
		role:       RoleCrew,
		info:       info,
		department: department,
		job:        job,
	}, nil
}

func (c Credit) ID() int64                { return c.info.ID }
func (c Credit) Title() string            { return c.info.Title }
func (c Credit) OriginalTitle() string    { return c.info.OriginalTitle }
func (c Credit) Genres() []string         { return c.info.Genres }
func (c Credit) ReleaseDate() *Date       { return c.info.ReleaseDate }
func (c Credit) OriginalLanguage() string { return c.info.OriginalLanguage }
func (c Credit) Overview() *string        { return c.info.Overview }
func (c Credit) CreditID() *string        { return c.info.CreditID }
func (c Credit) MediaKind() MediaKind     { return c.media }
func (c Credit) RoleKind() RoleKind       { return c.role }

// Character is nil for crew credits and for cast credits without a character.
func (c Credit) Character() *string { return c.character }

// Department is nil for cast credits.
func (c Credit) Department() *string { return c.department }

// Job is nil for cast credits.
func (c Credit) Job() *string { return c.job }

// MediaURL links to the credit's movie or show page.
func (c Credit) MediaURL() string {
	prefix, _ := c.media.URLPrefix()
	return SiteURL + prefix + "/" + strconv.FormatInt(c.info.ID, 10)
}
