package domain

import (
	"strconv"
	"time"
)

type Person struct {
	ID        int64
	Name      string
	Biography *string
}

// URL links to the person's page on the site.
func (p Person) URL() string {
	return SiteURL + "person/" + strconv.FormatInt(p.ID, 10)
}

// FeedItem is one rendered credit.
type FeedItem struct {
	GUID        string   `json:"guid"`
	Categories  []string `json:"categories"`
	Link        string   `json:"link"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// Feed is the channel handed to the RSS renderer.
type Feed struct {
	Title         string
	Link          string
	Description   *string
	Generator     string
	Docs          string
	TTL           time.Duration
	LastBuildDate time.Time
	Items         []FeedItem
}

// RefreshStats holds statistics about a watcher refresh run.
type RefreshStats struct {
	Persons   int
	Items     int
	Published int
	Errors    int
	Duration  time.Duration
}
