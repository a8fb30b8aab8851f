// Package rss renders feeds as RSS 2.0 documents.
package rss

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"

	"movie_feed/internal/domain"
)

const ContentType = "application/rss+xml"

type document struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title         string `xml:"title"`
	Link          string `xml:"link"`
	Description   string `xml:"description"`
	Generator     string `xml:"generator,omitempty"`
	Docs          string `xml:"docs,omitempty"`
	TTL           string `xml:"ttl,omitempty"`
	LastBuildDate string `xml:"lastBuildDate,omitempty"`
	Items         []item `xml:"item"`
}

type item struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Categories  []string `xml:"category"`
	GUID        guid     `xml:"guid"`
}

type guid struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// Marshal returns the RSS document for feed, including the XML header.
func Marshal(feed domain.Feed) ([]byte, error) {
	body, err := xml.MarshalIndent(toDocument(feed), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal rss: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Write streams the RSS document for feed to w.
func Write(w io.Writer, feed domain.Feed) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write rss header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(toDocument(feed)); err != nil {
		return fmt.Errorf("encode rss: %w", err)
	}
	return enc.Close()
}

func toDocument(feed domain.Feed) document {
	ch := channel{
		Title:     feed.Title,
		Link:      feed.Link,
		Generator: feed.Generator,
		Docs:      feed.Docs,
		Items:     make([]item, 0, len(feed.Items)),
	}
	if feed.Description != nil {
		ch.Description = *feed.Description
	}
	if feed.TTL > 0 {
		ch.TTL = strconv.FormatInt(int64(feed.TTL/time.Minute), 10)
	}
	if !feed.LastBuildDate.IsZero() {
		ch.LastBuildDate = feed.LastBuildDate.UTC().Format(time.RFC1123Z)
	}

	for _, it := range feed.Items {
		ch.Items = append(ch.Items, item{
			Title:       it.Title,
			Link:        it.Link,
			Description: it.Description,
			Categories:  it.Categories,
			GUID:        guid{Value: it.GUID},
		})
	}

	return document{Version: "2.0", Channel: ch}
}
