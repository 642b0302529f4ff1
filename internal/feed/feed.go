// Package feed lists recent posts from a blog's RSS feed for batch scoring.
package feed

import (
	"log"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"
)

const defaultLimit = 10

// Entry is one post listed in a blog feed.
type Entry struct {
	URL           string
	Title         string
	PublishedDate string // YYYY-MM-DD or empty
	Source        string
}

// Parser parses blog RSS/Atom feeds.
type Parser struct {
	parser *gofeed.Parser
}

// NewParser creates a feed parser.
func NewParser() *Parser {
	return &Parser{parser: gofeed.NewParser()}
}

// Parse returns up to limit recent entries from one feed, newest first
// (feed order). A zero limit uses the default.
func (p *Parser) Parse(feedURL string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	feed, err := p.parser.ParseURL(feedURL)
	if err != nil {
		return nil, err
	}

	source := strings.TrimSpace(feed.Title)
	if source == "" {
		source = sourceNameFromURL(feedURL)
	}

	var entries []Entry
	for _, item := range feed.Items {
		if len(entries) >= limit {
			break
		}
		entry := parseItem(item, source)
		if entry == nil {
			continue
		}
		entries = append(entries, *entry)
	}

	log.Printf("Parsed %d entries from %s", len(entries), source)
	return entries, nil
}

func parseItem(item *gofeed.Item, source string) *Entry {
	itemURL := item.Link
	if itemURL == "" {
		itemURL = item.GUID
	}
	if itemURL == "" {
		return nil
	}

	title := strings.TrimSpace(item.Title)
	if title == "" {
		return nil
	}

	var publishedDate string
	if item.PublishedParsed != nil {
		publishedDate = item.PublishedParsed.Format("2006-01-02")
	} else if item.UpdatedParsed != nil {
		publishedDate = item.UpdatedParsed.Format("2006-01-02")
	}

	return &Entry{
		URL:           itemURL,
		Title:         title,
		PublishedDate: publishedDate,
		Source:        source,
	}
}

// NaverFeedURL builds the RSS feed URL for a Naver blog ID. Full URLs pass
// through unchanged so the caller can mix IDs and explicit feeds.
func NaverFeedURL(blogIDOrURL string) string {
	if strings.Contains(blogIDOrURL, "://") {
		return blogIDOrURL
	}
	return "https://blog.rss.naver.com/" + blogIDOrURL + ".xml"
}

func sourceNameFromURL(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil {
		return feedURL
	}
	host := strings.ToLower(u.Hostname())
	for _, prefix := range []string{"www.", "blog.", "rss.", "feeds."} {
		host = strings.TrimPrefix(host, prefix)
	}
	if host == "" {
		return feedURL
	}
	return host
}
