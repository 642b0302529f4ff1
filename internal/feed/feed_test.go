package feed

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
)

func TestParseItem(t *testing.T) {
	pub := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	item := &gofeed.Item{
		Title:           "  강남 맛집 후기  ",
		Link:            "https://blog.naver.com/foo/1",
		PublishedParsed: &pub,
	}
	entry := parseItem(item, "My Blog")
	if entry == nil {
		t.Fatal("expected entry")
	}
	if entry.Title != "강남 맛집 후기" {
		t.Errorf("expected trimmed title, got %q", entry.Title)
	}
	if entry.PublishedDate != "2026-08-20" {
		t.Errorf("expected 2026-08-20, got %q", entry.PublishedDate)
	}
	if entry.Source != "My Blog" {
		t.Errorf("expected source, got %q", entry.Source)
	}
}

func TestParseItemSkipsEmpty(t *testing.T) {
	if e := parseItem(&gofeed.Item{Title: "제목만"}, "x"); e != nil {
		t.Errorf("expected nil without URL, got %+v", e)
	}
	if e := parseItem(&gofeed.Item{Link: "https://a.com"}, "x"); e != nil {
		t.Errorf("expected nil without title, got %+v", e)
	}
}

func TestParseItemGUIDFallback(t *testing.T) {
	item := &gofeed.Item{Title: "제목", GUID: "https://blog.naver.com/foo/2"}
	entry := parseItem(item, "x")
	if entry == nil || entry.URL != "https://blog.naver.com/foo/2" {
		t.Errorf("expected GUID as URL, got %+v", entry)
	}
}

func TestNaverFeedURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"myblogid", "https://blog.rss.naver.com/myblogid.xml"},
		{"https://blog.rss.naver.com/other.xml", "https://blog.rss.naver.com/other.xml"},
		{"http://example.com/feed", "http://example.com/feed"},
	}
	for _, tt := range tests {
		if got := NaverFeedURL(tt.in); got != tt.want {
			t.Errorf("NaverFeedURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSourceNameFromURL(t *testing.T) {
	if got := sourceNameFromURL("https://blog.rss.naver.com/foo.xml"); got != "naver.com" {
		t.Errorf("got %q", got)
	}
}
