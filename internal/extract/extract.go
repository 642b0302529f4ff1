// Package extract turns a blog post page (or pasted text) into the input
// record the scoring engine consumes.
package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/yanghongseok1599/blogbooster/internal/seo"
)

// Post is the extracted content of one blog post.
type Post struct {
	URL             string
	Title           string
	Text            string
	ImageCount      int
	SubheadingCount int
	Tags            []string
}

// Input converts the post into a scoring input. An empty keyword falls back
// to auto-detection from the text. Negative counts are clamped to zero here
// so the engine never sees them.
func (p *Post) Input(keyword string) seo.Input {
	if keyword == "" {
		keyword = DetectKeyword(p.Title, p.Text)
	}
	return seo.Input{
		Title:           p.Title,
		Content:         p.Text,
		Keyword:         keyword,
		ImageCount:      clampNonNegative(p.ImageCount),
		SubheadingCount: clampNonNegative(p.SubheadingCount),
		TagCount:        clampNonNegative(len(p.Tags)),
		Tags:            p.Tags,
	}
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

var reHashtag = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// FromHTML extracts a Post from raw page HTML. It understands the Naver
// smart editor markup and falls back to generic selectors elsewhere.
func FromHTML(html, pageURL string) (*Post, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	post := &Post{URL: pageURL}

	// Title: smart editor first, then og:title, then <title>.
	post.Title = strings.TrimSpace(doc.Find(".se-title-text").First().Text())
	if post.Title == "" {
		post.Title, _ = doc.Find(`meta[property="og:title"]`).Attr("content")
		post.Title = strings.TrimSpace(post.Title)
	}
	if post.Title == "" {
		post.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	// Body: the smart editor main container when present, whole body
	// otherwise. Paragraph breaks are preserved so the first-paragraph
	// analysis sees real fragments.
	container := doc.Find(".se-main-container").First()
	if container.Length() == 0 {
		container = doc.Find("article").First()
	}
	if container.Length() == 0 {
		container = doc.Find("body").First()
	}
	post.Text = blockText(container)

	post.ImageCount = container.Find("img").Length()
	if post.ImageCount == 0 {
		post.ImageCount = doc.Find("img").Length()
	}

	post.SubheadingCount = container.Find("h2, h3, .se-section-sectionTitle").Length()

	post.Tags = extractTags(doc, post.Text)
	return post, nil
}

// FromText builds a Post from pasted plain text: first line is the title
// when a separate title isn't supplied. Hashtags in the text become tags.
func FromText(title, text string) *Post {
	text = strings.TrimSpace(text)
	if title == "" {
		if i := strings.IndexByte(text, '\n'); i > 0 {
			title = strings.TrimSpace(text[:i])
			text = strings.TrimSpace(text[i:])
		}
	}
	return &Post{
		Title:           title,
		Text:            text,
		SubheadingCount: countTextSubheadings(text),
		Tags:            hashtagsIn(text),
	}
}

// blockText extracts text with newlines between block elements.
func blockText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	var parts []string
	blocks := sel.Find("p, div.se-module-text, h1, h2, h3, li, blockquote")
	if blocks.Length() == 0 {
		return strings.TrimSpace(sel.Text())
	}
	blocks.Each(func(_ int, s *goquery.Selection) {
		// Skip wrappers whose text is duplicated by nested blocks.
		if s.Find("p, div.se-module-text").Length() > 0 {
			return
		}
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n")
}

func extractTags(doc *goquery.Document, text string) []string {
	seen := make(map[string]bool)
	var tags []string
	add := func(tag string) {
		tag = strings.TrimSpace(strings.TrimPrefix(tag, "#"))
		if tag != "" && !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	doc.Find(".post_tag a, a[href*='tagName=']").Each(func(_ int, s *goquery.Selection) {
		add(s.Text())
	})
	for _, tag := range hashtagsIn(text) {
		add(tag)
	}
	return tags
}

func hashtagsIn(text string) []string {
	var tags []string
	for _, m := range reHashtag.FindAllStringSubmatch(text, -1) {
		tags = append(tags, m[1])
	}
	return tags
}

var reTextSubheading = regexp.MustCompile(`(?m)^\s*(?:#{1,3}\s+\S|[①②③④⑤⑥⑦⑧⑨⑩]|\d+\.\s+\S|■|▶|✔)`)

// countTextSubheadings counts heading-looking lines in plain text.
func countTextSubheadings(text string) int {
	return len(reTextSubheading.FindAllString(text, -1))
}
