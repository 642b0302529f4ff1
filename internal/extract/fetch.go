package extract

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const userAgent = "blogbooster/1.0 (blog SEO analyzer)"

// Fetcher downloads blog post pages and extracts their content.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher with the given timeout (15s when zero).
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
	}
}

// Fetch downloads a post and extracts it. Naver blog URLs are rewritten to
// the mobile page, which serves the post in the main document instead of an
// iframe.
func (f *Fetcher) Fetch(postURL string) (*Post, error) {
	postURL = NormalizeURL(postURL)

	req, err := http.NewRequest("GET", postURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", postURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetching %s: HTTP %d", postURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	post, err := FromHTML(string(body), postURL)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", postURL, err)
	}

	// Non-Naver pages often bury the article in chrome; readability gets
	// a cleaner body text when our extraction came up short.
	if len(post.Text) < 200 {
		if article, rerr := readability.FromReader(strings.NewReader(string(body)), mustParse(postURL)); rerr == nil {
			text := strings.TrimSpace(article.TextContent)
			if len(text) > len(post.Text) {
				post.Text = text
			}
			if post.Title == "" {
				post.Title = article.Title
			}
		}
	}

	return post, nil
}

// NormalizeURL rewrites desktop Naver blog URLs to their mobile equivalent.
// Other URLs pass through unchanged.
func NormalizeURL(postURL string) string {
	u, err := url.Parse(postURL)
	if err != nil {
		return postURL
	}
	if u.Host == "blog.naver.com" || u.Host == "www.blog.naver.com" {
		u.Host = "m.blog.naver.com"
		return u.String()
	}
	return postURL
}

func mustParse(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		return &url.URL{}
	}
	return u
}
