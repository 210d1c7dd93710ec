package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const userAgent = "pedagogue/1.0 (curriculum lookup)"

// Link is one curriculum document found on the listing page.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Client fetches curriculum document links from a public listing page.
// It is a peripheral collaborator: the standards service never calls
// it, plans are built from local documents only.
type Client struct {
	http    *http.Client
	baseURL string
	cache   *Cache
}

// NewClient creates a search client for the given listing URL. The
// cache may be nil to disable caching.
func NewClient(baseURL string, cache *Cache) *Client {
	return &Client{
		http:    &http.Client{Timeout: 20 * time.Second},
		baseURL: baseURL,
		cache:   cache,
	}
}

// hrefPattern pulls anchor targets and their text out of listing HTML.
var hrefPattern = regexp.MustCompile(`(?is)<a[^>]+href="([^"]+\.pdf[^"]*)"[^>]*>(.*?)</a>`)

// tagPattern strips markup from anchor text.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

// FindDocuments searches the listing page for PDF links matching the
// query and returns them, consulting the disk cache first.
func (c *Client) FindDocuments(ctx context.Context, query string) ([]Link, error) {
	if c.cache != nil {
		if data, ok := c.cache.Get(SearchCacheFile, query); ok {
			var links []Link
			if err := json.Unmarshal(data, &links); err == nil {
				return links, nil
			}
		}
	}

	page, err := c.fetch(ctx, c.searchURL(query))
	if err != nil {
		return nil, err
	}

	links := extractPDFLinks(page, c.baseURL)

	if c.cache != nil {
		if data, err := json.Marshal(links); err == nil {
			// Cache write failures are not search failures.
			_ = c.cache.Put(SearchCacheFile, query, data)
		}
	}

	return links, nil
}

// FetchDocument downloads one document body, consulting the cache.
func (c *Client) FetchDocument(ctx context.Context, docURL string) ([]byte, error) {
	if c.cache != nil {
		if data, ok := c.cache.Get(DocumentCacheFile, docURL); ok {
			var body []byte
			if err := json.Unmarshal(data, &body); err == nil {
				return body, nil
			}
		}
	}

	body, err := c.fetch(ctx, docURL)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if data, err := json.Marshal(body); err == nil {
			_ = c.cache.Put(DocumentCacheFile, docURL, data)
		}
	}

	return body, nil
}

func (c *Client) searchURL(query string) string {
	if query == "" {
		return c.baseURL
	}
	sep := "?"
	if strings.Contains(c.baseURL, "?") {
		sep = "&"
	}
	return c.baseURL + sep + "search=" + url.QueryEscape(query)
}

func (c *Client) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// extractPDFLinks collects PDF anchors from listing HTML, resolving
// relative targets against the listing URL.
func extractPDFLinks(page []byte, baseURL string) []Link {
	base, _ := url.Parse(baseURL)

	var links []Link
	seen := map[string]bool{}
	for _, m := range hrefPattern.FindAllSubmatch(page, -1) {
		href := string(m[1])
		title := strings.TrimSpace(tagPattern.ReplaceAllString(string(m[2]), ""))

		resolved := href
		if base != nil {
			if u, err := url.Parse(href); err == nil {
				resolved = base.ResolveReference(u).String()
			}
		}
		if seen[resolved] {
			continue
		}
		seen[resolved] = true
		links = append(links, Link{Title: title, URL: resolved})
	}
	return links
}
