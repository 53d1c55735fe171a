// Package robots renders the site's robots.txt.
package robots

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	ContentType  = "text/plain; charset=utf-8"
	CacheControl = "public, max-age=86400"
)

var (
	blockedTechnical = []string{"_astro", "feeds", "giscus", "og", "~partytown"}
	blockedDrafts    = []string{"drafts", "admin", "private"}
)

// Build renders robots.txt for the site at siteURL served under base
// ("" for the root)
func Build(siteURL, base string) (string, error) {
	site, err := url.Parse(siteURL)
	if err != nil {
		return "", fmt.Errorf("invalid site url %q: %w", siteURL, err)
	}
	if site.Scheme == "" || site.Host == "" {
		return "", fmt.Errorf("site url must be absolute: %q", siteURL)
	}
	resolve := func(ref string) string {
		return site.ResolveReference(&url.URL{Path: ref}).String()
	}

	lines := []string{
		"# Robots.txt for " + site.Host,
		"# Generated automatically by postkit",
		"",
		"User-agent: *",
		"Allow: /",
		"",
		"# Block crawling of technical/admin directories",
	}
	for _, dir := range blockedTechnical {
		lines = append(lines, fmt.Sprintf("Disallow: %s/%s/", base, dir))
	}
	lines = append(lines, "", "# Block crawling of draft content")
	for _, dir := range blockedDrafts {
		lines = append(lines, fmt.Sprintf("Disallow: %s/%s/", base, dir))
	}
	lines = append(lines,
		"",
		"# Allow access to important files",
		"Allow: /favicon.ico",
		"Allow: /robots.txt",
		"Allow: /sitemap*.xml",
		"",
		"# Crawl delay for respectful crawling",
		"Crawl-delay: 1",
		"",
		"# Sitemap location",
		"Sitemap: "+resolve("sitemap-index.xml"),
		"",
		"# Additional sitemaps for RSS feeds",
		"Sitemap: "+resolve("rss.xml"),
		"Sitemap: "+resolve("atom.xml"),
	)

	return strings.Join(lines, "\n"), nil
}

// Handler serves the document built once from siteURL and base
func Handler(siteURL, base string) (echo.HandlerFunc, error) {
	body, err := Build(siteURL, base)
	if err != nil {
		return nil, err
	}
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderCacheControl, CacheControl)
		return c.Blob(http.StatusOK, ContentType, []byte(body))
	}, nil
}
