package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/houndmaster/houndmaster/internal/adapter"
	"github.com/houndmaster/houndmaster/internal/config"
	"github.com/houndmaster/houndmaster/internal/logger"
)

// AdServingDomains are blocked during page loads. Ads dominate load time on
// many project sites and contribute nothing to the extracted text.
var AdServingDomains = []string{
	"doubleclick.net",
	"adservice.google.com",
	"googlesyndication.com",
	"googletagservices.com",
	"googletagmanager.com",
	"google-analytics.com",
	"adsystem.com",
	"adserver.com",
	"adnxs.com",
	"ads-twitter.com",
	"facebook.net",
	"fbcdn.net",
	"amazon-adsystem.com",
}

// BlockedExtensions are media and font files skipped during page loads
var BlockedExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".ico",
	".mp4", ".webm", ".mp3", ".wav",
	".woff", ".woff2", ".ttf", ".otf",
}

// contentSelectors are the regions visible text is extracted from
const contentSelectors = "header, main, article, section, div[class*='content'], div[id*='content']"

// strippedSelectors are removed before extraction: navigation chrome and
// anything that never renders as prose.
const strippedSelectors = "nav, footer, script, style, noscript, iframe, [class*='menu'], [class*='nav'], [class*='footer'], [class*='cookie']"

// Result holds the extracted text of a site together with the pages that
// contributed content
type Result struct {
	Content    string
	SourceURLs []string
}

// Scraper defines the interface for website content extraction to enable mocking
//
//go:generate mockgen -source=scraper.go -destination=../mocks/scraper.go -package=mocks -mock_names=Scraper=MockScraper
type Scraper interface {
	// ScrapeWebsite discovers pages of a site and returns their visible text
	// concatenated into per-URL blocks, along with the URLs of the pages the
	// text came from. An empty Content means nothing could be extracted.
	ScrapeWebsite(ctx context.Context, siteURL string) (*Result, error)
}

type websiteScraper struct {
	browser    adapter.Browser
	httpClient adapter.HTTPClient
	cfg        config.ScraperConfig
}

// NewScraper creates a new website scraper
func NewScraper(browser adapter.Browser, httpClient adapter.HTTPClient, cfg config.ScraperConfig) Scraper {
	return &websiteScraper{
		browser:    browser,
		httpClient: httpClient,
		cfg:        cfg,
	}
}

// ScrapeWebsite visits the site root plus any same-host pages found in its
// sitemap, and concatenates the visible text of every page that loads. Pages
// that fail to load are skipped, not fatal.
func (s *websiteScraper) ScrapeWebsite(ctx context.Context, siteURL string) (*Result, error) {
	pages, err := s.discoverPages(ctx, siteURL)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	var blocks []string
	for _, pageURL := range pages {
		html, err := s.browser.FetchPage(ctx, pageURL, s.cfg.NavigationTimeout)
		if err != nil {
			logger.WarnCtx(ctx, "page load failed, skipping",
				zap.String("url", pageURL),
				zap.Error(err))
			continue
		}

		text := extractVisibleText(html)
		if text == "" {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("=== Content from %s ===\n%s", pageURL, text))
		result.SourceURLs = append(result.SourceURLs, pageURL)
	}

	result.Content = strings.Join(blocks, "\n\n")
	return result, nil
}

// discoverPages returns the site root followed by same-host sitemap entries,
// deduplicated and capped at the configured page limit. Sitemap absence is
// not an error.
func (s *websiteScraper) discoverPages(ctx context.Context, siteURL string) ([]string, error) {
	base, err := url.Parse(siteURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid website url %q", siteURL)
	}

	pages := []string{siteURL}
	seen := map[string]bool{siteURL: true}

	sitemapCtx, cancel := context.WithTimeout(ctx, s.cfg.SitemapTimeout)
	defer cancel()

	sitemapURL := fmt.Sprintf("%s://%s/sitemap.xml", base.Scheme, base.Host)
	body, err := s.httpClient.GetBytes(sitemapCtx, sitemapURL, nil)
	if err != nil {
		logger.DebugCtx(ctx, "no sitemap found", zap.String("url", sitemapURL), zap.Error(err))
		return pages, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		logger.DebugCtx(ctx, "unparseable sitemap", zap.String("url", sitemapURL), zap.Error(err))
		return pages, nil
	}

	doc.Find("loc").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(pages) >= s.cfg.MaxPages {
			return false
		}
		loc := strings.TrimSpace(sel.Text())
		parsed, err := url.Parse(loc)
		if err != nil || parsed.Host != base.Host || seen[loc] {
			return true
		}
		seen[loc] = true
		pages = append(pages, loc)
		return true
	})

	return pages, nil
}

// extractVisibleText pulls prose out of the main content regions of a page,
// falling back to the whole body when no region matches.
func extractVisibleText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	doc.Find(strippedSelectors).Remove()

	var parts []string
	doc.Find(contentSelectors).Each(func(_ int, sel *goquery.Selection) {
		if text := normalizeWhitespace(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	if len(parts) == 0 {
		if text := normalizeWhitespace(doc.Find("body").Text()); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "\n")
}

func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
