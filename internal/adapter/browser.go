package adapter

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// Browser defines an interface for headless browser operations to enable mocking
//
//go:generate mockgen -source=browser.go -destination=../mocks/browser.go -package=mocks -mock_names=Browser=MockBrowser
type Browser interface {
	// FetchPage navigates to a URL and returns the rendered HTML once the
	// page has settled. Requests to blocked domains and file extensions are
	// aborted before they leave the browser.
	FetchPage(ctx context.Context, pageURL string, timeout time.Duration) (string, error)

	// Close releases the underlying browser process
	Close() error
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// ChromeBrowser implements Browser with a shared headless Chrome process
type ChromeBrowser struct {
	allocCtx          context.Context
	allocCancel       context.CancelFunc
	blockedDomains    []string
	blockedExtensions []string
}

// NewChromeBrowser launches a headless Chrome allocator shared by all tabs
func NewChromeBrowser(blockedDomains, blockedExtensions []string) Browser {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.UserAgent(defaultUserAgent),
		chromedp.WindowSize(1280, 800),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &ChromeBrowser{
		allocCtx:          allocCtx,
		allocCancel:       allocCancel,
		blockedDomains:    blockedDomains,
		blockedExtensions: blockedExtensions,
	}
}

// FetchPage opens a fresh tab, navigates, waits for dynamic content and
// returns the rendered document.
func (b *ChromeBrowser) FetchPage(ctx context.Context, pageURL string, timeout time.Duration) (string, error) {
	tabCtx, cancel := chromedp.NewContext(b.allocCtx)
	defer cancel()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, timeout)
	defer cancelTimeout()

	// Abort blocked requests at the CDP fetch layer
	chromedp.ListenTarget(tabCtx, func(ev interface{}) {
		paused, ok := ev.(*fetch.EventRequestPaused)
		if !ok {
			return
		}
		go func() {
			c := chromedp.FromContext(tabCtx)
			exec := cdp.WithExecutor(tabCtx, c.Target)
			if b.shouldBlock(paused.Request.URL) {
				_ = fetch.FailRequest(paused.RequestID, network.ErrorReasonBlockedByClient).Do(exec)
			} else {
				_ = fetch.ContinueRequest(paused.RequestID).Do(exec)
			}
		}()
	})

	// Watch for caller cancellation too
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-tabCtx.Done():
		}
	}()

	var html string
	err := chromedp.Run(tabCtx,
		fetch.Enable(),
		chromedp.Navigate(pageURL),
		// Let dynamic content render before extraction
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close shuts down the browser allocator
func (b *ChromeBrowser) Close() error {
	b.allocCancel()
	return nil
}

func (b *ChromeBrowser) shouldBlock(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	hostname := parsed.Hostname()
	for _, domain := range b.blockedDomains {
		if strings.Contains(hostname, domain) {
			return true
		}
	}

	path := strings.ToLower(parsed.Path)
	for _, ext := range b.blockedExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}

	return false
}
