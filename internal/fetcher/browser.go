package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Browser renders pages in headless Chrome.
type Browser struct {
	allocCtx context.Context
	cancel   context.CancelFunc
	wait     time.Duration
}

var _ Renderer = (*Browser)(nil)

// NewBrowser returns new Browser using Chrome binary under execPath or default one if execPath is empty.
// Each rendered page waits provided time for its scripts to settle.
// The caller is responsible for closing Browser.
func NewBrowser(execPath, userAgent string, wait time.Duration) *Browser {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}
	if userAgent != "" {
		opts = append(opts, chromedp.UserAgent(userAgent))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Browser{
		allocCtx: allocCtx,
		cancel:   cancel,
		wait:     wait,
	}
}

// Render opens url in new browser tab and returns page HTML after wait time passed.
func (b *Browser) Render(ctx context.Context, url string) (string, error) {
	tabCtx, cancel := chromedp.NewContext(b.allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(b.wait),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("can't render %q: %w", url, err)
	}

	return html, nil
}

// Close stops browser.
func (b *Browser) Close() {
	b.cancel()
}
