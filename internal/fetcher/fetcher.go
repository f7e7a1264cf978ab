package fetcher

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// Renderer renders pages in a browser executing their scripts.
type Renderer interface {
	// Render returns page HTML after its scripts ran.
	Render(ctx context.Context, url string) (string, error)
}

// Option is custom configuration of Fetcher.
type Option func(f *Fetcher)

// Fetcher builds http requests and fetches listing pages via http or renders them in a browser.
type Fetcher struct {
	client    *http.Client
	userAgent string
	renderer  Renderer
}

// NewFetcher returns new Fetcher.
func NewFetcher(client *http.Client, userAgent string, ops ...Option) *Fetcher {
	f := &Fetcher{
		client:    client,
		userAgent: userAgent,
	}

	for _, op := range ops {
		op(f)
	}

	return f
}

// FetchPage returns ReadCloser with HTML page fetched from provided url or error.
// Pages with render set are rendered in a browser, it returns ErrRenderingUnavailable if Fetcher has no renderer.
// The caller is responsible for closing returned ReadCloser.
func (f *Fetcher) FetchPage(ctx context.Context, url string, render bool) (io.ReadCloser, error) {
	if render {
		return f.renderPage(ctx, url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "text/html")
	req.Header.Add("Accept-Encoding", "gzip")
	req.Header.Add("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrStatusNotOK, resp.Status)
	}

	if !isHTML(resp.Header.Get("Content-Type")) {
		_ = resp.Body.Close()
		return nil, ErrContentTypeNotSupported
	}

	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		return decompressResponse(resp.Body)
	}

	return resp.Body, nil
}

func (f *Fetcher) renderPage(ctx context.Context, url string) (io.ReadCloser, error) {
	if f.renderer == nil {
		return nil, ErrRenderingUnavailable
	}

	html, err := f.renderer.Render(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("can't render page: %w", err)
	}

	return io.NopCloser(strings.NewReader(html)), nil
}

// isHTML reports whether content type is HTML document type.
func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

// decompressResponse returns io.ReadCloser with decompressed http response and error.
func decompressResponse(response io.ReadCloser) (io.ReadCloser, error) {
	decompressed, err := gzip.NewReader(response)
	if err != nil {
		_ = response.Close()
		return nil, fmt.Errorf("can't decompress response: %w", err)
	}

	return &decompressedReadCloser{
		compressed:   response,
		decompressed: decompressed,
	}, nil
}

// decompressedReadCloser wraps decompressed Reader and compressed ReadCloser.
// It reads from decompressed Reader, but closes compressed ReadCloser.
type decompressedReadCloser struct {
	compressed   io.ReadCloser
	decompressed io.Reader
}

// Read reads uncompressed bytes from underlying Reader into p.
func (r decompressedReadCloser) Read(p []byte) (n int, err error) {
	return r.decompressed.Read(p)
}

// Close closes underlying compressed ReadCloser.
func (r decompressedReadCloser) Close() error {
	return r.compressed.Close()
}

// WithRenderer sets Fetcher's browser Renderer.
func WithRenderer(r Renderer) Option {
	return func(f *Fetcher) {
		f.renderer = r
	}
}
