package extractor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
)

var (
	// ErrMissingLink is returned for listing item without product link.
	ErrMissingLink = errors.New("listing item has no product link")
	// ErrMissingTitle is returned for listing item without product title.
	ErrMissingTitle = errors.New("listing item has no product title")
)

// Extractor extracts scrape records from HTML listing pages.
type Extractor struct{}

// Extract finds listing items in HTML page and sends each extracted record with extraction error into output channel.
// Returns number of found listing items.
func (e Extractor) Extract(
	ctx context.Context,
	html io.Reader,
	page *models.Page,
	output chan<- models.ParsingResult,
) (int, error) {
	pageURL, err := url.Parse(page.URL)
	if err != nil {
		return 0, fmt.Errorf("can't parse page url: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(html)
	if err != nil {
		return 0, fmt.Errorf("can't parse page: %w", err)
	}

	selectors := &page.Site.Selectors
	label := CategoryLabel(page.Category)
	items := doc.Find(selectors.Item)

	for ix := range items.Nodes {
		record, err := extractRecord(items.Eq(ix), pageURL, page.Site)
		if label != "" {
			record.CategoryLabel = lo.ToPtr(label)
		}

		select {
		case <-ctx.Done():
			return ix, ctx.Err()
		case output <- models.ParsingResult{
			Record: record,
			Error:  err,
		}:
		}
	}

	return items.Length(), nil
}

func extractRecord(item *goquery.Selection, pageURL *url.URL, site *models.Site) (models.ScrapeRecord, error) {
	selectors := &site.Selectors
	record := models.ScrapeRecord{
		Title:         text(find(item, selectors.Title)),
		OriginalPrice: ParsePrice(text(find(item, selectors.OriginalPrice)), site.DecimalSeparator),
		FinalPrice:    ParsePrice(text(find(item, selectors.FinalPrice)), site.DecimalSeparator),
	}

	if image := imageSource(find(item, selectors.Image), pageURL); image != "" {
		record.ImageURL = lo.ToPtr(image)
	}

	outOfStock := selectors.OutOfStock != "" && item.Find(selectors.OutOfStock).Length() > 0
	record.InStock = record.FinalPrice.Valid && !outOfStock

	href, _ := find(item, selectors.Link).Attr("href")
	link, ok := NormalizeLink(pageURL, href)
	if !ok {
		return record, ErrMissingLink
	}
	record.URL = link

	if record.Title == "" {
		return record, fmt.Errorf("%w: %s", ErrMissingTitle, link)
	}

	return record, nil
}

// NormalizeLink resolves href against page URL and strips its query and fragment.
// Returns false if href doesn't resolve to http(s) URL.
func NormalizeLink(pageURL *url.URL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	link := pageURL.ResolveReference(ref)
	if (link.Scheme != "http" && link.Scheme != "https") || link.Host == "" {
		return "", false
	}

	normalized := url.URL{
		Scheme: link.Scheme,
		Host:   strings.ToLower(link.Host),
		Path:   link.Path,
	}

	return normalized.String(), true
}

// CategoryLabel returns category configured label or last segment of category URL path without extension.
func CategoryLabel(category models.SiteCategory) string {
	if label := strings.TrimSpace(category.Label); label != "" {
		return label
	}

	categoryURL, err := url.Parse(category.URL)
	if err != nil {
		return ""
	}

	segment := path.Base(strings.TrimRight(categoryURL.Path, "/"))
	if segment == "." || segment == "/" {
		return ""
	}

	return strings.TrimSuffix(segment, path.Ext(segment))
}

// find returns first element matching selector within item or item itself if selector is empty.
func find(item *goquery.Selection, selector string) *goquery.Selection {
	if selector == "" {
		return item
	}
	return item.Find(selector).First()
}

// text returns element text with whitespace collapsed.
func text(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// imageSource returns absolute image URL from src attribute or lazy loaded data-src attribute.
func imageSource(img *goquery.Selection, pageURL *url.URL) string {
	for _, attr := range []string{"src", "data-src"} {
		src, ok := img.Attr(attr)
		src = strings.TrimSpace(src)
		if !ok || src == "" || strings.HasPrefix(src, "data:") {
			continue
		}

		ref, err := url.Parse(src)
		if err != nil {
			continue
		}
		return pageURL.ResolveReference(ref).String()
	}

	return ""
}
