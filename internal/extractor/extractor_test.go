package extractor_test

import (
	"context"
	"io"
	"net/url"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/MichalMitros/price-tracker/internal/extractor"
	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/MichalMitros/price-tracker/internal/platform/models/modelstesting"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const listingFileName = "listing.html"

var site = models.Site{
	Name:             "Acme",
	URL:              "https://www.acme.test",
	DecimalSeparator: ",",
	Selectors: models.Selectors{
		Item:          "li.product",
		Title:         "h3.title",
		Link:          "a.link",
		FinalPrice:    "span.price",
		OriginalPrice: "span.old-price",
		Image:         "img.photo",
		OutOfStock:    ".no-stock",
	},
}

func TestUnitExtract(t *testing.T) {
	page := &models.Page{
		URL:      "https://www.acme.test/celulares?page=2",
		Number:   2,
		Site:     &site,
		Category: models.SiteCategory{URL: "https://www.acme.test/celulares"},
	}

	count, records, extractErrors := extract(t, listingFileAsReader(t), page)

	require.Equal(t, 6, count, "should find all listing items")
	require.Len(t, records, 6, "should return result for each listing item")

	wantRecords := []models.ScrapeRecord{
		{
			URL:           "https://www.acme.test/p/phone-x",
			Title:         "Phone X & case",
			OriginalPrice: modelstesting.Price("1299999"),
			FinalPrice:    modelstesting.Price("1099999.5"),
			ImageURL:      lo.ToPtr("https://www.acme.test/img/phone-x.jpg"),
			CategoryLabel: lo.ToPtr("celulares"),
			InStock:       true,
		},
		{
			URL:           "https://www.acme.test/p/tablet",
			Title:         "Tablet",
			FinalPrice:    modelstesting.Price("450000"),
			ImageURL:      lo.ToPtr("https://cdn.acme.test/tablet.jpg"),
			CategoryLabel: lo.ToPtr("celulares"),
			InStock:       true,
		},
		{
			URL:           "https://www.acme.test/p/sold-out-watch",
			Title:         "Watch",
			FinalPrice:    modelstesting.Price("99.90"),
			CategoryLabel: lo.ToPtr("celulares"),
			InStock:       false,
		},
		{
			URL:           "https://www.acme.test/p/no-price",
			Title:         "Consultar precio",
			CategoryLabel: lo.ToPtr("celulares"),
			InStock:       false,
		},
	}
	for ix := range wantRecords {
		assert.NoErrorf(t, extractErrors[ix], "record at index %d shouldn't have error", ix)
		assertRecord(t, wantRecords[ix], records[ix], ix)
	}

	assert.ErrorIs(t, extractErrors[4], extractor.ErrMissingLink, "should skip item without link")
	assert.ErrorIs(t, extractErrors[5], extractor.ErrMissingTitle, "should skip item without title")
}

func TestUnitExtractEmptyPage(t *testing.T) {
	page := &models.Page{URL: "https://www.acme.test/celulares?page=9", Site: &site}

	count, records, _ := extract(t, strings.NewReader("<html><body><p>No hay productos</p></body></html>"), page)

	assert.Zero(t, count, "shouldn't find any listing items")
	assert.Empty(t, records, "shouldn't return any results")
}

func TestUnitExtractCancelled(t *testing.T) {
	page := &models.Page{URL: "https://www.acme.test/celulares", Site: &site}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count, err := extractor.Extractor{}.Extract(ctx, listingFileAsReader(t), page, make(chan models.ParsingResult))

	require.ErrorIs(t, err, context.Canceled, "should return context error")
	assert.Zero(t, count, "shouldn't send any results")
}

func TestUnitNormalizeLink(t *testing.T) {
	pageURL, err := url.Parse("https://shop.test/listado/tv/?p_=2")
	require.NoError(t, err)

	tests := map[string]struct {
		href     string
		wantLink string
		wantOK   bool
	}{
		"absolute":          {href: "https://shop.test/p/1", wantLink: "https://shop.test/p/1", wantOK: true},
		"root relative":     {href: "/p/1", wantLink: "https://shop.test/p/1", wantOK: true},
		"relative":          {href: "p/1", wantLink: "https://shop.test/listado/tv/p/1", wantOK: true},
		"query dropped":     {href: "/p/1?color=red&utm=x", wantLink: "https://shop.test/p/1", wantOK: true},
		"fragment dropped":  {href: "/p/1#specs", wantLink: "https://shop.test/p/1", wantOK: true},
		"host lowercased":   {href: "https://SHOP.test/p/1", wantLink: "https://shop.test/p/1", wantOK: true},
		"protocol relative": {href: "//cdn.shop.test/p/1", wantLink: "https://cdn.shop.test/p/1", wantOK: true},
		"empty":             {href: "  "},
		"fragment only":     {href: "#top"},
		"javascript":        {href: "javascript:void(0)"},
		"mailto":            {href: "mailto:ventas@shop.test"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			link, ok := extractor.NormalizeLink(pageURL, tt.href)

			assert.Equal(t, tt.wantOK, ok, "should report whether link is valid")
			assert.Equal(t, tt.wantLink, link, "should return normalized link")
		})
	}
}

func TestUnitCategoryLabel(t *testing.T) {
	tests := map[string]struct {
		category models.SiteCategory
		want     string
	}{
		"configured label":  {category: models.SiteCategory{URL: "https://shop.test/a/b", Label: " Phones "}, want: "Phones"},
		"trailing slash":    {category: models.SiteCategory{URL: "https://www.megatone.net/listado/tv-audio-video/"}, want: "tv-audio-video"},
		"extension dropped": {category: models.SiteCategory{URL: "https://www.cetrogar.com.ar/tecnologia.html"}, want: "tecnologia"},
		"query ignored":     {category: models.SiteCategory{URL: "https://shop.test/hogar?orden=1"}, want: "hogar"},
		"root":              {category: models.SiteCategory{URL: "https://shop.test/"}, want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.CategoryLabel(tt.category), "should return category label")
		})
	}
}

func extract(t *testing.T, html io.Reader, page *models.Page) (int, []models.ScrapeRecord, []error) {
	t.Helper()

	results := make(chan models.ParsingResult)
	var (
		count         int
		records       []models.ScrapeRecord
		extractErrors []error
	)

	var eg errgroup.Group
	eg.Go(func() error {
		defer close(results)
		var err error
		count, err = extractor.Extractor{}.Extract(context.TODO(), html, page, results)
		return err
	})
	eg.Go(func() error {
		for result := range results {
			records = append(records, result.Record)
			extractErrors = append(extractErrors, result.Error)
		}
		return nil
	})

	require.NoError(t, eg.Wait(), "shouldn't return any error")

	return count, records, extractErrors
}

// assertRecord is a helper test function to assert extracted record.
func assertRecord(t *testing.T, want, got models.ScrapeRecord, ix int) {
	t.Helper()

	assert.Equalf(t, want.URL, got.URL, "record at index %d has incorrect url", ix)
	assert.Equalf(t, want.Title, got.Title, "record at index %d has incorrect title", ix)
	assert.Equalf(t, want.ImageURL, got.ImageURL, "record at index %d has incorrect image", ix)
	assert.Equalf(t, want.CategoryLabel, got.CategoryLabel, "record at index %d has incorrect category label", ix)
	assert.Equalf(t, want.InStock, got.InStock, "record at index %d has incorrect stock", ix)
	assertPrice(t, want.OriginalPrice, got.OriginalPrice, "record at index %d has incorrect original price", ix)
	assertPrice(t, want.FinalPrice, got.FinalPrice, "record at index %d has incorrect final price", ix)
}

func assertPrice(t *testing.T, want, got decimal.NullDecimal, msg string, args ...any) {
	t.Helper()

	if !want.Valid {
		assert.Falsef(t, got.Valid, msg, args...)
		return
	}
	if assert.Truef(t, got.Valid, msg, args...) {
		assert.Truef(t, want.Decimal.Equal(got.Decimal), msg+": want %s, got %s", append(args, want.Decimal, got.Decimal)...)
	}
}

// listingFileAsReader returns io.Reader with listing page.
func listingFileAsReader(t *testing.T) io.Reader {
	t.Helper()

	f, err := os.Open(path.Join("testdata", listingFileName))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	return f
}
