package helpers

import (
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	pgmodels "github.com/MichalMitros/price-tracker/internal/platform/storage/gen/price_tracker/public/model"
	"github.com/MichalMitros/price-tracker/internal/platform/storage/storagetesting"
	"github.com/go-faker/faker/v4"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const (
	contentType  = "Content-Type"
	pageSize     = 5
	categoryPath = "/celulares"
)

var listingTemplate = template.Must(template.New("listing").Parse(`<!DOCTYPE html>
<html><body><ul class="products">
{{range .}}<li class="product">
  <a class="link" href="/p/{{.Slug}}?ref=listing"><h3 class="title">{{.Title}}</h3></a>
  <img class="photo" src="/img/{{.Slug}}.jpg">
  <span class="price">$ {{.Price}}</span>
</li>
{{end}}</ul></body></html>`))

// ShopProduct is product listed by fixture shop.
type ShopProduct struct {
	Slug  string
	Title string
	Price string
}

// Shop is fixture retailer site serving paginated listing of single category.
type Shop struct {
	Server   *httptest.Server
	mu       sync.Mutex
	products []ShopProduct
}

// NewShop starts fixture shop closed after test is finished.
func NewShop(t *testing.T) *Shop {
	t.Helper()

	shop := &Shop{}
	mux := http.NewServeMux()
	mux.HandleFunc(categoryPath, shop.listing)
	shop.Server = httptest.NewServer(mux)

	t.Cleanup(func() {
		shop.Server.Close()
	})

	return shop
}

// SetProducts replaces products listed by shop.
func (s *Shop) SetProducts(products []ShopProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]ShopProduct(nil), products...)
}

// ProductURL returns normalized URL of shop product.
func (s *Shop) ProductURL(product ShopProduct) string {
	return s.Server.URL + "/p/" + product.Slug
}

// Catalog returns TOML sites catalog with shop as retailer of provided name.
func (s *Shop) Catalog(name string) string {
	return fmt.Sprintf(`
[[sites]]
name = %q
url = %q
page_param = "page"
max_pages = 10
categories = [{ url = "%s%s" }]

[sites.selectors]
item = "li.product"
title = "h3.title"
link = "a.link"
final_price = "span.price"
image = "img.photo"
`, name, s.Server.URL, s.Server.URL, categoryPath)
}

func (s *Shop) listing(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	s.mu.Lock()
	from := min((page-1)*pageSize, len(s.products))
	to := min(page*pageSize, len(s.products))
	listed := s.products[from:to]
	s.mu.Unlock()

	w.Header().Set(contentType, "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = listingTemplate.Execute(w, listed)
}

// GenerateShopProducts generates n products with unique slugs and comma separated prices.
func GenerateShopProducts(t *testing.T, n int) []ShopProduct {
	t.Helper()

	return lo.Times(n, func(ix int) ShopProduct {
		return ShopProduct{
			Slug:  fmt.Sprintf("%s-%d", strings.ToLower(faker.Word()), ix+1),
			Title: faker.Sentence(),
			Price: fmt.Sprintf("%d,%02d", 1000+ix*100, ix),
		}
	})
}

// WaitForRuns is blocking helper function, returns all runs after n of them are finished.
func WaitForRuns(t *testing.T, queryable qrm.Queryable, n int) []pgmodels.Runs {
	t.Helper()

	deadline := time.After(time.Minute)
	for {
		select {
		case <-deadline:
			require.FailNow(t, "runs weren't finished in time")
		case <-time.After(time.Millisecond * 250):
		}

		runs := storagetesting.GetRuns(t, queryable)
		finished := lo.CountBy(runs, func(run pgmodels.Runs) bool { return run.FinishedAt != nil })
		if finished >= n {
			return runs
		}
	}
}
