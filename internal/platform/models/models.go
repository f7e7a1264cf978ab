package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Outcome is result of applying scrape record to storage.
type Outcome int

const (
	// OutcomeCreated means product was seen for the first time and inserted.
	OutcomeCreated Outcome = iota + 1
	// OutcomeUpdated means product price changed and previous price was archived.
	OutcomeUpdated
	// OutcomeRefreshed means product price didn't change, only descriptive fields were refreshed.
	OutcomeRefreshed
)

// String returns outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	case OutcomeRefreshed:
		return "refreshed"
	default:
		return "unknown"
	}
}

// ScrapeRecord is normalized product listing scraped from retailer site.
type ScrapeRecord struct {
	URL           string
	Title         string
	OriginalPrice decimal.NullDecimal
	FinalPrice    decimal.NullDecimal
	ImageURL      *string
	CategoryLabel *string
	RetailerID    int
	InStock       bool
	Version       int64
}

// HasPrice reports whether record carries at least one price.
func (r *ScrapeRecord) HasPrice() bool {
	return r.OriginalPrice.Valid || r.FinalPrice.Valid
}

// HasInvertedPrices reports whether original price is lower than final price.
func (r *ScrapeRecord) HasInvertedPrices() bool {
	return r.OriginalPrice.Valid && r.FinalPrice.Valid &&
		r.OriginalPrice.Decimal.LessThan(r.FinalPrice.Decimal)
}

// ParsingResult contains scraped record or the reason it was skipped.
type ParsingResult struct {
	Record ScrapeRecord
	Error  error
}

// Retailer is scraped e-commerce site model.
type Retailer struct {
	ID        int
	Name      string
	URL       string
	CreatedAt time.Time
}

// Category is normalized product category model.
type Category struct {
	ID   int
	Name string
}

// RetailerCategory is retailer supplied category label with its normalized category if mapped.
type RetailerCategory struct {
	ID         int
	RetailerID int
	Name       string
	CategoryID *int
}

// Product is product listing model holding its current price.
type Product struct {
	ID             int
	URL            string
	Title          string
	OriginalPrice  decimal.NullDecimal
	FinalPrice     decimal.NullDecimal
	ImageURL       *string
	RetailCategory *string
	CategoryID     *int
	RetailerID     int
	InStock        bool
	ScrapeVersion  int64
	AddedAt        time.Time
	UpdatedAt      time.Time
}

// ProductView is product with its retailer and category names.
type ProductView struct {
	Product
	RetailerName string
	CategoryName *string
}

// HistoricalPrice is product prices archived right before they changed.
type HistoricalPrice struct {
	ID            int
	ProductID     int
	OriginalPrice decimal.NullDecimal
	FinalPrice    decimal.NullDecimal
	RecordedAt    time.Time
}

// ProductChange is product state to persist with optional price history entry.
type ProductChange struct {
	Outcome Outcome
	Product Product
	History *HistoricalPrice
}

// Run is scraping process run model.
type Run struct {
	ID                int
	RetailerID        int
	CreatedAt         time.Time
	FinishedAt        *time.Time
	IsSuccess         *bool
	StatusMessage     *string
	CreatedProducts   *int32
	UpdatedProducts   *int32
	RefreshedProducts *int32
	SkippedProducts   *int32
	FailedProducts    *int32
	StaleProducts     *int32
	ProductsVersion   int64
}

// ProductSort is products listing order.
type ProductSort string

// Supported products listing orders.
const (
	SortDefault      ProductSort = ""
	SortPriceAsc     ProductSort = "price_asc"
	SortPriceDesc    ProductSort = "price_desc"
	SortNameAsc      ProductSort = "name_asc"
	SortNameDesc     ProductSort = "name_desc"
	SortRetailerAsc  ProductSort = "retailer_asc"
	SortRetailerDesc ProductSort = "retailer_desc"
	SortDateAsc      ProductSort = "date_asc"
	SortDateDesc     ProductSort = "date_desc"
)

// ProductFilter is products search criteria.
type ProductFilter struct {
	Query      string
	Retailers  []string
	Categories []string
	MinPrice   decimal.NullDecimal
	MaxPrice   decimal.NullDecimal
	InStock    *bool
	Sort       ProductSort
	Offset     int
	Limit      int
}

// ProductPage is single page of products search results.
type ProductPage struct {
	Products []ProductView
	Total    int64
}

// Site is retailer site scraping definition.
type Site struct {
	Name             string
	URL              string
	PageParam        string
	FirstPage        int
	MaxPages         int
	PageDelay        time.Duration
	Render           bool
	DecimalSeparator string
	Categories       []SiteCategory
	Selectors        Selectors
}

// SiteCategory is listing of one retailer category.
type SiteCategory struct {
	URL   string
	Label string
}

// Selectors are CSS selectors locating listing fields within site pages.
type Selectors struct {
	Item          string
	Title         string
	Link          string
	FinalPrice    string
	OriginalPrice string
	Image         string
	OutOfStock    string
}

// Page is single listing page of retailer category.
type Page struct {
	URL      string
	Number   int
	Site     *Site
	Category SiteCategory
}
