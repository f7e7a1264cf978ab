package scraper

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Extractor --filename extractor.go
//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Applier --filename applier.go

// Fetcher fetches listing pages.
type Fetcher interface {
	FetchPage(ctx context.Context, url string, render bool) (io.ReadCloser, error)
}

// Extractor extracts scrape records from listing page into parsing results.
// Returns number of found listing items.
type Extractor interface {
	Extract(ctx context.Context, html io.Reader, page *models.Page, output chan<- models.ParsingResult) (int, error)
}

// Applier applies scrape records to products storage.
type Applier interface {
	Apply(ctx context.Context, record models.ScrapeRecord) (models.Outcome, error)
}

// Clock provides times.
type Clock interface {
	// Timestamp returns UTC unix timestamp.
	Timestamp() int64
	// Now returns current UTC time.
	Now() *time.Time
}

// Storage is retailers and runs storage.
type Storage interface {
	// GetOrCreateRetailer returns retailer with provided url, creating it if needed.
	GetOrCreateRetailer(ctx context.Context, name, url string) (*models.Retailer, error)
	// StartRun creates new run if there is no run for provided retailer running.
	StartRun(ctx context.Context, retailerID int, version int64) (*models.Run, error)
	// FinishRun finishes provided run and updates its statistics.
	FinishRun(ctx context.Context, run *models.Run) error
	// MarkUnseenOutOfStock marks in stock products of retailer with version lower than provided as out of stock.
	// Returns number of marked products.
	MarkUnseenOutOfStock(
		ctx context.Context,
		retailerID int,
		version int64,
		batchSize uint,
	) (markedProducts int32, err error)
}

// Option is custom configuration of Scraper.
type Option func(s *Scraper)

// Scraper crawls retailer sites and applies scraped products to storage.
type Scraper struct {
	fetcher    Fetcher
	extractor  Extractor
	storage    Storage
	applier    Applier
	batchSize  uint
	markUnseen bool
	clock      Clock
	logger     *zerolog.Logger
}

// NewScraper returns new Scraper.
func NewScraper(
	fetcher Fetcher,
	extractor Extractor,
	storage Storage,
	applier Applier,
	batchSize uint,
	ops ...Option,
) *Scraper {
	nop := zerolog.Nop()
	scr := &Scraper{
		fetcher:    fetcher,
		extractor:  extractor,
		storage:    storage,
		applier:    applier,
		batchSize:  batchSize,
		markUnseen: true,
		clock:      systemClock{},
		logger:     &nop,
	}

	for _, op := range ops {
		op(scr)
	}

	return scr
}

// Scrape scrapes all categories of site and returns finished run.
// Failing pages end their category, failing products are counted, neither fails the run.
func (s *Scraper) Scrape(ctx context.Context, site *models.Site) (*models.Run, error) {
	retailer, err := s.storage.GetOrCreateRetailer(ctx, site.Name, site.URL)
	if err != nil {
		return nil, fmt.Errorf("can't get retailer: %w", err)
	}

	version := s.clock.Timestamp()

	// insert new run in storage.
	run, err := s.storage.StartRun(ctx, retailer.ID, version)
	if err != nil {
		return nil, fmt.Errorf("can't start scraping: %w", err)
	}

	logger := s.logger.With().
		Str("retailer", site.Name).
		Int("runId", run.ID).
		Logger()
	logger.Info().Msg("scraping started")

	// crawl pages and apply products.
	stats, err := s.scrapeProducts(ctx, site, run, &logger)

	run.CreatedProducts = &stats.created
	run.UpdatedProducts = &stats.updated
	run.RefreshedProducts = &stats.refreshed
	run.SkippedProducts = &stats.skipped
	run.FailedProducts = &stats.failed

	if err != nil {
		return run, s.finishScraping(ctx, run, err, &logger)
	}

	switch {
	case stats.failedPages > 0:
		run.StatusMessage = lo.ToPtr(fmt.Sprintf("crawl incomplete: %d page(s) failed", stats.failedPages))
	case stats.unsettled > 0 && s.markUnseen:
		run.StatusMessage = lo.ToPtr(fmt.Sprintf("unseen products not marked: %d listed product(s) not stored", stats.unsettled))
	}

	// mark products missing from complete crawl, listed products have to be stored first.
	if s.markUnseen && stats.failedPages == 0 && stats.unsettled == 0 {
		staleProducts, err := s.storage.MarkUnseenOutOfStock(ctx, retailer.ID, version, s.batchSize)
		run.StaleProducts = &staleProducts

		if err != nil {
			return run, s.finishScraping(ctx, run, fmt.Errorf("can't mark unseen products: %w", err), &logger)
		}
	}

	return run, s.finishScraping(ctx, run, nil, &logger)
}

type scrapeStats struct {
	created     int32
	updated     int32
	refreshed   int32
	skipped     int32
	failed      int32
	failedPages int32
	// listed products which weren't stored, their scrape version is outdated
	unsettled int32
}

func (s *Scraper) scrapeProducts(
	ctx context.Context,
	site *models.Site,
	run *models.Run,
	logger *zerolog.Logger,
) (scrapeStats, error) {
	parsingResults := make(chan models.ParsingResult)
	stats := scrapeStats{}

	errGroup, egCtx := errgroup.WithContext(ctx)

	// crawl categories pages.
	errGroup.Go(func() error {
		defer close(parsingResults)

		failedPages, err := s.crawl(egCtx, site, parsingResults, logger)
		stats.failedPages = failedPages
		if err != nil {
			return fmt.Errorf("can't crawl site: %w", err)
		}

		return nil
	})

	// apply scraped products.
	errGroup.Go(func() error {
		return s.applyProducts(egCtx, run, parsingResults, &stats, logger)
	})

	err := errGroup.Wait()

	return stats, err
}

func (s *Scraper) crawl(
	ctx context.Context,
	site *models.Site,
	output chan<- models.ParsingResult,
	logger *zerolog.Logger,
) (int32, error) {
	failedPages := int32(0)

	for _, category := range site.Categories {
		for number := site.FirstPage; number < site.FirstPage+max(site.MaxPages, 1); number++ {
			if number > site.FirstPage && site.PageDelay > 0 {
				if err := sleep(ctx, site.PageDelay); err != nil {
					return failedPages, err
				}
			}

			pageURL, err := PageURL(category.URL, site.PageParam, number)
			if err != nil {
				return failedPages, err
			}

			page := &models.Page{
				URL:      pageURL,
				Number:   number,
				Site:     site,
				Category: category,
			}

			items, err := s.scrapePage(ctx, page, output)
			if ctx.Err() != nil {
				return failedPages, ctx.Err()
			}
			if err != nil {
				failedPages++
				logger.Warn().Err(err).Str("url", pageURL).Msg("page failed, skipping rest of category")
				break
			}

			// empty page ends category.
			if items == 0 || site.PageParam == "" {
				break
			}
		}
	}

	return failedPages, nil
}

func (s *Scraper) scrapePage(ctx context.Context, page *models.Page, output chan<- models.ParsingResult) (int, error) {
	html, err := s.fetcher.FetchPage(ctx, page.URL, page.Site.Render)
	if err != nil {
		return 0, fmt.Errorf("can't fetch page: %w", err)
	}
	defer html.Close()

	items, err := s.extractor.Extract(ctx, html, page, output)
	if err != nil {
		return items, fmt.Errorf("can't extract products: %w", err)
	}

	return items, nil
}

func (s *Scraper) applyProducts(
	ctx context.Context,
	run *models.Run,
	input <-chan models.ParsingResult,
	stats *scrapeStats,
	logger *zerolog.Logger,
) error {
	for result := range input {
		if err := ctx.Err(); err != nil {
			return err
		}

		if result.Error != nil {
			stats.skipped++
			if result.Record.URL != "" {
				stats.unsettled++
			}
			logger.Debug().Err(result.Error).Str("url", result.Record.URL).Msg("listing item skipped")
			continue
		}

		record := result.Record
		record.RetailerID = run.RetailerID
		record.Version = run.ProductsVersion

		if record.HasInvertedPrices() {
			logger.Warn().
				Str("url", record.URL).
				Stringer("originalPrice", record.OriginalPrice.Decimal).
				Stringer("finalPrice", record.FinalPrice.Decimal).
				Msg("original price lower than final price")
		}

		outcome, err := s.applier.Apply(ctx, record)
		if err != nil {
			stats.failed++
			stats.unsettled++
			logger.Error().Err(err).Str("url", record.URL).Msg("can't apply product")
			continue
		}

		switch outcome {
		case models.OutcomeCreated:
			stats.created++
		case models.OutcomeUpdated:
			stats.updated++
		case models.OutcomeRefreshed:
			stats.refreshed++
		}
	}

	return nil
}

func (s *Scraper) finishScraping(ctx context.Context, run *models.Run, status error, logger *zerolog.Logger) error {
	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}
	run.IsSuccess = lo.ToPtr(status == nil)
	run.FinishedAt = s.clock.Now()

	// run is recorded even if scraping was cancelled.
	err := s.storage.FinishRun(context.WithoutCancel(ctx), run)

	event := logger.Info()
	if status != nil {
		event = logger.Error().Err(status)
	}
	event.
		Int32("created", *run.CreatedProducts).
		Int32("updated", *run.UpdatedProducts).
		Int32("refreshed", *run.RefreshedProducts).
		Int32("skipped", *run.SkippedProducts).
		Int32("failed", *run.FailedProducts).
		Int32("stale", lo.FromPtr(run.StaleProducts)).
		Msg("scraping finished")

	if err != nil && status == nil {
		return fmt.Errorf("can't finish scraping: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed scraping: %w (fail reason: %w)", err, status)
	}

	return status
}

// PageURL returns URL of category page with page number set in query parameter.
// Empty param means category has single page under its URL.
func PageURL(categoryURL, param string, number int) (string, error) {
	if param == "" {
		return categoryURL, nil
	}

	u, err := url.Parse(categoryURL)
	if err != nil {
		return "", fmt.Errorf("can't parse category url: %w", err)
	}

	query := u.Query()
	query.Set(param, strconv.Itoa(number))
	u.RawQuery = query.Encode()

	return u.String(), nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WithClock sets Scraper's custom Clock.
func WithClock(c Clock) Option {
	return func(s *Scraper) {
		s.clock = c
	}
}

// WithLogger sets Scraper's logger.
func WithLogger(l *zerolog.Logger) Option {
	return func(s *Scraper) {
		s.logger = l
	}
}

// WithMarkUnseen sets whether products missing from complete crawl are marked out of stock.
func WithMarkUnseen(mark bool) Option {
	return func(s *Scraper) {
		s.markUnseen = mark
	}
}
