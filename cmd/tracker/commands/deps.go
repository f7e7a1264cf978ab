package commands

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/MichalMitros/price-tracker/internal/extractor"
	"github.com/MichalMitros/price-tracker/internal/fetcher"
	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/MichalMitros/price-tracker/internal/platform/storage"
	"github.com/MichalMitros/price-tracker/internal/scraper"
	"github.com/MichalMitros/price-tracker/internal/sites"
	"github.com/MichalMitros/price-tracker/internal/tracker"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
)

func openPostgres() (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("can't open Postgres connection: %w", err)
	}

	return db, nil
}

func openRabbitMQ() (*amqp.Connection, error) {
	if cfg.RabbitMQ.URL == "" {
		return nil, errors.New("RABBITMQ_URL is not set")
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, fmt.Errorf("can't open RabbitMQ connection: %w", err)
	}

	return conn, nil
}

func loadCatalog() (*sites.Catalog, error) {
	catalog, err := sites.LoadFile(cfg.SitesFile)
	if err != nil {
		return nil, fmt.Errorf("can't load sites catalog: %w", err)
	}

	return catalog, nil
}

// selectSites returns sites of named retailers or whole catalog when all is set.
func selectSites(catalog *sites.Catalog, names []string, all bool) ([]models.Site, error) {
	if all {
		return catalog.Sites(), nil
	}
	if len(names) == 0 {
		return nil, errors.New("no retailer given, use retailer names or --all")
	}

	selected := make([]models.Site, 0, len(names))
	for _, name := range names {
		site, err := catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, *site)
	}

	return selected, nil
}

// newScraper wires scraper with Postgres storage. Returned close func releases the browser.
func newScraper(db *sql.DB) (*scraper.Scraper, func()) {
	pg := storage.NewPostgres(db)

	var (
		ops     []fetcher.Option
		closeFn = func() {}
	)
	if cfg.Browser.Enabled {
		browser := fetcher.NewBrowser(cfg.Browser.ExecPath, cfg.UserAgent, cfg.Browser.RenderWait)
		ops = append(ops, fetcher.WithRenderer(browser))
		closeFn = browser.Close
	}

	scr := scraper.NewScraper(
		fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.UserAgent, ops...),
		extractor.Extractor{},
		pg,
		tracker.NewTracker(pg, tracker.WithPolicy(cfg.Policy())),
		cfg.BatchSize,
		scraper.WithLogger(&logger),
		scraper.WithMarkUnseen(cfg.MarkUnseenOutOfStock),
	)

	return scr, closeFn
}
