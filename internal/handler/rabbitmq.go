package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/MichalMitros/price-tracker/internal/platform"
	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/MichalMitros/price-tracker/internal/platform/rabbitmq"
	"github.com/MichalMitros/price-tracker/pkg/v1/commander"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Consumer --filename consumer.go
//go:generate mockery --name Scraper --filename scraper.go
//go:generate mockery --name Catalog --filename catalog.go

// Consumer consumes queue messages.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// Scraper scrapes retailer sites.
type Scraper interface {
	Scrape(ctx context.Context, site *models.Site) (*models.Run, error)
}

// Catalog finds retailer sites by retailer name.
type Catalog interface {
	Lookup(name string) (*models.Site, error)
}

// RMQHandler handles scrape commands from RMQ.
type RMQHandler struct {
	consumer Consumer
	scraper  Scraper
	catalog  Catalog
	logger   *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(consumer Consumer, scraper Scraper, catalog Catalog, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		consumer: consumer,
		scraper:  scraper,
		catalog:  catalog,
		logger:   logger,
	}
}

// Start starts consuming and handling scrape commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.consumer.Consume(ctx, queue, h.Handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

// Handle runs scrape of retailer from scrape command message.
// Commands of retailer being scraped already are dropped.
func (h *RMQHandler) Handle(ctx context.Context, message []byte) error {
	cmd, err := commander.DecodeScrapeCommand(message)
	if err != nil {
		return err
	}

	site, err := h.catalog.Lookup(cmd.Retailer)
	if err != nil {
		return err
	}

	logger := h.logger.With().Str("retailer", site.Name).Logger()
	logger.Debug().Msg("scraping command received")

	run, err := h.scraper.Scrape(ctx, site)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		logger.Warn().Msg("retailer is being scraped already, command dropped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("scraping failed: %w", err)
	}

	logger.Info().
		Int("runId", run.ID).
		Int32("created", lo.FromPtr(run.CreatedProducts)).
		Int32("updated", lo.FromPtr(run.UpdatedProducts)).
		Int32("stale", lo.FromPtr(run.StaleProducts)).
		Msg("scraping command handled")

	return nil
}
