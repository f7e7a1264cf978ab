package handler_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/MichalMitros/price-tracker/internal/handler"
	"github.com/MichalMitros/price-tracker/internal/handler/mocks"
	"github.com/MichalMitros/price-tracker/internal/platform"
	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/MichalMitros/price-tracker/internal/platform/models/modelstesting"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var logger = zerolog.Nop()

func TestUnitStart(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		errs := make(chan error)
		consumer := mocks.NewConsumer(t)
		consumer.On("Consume", mock.Anything, "commands", mock.Anything).Return((<-chan error)(errs), nil)

		han := handler.NewHandler(consumer, mocks.NewScraper(t), mocks.NewCatalog(t), &logger)
		err := han.Start(context.TODO(), "commands")

		require.NoError(t, err, "shouldn't return any error")

		// consuming errors are drained in background
		errs <- assert.AnError
		close(errs)
	})

	t.Run("consume error", func(t *testing.T) {
		consumer := mocks.NewConsumer(t)
		consumer.On("Consume", mock.Anything, "commands", mock.Anything).Return(nil, assert.AnError)

		han := handler.NewHandler(consumer, mocks.NewScraper(t), mocks.NewCatalog(t), &logger)
		err := han.Start(context.TODO(), "commands")

		require.ErrorIs(t, err, assert.AnError, "should return consuming error")
	})
}

func TestUnitHandle(t *testing.T) {
	site := modelstesting.FakeSite(func(s *models.Site) { s.Name = "Megatone" })
	run := &models.Run{
		ID:              1,
		IsSuccess:       lo.ToPtr(true),
		CreatedProducts: lo.ToPtr(int32(10)),
	}

	tests := map[string]struct {
		message    string
		lookupErr  error
		scrapeErr  error
		wantLookup bool
		wantScrape bool
		wantErr    error
		wantErrMsg string
	}{
		"ok": {
			message:    `{"retailer":"megatone"}`,
			wantLookup: true,
			wantScrape: true,
		},
		"malformed message": {
			message:    `{"retailer":`,
			wantErrMsg: "can't decode scrape command",
		},
		"unknown retailer": {
			message:    `{"retailer":"megatone"}`,
			lookupErr:  assert.AnError,
			wantLookup: true,
			wantErr:    assert.AnError,
		},
		"already running": {
			message:    `{"retailer":"megatone"}`,
			scrapeErr:  fmt.Errorf("can't start scraping: %w", platform.ErrAlreadyRunning),
			wantLookup: true,
			wantScrape: true,
		},
		"scraping error": {
			message:    `{"retailer":"megatone"}`,
			scrapeErr:  assert.AnError,
			wantLookup: true,
			wantScrape: true,
			wantErr:    assert.AnError,
			wantErrMsg: "scraping failed",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			scraper := mocks.NewScraper(t)
			catalog := mocks.NewCatalog(t)

			if tt.wantLookup {
				var found *models.Site
				if tt.lookupErr == nil {
					found = &site
				}
				catalog.On("Lookup", "megatone").Return(found, tt.lookupErr)
			}
			if tt.wantScrape {
				var finished *models.Run
				if tt.scrapeErr == nil {
					finished = run
				}
				scraper.On("Scrape", mock.Anything, &site).Return(finished, tt.scrapeErr)
			}

			han := handler.NewHandler(mocks.NewConsumer(t), scraper, catalog, &logger)
			err := han.Handle(context.TODO(), []byte(tt.message))

			if tt.wantErr == nil && tt.wantErrMsg == "" {
				require.NoError(t, err, "shouldn't return any error")
				return
			}
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			}
			if tt.wantErrMsg != "" {
				require.ErrorContains(t, err, tt.wantErrMsg, "should return correct error message")
			}
		})
	}
}
