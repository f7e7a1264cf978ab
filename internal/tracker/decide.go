package tracker

import (
	"time"

	"github.com/MichalMitros/price-tracker/internal/platform/models"
)

// Decide compares scrape record with stored product and returns change to persist.
// Stored product is nil when record URL was never seen before.
func Decide(stored *models.Product, record *models.ScrapeRecord, policy Policy, now time.Time) models.ProductChange {
	if stored == nil {
		return models.ProductChange{
			Outcome: models.OutcomeCreated,
			Product: models.Product{
				URL:            record.URL,
				Title:          record.Title,
				OriginalPrice:  record.OriginalPrice,
				FinalPrice:     record.FinalPrice,
				ImageURL:       record.ImageURL,
				RetailCategory: record.CategoryLabel,
				RetailerID:     record.RetailerID,
				InStock:        record.InStock,
				ScrapeVersion:  record.Version,
				AddedAt:        now,
				UpdatedAt:      now,
			},
		}
	}

	hasPrice := record.HasPrice()
	originalPrice, originalChanged := resolvePrice(stored.OriginalPrice, record.OriginalPrice, policy.OriginalPrice, hasPrice)
	finalPrice, finalChanged := resolvePrice(stored.FinalPrice, record.FinalPrice, policy.FinalPrice, hasPrice)

	product := *stored
	product.Title = record.Title
	product.OriginalPrice = originalPrice
	product.FinalPrice = finalPrice
	product.RetailerID = record.RetailerID
	product.InStock = record.InStock
	product.ScrapeVersion = record.Version
	product.UpdatedAt = now
	if record.ImageURL != nil {
		product.ImageURL = record.ImageURL
	}
	if record.CategoryLabel != nil {
		product.RetailCategory = record.CategoryLabel
	}

	if !originalChanged && !finalChanged {
		return models.ProductChange{
			Outcome: models.OutcomeRefreshed,
			Product: product,
		}
	}

	return models.ProductChange{
		Outcome: models.OutcomeUpdated,
		Product: product,
		History: &models.HistoricalPrice{
			ProductID:     stored.ID,
			OriginalPrice: stored.OriginalPrice,
			FinalPrice:    stored.FinalPrice,
			RecordedAt:    now,
		},
	}
}
