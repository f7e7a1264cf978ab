package tracker

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/MichalMitros/price-tracker/internal/platform/models"
)

var (
	// ErrInvalidRecord is returned when scrape record is rejected before reaching storage.
	ErrInvalidRecord = errors.New("invalid scrape record")
	// ErrMissingURL is returned when scrape record has no URL.
	ErrMissingURL = errors.New("missing url")
	// ErrRelativeURL is returned when scrape record URL isn't absolute.
	ErrRelativeURL = errors.New("url is not absolute")
	// ErrNegativePrice is returned when scrape record carries negative price.
	ErrNegativePrice = errors.New("negative price")
	// ErrMissingRetailer is returned when scrape record isn't tagged with resolved retailer.
	ErrMissingRetailer = errors.New("missing retailer")
)

// Validate checks if record can be applied to storage.
// Returned error wraps ErrInvalidRecord and the specific cause.
func Validate(record *models.ScrapeRecord) error {
	if cause := validate(record); cause != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, cause)
	}
	return nil
}

func validate(record *models.ScrapeRecord) error {
	if record.URL == "" {
		return ErrMissingURL
	}

	u, err := url.Parse(record.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ErrRelativeURL
	}

	if record.OriginalPrice.Valid && record.OriginalPrice.Decimal.IsNegative() {
		return ErrNegativePrice
	}

	if record.FinalPrice.Valid && record.FinalPrice.Decimal.IsNegative() {
		return ErrNegativePrice
	}

	if record.RetailerID <= 0 {
		return ErrMissingRetailer
	}

	return nil
}
