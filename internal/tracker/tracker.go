package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/MichalMitros/price-tracker/internal/platform/models"
)

// ChangeFunc decides change to persist for product stored under record URL.
// Stored product is nil if there is none.
type ChangeFunc func(stored *models.Product) (models.ProductChange, error)

// Storage is products and price history storage.
type Storage interface {
	// UpsertProduct locks product stored under url, passes it to decide
	// and persists returned change atomically.
	UpsertProduct(ctx context.Context, url string, decide ChangeFunc) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

type systemClock struct{}

// Now returns current UTC time.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Option is custom configuration of Tracker.
type Option func(t *Tracker)

// Tracker applies scrape records to storage keeping products price history.
type Tracker struct {
	storage Storage
	policy  Policy
	clock   Clock
}

// NewTracker returns new Tracker.
func NewTracker(storage Storage, ops ...Option) *Tracker {
	t := &Tracker{
		storage: storage,
		clock:   systemClock{},
	}

	for _, op := range ops {
		op(t)
	}

	return t
}

// Apply validates record and applies it to storage.
// Once storage write starts it runs to completion even if ctx gets cancelled.
func (t *Tracker) Apply(ctx context.Context, record models.ScrapeRecord) (models.Outcome, error) {
	if err := Validate(&record); err != nil {
		return 0, err
	}

	var outcome models.Outcome
	err := t.storage.UpsertProduct(context.WithoutCancel(ctx), record.URL, func(stored *models.Product) (models.ProductChange, error) {
		change := Decide(stored, &record, t.policy, t.clock.Now())
		outcome = change.Outcome
		return change, nil
	})
	if err != nil {
		return 0, fmt.Errorf("can't apply scrape record: %w", err)
	}

	return outcome, nil
}

// WithPolicy sets Tracker's absent price policy.
func WithPolicy(p Policy) Option {
	return func(t *Tracker) {
		t.policy = p
	}
}

// WithClock sets Tracker's custom Clock.
func WithClock(c Clock) Option {
	return func(t *Tracker) {
		t.clock = c
	}
}
