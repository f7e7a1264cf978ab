package tracker_test

import (
	"context"
	"testing"
	"time"

	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/MichalMitros/price-tracker/internal/platform/models/modelstesting"
	"github.com/MichalMitros/price-tracker/internal/tracker"
	"github.com/MichalMitros/price-tracker/internal/tracker/trackertesting"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	firstSeen = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	price     = modelstesting.Price
)

func TestUnitApplyNewProduct(t *testing.T) {
	storage := trackertesting.NewMemoryStorage()
	clock := &fakeClock{now: firstSeen}
	trk := tracker.NewTracker(storage, tracker.WithClock(clock))
	record := modelstesting.FakeRecord()

	outcome, err := trk.Apply(context.TODO(), record)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, models.OutcomeCreated, outcome, "should create product")
	assert.Equal(t, 1, storage.Products(), "should store exactly one product")

	product, ok := storage.Product(record.URL)
	require.True(t, ok, "product should be stored under record url")
	assert.Empty(t, storage.History(product.ID), "shouldn't archive any price")
	assert.Equal(t, firstSeen, product.AddedAt, "should set first seen time")
	assert.Equal(t, firstSeen, product.UpdatedAt, "should set last updated time")
	assert.Equal(t, record.Title, product.Title, "should store title")
	assert.Equal(t, record.RetailerID, product.RetailerID, "should store retailer")
	assert.True(t, product.FinalPrice.Decimal.Equal(record.FinalPrice.Decimal), "should store final price")
}

func TestUnitApplyUnchangedRecord(t *testing.T) {
	storage := trackertesting.NewMemoryStorage()
	clock := &fakeClock{now: firstSeen}
	trk := tracker.NewTracker(storage, tracker.WithClock(clock))
	record := modelstesting.FakeRecord()

	_, err := trk.Apply(context.TODO(), record)
	require.NoError(t, err, "shouldn't return any error")

	for range 5 {
		clock.advance(time.Hour)
		outcome, err := trk.Apply(context.TODO(), record)
		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, models.OutcomeRefreshed, outcome, "should only refresh product")
	}

	product, _ := storage.Product(record.URL)
	assert.Equal(t, 1, storage.Products(), "should store exactly one product")
	assert.Empty(t, storage.History(product.ID), "shouldn't archive any price")
	assert.Equal(t, firstSeen, product.AddedAt, "shouldn't change first seen time")
	assert.Equal(t, firstSeen.Add(5*time.Hour), product.UpdatedAt, "should advance last updated time")
}

func TestUnitApplyPriceChange(t *testing.T) {
	storage := trackertesting.NewMemoryStorage()
	clock := &fakeClock{now: firstSeen}
	trk := tracker.NewTracker(storage, tracker.WithClock(clock))
	record := modelstesting.FakeRecord(func(r *models.ScrapeRecord) {
		r.OriginalPrice = price("1000")
		r.FinalPrice = price("900")
	})

	_, err := trk.Apply(context.TODO(), record)
	require.NoError(t, err, "shouldn't return any error")

	clock.advance(time.Hour)
	record.FinalPrice = price("800")
	outcome, err := trk.Apply(context.TODO(), record)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, models.OutcomeUpdated, outcome, "should update product")

	product, _ := storage.Product(record.URL)
	assert.True(t, product.FinalPrice.Decimal.Equal(decimal.NewFromInt(800)), "should store new final price")

	history := storage.History(product.ID)
	require.Len(t, history, 1, "should archive exactly one price")
	assert.True(t, history[0].OriginalPrice.Decimal.Equal(decimal.NewFromInt(1000)), "should archive previous original price")
	assert.True(t, history[0].FinalPrice.Decimal.Equal(decimal.NewFromInt(900)), "should archive previous final price")
	assert.Equal(t, firstSeen.Add(time.Hour), history[0].RecordedAt, "should archive price at change detection time")
}

func TestUnitApplyAbsentPriceNeverOverwrites(t *testing.T) {
	storage := trackertesting.NewMemoryStorage()
	trk := tracker.NewTracker(storage, tracker.WithClock(&fakeClock{now: firstSeen}))
	record := modelstesting.FakeRecord(func(r *models.ScrapeRecord) {
		r.OriginalPrice = decimal.NullDecimal{}
		r.FinalPrice = price("800")
	})

	_, err := trk.Apply(context.TODO(), record)
	require.NoError(t, err, "shouldn't return any error")

	record.FinalPrice = decimal.NullDecimal{}
	outcome, err := trk.Apply(context.TODO(), record)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, models.OutcomeRefreshed, outcome, "should only refresh product")

	product, _ := storage.Product(record.URL)
	require.True(t, product.FinalPrice.Valid, "should keep stored final price")
	assert.True(t, product.FinalPrice.Decimal.Equal(decimal.NewFromInt(800)), "should keep stored final price")
	assert.Empty(t, storage.History(product.ID), "shouldn't archive any price")
}

func TestUnitApplyClearPolicy(t *testing.T) {
	storage := trackertesting.NewMemoryStorage()
	trk := tracker.NewTracker(storage,
		tracker.WithClock(&fakeClock{now: firstSeen}),
		tracker.WithPolicy(tracker.Policy{OriginalPrice: tracker.ClearStored}),
	)
	record := modelstesting.FakeRecord(func(r *models.ScrapeRecord) {
		r.OriginalPrice = price("1200")
		r.FinalPrice = price("1000")
	})

	_, err := trk.Apply(context.TODO(), record)
	require.NoError(t, err, "shouldn't return any error")

	// discount ended, retailer stopped showing original price
	record.OriginalPrice = decimal.NullDecimal{}
	outcome, err := trk.Apply(context.TODO(), record)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, models.OutcomeUpdated, outcome, "should update product")

	product, _ := storage.Product(record.URL)
	assert.False(t, product.OriginalPrice.Valid, "should clear original price")
	history := storage.History(product.ID)
	require.Len(t, history, 1, "should archive price before clearing")
	assert.True(t, history[0].OriginalPrice.Decimal.Equal(decimal.NewFromInt(1200)), "should archive cleared original price")

	// record without any price must not clear anything
	record.FinalPrice = decimal.NullDecimal{}
	outcome, err = trk.Apply(context.TODO(), record)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, models.OutcomeRefreshed, outcome, "should only refresh product")
	product, _ = storage.Product(record.URL)
	assert.True(t, product.FinalPrice.Valid, "should keep final price when record has no price")
}

func TestUnitApplyEndToEndScenario(t *testing.T) {
	storage := trackertesting.NewMemoryStorage()
	clock := &fakeClock{now: firstSeen}
	trk := tracker.NewTracker(storage, tracker.WithClock(clock))
	acmeID := 1
	widget := func(finalPrice string) models.ScrapeRecord {
		return models.ScrapeRecord{
			URL:        "https://acme.test/p1",
			Title:      "Widget",
			FinalPrice: price(finalPrice),
			RetailerID: acmeID,
			InStock:    true,
		}
	}

	outcome, err := trk.Apply(context.TODO(), widget("1000"))
	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, models.OutcomeCreated, outcome, "should create product")
	product, _ := storage.Product("https://acme.test/p1")
	assert.True(t, product.FinalPrice.Decimal.Equal(decimal.NewFromInt(1000)), "should store first price")
	assert.Empty(t, storage.History(product.ID), "shouldn't archive any price")

	clock.advance(time.Hour)
	outcome, err = trk.Apply(context.TODO(), widget("850"))
	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, models.OutcomeUpdated, outcome, "should update product")
	product, _ = storage.Product("https://acme.test/p1")
	assert.True(t, product.FinalPrice.Decimal.Equal(decimal.NewFromInt(850)), "should store new price")
	history := storage.History(product.ID)
	require.Len(t, history, 1, "should archive previous price")
	assert.True(t, history[0].FinalPrice.Decimal.Equal(decimal.NewFromInt(1000)), "should archive previous price")

	clock.advance(time.Hour)
	outcome, err = trk.Apply(context.TODO(), widget("850.00"))
	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, models.OutcomeRefreshed, outcome, "should only refresh product")
	product, _ = storage.Product("https://acme.test/p1")
	assert.True(t, product.FinalPrice.Decimal.Equal(decimal.NewFromInt(850)), "should keep price")
	assert.Len(t, storage.History(product.ID), 1, "shouldn't archive price again")
}

func TestUnitApplyInvalidRecord(t *testing.T) {
	tests := map[string]struct {
		record    models.ScrapeRecord
		wantCause error
	}{
		"missing url": {
			record:    modelstesting.FakeRecord(func(r *models.ScrapeRecord) { r.URL = "" }),
			wantCause: tracker.ErrMissingURL,
		},
		"relative url": {
			record:    modelstesting.FakeRecord(func(r *models.ScrapeRecord) { r.URL = "/p/123" }),
			wantCause: tracker.ErrRelativeURL,
		},
		"negative final price": {
			record:    modelstesting.FakeRecord(func(r *models.ScrapeRecord) { r.FinalPrice = price("-1") }),
			wantCause: tracker.ErrNegativePrice,
		},
		"negative original price": {
			record:    modelstesting.FakeRecord(func(r *models.ScrapeRecord) { r.OriginalPrice = price("-0.01") }),
			wantCause: tracker.ErrNegativePrice,
		},
		"missing retailer": {
			record:    modelstesting.FakeRecord(func(r *models.ScrapeRecord) { r.RetailerID = 0 }),
			wantCause: tracker.ErrMissingRetailer,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := trackertesting.NewMemoryStorage()
			trk := tracker.NewTracker(storage)

			_, err := trk.Apply(context.TODO(), tt.record)

			require.ErrorIs(t, err, tracker.ErrInvalidRecord, "should reject record")
			require.ErrorIs(t, err, tt.wantCause, "should return rejection cause")
			assert.Zero(t, storage.Products(), "shouldn't reach storage")
		})
	}
}

func TestUnitApplyStorageError(t *testing.T) {
	storage := trackertesting.NewMemoryStorage()
	trk := tracker.NewTracker(storage, tracker.WithClock(&fakeClock{now: firstSeen}))
	record := modelstesting.FakeRecord()

	_, err := trk.Apply(context.TODO(), record)
	require.NoError(t, err, "shouldn't return any error")

	storage.FailWrite = func(models.ProductChange) error { return assert.AnError }
	record.FinalPrice = price("1.23")
	_, err = trk.Apply(context.TODO(), record)

	require.ErrorContains(t, err, "can't apply scrape record", "should return error about failed apply")
	require.ErrorIs(t, err, assert.AnError, "should return error containing assert.AnError")

	product, _ := storage.Product(record.URL)
	assert.False(t, product.FinalPrice.Decimal.Equal(decimal.RequireFromString("1.23")), "shouldn't update product")
	assert.Empty(t, storage.History(product.ID), "shouldn't archive any price")
}

func TestUnitApplyCancelledContext(t *testing.T) {
	var storageCtxErr error
	storage := &ctxRecordingStorage{Storage: trackertesting.NewMemoryStorage(), err: &storageCtxErr}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := tracker.NewTracker(storage).Apply(ctx, modelstesting.FakeRecord())

	require.NoError(t, err, "should finish started upsert")
	assert.Equal(t, models.OutcomeCreated, outcome, "should create product")
	assert.NoError(t, storageCtxErr, "storage shouldn't see cancelled context")
}

func TestUnitAbsentPricePolicyUnmarshalText(t *testing.T) {
	tests := map[string]struct {
		text    string
		want    tracker.AbsentPricePolicy
		wantErr bool
	}{
		"empty":   {text: "", want: tracker.KeepStored},
		"keep":    {text: "keep", want: tracker.KeepStored},
		"clear":   {text: " CLEAR ", want: tracker.ClearStored},
		"unknown": {text: "drop", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var policy tracker.AbsentPricePolicy
			err := policy.UnmarshalText([]byte(tt.text))

			if tt.wantErr {
				require.Error(t, err, "should reject unknown policy")
				return
			}
			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.want, policy, "should parse policy")
			assert.Equal(t, lo.Ternary(tt.want == tracker.ClearStored, "clear", "keep"), policy.String())
		})
	}
}

type ctxRecordingStorage struct {
	tracker.Storage
	err *error
}

func (s *ctxRecordingStorage) UpsertProduct(ctx context.Context, url string, decide tracker.ChangeFunc) error {
	*s.err = ctx.Err()
	return s.Storage.UpsertProduct(ctx, url, decide)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}
