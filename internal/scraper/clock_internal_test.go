package scraper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnitSystemClockTimestamp(t *testing.T) {
	assert.InDelta(
		t,
		time.Now().UTC().UnixMilli(),
		systemClock{}.Timestamp(),
		float64(50*time.Millisecond),
		"should return current timestamp",
	)
}

func TestUnitSystemClockNow(t *testing.T) {
	now := systemClock{}.Now()

	assert.WithinDuration(t, time.Now().UTC(), *now, 50*time.Millisecond, "should return current time")
	assert.Equal(t, time.UTC, now.Location(), "should return UTC time")
}

func TestUnitSleepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sleep(ctx, time.Hour)

	assert.ErrorIs(t, err, context.Canceled, "should stop waiting when context is cancelled")
}
