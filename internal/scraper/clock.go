package scraper

import "time"

type systemClock struct{}

// Timestamp returns current UTC timestamp in milliseconds.
func (c systemClock) Timestamp() int64 {
	return time.Now().UTC().UnixMilli()
}

// Now returns current UTC time.
func (c systemClock) Now() *time.Time {
	t := time.Now().UTC()
	return &t
}
