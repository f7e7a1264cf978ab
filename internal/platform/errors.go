package platform

import (
	"errors"
)

var (
	// ErrAlreadyRunning is an error returned when run can't be started because previous run is not finished yet.
	ErrAlreadyRunning = errors.New("scraping already running for this retailer")
	// ErrNotFound is an error returned when requested entity doesn't exist in storage.
	ErrNotFound = errors.New("not found")
)
