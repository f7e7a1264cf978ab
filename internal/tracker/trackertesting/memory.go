package trackertesting

import (
	"context"
	"sync"

	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/MichalMitros/price-tracker/internal/tracker"
)

// MemoryStorage is in-memory tracker.Storage.
// Each upsert is applied under single lock, so it's atomic and serializable.
type MemoryStorage struct {
	mu       sync.Mutex
	nextID   int
	products map[string]models.Product
	history  []models.HistoricalPrice

	// FailWrite, if set, is called before change is written. Returned error aborts the upsert.
	FailWrite func(change models.ProductChange) error
}

var _ tracker.Storage = (*MemoryStorage)(nil)

// NewMemoryStorage returns empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		products: make(map[string]models.Product),
	}
}

// UpsertProduct passes product stored under url to decide and stores returned change.
func (s *MemoryStorage) UpsertProduct(_ context.Context, url string, decide tracker.ChangeFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored *models.Product
	if product, ok := s.products[url]; ok {
		stored = &product
	}

	change, err := decide(stored)
	if err != nil {
		return err
	}

	if s.FailWrite != nil {
		if err := s.FailWrite(change); err != nil {
			return err
		}
	}

	product := change.Product
	if stored == nil {
		s.nextID++
		product.ID = s.nextID
	}
	s.products[url] = product

	if change.History != nil {
		history := *change.History
		history.ID = len(s.history) + 1
		s.history = append(s.history, history)
	}

	return nil
}

// Product returns product stored under url.
func (s *MemoryStorage) Product(url string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[url]
	return product, ok
}

// Products returns number of stored products.
func (s *MemoryStorage) Products() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.products)
}

// History returns price history of product in chronological order.
func (s *MemoryStorage) History(productID int) []models.HistoricalPrice {
	s.mu.Lock()
	defer s.mu.Unlock()

	var history []models.HistoricalPrice
	for ix := range s.history {
		if s.history[ix].ProductID == productID {
			history = append(history, s.history[ix])
		}
	}
	return history
}
