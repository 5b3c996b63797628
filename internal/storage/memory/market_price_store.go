package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/storage"
)

// MarketPriceStore is an in-memory implementation of storage.MarketPriceStore.
type MarketPriceStore struct {
	mu   sync.RWMutex
	data map[string]*domain.MarketPricePoint // keyed by (product_id, date, source)
}

// NewMarketPriceStore creates a new in-memory market price store.
func NewMarketPriceStore() *MarketPriceStore {
	return &MarketPriceStore{
		data: make(map[string]*domain.MarketPricePoint),
	}
}

// Compile-time interface check.
var _ storage.MarketPriceStore = (*MarketPriceStore)(nil)

func marketKey(productID, date, source string) string {
	return fmt.Sprintf("%s|%s|%s", productID, date, source)
}

// InsertBulk adds multiple points. Fails entire batch on duplicate
// (product_id, date, source).
func (s *MarketPriceStore) InsertBulk(_ context.Context, points []*domain.MarketPricePoint) error {
	if len(points) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := make(map[string]struct{}, len(points))
	for _, p := range points {
		if p == nil || p.ProductID == "" {
			return storage.ErrInvalidInput
		}
		key := marketKey(p.ProductID, p.Date, p.Source)
		if _, exists := s.data[key]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batch[key]; exists {
			return storage.ErrDuplicateKey
		}
		batch[key] = struct{}{}
	}

	for _, p := range points {
		pointCopy := *p
		s.data[marketKey(p.ProductID, p.Date, p.Source)] = &pointCopy
	}
	return nil
}

// GetAll retrieves every point, ordered by (product_id, date) ASC.
func (s *MarketPriceStore) GetAll(_ context.Context) ([]*domain.MarketPricePoint, error) {
	return s.collect(func(*domain.MarketPricePoint) bool { return true }), nil
}

// GetByProductID retrieves all points for a product, ordered by date ASC.
func (s *MarketPriceStore) GetByProductID(_ context.Context, productID string) ([]*domain.MarketPricePoint, error) {
	return s.collect(func(p *domain.MarketPricePoint) bool { return p.ProductID == productID }), nil
}

func (s *MarketPriceStore) collect(match func(*domain.MarketPricePoint) bool) []*domain.MarketPricePoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.MarketPricePoint
	for _, p := range s.data {
		if match(p) {
			pointCopy := *p
			result = append(result, &pointCopy)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ProductID != result[j].ProductID {
			return result[i].ProductID < result[j].ProductID
		}
		return result[i].Date < result[j].Date
	})
	return result
}
