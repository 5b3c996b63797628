package memory

import (
	"context"
	"sort"
	"sync"

	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/storage"
)

// InvoiceLineStore is an in-memory implementation of storage.InvoiceLineStore.
type InvoiceLineStore struct {
	mu   sync.RWMutex
	data map[string]*domain.InvoiceLine // keyed by line_id
}

// NewInvoiceLineStore creates a new in-memory invoice line store.
func NewInvoiceLineStore() *InvoiceLineStore {
	return &InvoiceLineStore{
		data: make(map[string]*domain.InvoiceLine),
	}
}

// Compile-time interface check.
var _ storage.InvoiceLineStore = (*InvoiceLineStore)(nil)

// InsertBulk adds multiple lines. Fails entire batch on duplicate line_id.
func (s *InvoiceLineStore) InsertBulk(_ context.Context, lines []*domain.InvoiceLine) error {
	if len(lines) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if l == nil || l.LineID == "" {
			return storage.ErrInvalidInput
		}
		if _, exists := s.data[l.LineID]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batch[l.LineID]; exists {
			return storage.ErrDuplicateKey
		}
		batch[l.LineID] = struct{}{}
	}

	for _, l := range lines {
		lineCopy := *l
		s.data[l.LineID] = &lineCopy
	}
	return nil
}

// GetAll retrieves every line, ordered by line_id ASC.
func (s *InvoiceLineStore) GetAll(_ context.Context) ([]*domain.InvoiceLine, error) {
	return s.collect(func(*domain.InvoiceLine) bool { return true }), nil
}

// GetBySupplierID retrieves all lines for a supplier, ordered by line_id ASC.
func (s *InvoiceLineStore) GetBySupplierID(_ context.Context, supplierID string) ([]*domain.InvoiceLine, error) {
	return s.collect(func(l *domain.InvoiceLine) bool { return l.SupplierID == supplierID }), nil
}

// GetByProductID retrieves all lines for a product, ordered by line_id ASC.
func (s *InvoiceLineStore) GetByProductID(_ context.Context, productID string) ([]*domain.InvoiceLine, error) {
	return s.collect(func(l *domain.InvoiceLine) bool { return l.ProductID == productID }), nil
}

func (s *InvoiceLineStore) collect(match func(*domain.InvoiceLine) bool) []*domain.InvoiceLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.InvoiceLine
	for _, l := range s.data {
		if match(l) {
			lineCopy := *l
			result = append(result, &lineCopy)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LineID < result[j].LineID })
	return result
}
