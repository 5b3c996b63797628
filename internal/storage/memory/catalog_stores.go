package memory

import (
	"context"
	"sort"
	"sync"

	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/storage"
)

// SupplierStore is an in-memory implementation of storage.SupplierStore.
type SupplierStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Supplier
}

// NewSupplierStore creates a new in-memory supplier store.
func NewSupplierStore() *SupplierStore {
	return &SupplierStore{data: make(map[string]*domain.Supplier)}
}

var _ storage.SupplierStore = (*SupplierStore)(nil)

// Insert adds a supplier. Returns ErrDuplicateKey if supplier_id exists.
func (s *SupplierStore) Insert(_ context.Context, sup *domain.Supplier) error {
	if sup == nil || sup.SupplierID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[sup.SupplierID]; exists {
		return storage.ErrDuplicateKey
	}
	supCopy := *sup
	s.data[sup.SupplierID] = &supCopy
	return nil
}

// GetByID retrieves a supplier. Returns ErrNotFound if not exists.
func (s *SupplierStore) GetByID(_ context.Context, supplierID string) (*domain.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sup, ok := s.data[supplierID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	supCopy := *sup
	return &supCopy, nil
}

// GetAll retrieves all suppliers, ordered by supplier_id ASC.
func (s *SupplierStore) GetAll(_ context.Context) ([]*domain.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Supplier, 0, len(s.data))
	for _, sup := range s.data {
		supCopy := *sup
		result = append(result, &supCopy)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SupplierID < result[j].SupplierID })
	return result, nil
}

// ProductStore is an in-memory implementation of storage.ProductStore.
type ProductStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Product
}

// NewProductStore creates a new in-memory product store.
func NewProductStore() *ProductStore {
	return &ProductStore{data: make(map[string]*domain.Product)}
}

var _ storage.ProductStore = (*ProductStore)(nil)

// Insert adds a product. Returns ErrDuplicateKey if product_id exists.
func (s *ProductStore) Insert(_ context.Context, p *domain.Product) error {
	if p == nil || p.ProductID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[p.ProductID]; exists {
		return storage.ErrDuplicateKey
	}
	productCopy := *p
	s.data[p.ProductID] = &productCopy
	return nil
}

// GetByID retrieves a product. Returns ErrNotFound if not exists.
func (s *ProductStore) GetByID(_ context.Context, productID string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.data[productID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	productCopy := *p
	return &productCopy, nil
}

// GetAll retrieves all products, ordered by product_id ASC.
func (s *ProductStore) GetAll(_ context.Context) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Product, 0, len(s.data))
	for _, p := range s.data {
		productCopy := *p
		result = append(result, &productCopy)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ProductID < result[j].ProductID })
	return result, nil
}

// RecipeStore is an in-memory implementation of storage.RecipeStore.
type RecipeStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Recipe
}

// NewRecipeStore creates a new in-memory recipe store.
func NewRecipeStore() *RecipeStore {
	return &RecipeStore{data: make(map[string]*domain.Recipe)}
}

var _ storage.RecipeStore = (*RecipeStore)(nil)

// Insert adds a recipe. Returns ErrDuplicateKey if recipe_id exists.
func (s *RecipeStore) Insert(_ context.Context, r *domain.Recipe) error {
	if r == nil || r.RecipeID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[r.RecipeID]; exists {
		return storage.ErrDuplicateKey
	}
	recipeCopy := *r
	s.data[r.RecipeID] = &recipeCopy
	return nil
}

// GetByID retrieves a recipe. Returns ErrNotFound if not exists.
func (s *RecipeStore) GetByID(_ context.Context, recipeID string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.data[recipeID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	recipeCopy := *r
	return &recipeCopy, nil
}

// GetAll retrieves all recipes, ordered by recipe_id ASC.
func (s *RecipeStore) GetAll(_ context.Context) ([]*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Recipe, 0, len(s.data))
	for _, r := range s.data {
		recipeCopy := *r
		result = append(result, &recipeCopy)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RecipeID < result[j].RecipeID })
	return result, nil
}
