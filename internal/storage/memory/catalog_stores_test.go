package memory

import (
	"context"
	"errors"
	"testing"

	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/storage"
)

func TestSupplierStore_InsertAndGet(t *testing.T) {
	store := NewSupplierStore()
	ctx := context.Background()

	sup := &domain.Supplier{SupplierID: "sup_a", Name: "Metro"}

	if err := store.Insert(ctx, sup); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.GetByID(ctx, "sup_a")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Metro" {
		t.Errorf("Name mismatch: got %s, want Metro", got.Name)
	}

	err = store.Insert(ctx, sup)
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey, got %v", err)
	}

	_, err = store.GetByID(ctx, "nonexistent")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSupplierStore_GetAllOrdered(t *testing.T) {
	store := NewSupplierStore()
	ctx := context.Background()

	for _, sup := range []*domain.Supplier{
		{SupplierID: "sup_b", Name: "Pomona"},
		{SupplierID: "sup_a", Name: "Metro"},
	} {
		if err := store.Insert(ctx, sup); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(got) != 2 || got[0].SupplierID != "sup_a" || got[1].SupplierID != "sup_b" {
		t.Errorf("Unexpected order: %+v", got)
	}
}

func TestProductStore_InsertAndGet(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()

	p := &domain.Product{ProductID: "prod_1", Name: "Tomate", Unit: "kg"}

	if err := store.Insert(ctx, p); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.GetByID(ctx, "prod_1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Unit != "kg" {
		t.Errorf("Unit mismatch: got %s, want kg", got.Unit)
	}

	err = store.Insert(ctx, p)
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestRecipeStore_InsertAndGet(t *testing.T) {
	store := NewRecipeStore()
	ctx := context.Background()

	r := &domain.Recipe{RecipeID: "rec_1", Name: "Burger maison"}

	if err := store.Insert(ctx, r); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.GetByID(ctx, "rec_1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Burger maison" {
		t.Errorf("Name mismatch: got %s", got.Name)
	}

	_, err = store.GetByID(ctx, "rec_9")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestCatalogStores_InvalidInput(t *testing.T) {
	ctx := context.Background()

	if err := NewSupplierStore().Insert(ctx, nil); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Supplier: expected ErrInvalidInput for nil, got %v", err)
	}
	if err := NewProductStore().Insert(ctx, &domain.Product{}); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Product: expected ErrInvalidInput for empty ID, got %v", err)
	}
	if err := NewRecipeStore().Insert(ctx, &domain.Recipe{}); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Recipe: expected ErrInvalidInput for empty ID, got %v", err)
	}
}
