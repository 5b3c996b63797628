package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/storage"
)

func TestSupplierStore_CRUD(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewSupplierStore(pool)
	ctx := context.Background()

	sup := &domain.Supplier{SupplierID: "sup_a", Name: "Metro"}
	require.NoError(t, store.Insert(ctx, sup))

	got, err := store.GetByID(ctx, "sup_a")
	require.NoError(t, err)
	require.Equal(t, "Metro", got.Name)

	err = store.Insert(ctx, sup)
	require.True(t, errors.Is(err, storage.ErrDuplicateKey), "expected ErrDuplicateKey, got %v", err)

	_, err = store.GetByID(ctx, "nonexistent")
	require.True(t, errors.Is(err, storage.ErrNotFound), "expected ErrNotFound, got %v", err)

	require.NoError(t, store.Insert(ctx, &domain.Supplier{SupplierID: "sup_b", Name: "Pomona"}))
	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "sup_a", all[0].SupplierID)
}

func TestProductStore_CRUD(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewProductStore(pool)
	ctx := context.Background()

	p := &domain.Product{ProductID: "prod_1", Name: "Tomate", CategoryID: "cat_legumes", Unit: "kg"}
	require.NoError(t, store.Insert(ctx, p))

	got, err := store.GetByID(ctx, "prod_1")
	require.NoError(t, err)
	require.Equal(t, "Tomate", got.Name)
	require.Equal(t, "cat_legumes", got.CategoryID)
	require.Equal(t, "kg", got.Unit)

	err = store.Insert(ctx, p)
	require.True(t, errors.Is(err, storage.ErrDuplicateKey))
}

func TestRecipeStore_CRUD(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewRecipeStore(pool)
	ctx := context.Background()

	r := &domain.Recipe{RecipeID: "rec_1", Name: "Burger maison"}
	require.NoError(t, store.Insert(ctx, r))

	got, err := store.GetByID(ctx, "rec_1")
	require.NoError(t, err)
	require.Equal(t, "Burger maison", got.Name)

	_, err = store.GetByID(ctx, "rec_9")
	require.True(t, errors.Is(err, storage.ErrNotFound))

	err = store.Insert(ctx, &domain.Recipe{})
	require.True(t, errors.Is(err, storage.ErrInvalidInput))
}
