package postgres

import (
	"context"
	"fmt"

	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/storage"
)

// SupplierStore implements storage.SupplierStore using PostgreSQL.
type SupplierStore struct {
	pool *Pool
}

// NewSupplierStore creates a new SupplierStore.
func NewSupplierStore(pool *Pool) *SupplierStore {
	return &SupplierStore{pool: pool}
}

var _ storage.SupplierStore = (*SupplierStore)(nil)

// Insert adds a supplier. Returns ErrDuplicateKey if supplier_id exists.
func (s *SupplierStore) Insert(ctx context.Context, sup *domain.Supplier) error {
	if sup == nil || sup.SupplierID == "" {
		return storage.ErrInvalidInput
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO suppliers (supplier_id, name) VALUES ($1, $2)`,
		sup.SupplierID, sup.Name,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID retrieves a supplier. Returns ErrNotFound if not exists.
func (s *SupplierStore) GetByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	var sup domain.Supplier
	err := s.pool.QueryRow(ctx,
		`SELECT supplier_id, name FROM suppliers WHERE supplier_id = $1`,
		supplierID,
	).Scan(&sup.SupplierID, &sup.Name)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get supplier by id: %w", err)
	}
	return &sup, nil
}

// GetAll retrieves all suppliers, ordered by supplier_id ASC.
func (s *SupplierStore) GetAll(ctx context.Context) ([]*domain.Supplier, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT supplier_id, name FROM suppliers ORDER BY supplier_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("get all suppliers: %w", err)
	}
	defer rows.Close()

	var result []*domain.Supplier
	for rows.Next() {
		var sup domain.Supplier
		if err := rows.Scan(&sup.SupplierID, &sup.Name); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		result = append(result, &sup)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suppliers: %w", err)
	}
	return result, nil
}

// ProductStore implements storage.ProductStore using PostgreSQL.
type ProductStore struct {
	pool *Pool
}

// NewProductStore creates a new ProductStore.
func NewProductStore(pool *Pool) *ProductStore {
	return &ProductStore{pool: pool}
}

var _ storage.ProductStore = (*ProductStore)(nil)

// Insert adds a product. Returns ErrDuplicateKey if product_id exists.
func (s *ProductStore) Insert(ctx context.Context, p *domain.Product) error {
	if p == nil || p.ProductID == "" {
		return storage.ErrInvalidInput
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO products (product_id, name, category_id, unit) VALUES ($1, $2, $3, $4)`,
		p.ProductID, p.Name, p.CategoryID, p.Unit,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID retrieves a product. Returns ErrNotFound if not exists.
func (s *ProductStore) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	var p domain.Product
	err := s.pool.QueryRow(ctx,
		`SELECT product_id, name, category_id, unit FROM products WHERE product_id = $1`,
		productID,
	).Scan(&p.ProductID, &p.Name, &p.CategoryID, &p.Unit)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return &p, nil
}

// GetAll retrieves all products, ordered by product_id ASC.
func (s *ProductStore) GetAll(ctx context.Context) ([]*domain.Product, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT product_id, name, category_id, unit FROM products ORDER BY product_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("get all products: %w", err)
	}
	defer rows.Close()

	var result []*domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ProductID, &p.Name, &p.CategoryID, &p.Unit); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return result, nil
}

// RecipeStore implements storage.RecipeStore using PostgreSQL.
type RecipeStore struct {
	pool *Pool
}

// NewRecipeStore creates a new RecipeStore.
func NewRecipeStore(pool *Pool) *RecipeStore {
	return &RecipeStore{pool: pool}
}

var _ storage.RecipeStore = (*RecipeStore)(nil)

// Insert adds a recipe. Returns ErrDuplicateKey if recipe_id exists.
func (s *RecipeStore) Insert(ctx context.Context, r *domain.Recipe) error {
	if r == nil || r.RecipeID == "" {
		return storage.ErrInvalidInput
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO recipes (recipe_id, name) VALUES ($1, $2)`,
		r.RecipeID, r.Name,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert recipe: %w", err)
	}
	return nil
}

// GetByID retrieves a recipe. Returns ErrNotFound if not exists.
func (s *RecipeStore) GetByID(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	var r domain.Recipe
	err := s.pool.QueryRow(ctx,
		`SELECT recipe_id, name FROM recipes WHERE recipe_id = $1`,
		recipeID,
	).Scan(&r.RecipeID, &r.Name)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get recipe by id: %w", err)
	}
	return &r, nil
}

// GetAll retrieves all recipes, ordered by recipe_id ASC.
func (s *RecipeStore) GetAll(ctx context.Context) ([]*domain.Recipe, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT recipe_id, name FROM recipes ORDER BY recipe_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("get all recipes: %w", err)
	}
	defer rows.Close()

	var result []*domain.Recipe
	for rows.Next() {
		var r domain.Recipe
		if err := rows.Scan(&r.RecipeID, &r.Name); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		result = append(result, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return result, nil
}
