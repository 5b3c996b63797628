package storage

import (
	"context"

	"resto-cost-lab/internal/domain"
)

// InvoiceLineStore provides access to invoice_lines storage.
type InvoiceLineStore interface {
	// InsertBulk adds multiple lines atomically. Fails the entire batch
	// on any duplicate line_id.
	InsertBulk(ctx context.Context, lines []*domain.InvoiceLine) error

	// GetAll retrieves every line, ordered by line_id ASC.
	GetAll(ctx context.Context) ([]*domain.InvoiceLine, error)

	// GetBySupplierID retrieves all lines for a supplier, ordered by line_id ASC.
	GetBySupplierID(ctx context.Context, supplierID string) ([]*domain.InvoiceLine, error)

	// GetByProductID retrieves all lines for a product, ordered by line_id ASC.
	GetByProductID(ctx context.Context, productID string) ([]*domain.InvoiceLine, error)
}

// MarketPriceStore provides access to the market_prices benchmark feed.
type MarketPriceStore interface {
	// InsertBulk adds multiple points. Fails the entire batch on a
	// duplicate (product_id, date, source).
	InsertBulk(ctx context.Context, points []*domain.MarketPricePoint) error

	// GetAll retrieves every point, ordered by (product_id, date) ASC.
	GetAll(ctx context.Context) ([]*domain.MarketPricePoint, error)

	// GetByProductID retrieves all points for a product, ordered by date ASC.
	GetByProductID(ctx context.Context, productID string) ([]*domain.MarketPricePoint, error)
}

// MarginSnapshotStore provides access to margin_snapshots storage.
type MarginSnapshotStore interface {
	// InsertBulk adds multiple snapshots. Fails the entire batch on a
	// duplicate (recipe_id, date).
	InsertBulk(ctx context.Context, snaps []*domain.RecipeMarginSnapshot) error

	// GetAll retrieves every snapshot, ordered by (recipe_id, date) ASC.
	GetAll(ctx context.Context) ([]*domain.RecipeMarginSnapshot, error)

	// GetByRecipeID retrieves all snapshots for a recipe, ordered by date ASC.
	GetByRecipeID(ctx context.Context, recipeID string) ([]*domain.RecipeMarginSnapshot, error)
}

// SupplierStore provides access to the supplier catalog.
type SupplierStore interface {
	// Insert adds a supplier. Returns ErrDuplicateKey if supplier_id exists.
	Insert(ctx context.Context, s *domain.Supplier) error

	// GetByID retrieves a supplier. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// GetAll retrieves all suppliers, ordered by supplier_id ASC.
	GetAll(ctx context.Context) ([]*domain.Supplier, error)
}

// ProductStore provides access to the product catalog.
type ProductStore interface {
	// Insert adds a product. Returns ErrDuplicateKey if product_id exists.
	Insert(ctx context.Context, p *domain.Product) error

	// GetByID retrieves a product. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// GetAll retrieves all products, ordered by product_id ASC.
	GetAll(ctx context.Context) ([]*domain.Product, error)
}

// RecipeStore provides access to the recipe catalog.
type RecipeStore interface {
	// Insert adds a recipe. Returns ErrDuplicateKey if recipe_id exists.
	Insert(ctx context.Context, r *domain.Recipe) error

	// GetByID retrieves a recipe. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, recipeID string) (*domain.Recipe, error)

	// GetAll retrieves all recipes, ordered by recipe_id ASC.
	GetAll(ctx context.Context) ([]*domain.Recipe, error)
}
