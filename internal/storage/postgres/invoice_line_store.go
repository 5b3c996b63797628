package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/storage"
)

// InvoiceLineStore implements storage.InvoiceLineStore using PostgreSQL.
type InvoiceLineStore struct {
	pool *Pool
}

// NewInvoiceLineStore creates a new InvoiceLineStore.
func NewInvoiceLineStore(pool *Pool) *InvoiceLineStore {
	return &InvoiceLineStore{pool: pool}
}

// Compile-time interface check.
var _ storage.InvoiceLineStore = (*InvoiceLineStore)(nil)

const insertInvoiceLineSQL = `
	INSERT INTO invoice_lines (
		line_id, invoice_id, supplier_id, product_id, label, line_date,
		quantity, unit_price, amount, basis, vat_rate
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

// InsertBulk adds multiple lines atomically. Fails the entire batch on
// any duplicate line_id.
func (s *InvoiceLineStore) InsertBulk(ctx context.Context, lines []*domain.InvoiceLine) error {
	if len(lines) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, l := range lines {
		if l == nil || l.LineID == "" {
			return storage.ErrInvalidInput
		}
		_, err := tx.Exec(ctx, insertInvoiceLineSQL,
			l.LineID,
			l.InvoiceID,
			l.SupplierID,
			l.ProductID,
			l.Label,
			l.Date,
			l.Quantity,
			l.UnitPrice,
			l.Amount,
			string(l.Basis),
			l.VATRate,
		)
		if err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert invoice line in bulk: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const selectInvoiceLineSQL = `
	SELECT line_id, invoice_id, supplier_id, product_id, label, line_date,
	       quantity, unit_price, amount, basis, vat_rate
	FROM invoice_lines
`

// GetAll retrieves every line, ordered by line_id ASC.
func (s *InvoiceLineStore) GetAll(ctx context.Context) ([]*domain.InvoiceLine, error) {
	rows, err := s.pool.Query(ctx, selectInvoiceLineSQL+" ORDER BY line_id ASC")
	if err != nil {
		return nil, fmt.Errorf("get all invoice lines: %w", err)
	}
	defer rows.Close()

	return scanInvoiceLines(rows)
}

// GetBySupplierID retrieves all lines for a supplier, ordered by line_id ASC.
func (s *InvoiceLineStore) GetBySupplierID(ctx context.Context, supplierID string) ([]*domain.InvoiceLine, error) {
	rows, err := s.pool.Query(ctx, selectInvoiceLineSQL+" WHERE supplier_id = $1 ORDER BY line_id ASC", supplierID)
	if err != nil {
		return nil, fmt.Errorf("get invoice lines by supplier id: %w", err)
	}
	defer rows.Close()

	return scanInvoiceLines(rows)
}

// GetByProductID retrieves all lines for a product, ordered by line_id ASC.
func (s *InvoiceLineStore) GetByProductID(ctx context.Context, productID string) ([]*domain.InvoiceLine, error) {
	rows, err := s.pool.Query(ctx, selectInvoiceLineSQL+" WHERE product_id = $1 ORDER BY line_id ASC", productID)
	if err != nil {
		return nil, fmt.Errorf("get invoice lines by product id: %w", err)
	}
	defer rows.Close()

	return scanInvoiceLines(rows)
}

func scanInvoiceLines(rows pgx.Rows) ([]*domain.InvoiceLine, error) {
	var result []*domain.InvoiceLine
	for rows.Next() {
		var l domain.InvoiceLine
		var basis string
		err := rows.Scan(
			&l.LineID,
			&l.InvoiceID,
			&l.SupplierID,
			&l.ProductID,
			&l.Label,
			&l.Date,
			&l.Quantity,
			&l.UnitPrice,
			&l.Amount,
			&basis,
			&l.VATRate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		l.Basis = domain.PriceBasis(basis)
		result = append(result, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoice lines: %w", err)
	}
	return result, nil
}
