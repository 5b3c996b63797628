package clickhouse

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/storage"
)

// MarketPriceStore implements storage.MarketPriceStore using ClickHouse.
// The benchmark feed is high-volume and append-only, which is why it
// lives in the column store rather than Postgres.
type MarketPriceStore struct {
	conn *Conn
}

// NewMarketPriceStore creates a new MarketPriceStore.
func NewMarketPriceStore(conn *Conn) *MarketPriceStore {
	return &MarketPriceStore{conn: conn}
}

// Compile-time interface check.
var _ storage.MarketPriceStore = (*MarketPriceStore)(nil)

// InsertBulk adds multiple points. Fails entire batch on a duplicate
// (product_id, date, source). MergeTree does not enforce uniqueness at
// insert time, so duplicates are checked explicitly before the batch.
func (s *MarketPriceStore) InsertBulk(ctx context.Context, points []*domain.MarketPricePoint) error {
	if len(points) == 0 {
		return nil
	}

	type key struct {
		productID string
		date      string
		source    string
	}
	seen := make(map[key]struct{}, len(points))
	for _, p := range points {
		if p == nil || p.ProductID == "" {
			return storage.ErrInvalidInput
		}
		k := key{p.ProductID, p.Date, p.Source}
		if _, exists := seen[k]; exists {
			return storage.ErrDuplicateKey
		}
		seen[k] = struct{}{}
	}

	for _, p := range points {
		exists, err := s.exists(ctx, p.ProductID, p.Date, p.Source)
		if err != nil {
			return fmt.Errorf("check exists: %w", err)
		}
		if exists {
			return storage.ErrDuplicateKey
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO market_prices (product_id, price_date, price, source)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, p := range points {
		if err := batch.Append(p.ProductID, p.Date, p.Price, p.Source); err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

// GetAll retrieves every point, ordered by (product_id, price_date) ASC.
func (s *MarketPriceStore) GetAll(ctx context.Context) ([]*domain.MarketPricePoint, error) {
	query := `
		SELECT product_id, price_date, price, source
		FROM market_prices
		ORDER BY product_id ASC, price_date ASC
	`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query all market prices: %w", err)
	}
	defer rows.Close()

	return scanMarketPrices(rows)
}

// GetByProductID retrieves all points for a product, ordered by date ASC.
func (s *MarketPriceStore) GetByProductID(ctx context.Context, productID string) ([]*domain.MarketPricePoint, error) {
	query := `
		SELECT product_id, price_date, price, source
		FROM market_prices
		WHERE product_id = ?
		ORDER BY price_date ASC
	`

	rows, err := s.conn.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("query market prices by product id: %w", err)
	}
	defer rows.Close()

	return scanMarketPrices(rows)
}

// exists checks if a point with the given key exists.
func (s *MarketPriceStore) exists(ctx context.Context, productID, date, source string) (bool, error) {
	query := `
		SELECT count(*) FROM market_prices
		WHERE product_id = ? AND price_date = ? AND source = ?
	`

	var count uint64
	if err := s.conn.QueryRow(ctx, query, productID, date, source).Scan(&count); err != nil {
		return false, fmt.Errorf("count existing: %w", err)
	}
	return count > 0, nil
}

func scanMarketPrices(rows driver.Rows) ([]*domain.MarketPricePoint, error) {
	var result []*domain.MarketPricePoint
	for rows.Next() {
		var p domain.MarketPricePoint
		if err := rows.Scan(&p.ProductID, &p.Date, &p.Price, &p.Source); err != nil {
			return nil, fmt.Errorf("scan market price: %w", err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate market prices: %w", err)
	}
	return result, nil
}
