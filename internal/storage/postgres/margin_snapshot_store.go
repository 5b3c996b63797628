package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/storage"
)

// MarginSnapshotStore implements storage.MarginSnapshotStore using PostgreSQL.
type MarginSnapshotStore struct {
	pool *Pool
}

// NewMarginSnapshotStore creates a new MarginSnapshotStore.
func NewMarginSnapshotStore(pool *Pool) *MarginSnapshotStore {
	return &MarginSnapshotStore{pool: pool}
}

// Compile-time interface check.
var _ storage.MarginSnapshotStore = (*MarginSnapshotStore)(nil)

const insertSnapshotSQL = `
	INSERT INTO margin_snapshots (
		recipe_id, snapshot_date, margin_pct, food_cost, sell_price_ttc
	) VALUES ($1, $2, $3, $4, $5)
`

// InsertBulk adds multiple snapshots atomically. Fails the entire batch
// on any duplicate (recipe_id, snapshot_date).
func (s *MarginSnapshotStore) InsertBulk(ctx context.Context, snaps []*domain.RecipeMarginSnapshot) error {
	if len(snaps) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, snap := range snaps {
		if snap == nil || snap.RecipeID == "" {
			return storage.ErrInvalidInput
		}
		_, err := tx.Exec(ctx, insertSnapshotSQL,
			snap.RecipeID,
			snap.Date,
			snap.MarginPct,
			snap.FoodCost,
			snap.SellPriceTTC,
		)
		if err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert margin snapshot in bulk: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const selectSnapshotSQL = `
	SELECT recipe_id, snapshot_date, margin_pct, food_cost, sell_price_ttc
	FROM margin_snapshots
`

// GetAll retrieves every snapshot, ordered by (recipe_id, snapshot_date) ASC.
func (s *MarginSnapshotStore) GetAll(ctx context.Context) ([]*domain.RecipeMarginSnapshot, error) {
	rows, err := s.pool.Query(ctx, selectSnapshotSQL+" ORDER BY recipe_id ASC, snapshot_date ASC")
	if err != nil {
		return nil, fmt.Errorf("get all margin snapshots: %w", err)
	}
	defer rows.Close()

	return scanSnapshots(rows)
}

// GetByRecipeID retrieves all snapshots for a recipe, ordered by date ASC.
func (s *MarginSnapshotStore) GetByRecipeID(ctx context.Context, recipeID string) ([]*domain.RecipeMarginSnapshot, error) {
	rows, err := s.pool.Query(ctx, selectSnapshotSQL+" WHERE recipe_id = $1 ORDER BY snapshot_date ASC", recipeID)
	if err != nil {
		return nil, fmt.Errorf("get margin snapshots by recipe id: %w", err)
	}
	defer rows.Close()

	return scanSnapshots(rows)
}

func scanSnapshots(rows pgx.Rows) ([]*domain.RecipeMarginSnapshot, error) {
	var result []*domain.RecipeMarginSnapshot
	for rows.Next() {
		var snap domain.RecipeMarginSnapshot
		err := rows.Scan(
			&snap.RecipeID,
			&snap.Date,
			&snap.MarginPct,
			&snap.FoodCost,
			&snap.SellPriceTTC,
		)
		if err != nil {
			return nil, fmt.Errorf("scan margin snapshot: %w", err)
		}
		result = append(result, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate margin snapshots: %w", err)
	}
	return result, nil
}
