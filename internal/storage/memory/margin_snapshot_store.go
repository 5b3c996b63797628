package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/storage"
)

// MarginSnapshotStore is an in-memory implementation of storage.MarginSnapshotStore.
type MarginSnapshotStore struct {
	mu   sync.RWMutex
	data map[string]*domain.RecipeMarginSnapshot // keyed by (recipe_id, date)
}

// NewMarginSnapshotStore creates a new in-memory margin snapshot store.
func NewMarginSnapshotStore() *MarginSnapshotStore {
	return &MarginSnapshotStore{
		data: make(map[string]*domain.RecipeMarginSnapshot),
	}
}

// Compile-time interface check.
var _ storage.MarginSnapshotStore = (*MarginSnapshotStore)(nil)

func snapshotKey(recipeID, date string) string {
	return fmt.Sprintf("%s|%s", recipeID, date)
}

// InsertBulk adds multiple snapshots. Fails entire batch on duplicate
// (recipe_id, date).
func (s *MarginSnapshotStore) InsertBulk(_ context.Context, snaps []*domain.RecipeMarginSnapshot) error {
	if len(snaps) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := make(map[string]struct{}, len(snaps))
	for _, snap := range snaps {
		if snap == nil || snap.RecipeID == "" {
			return storage.ErrInvalidInput
		}
		key := snapshotKey(snap.RecipeID, snap.Date)
		if _, exists := s.data[key]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batch[key]; exists {
			return storage.ErrDuplicateKey
		}
		batch[key] = struct{}{}
	}

	for _, snap := range snaps {
		snapCopy := *snap
		s.data[snapshotKey(snap.RecipeID, snap.Date)] = &snapCopy
	}
	return nil
}

// GetAll retrieves every snapshot, ordered by (recipe_id, date) ASC.
func (s *MarginSnapshotStore) GetAll(_ context.Context) ([]*domain.RecipeMarginSnapshot, error) {
	return s.collect(func(*domain.RecipeMarginSnapshot) bool { return true }), nil
}

// GetByRecipeID retrieves all snapshots for a recipe, ordered by date ASC.
func (s *MarginSnapshotStore) GetByRecipeID(_ context.Context, recipeID string) ([]*domain.RecipeMarginSnapshot, error) {
	return s.collect(func(snap *domain.RecipeMarginSnapshot) bool { return snap.RecipeID == recipeID }), nil
}

func (s *MarginSnapshotStore) collect(match func(*domain.RecipeMarginSnapshot) bool) []*domain.RecipeMarginSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.RecipeMarginSnapshot
	for _, snap := range s.data {
		if match(snap) {
			snapCopy := *snap
			result = append(result, &snapCopy)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].RecipeID != result[j].RecipeID {
			return result[i].RecipeID < result[j].RecipeID
		}
		return result[i].Date < result[j].Date
	})
	return result
}
