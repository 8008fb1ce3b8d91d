package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"codequiz/internal/cache"
	"codequiz/internal/domain"
)

// CacheSnapshotStore mirrors question bank snapshots into a domain.Cache as JSON.
type CacheSnapshotStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewCacheSnapshotStore creates a snapshot store backed by c. A zero ttl keeps entries forever.
func NewCacheSnapshotStore(c domain.Cache, ttl time.Duration) *CacheSnapshotStore {
	return &CacheSnapshotStore{cache: c, ttl: ttl}
}

func snapshotKey(sheetID, tab string) string {
	return cache.GenerateCacheKey("bank", "snapshot", sheetID, tab)
}

// SaveSnapshot implements domain.SnapshotStore.
func (s *CacheSnapshotStore) SaveSnapshot(ctx context.Context, sheetID, tab string, snapshot *domain.Snapshot) error {
	if snapshot == nil {
		return domain.NewInvalidInputError("cannot mirror nil snapshot")
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %s: %w", snapshot.ID, err)
	}
	if err := s.cache.Set(ctx, snapshotKey(sheetID, tab), string(data), s.ttl); err != nil {
		return fmt.Errorf("failed to store snapshot %s: %w", snapshot.ID, err)
	}
	return nil
}

// LoadSnapshot implements domain.SnapshotStore.
// It returns domain.ErrCacheMiss when no usable snapshot is stored.
func (s *CacheSnapshotStore) LoadSnapshot(ctx context.Context, sheetID, tab string) (*domain.Snapshot, error) {
	data, err := s.cache.Get(ctx, snapshotKey(sheetID, tab))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, domain.ErrCacheMiss
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored snapshot: %w", err)
	}
	if snapshot.FetchedAt.IsZero() {
		return nil, domain.ErrCacheMiss
	}
	if snapshot.Questions == nil {
		snapshot.Questions = []domain.Question{}
	}
	return &snapshot, nil
}
