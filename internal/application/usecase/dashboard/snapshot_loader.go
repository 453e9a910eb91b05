// Package dashboard contains the owner dashboard use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/owner-portal/backend/internal/application/adapter"
	"github.com/owner-portal/backend/internal/domain/entity"
)

// SnapshotLoader reads property snapshots through an optional cache.
// A cache failure is logged and the repository is used instead.
type SnapshotLoader struct {
	repo  adapter.PortfolioRepository
	cache adapter.SnapshotCache
	ttl   time.Duration
}

// NewSnapshotLoader creates a new SnapshotLoader. cache may be nil.
func NewSnapshotLoader(repo adapter.PortfolioRepository, cache adapter.SnapshotCache, ttl time.Duration) *SnapshotLoader {
	return &SnapshotLoader{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
	}
}

// Load returns the snapshot of a property, from cache when possible.
func (l *SnapshotLoader) Load(ctx context.Context, propertyID uuid.UUID) (*entity.PropertySnapshot, error) {
	if l.cache != nil {
		cached, err := l.cache.Get(ctx, propertyID)
		if err != nil {
			slog.Warn("Snapshot cache read failed",
				"property_id", propertyID,
				"error", err,
			)
		} else if cached != nil {
			return cached, nil
		}
	}

	return l.Refresh(ctx, propertyID)
}

// Fetch is Load, or Refresh when refresh is set. Dashboards pass refresh to
// read past a cached snapshot that is still inside its TTL.
func (l *SnapshotLoader) Fetch(ctx context.Context, propertyID uuid.UUID, refresh bool) (*entity.PropertySnapshot, error) {
	if refresh {
		return l.Refresh(ctx, propertyID)
	}
	return l.Load(ctx, propertyID)
}

// Refresh reads the snapshot from the repository and stores it in the cache.
func (l *SnapshotLoader) Refresh(ctx context.Context, propertyID uuid.UUID) (*entity.PropertySnapshot, error) {
	snapshot, err := l.repo.LoadSnapshot(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property snapshot: %w", err)
	}

	if l.cache != nil && l.ttl > 0 {
		if err := l.cache.Set(ctx, snapshot, l.ttl); err != nil {
			slog.Warn("Snapshot cache write failed",
				"property_id", propertyID,
				"error", err,
			)
		}
	}

	return snapshot, nil
}
