// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/owner-portal/backend/internal/domain/entity"
)

// SnapshotCache stores property snapshots between dashboard refreshes.
type SnapshotCache interface {
	// Get returns the cached snapshot, or nil when there is none.
	Get(ctx context.Context, propertyID uuid.UUID) (*entity.PropertySnapshot, error)

	// Set stores a snapshot for the given time-to-live.
	Set(ctx context.Context, snapshot *entity.PropertySnapshot, ttl time.Duration) error
}
