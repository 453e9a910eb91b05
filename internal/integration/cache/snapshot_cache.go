// Package cache implements the Redis-backed caches used by the application layer.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/owner-portal/backend/internal/application/adapter"
	"github.com/owner-portal/backend/internal/domain/entity"
)

const defaultKeyPrefix = "owner_portal:snapshot"

// snapshotCache implements the adapter.SnapshotCache interface on Redis.
// Snapshots are stored as JSON under <prefix>:<property id>.
type snapshotCache struct {
	client redis.UniversalClient
	prefix string
}

// NewSnapshotCache creates a new Redis snapshot cache.
func NewSnapshotCache(client redis.UniversalClient, prefix string) adapter.SnapshotCache {
	trimmed := strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if trimmed == "" {
		trimmed = defaultKeyPrefix
	}

	return &snapshotCache{
		client: client,
		prefix: trimmed,
	}
}

// Get returns the cached snapshot, or nil when there is none.
func (c *snapshotCache) Get(ctx context.Context, propertyID uuid.UUID) (*entity.PropertySnapshot, error) {
	raw, err := c.client.Get(ctx, c.key(propertyID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot entity.PropertySnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		_ = c.client.Del(ctx, c.key(propertyID)).Err()
		return nil, nil
	}

	return &snapshot, nil
}

// Set stores a snapshot for ttl.
func (c *snapshotCache) Set(ctx context.Context, snapshot *entity.PropertySnapshot, ttl time.Duration) error {
	if snapshot == nil {
		return nil
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := c.client.Set(ctx, c.key(snapshot.PropertyID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (c *snapshotCache) key(propertyID uuid.UUID) string {
	return c.prefix + ":" + propertyID.String()
}
