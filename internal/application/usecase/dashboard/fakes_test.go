package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/owner-portal/backend/internal/domain/entity"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fakePortfolioRepo struct {
	mu            sync.Mutex
	properties    map[uuid.UUID]*entity.Property
	snapshots     map[uuid.UUID]*entity.PropertySnapshot
	snapshotErrs  map[uuid.UUID]error
	snapshotCalls int
	findCalls     int
}

func newFakePortfolioRepo() *fakePortfolioRepo {
	return &fakePortfolioRepo{
		properties:   make(map[uuid.UUID]*entity.Property),
		snapshots:    make(map[uuid.UUID]*entity.PropertySnapshot),
		snapshotErrs: make(map[uuid.UUID]error),
	}
}

func (r *fakePortfolioRepo) addProperty(ownerID uuid.UUID, snapshot *entity.PropertySnapshot) *entity.Property {
	property := &entity.Property{ID: uuid.New(), OwnerID: ownerID, Name: "Unit"}
	r.properties[property.ID] = property
	if snapshot == nil {
		snapshot = &entity.PropertySnapshot{}
	}
	snapshot.PropertyID = property.ID
	r.snapshots[property.ID] = snapshot
	return property
}

func (r *fakePortfolioRepo) FindPropertyByID(_ context.Context, id uuid.UUID) (*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	return r.properties[id], nil
}

func (r *fakePortfolioRepo) ListPropertiesByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Property, error) {
	var out []*entity.Property
	for _, p := range r.properties {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePortfolioRepo) ListPropertyIDs(_ context.Context) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.properties))
	for id := range r.properties {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *fakePortfolioRepo) LoadSnapshot(_ context.Context, propertyID uuid.UUID) (*entity.PropertySnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshotCalls++
	if err := r.snapshotErrs[propertyID]; err != nil {
		return nil, err
	}
	snapshot, ok := r.snapshots[propertyID]
	if !ok {
		return nil, errors.New("no snapshot")
	}
	return snapshot, nil
}

type fakeSnapshotCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entity.PropertySnapshot
	getErr  error
	setErr  error
	sets    int
}

func newFakeSnapshotCache() *fakeSnapshotCache {
	return &fakeSnapshotCache{entries: make(map[uuid.UUID]*entity.PropertySnapshot)}
}

func (c *fakeSnapshotCache) Get(_ context.Context, propertyID uuid.UUID) (*entity.PropertySnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[propertyID], nil
}

func (c *fakeSnapshotCache) Set(_ context.Context, snapshot *entity.PropertySnapshot, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[snapshot.PropertyID] = snapshot
	return nil
}

