package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/owner-portal/backend/internal/domain/entity"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, client
}

func TestSnapshotCache(t *testing.T) {
	server, client := newTestRedis(t)
	cache := NewSnapshotCache(client, "test:snapshot:")
	ctx := context.Background()

	amount := decimal.RequireFromString("1250.50")
	corrected := decimal.NewFromInt(900)
	snapshot := &entity.PropertySnapshot{
		PropertyID: uuid.New(),
		ShortTerm: []entity.ShortTermBooking{
			{ID: "b1", GuestName: "Ana", CheckIn: "2024-06-06", CheckOut: "2024-06-09", TotalAmount: &amount, Status: "confirmed"},
			{ID: "b2", GuestName: "Block", CheckIn: "2024-06-10", CheckOut: "2024-06-11"},
		},
		Statements: []entity.ReconciledStatement{
			{Period: "2024-05", TotalRevenue: decimal.NewFromInt(1000), ActualNetEarnings: &corrected},
		},
		FetchedAt: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	}

	t.Run("miss returns nil", func(t *testing.T) {
		got, err := cache.Get(ctx, snapshot.PropertyID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := cache.Set(ctx, snapshot, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		key := "test:snapshot:" + snapshot.PropertyID.String()
		if !server.Exists(key) {
			t.Fatalf("expected key %s to exist", key)
		}
		if ttl := server.TTL(key); ttl != time.Minute {
			t.Errorf("expected ttl 1m, got %v", ttl)
		}

		got, err := cache.Get(ctx, snapshot.PropertyID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || len(got.ShortTerm) != 2 {
			t.Fatalf("expected 2 bookings, got %+v", got)
		}
		if got.ShortTerm[0].TotalAmount == nil || !got.ShortTerm[0].TotalAmount.Equal(amount) {
			t.Errorf("expected amount %s, got %v", amount, got.ShortTerm[0].TotalAmount)
		}
		if got.ShortTerm[1].TotalAmount != nil {
			t.Errorf("expected missing amount to stay nil, got %v", got.ShortTerm[1].TotalAmount)
		}
		if got.Statements[0].ActualNetEarnings == nil || !got.Statements[0].ActualNetEarnings.Equal(corrected) {
			t.Errorf("expected actual net earnings 900, got %v", got.Statements[0].ActualNetEarnings)
		}
		if !got.FetchedAt.Equal(snapshot.FetchedAt) {
			t.Errorf("expected fetched at %v, got %v", snapshot.FetchedAt, got.FetchedAt)
		}
	})

	t.Run("expires", func(t *testing.T) {
		server.FastForward(2 * time.Minute)

		got, err := cache.Get(ctx, snapshot.PropertyID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Error("expected expired entry to be gone")
		}
	})

	t.Run("set replaces an existing entry", func(t *testing.T) {
		if err := cache.Set(ctx, snapshot, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		replacement := &entity.PropertySnapshot{PropertyID: snapshot.PropertyID}
		if err := cache.Set(ctx, replacement, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := cache.Get(ctx, snapshot.PropertyID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || len(got.ShortTerm) != 0 {
			t.Errorf("expected the replacement snapshot, got %+v", got)
		}
	})

	t.Run("corrupt entry is a miss", func(t *testing.T) {
		propertyID := uuid.New()
		if err := server.Set("test:snapshot:"+propertyID.String(), "{not json"); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}

		got, err := cache.Get(ctx, propertyID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
		if server.Exists("test:snapshot:" + propertyID.String()) {
			t.Error("expected corrupt entry to be deleted")
		}
	})
}

func TestSnapshotCache_ConnectionError(t *testing.T) {
	server, client := newTestRedis(t)
	cache := NewSnapshotCache(client, "")
	server.Close()

	if _, err := cache.Get(context.Background(), uuid.New()); err == nil {
		t.Error("expected an error when redis is unreachable")
	}
}
