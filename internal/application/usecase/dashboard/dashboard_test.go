package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/owner-portal/backend/internal/domain/entity"
	domainerror "github.com/owner-portal/backend/internal/domain/error"
)

var testNow = time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

func money(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func day(n int) string {
	return testNow.AddDate(0, 0, n).Format("2006-01-02")
}

func sampleSnapshot() *entity.PropertySnapshot {
	corrected := decimal.NewFromInt(4200)
	return &entity.PropertySnapshot{
		ShortTerm: []entity.ShortTermBooking{
			{ID: "s1", GuestName: "Ana", CheckIn: day(5), CheckOut: day(8), TotalAmount: money(600), Status: "confirmed"},
			{ID: "s2", GuestName: "Cal", CheckIn: day(6), CheckOut: day(9), TotalAmount: money(900), Status: "Cancelled"},
			{ID: "s3", GuestName: "Owner block", CheckIn: day(12), CheckOut: day(14), TotalAmount: money(0)},
		},
		MidTerm: []entity.MidTermLease{
			{ID: "m1", TenantName: "Bo", StartDate: day(10), EndDate: day(50), MonthlyRent: money(3000), Status: "active"},
		},
		Statements: []entity.ReconciledStatement{
			{Period: "2024-05", TotalRevenue: decimal.NewFromInt(4000), TotalExpenses: decimal.NewFromInt(-800), NetToOwner: decimal.NewFromInt(3200)},
			{Period: "2024-06", TotalRevenue: decimal.NewFromInt(5000), TotalExpenses: decimal.NewFromInt(-900), ActualNetEarnings: &corrected},
		},
	}
}

func TestGetForecastUseCase_Execute(t *testing.T) {
	ownerID := uuid.New()
	repo := newFakePortfolioRepo()
	property := repo.addProperty(ownerID, sampleSnapshot())
	loader := NewSnapshotLoader(repo, nil, 0)
	uc := NewGetForecastUseCase(repo, loader, fixedClock{now: testNow}, DefaultSettings())

	t.Run("forecasts with default horizons", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetForecastInput{OwnerID: ownerID, PropertyID: property.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.GeneratedAt.Equal(testNow) {
			t.Errorf("expected generated at %v, got %v", testNow, output.GeneratedAt)
		}
		if len(output.Windows) != 3 {
			t.Fatalf("expected 3 windows, got %d", len(output.Windows))
		}

		want := []int64{2600, 4600, 4600}
		for i, w := range output.Windows {
			if !w.Revenue.Equal(decimal.NewFromInt(want[i])) {
				t.Errorf("horizon %d: expected %d, got %s", w.HorizonDays, want[i], w.Revenue)
			}
			if w.BookingsCount != 2 {
				t.Errorf("horizon %d: expected 2 bookings, got %d", w.HorizonDays, w.BookingsCount)
			}
		}
	})

	t.Run("rejects invalid horizons before touching storage", func(t *testing.T) {
		before := repo.findCalls
		_, err := uc.Execute(context.Background(), GetForecastInput{OwnerID: ownerID, PropertyID: property.ID, Horizons: []int{30, -5}})
		if !errors.Is(err, domainerror.ErrInvalidHorizon) {
			t.Errorf("expected ErrInvalidHorizon, got %v", err)
		}
		if repo.findCalls != before {
			t.Error("expected no repository access for an invalid request")
		}
	})

	t.Run("unknown property", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetForecastInput{OwnerID: ownerID, PropertyID: uuid.New()})
		var propErr *domainerror.PropertyError
		if !errors.As(err, &propErr) || propErr.Code != domainerror.ErrCodePropertyNotFound {
			t.Errorf("expected property not found, got %v", err)
		}
	})

	t.Run("property of another owner", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetForecastInput{OwnerID: uuid.New(), PropertyID: property.ID})
		if !errors.Is(err, domainerror.ErrPropertyAccessDenied) {
			t.Errorf("expected access denied, got %v", err)
		}
	})

	t.Run("refresh reads past a stale cached snapshot", func(t *testing.T) {
		cache := newFakeSnapshotCache()
		cache.entries[property.ID] = &entity.PropertySnapshot{PropertyID: property.ID}
		cached := NewGetForecastUseCase(repo, NewSnapshotLoader(repo, cache, time.Minute), fixedClock{now: testNow}, DefaultSettings())

		stale, err := cached.Execute(context.Background(), GetForecastInput{OwnerID: ownerID, PropertyID: property.ID, Horizons: []int{30}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stale.Windows[0].Revenue.IsZero() {
			t.Errorf("expected the cached empty snapshot, got revenue %s", stale.Windows[0].Revenue)
		}

		fresh, err := cached.Execute(context.Background(), GetForecastInput{OwnerID: ownerID, PropertyID: property.ID, Horizons: []int{30}, Refresh: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fresh.Windows[0].Revenue.Equal(decimal.NewFromInt(2600)) {
			t.Errorf("expected revenue 2600 after refresh, got %s", fresh.Windows[0].Revenue)
		}
		if len(cache.entries[property.ID].ShortTerm) != 3 {
			t.Error("expected the refreshed snapshot to replace the cached one")
		}
	})
}

func TestGetPerformanceUseCase_Execute(t *testing.T) {
	ownerID := uuid.New()
	repo := newFakePortfolioRepo()
	withHistory := repo.addProperty(ownerID, sampleSnapshot())
	withoutHistory := repo.addProperty(ownerID, nil)
	uc := NewGetPerformanceUseCase(repo, NewSnapshotLoader(repo, nil, 0))

	t.Run("aggregates statements", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetPerformanceInput{OwnerID: ownerID, PropertyID: withHistory.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Metrics == nil {
			t.Fatal("expected metrics")
		}
		if !output.Metrics.TotalNet.Equal(decimal.NewFromInt(7400)) {
			t.Errorf("expected total net 7400, got %s", output.Metrics.TotalNet)
		}
		if !output.Metrics.GrowthRatePercent.Equal(decimal.NewFromInt(25)) {
			t.Errorf("expected growth 25, got %s", output.Metrics.GrowthRatePercent)
		}
	})

	t.Run("no statements is not an error", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetPerformanceInput{OwnerID: ownerID, PropertyID: withoutHistory.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Metrics != nil {
			t.Errorf("expected nil metrics, got %+v", output.Metrics)
		}
	})
}

func TestGetOccupancyUseCase_Execute(t *testing.T) {
	ownerID := uuid.New()
	repo := newFakePortfolioRepo()
	property := repo.addProperty(ownerID, sampleSnapshot())
	uc := NewGetOccupancyUseCase(repo, NewSnapshotLoader(repo, nil, 0), DefaultSettings())

	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)

	t.Run("computes occupancy for the range", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetOccupancyInput{
			OwnerID: ownerID, PropertyID: property.ID, StartDate: start, EndDate: end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// s1 three nights, m1 from June 11 to July 1.
		if output.Occupancy.BookedNights != 23 {
			t.Errorf("expected 23 booked nights, got %d", output.Occupancy.BookedNights)
		}
		if output.Occupancy.BookingsCount != 2 {
			t.Errorf("expected 2 bookings, got %d", output.Occupancy.BookingsCount)
		}
	})

	t.Run("validation errors", func(t *testing.T) {
		cases := []struct {
			name  string
			input GetOccupancyInput
			code  domainerror.ForecastErrorCode
		}{
			{"missing start", GetOccupancyInput{EndDate: end}, domainerror.ErrCodeMissingStartDate},
			{"missing end", GetOccupancyInput{StartDate: start}, domainerror.ErrCodeMissingEndDate},
			{"reversed range", GetOccupancyInput{StartDate: end, EndDate: start}, domainerror.ErrCodeInvalidDateRange},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				c.input.OwnerID = ownerID
				c.input.PropertyID = property.ID
				_, err := uc.Execute(context.Background(), c.input)

				var forecastErr *domainerror.ForecastError
				if !errors.As(err, &forecastErr) || forecastErr.Code != c.code {
					t.Errorf("expected code %s, got %v", c.code, err)
				}
			})
		}
	})
}

func TestGetProjectionUseCase_Execute(t *testing.T) {
	ownerID := uuid.New()
	repo := newFakePortfolioRepo()
	property := repo.addProperty(ownerID, sampleSnapshot())
	uc := NewGetProjectionUseCase(repo, NewSnapshotLoader(repo, nil, 0), fixedClock{now: testNow}, DefaultSettings())

	output, err := uc.Execute(context.Background(), GetProjectionInput{OwnerID: ownerID, PropertyID: property.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Months) != 3 {
		t.Fatalf("expected the default 3 months, got %d", len(output.Months))
	}
	if output.Months[0].Period != "2024-06" {
		t.Errorf("expected first period 2024-06, got %s", output.Months[0].Period)
	}

	// June: s1 600 + m1 June 11 -> July 1 (20 days) = 2000.
	if !output.Months[0].Total.Equal(decimal.NewFromInt(2600)) {
		t.Errorf("expected June total 2600, got %s", output.Months[0].Total)
	}
}

func TestSimulateForecastUseCase_Execute(t *testing.T) {
	uc := NewSimulateForecastUseCase(fixedClock{now: testNow.AddDate(1, 0, 0)}, DefaultSettings())
	snapshot := sampleSnapshot()
	now := testNow

	output, err := uc.Execute(context.Background(), SimulateForecastInput{
		ShortTerm:  snapshot.ShortTerm,
		MidTerm:    snapshot.MidTerm,
		Statements: snapshot.Statements,
		Horizons:   []int{30},
		Now:        &now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.GeneratedAt.Equal(testNow) {
		t.Errorf("expected the supplied now to win over the clock, got %v", output.GeneratedAt)
	}
	if output.IntervalsCount != 2 || output.DiscardedRecords != 2 {
		t.Errorf("expected 2 kept and 2 discarded, got %d / %d", output.IntervalsCount, output.DiscardedRecords)
	}
	if !output.Windows[0].Revenue.Equal(decimal.NewFromInt(2600)) {
		t.Errorf("expected revenue 2600, got %s", output.Windows[0].Revenue)
	}
	if output.Metrics == nil || !output.Metrics.TotalRevenue.Equal(decimal.NewFromInt(9000)) {
		t.Errorf("expected metrics with revenue 9000, got %+v", output.Metrics)
	}
}

func TestSnapshotLoader(t *testing.T) {
	ownerID := uuid.New()

	t.Run("serves cached snapshots without reading the repository", func(t *testing.T) {
		repo := newFakePortfolioRepo()
		property := repo.addProperty(ownerID, sampleSnapshot())
		cache := newFakeSnapshotCache()
		cache.entries[property.ID] = &entity.PropertySnapshot{PropertyID: property.ID}
		loader := NewSnapshotLoader(repo, cache, time.Minute)

		snapshot, err := loader.Load(context.Background(), property.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snapshot.ShortTerm) != 0 {
			t.Error("expected the cached snapshot")
		}
		if repo.snapshotCalls != 0 {
			t.Errorf("expected no repository reads, got %d", repo.snapshotCalls)
		}
	})

	t.Run("fills the cache on a miss", func(t *testing.T) {
		repo := newFakePortfolioRepo()
		property := repo.addProperty(ownerID, sampleSnapshot())
		cache := newFakeSnapshotCache()
		loader := NewSnapshotLoader(repo, cache, time.Minute)

		if _, err := loader.Load(context.Background(), property.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := cache.entries[property.ID]; !ok {
			t.Error("expected snapshot to be cached")
		}
	})

	t.Run("fetch with refresh skips the cache read", func(t *testing.T) {
		repo := newFakePortfolioRepo()
		property := repo.addProperty(ownerID, sampleSnapshot())
		cache := newFakeSnapshotCache()
		cache.entries[property.ID] = &entity.PropertySnapshot{PropertyID: property.ID}
		loader := NewSnapshotLoader(repo, cache, time.Minute)

		snapshot, err := loader.Fetch(context.Background(), property.ID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snapshot.ShortTerm) != 3 {
			t.Errorf("expected repository snapshot, got %d bookings", len(snapshot.ShortTerm))
		}
		if repo.snapshotCalls != 1 || cache.sets != 1 {
			t.Errorf("expected one read and one write, got %d / %d", repo.snapshotCalls, cache.sets)
		}

		if _, err := loader.Fetch(context.Background(), property.ID, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.snapshotCalls != 1 {
			t.Errorf("expected the refreshed entry to be served from cache, got %d reads", repo.snapshotCalls)
		}
	})

	t.Run("falls back to the repository when the cache fails", func(t *testing.T) {
		repo := newFakePortfolioRepo()
		property := repo.addProperty(ownerID, sampleSnapshot())
		cache := newFakeSnapshotCache()
		cache.getErr = errors.New("connection refused")
		cache.setErr = errors.New("connection refused")
		loader := NewSnapshotLoader(repo, cache, time.Minute)

		snapshot, err := loader.Load(context.Background(), property.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snapshot.ShortTerm) != 3 {
			t.Errorf("expected repository snapshot, got %d bookings", len(snapshot.ShortTerm))
		}
	})
}

func TestWarmSnapshotsUseCase_Execute(t *testing.T) {
	repo := newFakePortfolioRepo()
	ok := repo.addProperty(uuid.New(), sampleSnapshot())
	broken := repo.addProperty(uuid.New(), nil)
	repo.snapshotErrs[broken.ID] = errors.New("timeout")

	for i := 0; i < 5; i++ {
		repo.addProperty(uuid.New(), nil)
	}

	cache := newFakeSnapshotCache()
	uc := NewWarmSnapshotsUseCase(repo, NewSnapshotLoader(repo, cache, time.Minute), 3)

	t.Run("refreshes every property and counts failures", func(t *testing.T) {
		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Refreshed != 6 || output.Failed != 1 {
			t.Errorf("expected 6 refreshed and 1 failed, got %+v", output)
		}
		if _, cached := cache.entries[ok.ID]; !cached {
			t.Error("expected healthy property to be cached")
		}
		if _, cached := cache.entries[broken.ID]; cached {
			t.Error("expected failing property to stay out of the cache")
		}
	})

	t.Run("stops on a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		output, err := uc.Execute(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if output.Refreshed != 0 {
			t.Errorf("expected nothing refreshed, got %d", output.Refreshed)
		}
	})
}
