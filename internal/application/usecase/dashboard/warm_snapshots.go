// Package dashboard contains the owner dashboard use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/owner-portal/backend/internal/application/adapter"
)

// WarmSnapshotsOutput reports the outcome of a cache warm run.
type WarmSnapshotsOutput struct {
	Refreshed int
	Failed    int
}

// WarmSnapshotsUseCase reloads every property snapshot into the cache so that
// dashboard refreshes rarely hit the database.
type WarmSnapshotsUseCase struct {
	portfolioRepo adapter.PortfolioRepository
	loader        *SnapshotLoader
	concurrency   int
}

// NewWarmSnapshotsUseCase creates a new WarmSnapshotsUseCase instance.
// At most concurrency snapshots are loaded at once; values below 1 mean one.
func NewWarmSnapshotsUseCase(portfolioRepo adapter.PortfolioRepository, loader *SnapshotLoader, concurrency int) *WarmSnapshotsUseCase {
	if concurrency < 1 {
		concurrency = 1
	}
	return &WarmSnapshotsUseCase{
		portfolioRepo: portfolioRepo,
		loader:        loader,
		concurrency:   concurrency,
	}
}

// Execute refreshes all snapshots. A failing property is logged and skipped.
func (uc *WarmSnapshotsUseCase) Execute(ctx context.Context) (*WarmSnapshotsOutput, error) {
	propertyIDs, err := uc.portfolioRepo.ListPropertyIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	var refreshed, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(uc.concurrency)

	for _, propertyID := range propertyIDs {
		if ctx.Err() != nil {
			break
		}

		propertyID := propertyID
		g.Go(func() error {
			if _, err := uc.loader.Refresh(ctx, propertyID); err != nil {
				slog.Error("Failed to warm property snapshot",
					"property_id", propertyID,
					"error", err,
				)
				failed.Add(1)
				return nil
			}
			refreshed.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	output := &WarmSnapshotsOutput{
		Refreshed: int(refreshed.Load()),
		Failed:    int(failed.Load()),
	}
	if err := ctx.Err(); err != nil {
		return output, err
	}
	return output, nil
}
