package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/owner-portal/backend/internal/application/usecase/dashboard"
)

type fakeWarmer struct {
	calls    int
	deadline bool
	err      error
}

func (w *fakeWarmer) Execute(ctx context.Context) (*dashboard.WarmSnapshotsOutput, error) {
	w.calls++
	_, w.deadline = ctx.Deadline()
	if w.err != nil {
		return nil, w.err
	}
	return &dashboard.WarmSnapshotsOutput{Refreshed: 2}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_WarmSnapshots(t *testing.T) {
	t.Run("runs the warmer with a deadline", func(t *testing.T) {
		warmer := &fakeWarmer{}
		s := NewScheduler(warmer, discardLogger(), "@every 1h", time.Minute)

		s.WarmSnapshots()

		if warmer.calls != 1 {
			t.Errorf("expected 1 call, got %d", warmer.calls)
		}
		if !warmer.deadline {
			t.Error("expected the run to carry a deadline")
		}
	})

	t.Run("errors do not panic", func(t *testing.T) {
		warmer := &fakeWarmer{err: errors.New("database down")}
		s := NewScheduler(warmer, discardLogger(), "@every 1h", 0)

		s.WarmSnapshots()

		if warmer.calls != 1 {
			t.Errorf("expected 1 call, got %d", warmer.calls)
		}
		if warmer.deadline {
			t.Error("expected no deadline without a timeout")
		}
	})
}

func TestScheduler_Start(t *testing.T) {
	t.Run("invalid schedule", func(t *testing.T) {
		s := NewScheduler(&fakeWarmer{}, discardLogger(), "every now and then", time.Minute)
		if err := s.Start(); err == nil {
			t.Error("expected an error for an invalid schedule")
		}
	})

	t.Run("valid schedule", func(t *testing.T) {
		s := NewScheduler(&fakeWarmer{}, discardLogger(), "*/5 * * * *", time.Minute)
		if err := s.Start(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		<-s.Stop().Done()
	})
}
