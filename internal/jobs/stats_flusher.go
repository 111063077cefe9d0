package jobs

import (
	"context"
	"log/slog"
	"time"
)

// finalFlushTimeout bounds the flush performed on shutdown.
const finalFlushTimeout = 5 * time.Second

// Flusher writes buffered data to durable storage.
type Flusher interface {
	Flush(ctx context.Context) error
}

// StatsFlusher periodically flushes buffered lookup counters.
type StatsFlusher struct {
	flusher  Flusher
	interval time.Duration
}

// NewStatsFlusher creates a new stats flusher.
func NewStatsFlusher(flusher Flusher, interval time.Duration) *StatsFlusher {
	return &StatsFlusher{
		flusher:  flusher,
		interval: interval,
	}
}

// Start runs the flush loop until ctx is cancelled, then flushes once more.
func (f *StatsFlusher) Start(ctx context.Context) {
	slog.Info("stats flusher started", "interval", f.interval)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.finalFlush()
			slog.Info("stats flusher stopped")
			return
		case <-ticker.C:
			f.flush(ctx)
		}
	}
}

func (f *StatsFlusher) flush(ctx context.Context) {
	if err := f.flusher.Flush(ctx); err != nil {
		slog.Error("failed to flush lookup stats", "error", err)
	}
}

func (f *StatsFlusher) finalFlush() {
	ctx, cancel := context.WithTimeout(context.Background(), finalFlushTimeout)
	defer cancel()
	f.flush(ctx)
}
