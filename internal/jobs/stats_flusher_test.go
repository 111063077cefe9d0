package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingFlusher struct {
	calls atomic.Int32
	err   error
}

func (c *countingFlusher) Flush(context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestStatsFlusher_FlushesOnTickAndShutdown(t *testing.T) {
	fl := &countingFlusher{}
	f := NewStatsFlusher(fl, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.Start(ctx)
		close(done)
	}()

	time.Sleep(55 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}

	if got := fl.calls.Load(); got < 2 {
		t.Errorf("Flush called %d times, want at least 2 (ticks + final)", got)
	}
}

func TestStatsFlusher_FinalFlushOnImmediateCancel(t *testing.T) {
	fl := &countingFlusher{err: errors.New("boom")}
	f := NewStatsFlusher(fl, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f.Start(ctx)

	if got := fl.calls.Load(); got != 1 {
		t.Errorf("Flush called %d times, want 1", got)
	}
}
