package metrics

import (
	"context"
	"sync"

	"healthai/internal/models"
)

// Recorder accumulates lookup outcomes in memory until they are flushed to
// the store.
type Recorder struct {
	store Store

	mu      sync.Mutex
	pending map[models.LookupKey]int64
}

// NewRecorder creates a recorder flushing to store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{
		store:   store,
		pending: make(map[models.LookupKey]int64),
	}
}

// Record counts one lookup. Fallback outcomes are recorded without a key so
// free text never becomes a label value.
func (r *Recorder) Record(operation, key string, matched bool) {
	if !matched {
		key = ""
	}
	k := models.LookupKey{Operation: operation, Key: key, Outcome: models.OutcomeFor(matched)}

	r.mu.Lock()
	r.pending[k]++
	r.mu.Unlock()
}

// Pending returns the number of distinct counters awaiting a flush.
func (r *Recorder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Flush writes pending counts to the store. On failure the counts are kept
// for the next flush.
func (r *Recorder) Flush(ctx context.Context) error {
	r.mu.Lock()
	if len(r.pending) == 0 {
		r.mu.Unlock()
		return nil
	}
	batch := r.pending
	r.pending = make(map[models.LookupKey]int64)
	r.mu.Unlock()

	if err := r.store.AddLookupCounts(ctx, batch); err != nil {
		r.mu.Lock()
		for k, v := range batch {
			r.pending[k] += v
		}
		r.mu.Unlock()
		return err
	}
	return nil
}

// Store returns the backing store.
func (r *Recorder) Store() Store {
	return r.store
}
