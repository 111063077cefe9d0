package metrics

import (
	"context"
	"sort"
	"sync"
	"time"

	"healthai/internal/models"
)

// MemoryStore keeps lookup counters in process. Used when no database is
// configured.
type MemoryStore struct {
	mu    sync.RWMutex
	stats map[models.LookupKey]*models.LookupStat
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{stats: make(map[models.LookupKey]*models.LookupStat)}
}

// AddLookupCounts adds deltas to the stored counters.
func (m *MemoryStore) AddLookupCounts(_ context.Context, deltas map[models.LookupKey]int64) error {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, n := range deltas {
		s, ok := m.stats[k]
		if !ok {
			s = &models.LookupStat{Operation: k.Operation, Key: k.Key, Outcome: k.Outcome}
			m.stats[k] = s
		}
		s.Count += n
		s.LastSeenAt = now
	}
	return nil
}

// GetAllLookupStats returns all counters ordered by operation, key and outcome.
func (m *MemoryStore) GetAllLookupStats(_ context.Context) ([]models.LookupStat, error) {
	m.mu.RLock()
	out := make([]models.LookupStat, 0, len(m.stats))
	for _, s := range m.stats {
		out = append(out, *s)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Operation != out[j].Operation {
			return out[i].Operation < out[j].Operation
		}
		if out[i].Key != out[j].Key {
			return out[i].Key < out[j].Key
		}
		return out[i].Outcome < out[j].Outcome
	})
	return out, nil
}

// Ping always succeeds.
func (m *MemoryStore) Ping(context.Context) error {
	return nil
}
