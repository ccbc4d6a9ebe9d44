package deliverylog

import (
	"context"
	"sync"
	"time"
)

// defaultMaxEntries bounds the in-memory log so a long-lived dev process
// cannot grow without limit.
const defaultMaxEntries = 10_000

// MemoryLog is an in-memory, thread-safe Log implementation.
// It is primarily useful for testing and for single-process deployments
// that do not require durable persistence across restarts.
type MemoryLog struct {
	mu      sync.RWMutex
	nextID  int64
	entries []*Entry
	max     int
}

// NewMemoryLog creates an empty MemoryLog bounded to defaultMaxEntries.
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{nextID: 1, max: defaultMaxEntries}
}

// Append implements Log.
func (l *MemoryLog) Append(_ context.Context, e Entry) (*Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.ID = l.nextID
	e.SentAt = time.Now().UTC()
	l.nextID++

	entry := e
	l.entries = append(l.entries, &entry)
	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}
	return &entry, nil
}

// Recent implements Log.
func (l *MemoryLog) Recent(_ context.Context, limit int) ([]*Entry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if limit <= 0 || limit > len(l.entries) {
		limit = len(l.entries)
	}
	out := make([]*Entry, 0, limit)
	for i := len(l.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, l.entries[i])
	}
	return out, nil
}

// Count implements Log.
func (l *MemoryLog) Count(_ context.Context) (map[string]int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	counts := make(map[string]int64)
	for _, e := range l.entries {
		counts[e.Status]++
	}
	return counts, nil
}
