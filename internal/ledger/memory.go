package ledger

import (
	"context"
	"strconv"
	"sync"

	"ledgerwriter/internal/models"
)

// MemoryEntry is a single entry held by MemoryAppender.
type MemoryEntry struct {
	ID     string
	Values map[string]string
}

// MemoryAppender keeps the log in memory. It honors the same contract as the
// Redis appender (monotonic positions, no deduplication) and backs tests and
// local development without a Redis instance.
type MemoryAppender struct {
	mu      sync.Mutex
	seq     uint64
	entries []MemoryEntry
}

// NewMemoryAppender creates an empty in-memory log.
func NewMemoryAppender() *MemoryAppender {
	return &MemoryAppender{}
}

// Append records the transaction and returns the next sequence position.
func (a *MemoryAppender) Append(_ context.Context, tx *models.Transaction) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.seq++
	id := strconv.FormatUint(a.seq, 10) + "-0"

	values := make(map[string]string)
	for k, v := range EntryValues(tx) {
		values[k] = v.(string)
	}
	a.entries = append(a.entries, MemoryEntry{ID: id, Values: values})
	return id, nil
}

// Entries returns a copy of all appended entries in order.
func (a *MemoryAppender) Entries() []MemoryEntry {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]MemoryEntry, len(a.entries))
	copy(out, a.entries)
	return out
}
