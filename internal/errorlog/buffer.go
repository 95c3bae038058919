// File: internal/errorlog/buffer.go
package errorlog

import (
	"sync"

	"eduai-api/internal/model"
)

// Buffer keeps the most recent error-log entries in memory. It is
// process-scoped state injected into handlers, and safe for concurrent
// appends from request goroutines.
type Buffer struct {
	mu      sync.Mutex
	entries []model.ErrorLog
	max     int
}

// NewBuffer returns a buffer keeping at most max entries. max <= 0
// defaults to 100.
func NewBuffer(max int) *Buffer {
	if max <= 0 {
		max = 100
	}
	return &Buffer{max: max}
}

// Append records an entry, evicting the oldest once the buffer is full.
func (b *Buffer) Append(e model.ErrorLog) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, e)
	if len(b.entries) > b.max {
		b.entries = b.entries[len(b.entries)-b.max:]
	}
}

// Recent returns a copy of the buffered entries, newest first.
func (b *Buffer) Recent() []model.ErrorLog {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.ErrorLog, len(b.entries))
	for i, e := range b.entries {
		out[len(b.entries)-1-i] = e
	}
	return out
}
