package planner

import (
	"sync"
	"time"
)

// HistoryEntry records one completed generation for the session.
type HistoryEntry struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Provider  string           `json:"provider"`
	Request   PlanningRequest  `json:"request"`
	Prompt    string           `json:"prompt"`
	Content   GeneratedContent `json:"content"`
}

// History is the in-memory generation log, newest first. Capped; the oldest
// entry is evicted when full. Nothing is persisted across restarts.
type History struct {
	mu      sync.RWMutex
	entries []*HistoryEntry
	max     int
}

func NewHistory(max int) *History {
	return &History{max: max}
}

// Add prepends an entry, evicting the oldest when over capacity.
func (h *History) Add(entry *HistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append([]*HistoryEntry{entry}, h.entries...)
	if h.max > 0 && len(h.entries) > h.max {
		h.entries = h.entries[:h.max]
	}
}

// Get returns an entry by ID.
func (h *History) Get(id string) *HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, entry := range h.entries {
		if entry.ID == id {
			return entry
		}
	}
	return nil
}

// Delete removes an entry, reporting whether it existed.
func (h *History) Delete(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, entry := range h.entries {
		if entry.ID == id {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return true
		}
	}
	return false
}

// List returns all entries, newest first.
func (h *History) List() []*HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
