package repositories

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	flashes   []Flash
	expiresAt time.Time
}

// MemoryFlashRepository is used when no Redis address is configured.
type MemoryFlashRepository struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*memoryEntry
}

func NewMemoryFlashRepository(ttl time.Duration) *MemoryFlashRepository {
	return &MemoryFlashRepository{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*memoryEntry),
	}
}

func (r *MemoryFlashRepository) Push(_ context.Context, sessionID string, flash Flash) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpired()
	key := flashKey(sessionID)
	entry, ok := r.entries[key]
	if !ok {
		entry = &memoryEntry{}
		r.entries[key] = entry
	}
	entry.flashes = append(entry.flashes, flash)
	entry.expiresAt = r.now().Add(r.ttl)
	return nil
}

func (r *MemoryFlashRepository) Pop(_ context.Context, sessionID string) ([]Flash, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpired()
	key := flashKey(sessionID)
	entry, ok := r.entries[key]
	if !ok {
		return nil, nil
	}
	delete(r.entries, key)
	return entry.flashes, nil
}

func (r *MemoryFlashRepository) evictExpired() {
	now := r.now()
	for key, entry := range r.entries {
		if now.After(entry.expiresAt) {
			delete(r.entries, key)
		}
	}
}
