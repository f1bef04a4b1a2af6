package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemorySessionCache is an in-process bot-to-meeting cache with expiration.
// Used when Redis is not configured; single-instance deployments lose
// nothing since a miss falls back to the sessions table anyway.
type MemorySessionCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]*memoryItem
}

type memoryItem struct {
	meetingID  uuid.UUID
	expireTime time.Time
}

// NewMemorySessionCache creates a new in-memory session cache
func NewMemorySessionCache(ttl time.Duration) *MemorySessionCache {
	store := &MemorySessionCache{
		ttl:   ttl,
		items: make(map[string]*memoryItem),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired()

	return store
}

// GetMeetingID looks up the meeting a bot records
func (ms *MemorySessionCache) GetMeetingID(_ context.Context, botID string) (uuid.UUID, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[botID]
	if !exists {
		return uuid.Nil, false
	}
	if time.Now().After(item.expireTime) {
		return uuid.Nil, false
	}
	return item.meetingID, true
}

// SetMeetingID stores the bot-to-meeting mapping
func (ms *MemorySessionCache) SetMeetingID(_ context.Context, botID string, meetingID uuid.UUID) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[botID] = &memoryItem{
		meetingID:  meetingID,
		expireTime: time.Now().Add(ms.ttl),
	}
}

// cleanupExpired periodically removes expired items
func (ms *MemorySessionCache) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ms.mu.Lock()
		now := time.Now()
		for key, item := range ms.items {
			if now.After(item.expireTime) {
				delete(ms.items, key)
			}
		}
		ms.mu.Unlock()
	}
}
