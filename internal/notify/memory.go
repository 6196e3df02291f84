package notify

import (
	"context"
	"sync"
)

const DefaultLimit = 50

// MemoryFeed keeps the newest notifications in process memory.
type MemoryFeed struct {
	mu    sync.Mutex
	items []Notification // oldest first
	limit int
}

func NewMemoryFeed(limit int) *MemoryFeed {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &MemoryFeed{limit: limit}
}

func (f *MemoryFeed) Notify(_ context.Context, n Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, n)
	if over := len(f.items) - f.limit; over > 0 {
		f.items = append([]Notification(nil), f.items[over:]...)
	}
	return nil
}

// List returns the notifications newest first.
func (f *MemoryFeed) List(_ context.Context) ([]Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notification, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		out = append(out, f.items[i])
	}
	return out, nil
}

func (f *MemoryFeed) Dismiss(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, n := range f.items {
		if n.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

var _ Feed = (*MemoryFeed)(nil)
