package notification

import (
	"context"
	"dentclinic-service/internal/app/models"
	"sync"
)

// Feed keeps the most recent notifications in memory so the dashboard can
// show them to the browser session that triggered them.
type Feed struct {
	mu    sync.Mutex
	items []models.Notification
	next  int
	full  bool
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = 1
	}
	return &Feed{items: make([]models.Notification, size)}
}

func (f *Feed) Notify(ctx context.Context, notification models.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items[f.next] = notification
	f.next = (f.next + 1) % len(f.items)
	if f.next == 0 {
		f.full = true
	}
}

// Recent returns notifications for sessionID, newest first. An empty
// sessionID matches notifications raised outside any browser session.
func (f *Feed) Recent(sessionID string, limit int) []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := f.next
	if f.full {
		count = len(f.items)
	}

	result := make([]models.Notification, 0)
	for i := 0; i < count; i++ {
		idx := (f.next - 1 - i + len(f.items)) % len(f.items)
		item := f.items[idx]
		if item.SessionID != sessionID {
			continue
		}
		result = append(result, item)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}
