package session

import (
	"context"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/pkg/constvars"
	"strconv"
	"sync"
	"time"
)

// MemoryStorage keeps session slots in process. It is used when Redis is not
// configured and in tests.
type MemoryStorage struct {
	mu          sync.Mutex
	slots       map[string]map[string]string
	subscribers map[string]map[chan models.SessionEvent]struct{}
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		slots:       make(map[string]map[string]string),
		subscribers: make(map[string]map[chan models.SessionEvent]struct{}),
	}
}

func (s *MemoryStorage) ReadSlots(ctx context.Context, sid string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string]string, len(s.slots[sid]))
	for key, value := range s.slots[sid] {
		result[key] = value
	}
	return result, nil
}

func (s *MemoryStorage) WriteIdentity(ctx context.Context, sid string, identityJSON []byte, loginTime *time.Time) error {
	values := map[string]string{
		constvars.SessionSlotCurrentUser: string(identityJSON),
		constvars.SessionSlotUser:        string(identityJSON),
	}
	if loginTime != nil {
		values[constvars.SessionSlotLoginTime] = strconv.FormatInt(loginTime.UnixMilli(), 10)
	}
	s.write(sid, values)
	return nil
}

func (s *MemoryStorage) WriteLoginTime(ctx context.Context, sid string, loginTime time.Time) error {
	s.write(sid, map[string]string{
		constvars.SessionSlotLoginTime: strconv.FormatInt(loginTime.UnixMilli(), 10),
	})
	return nil
}

func (s *MemoryStorage) write(sid string, values map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slots[sid] == nil {
		s.slots[sid] = make(map[string]string)
	}
	keys := make([]string, 0, len(values))
	for _, key := range allSlots {
		if value, ok := values[key]; ok {
			s.slots[sid][key] = value
			keys = append(keys, key)
		}
	}
	s.broadcast(sid, models.SessionEvent{Type: models.SessionEventUpdated, Keys: keys})
}

func (s *MemoryStorage) Clear(ctx context.Context, sid string, slots ...string) error {
	if len(slots) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range slots {
		delete(s.slots[sid], key)
	}
	if len(s.slots[sid]) == 0 {
		delete(s.slots, sid)
	}
	s.broadcast(sid, models.SessionEvent{Type: models.SessionEventCleared, Keys: slots})
	return nil
}

func (s *MemoryStorage) Subscribe(ctx context.Context, sid string) (<-chan models.SessionEvent, func(), error) {
	ch := make(chan models.SessionEvent, 8)

	s.mu.Lock()
	if s.subscribers[sid] == nil {
		s.subscribers[sid] = make(map[chan models.SessionEvent]struct{})
	}
	s.subscribers[sid][ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers[sid], ch)
			if len(s.subscribers[sid]) == 0 {
				delete(s.subscribers, sid)
			}
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, unsubscribe, nil
}

// broadcast must be called with mu held. Slow subscribers miss events
// instead of blocking writers.
func (s *MemoryStorage) broadcast(sid string, event models.SessionEvent) {
	for ch := range s.subscribers[sid] {
		select {
		case ch <- event:
		default:
		}
	}
}
