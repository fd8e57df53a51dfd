package leaderboard

import (
	"context"
	"sync"

	"vitaltrack/internal/models"
)

// MemoryStore is an in-process Store used in tests and as a degraded-mode
// fallback when Redis is unreachable at startup. Same semantics as
// RedisStore: overwrite per user, stable arrival sequence, push on change.
type MemoryStore struct {
	mu      sync.Mutex
	nextSeq int64
	entries map[string]models.LeaderboardEntry
	subs    map[int]chan []models.LeaderboardEntry
	nextSub int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]models.LeaderboardEntry),
		subs:    make(map[int]chan []models.LeaderboardEntry),
	}
}

func (s *MemoryStore) Publish(_ context.Context, entry models.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[entry.UserID]; ok {
		entry.Seq = existing.Seq
	} else {
		s.nextSeq++
		entry.Seq = s.nextSeq
	}
	s.entries[entry.UserID] = entry

	snapshot := s.snapshotLocked()
	for _, ch := range s.subs {
		push(ch, snapshot)
	}
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]models.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), nil
}

func (s *MemoryStore) Subscribe(ctx context.Context) (<-chan []models.LeaderboardEntry, error) {
	ch := make(chan []models.LeaderboardEntry, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	push(ch, s.snapshotLocked())
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) snapshotLocked() []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	SortEntries(entries)
	return entries
}
