package services

import (
	"context"
	"sync"
)

// ChangeBus is an in-process notifier for per-user activity/aggregate
// changes. Subscribers get a buffered channel of user ids; delivery is
// latest-wins, so a slow consumer only ever misses intermediate events,
// never the most recent one.
type ChangeBus struct {
	mu   sync.Mutex
	next int
	subs map[int]chan uint
}

func NewChangeBus() *ChangeBus {
	return &ChangeBus{subs: make(map[int]chan uint)}
}

// Notify tells every subscriber that the given user's data changed.
// Never blocks: a full subscriber channel has its stale event replaced.
func (b *ChangeBus) Notify(userID uint) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- userID:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- userID:
			default:
			}
		}
	}
}

// Subscribe registers a change listener. The channel closes when ctx is done.
func (b *ChangeBus) Subscribe(ctx context.Context) <-chan uint {
	ch := make(chan uint, 1)

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
		close(ch)
	}()

	return ch
}
