package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"vitaltrack/internal/models"
)

// Store is the shared leaderboard collaborator. Publish overwrites the
// caller's snapshot (last write wins, no merge); Subscribe is a push stream
// that delivers the full snapshot set whenever any participant changes.
type Store interface {
	Publish(ctx context.Context, entry models.LeaderboardEntry) error
	List(ctx context.Context) ([]models.LeaderboardEntry, error)
	Subscribe(ctx context.Context) (<-chan []models.LeaderboardEntry, error)
	Close() error
}

const (
	hashKey  = "vitaltrack:leaderboard"
	seqKey   = "vitaltrack:leaderboard:seq"
	pubsubCh = "vitaltrack:leaderboard:updates"
)

// RedisStore keeps one JSON snapshot per user in a hash and fans out change
// notifications over pub/sub. The arrival sequence is allocated with INCR on
// a user's first publish and carried forward on overwrites.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore() (*RedisStore, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Publish(ctx context.Context, entry models.LeaderboardEntry) error {
	// Preserve the arrival sequence across overwrites.
	prev, err := s.client.HGet(ctx, hashKey, entry.UserID).Result()
	switch {
	case err == nil:
		var existing models.LeaderboardEntry
		if err := json.Unmarshal([]byte(prev), &existing); err == nil {
			entry.Seq = existing.Seq
		}
	case err == redis.Nil:
		seq, err := s.client.Incr(ctx, seqKey).Result()
		if err != nil {
			return fmt.Errorf("failed to allocate leaderboard sequence: %w", err)
		}
		entry.Seq = seq
	default:
		return fmt.Errorf("failed to read leaderboard entry: %w", err)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard entry: %w", err)
	}

	if err := s.client.HSet(ctx, hashKey, entry.UserID, data).Err(); err != nil {
		return fmt.Errorf("failed to store leaderboard entry: %w", err)
	}

	if err := s.client.Publish(ctx, pubsubCh, entry.UserID).Err(); err != nil {
		// Snapshot is stored; subscribers just miss this push.
		log.Printf("leaderboard change notification failed: %v", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]models.LeaderboardEntry, error) {
	raw, err := s.client.HGetAll(ctx, hashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(raw))
	for userID, data := range raw {
		var entry models.LeaderboardEntry
		if err := json.Unmarshal([]byte(data), &entry); err != nil {
			log.Printf("skipping malformed leaderboard entry for user %s: %v", userID, err)
			continue
		}
		entries = append(entries, entry)
	}

	SortEntries(entries)
	return entries, nil
}

func (s *RedisStore) Subscribe(ctx context.Context) (<-chan []models.LeaderboardEntry, error) {
	pubsub := s.client.Subscribe(ctx, pubsubCh)
	if _, err := pubsub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("failed to subscribe to leaderboard updates: %w", err)
	}

	out := make(chan []models.LeaderboardEntry, 1)
	msgs := pubsub.Channel()

	go func() {
		defer close(out)
		defer pubsub.Close()

		// Initial snapshot so subscribers don't wait for the first change.
		if entries, err := s.List(ctx); err == nil {
			push(out, entries)
		}

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				entries, err := s.List(ctx)
				if err != nil {
					log.Printf("leaderboard refresh failed: %v", err)
					continue
				}
				push(out, entries)
			}
		}
	}()

	return out, nil
}

// push delivers latest-wins: a stale undelivered snapshot is replaced.
func push(out chan []models.LeaderboardEntry, entries []models.LeaderboardEntry) {
	select {
	case out <- entries:
	default:
		select {
		case <-out:
		default:
		}
		select {
		case out <- entries:
		default:
		}
	}
}
