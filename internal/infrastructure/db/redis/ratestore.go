package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campusworks/job-board/internal/ratelimit"
)

// RateStore is a ratelimit.Store backed by Redis, for deployments where the
// in-process map's single-process limitation matters. Windows are stored as
// JSON under ratelimit:<key> with a TTL matching the window remainder, so
// Redis expires stale buckets on its own.
type RateStore struct {
	client *redis.Client
}

func NewRateStore(client *redis.Client) *RateStore {
	return &RateStore{client: client}
}

func (s *RateStore) key(key string) string { return "ratelimit:" + key }

func (s *RateStore) Get(key string) (ratelimit.Window, bool) {
	val, err := s.client.Get(context.Background(), s.key(key)).Result()
	if err != nil {
		return ratelimit.Window{}, false
	}
	var w ratelimit.Window
	if err := json.Unmarshal([]byte(val), &w); err != nil {
		return ratelimit.Window{}, false
	}
	return w, true
}

func (s *RateStore) Set(key string, w ratelimit.Window) {
	ttl := time.Until(w.ResetAt)
	if ttl <= 0 {
		ttl = time.Second
	}
	b, err := json.Marshal(w)
	if err != nil {
		return
	}
	s.client.Set(context.Background(), s.key(key), b, ttl)
}

func (s *RateStore) Delete(key string) {
	s.client.Del(context.Background(), s.key(key))
}

// Purge is a no-op: window keys carry a TTL and expire server-side.
func (s *RateStore) Purge(time.Time) {}
