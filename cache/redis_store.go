package catalog_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "facets:"

// RedisStore shares facet entries between instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = TTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(slug string) string {
	return keyPrefix + slug
}

func (s *RedisStore) Get(ctx context.Context, slug string) (Entry, bool, error) {
	raw, err := s.client.Get(ctx, s.key(slug)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("get facet entry %q: %w", slug, err)
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Entry{}, false, fmt.Errorf("decode facet entry %q: %w", slug, err)
	}
	return entry, true, nil
}

func (s *RedisStore) Set(ctx context.Context, slug string, entry Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode facet entry %q: %w", slug, err)
	}
	if err := s.client.Set(ctx, s.key(slug), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("set facet entry %q: %w", slug, err)
	}
	return nil
}

// Invalidate deletes every key under the facet prefix, found with SCAN.
func (s *RedisStore) Invalidate(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 100 {
			if err := s.client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("invalidate facet entries: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan facet entries: %w", err)
	}
	if len(batch) > 0 {
		if err := s.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("invalidate facet entries: %w", err)
		}
	}
	return nil
}
