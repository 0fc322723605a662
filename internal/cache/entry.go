package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/gcordner/chargeguard/internal/model"
)

const watchlistKey = "watchlist:entries"

// Short TTL: screening may evaluate against a list at most this much stale
// when an admin edit races an in-flight evaluation.
const cachedWatchlistTimeToLive = time.Minute

// WatchlistCache holds a snapshot of the full entry list. Screening reads
// the whole list on every evaluation, so the list is cached wholesale and
// evicted on any mutation.
type WatchlistCache interface {
	Entries(context.Context) ([]*model.Entry, error)
	Put(context.Context, []*model.Entry) error
	Evict(context.Context) error
}

type redisWatchlistCache struct {
	client *redis.Client
}

func NewRedisWatchlistCache(client *redis.Client) WatchlistCache {
	return &redisWatchlistCache{client: client}
}

func (r *redisWatchlistCache) Entries(ctx context.Context) ([]*model.Entry, error) {
	res, err := r.client.Get(ctx, watchlistKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var entries []*model.Entry
	if err := msgpack.Unmarshal([]byte(res), &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *redisWatchlistCache) Put(ctx context.Context, entries []*model.Entry) error {
	encoded, err := msgpack.Marshal(entries)
	if err != nil {
		return err
	}

	if _, err := r.client.Set(ctx, watchlistKey, encoded, cachedWatchlistTimeToLive).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisWatchlistCache) Evict(ctx context.Context) error {
	if _, err := r.client.Del(ctx, watchlistKey).Result(); err != nil {
		return err
	}
	return nil
}
