package rediskv

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/football-chatbot/internal/platform/cache"
)

const (
	DefaultPrefix = "football-chatbot:cache:"
	scanBatchSize = 100
)

// cacheRecord is the JSON value stored under each redis key.
type cacheRecord struct {
	Key         string `json:"key"`
	Endpoint    string `json:"endpoint"`
	Params      string `json:"params"`
	Payload     []byte `json:"payload"`
	CreatedAtMs int64  `json:"created_at_ms"`
	TTLMillis   int64  `json:"ttl_ms,omitempty"`
}

// CacheEntryRepository persists response cache entries in redis. Redis key expiry
// mirrors the entry expiry, so redis evicts on its own as well.
type CacheEntryRepository struct {
	client     redis.UniversalClient
	prefix     string
	defaultTTL time.Duration
	now        func() time.Time
}

var _ cache.Persister = (*CacheEntryRepository)(nil)

func NewCacheEntryRepository(client redis.UniversalClient, prefix string, defaultTTL time.Duration) *CacheEntryRepository {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &CacheEntryRepository{
		client:     client,
		prefix:     prefix,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// NewClient parses a redis:// URL and checks connectivity.
func NewClient(ctx context.Context, rawURL string, timeout time.Duration) (*redis.Client, error) {
	opts, err := redis.ParseURL(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if timeout > 0 {
		opts.DialTimeout = timeout
		opts.ReadTimeout = timeout
		opts.WriteTimeout = timeout
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (r *CacheEntryRepository) prefixKey(key string) string {
	return r.prefix + key
}

func (r *CacheEntryRepository) LoadAll(ctx context.Context) ([]cache.Entry, error) {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	out := make([]cache.Entry, 0, len(keys))
	for start := 0; start < len(keys); start += scanBatchSize {
		end := min(start+scanBatchSize, len(keys))

		pipe := r.client.Pipeline()
		cmds := make([]*redis.StringCmd, 0, end-start)
		for _, key := range keys[start:end] {
			cmds = append(cmds, pipe.Get(ctx, key))
		}
		if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("load cache entries: %w", err)
		}

		for _, cmd := range cmds {
			raw, err := cmd.Bytes()
			if err != nil {
				// Expired between SCAN and GET.
				continue
			}
			entry, err := decodeRecord(raw)
			if err != nil {
				continue
			}
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *CacheEntryRepository) Save(ctx context.Context, entry cache.Entry) error {
	ttl := r.remaining(entry)
	if ttl <= 0 {
		return r.Delete(ctx, entry.Key)
	}

	raw, err := encodeRecord(entry)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.prefixKey(entry.Key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("save cache entry key=%s: %w", entry.Key, err)
	}
	return nil
}

func (r *CacheEntryRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefixKey(key)).Err(); err != nil {
		return fmt.Errorf("delete cache entry key=%s: %w", key, err)
	}
	return nil
}

func (r *CacheEntryRepository) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", scanBatchSize).Iterator()
	keys := make([]string, 0, scanBatchSize)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= scanBatchSize {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("clear cache entries: %w", err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cache entries: %w", err)
	}
	if len(keys) > 0 {
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("clear cache entries: %w", err)
		}
	}
	return nil
}

func (r *CacheEntryRepository) scanKeys(ctx context.Context) ([]string, error) {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", scanBatchSize).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan cache entries: %w", err)
	}
	return keys, nil
}

// remaining is how long redis should keep the entry from now.
func (r *CacheEntryRepository) remaining(entry cache.Entry) time.Duration {
	return entry.ExpiresAt(r.defaultTTL).Sub(r.now())
}

func encodeRecord(entry cache.Entry) ([]byte, error) {
	raw, err := sonic.Marshal(cacheRecord{
		Key:         entry.Key,
		Endpoint:    entry.Endpoint,
		Params:      entry.Params,
		Payload:     entry.Payload,
		CreatedAtMs: entry.CreatedAt.UnixMilli(),
		TTLMillis:   entry.TTL.Milliseconds(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode cache entry key=%s: %w", entry.Key, err)
	}
	return raw, nil
}

func decodeRecord(raw []byte) (cache.Entry, error) {
	var rec cacheRecord
	if err := sonic.Unmarshal(raw, &rec); err != nil {
		return cache.Entry{}, fmt.Errorf("decode cache entry: %w", err)
	}
	if rec.Key == "" {
		return cache.Entry{}, fmt.Errorf("decode cache entry: empty key")
	}
	entry := cache.Entry{
		Key:       rec.Key,
		Endpoint:  rec.Endpoint,
		Params:    rec.Params,
		Payload:   rec.Payload,
		CreatedAt: time.UnixMilli(rec.CreatedAtMs).UTC(),
	}
	if rec.TTLMillis > 0 {
		entry.TTL = time.Duration(rec.TTLMillis) * time.Millisecond
	}
	return entry, nil
}
