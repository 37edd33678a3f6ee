package cache

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/football-chatbot/internal/platform/logging"
)

// Entry is one cached upstream response. Expiry is derived at read time from
// CreatedAt plus the entry TTL override, or the store TTL when the override is zero.
type Entry struct {
	Key       string
	Endpoint  string
	Params    string
	Payload   []byte
	CreatedAt time.Time
	TTL       time.Duration
}

// ExpiresAt reports when the entry stops being a hit under the given default TTL.
func (e Entry) ExpiresAt(defaultTTL time.Duration) time.Time {
	ttl := e.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return e.CreatedAt.Add(ttl)
}

// Persister keeps entries across restarts. Implementations live under
// infrastructure/repository.
type Persister interface {
	LoadAll(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entry Entry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

type Stats struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Expired int `json:"expired"`
}

type Store struct {
	mu        sync.RWMutex
	entries   map[string]Entry
	ttl       time.Duration
	persister Persister
	logger    *logging.Logger
	now       func() time.Time
}

type Option func(*Store)

func WithPersister(p Persister) Option {
	return func(s *Store) {
		s.persister = p
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]Entry),
		ttl:     ttl,
		logger:  logging.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Warm loads persisted entries, skipping the ones already expired.
func (s *Store) Warm(ctx context.Context) (int, error) {
	if s.persister == nil {
		return 0, nil
	}

	entries, err := s.persister.LoadAll(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	loaded := 0
	s.mu.Lock()
	for _, e := range entries {
		if e.Key == "" || !now.Before(e.ExpiresAt(s.ttl)) {
			continue
		}
		s.entries[e.Key] = e
		loaded++
	}
	s.mu.Unlock()

	return loaded, nil
}

// Get returns the payload when now < expiry. Expired entries are evicted on access.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	if key == "" {
		return nil, false
	}

	now := s.now()
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !now.Before(e.ExpiresAt(s.ttl)) {
		s.evict(ctx, key, e.CreatedAt)
		return nil, false
	}

	return e.Payload, true
}

func (s *Store) Put(ctx context.Context, e Entry) {
	s.PutWithTTL(ctx, e, 0)
}

// PutWithTTL stores an entry with a per-entry TTL override; ttl <= 0 keeps the store TTL.
func (s *Store) PutWithTTL(ctx context.Context, e Entry, ttl time.Duration) {
	if e.Key == "" {
		return
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	if ttl > 0 {
		e.TTL = ttl
	}

	s.mu.Lock()
	s.entries[e.Key] = e
	s.mu.Unlock()

	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx, e); err != nil {
		s.logger.WarnContext(ctx, "persist cache entry failed", "key", e.Key, "error", err)
	}
}

// Clear removes every entry and returns how many were held in memory.
func (s *Store) Clear(ctx context.Context) (int, error) {
	s.mu.Lock()
	removed := len(s.entries)
	s.entries = make(map[string]Entry)
	s.mu.Unlock()

	if s.persister == nil {
		return removed, nil
	}
	if err := s.persister.Clear(ctx); err != nil {
		return removed, err
	}
	return removed, nil
}

// Stats is computed against a single instant under the read lock.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	stats := Stats{Total: len(s.entries)}
	for _, e := range s.entries {
		if now.Before(e.ExpiresAt(s.ttl)) {
			stats.Active++
			continue
		}
		stats.Expired++
	}
	return stats
}

// evict drops the entry only if it has not been replaced since it was read.
func (s *Store) evict(ctx context.Context, key string, createdAt time.Time) {
	s.mu.Lock()
	current, ok := s.entries[key]
	if !ok || !current.CreatedAt.Equal(createdAt) {
		s.mu.Unlock()
		return
	}
	delete(s.entries, key)
	s.mu.Unlock()

	if s.persister == nil {
		return
	}
	if err := s.persister.Delete(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "delete expired cache entry failed", "key", key, "error", err)
	}
}
