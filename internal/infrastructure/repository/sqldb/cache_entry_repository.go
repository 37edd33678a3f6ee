package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-chatbot/internal/platform/cache"
	qb "github.com/riskibarqy/football-chatbot/internal/platform/querybuilder"
)

const upsertCacheEntrySuffix = `ON CONFLICT (cache_key) DO UPDATE SET
	endpoint = excluded.endpoint,
	params = excluded.params,
	payload = excluded.payload,
	ttl_ms = excluded.ttl_ms,
	created_at_ms = excluded.created_at_ms`

// CacheEntryRepository persists response cache entries in postgres or sqlite.
type CacheEntryRepository struct {
	db *sqlx.DB
}

var _ cache.Persister = (*CacheEntryRepository)(nil)

func NewCacheEntryRepository(db *sqlx.DB) *CacheEntryRepository {
	return &CacheEntryRepository{db: db}
}

// EnsureSchema creates the cache table when missing. Postgres deployments normally
// run cmd/migration instead; this keeps sqlite and local setups self-contained.
func (r *CacheEntryRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + cacheEntriesTable + ` (
			cache_key     TEXT PRIMARY KEY,
			endpoint      TEXT NOT NULL,
			params        TEXT NOT NULL DEFAULT '',
			payload       ` + payloadColumnType(r.db) + ` NOT NULL,
			ttl_ms        BIGINT NULL,
			created_at_ms BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_api_cache_entries_endpoint ON ` + cacheEntriesTable + ` (endpoint)`,
		`CREATE INDEX IF NOT EXISTS idx_api_cache_entries_created_at ON ` + cacheEntriesTable + ` (created_at_ms)`,
	}
	for _, stmt := range statements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure cache schema: %w", err)
		}
	}
	return nil
}

func (r *CacheEntryRepository) LoadAll(ctx context.Context) ([]cache.Entry, error) {
	query, args, err := qb.Select(cacheEntryColumns...).
		From(cacheEntriesTable).
		OrderBy("created_at_ms", "cache_key").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build load cache entries query: %w", err)
	}

	var rows []cacheEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load cache entries: %w", err)
	}

	out := make([]cache.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntry())
	}
	return out, nil
}

func (r *CacheEntryRepository) Save(ctx context.Context, entry cache.Entry) error {
	model := cacheEntryToModel(entry)
	query, args, err := qb.InsertModel(cacheEntriesTable, &model, upsertCacheEntrySuffix)
	if err != nil {
		return fmt.Errorf("build save cache entry query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("save cache entry key=%s: %w", entry.Key, err)
	}
	return nil
}

func (r *CacheEntryRepository) Delete(ctx context.Context, key string) error {
	query, args, err := qb.DeleteFrom(cacheEntriesTable).Where(qb.Eq("cache_key", key)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete cache entry query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("delete cache entry key=%s: %w", key, err)
	}
	return nil
}

func (r *CacheEntryRepository) Clear(ctx context.Context) error {
	query, args, err := qb.DeleteFrom(cacheEntriesTable).ToSQL()
	if err != nil {
		return fmt.Errorf("build clear cache entries query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("clear cache entries: %w", err)
	}
	return nil
}

// DeleteExpired drops rows whose expiry has passed. Rows without a TTL override
// expire after defaultTTL.
func (r *CacheEntryRepository) DeleteExpired(ctx context.Context, defaultTTL time.Duration, now time.Time) (int64, error) {
	query, args, err := qb.DeleteFrom(cacheEntriesTable).
		Where(qb.Expr("created_at_ms + COALESCE(ttl_ms, ?) <= ?", defaultTTL.Milliseconds(), now.UnixMilli())).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete expired cache entries query: %w", err)
	}
	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired cache entries: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count expired cache entries: %w", err)
	}
	return affected, nil
}
