package sqldb

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/football-chatbot/internal/platform/cache"
)

const cacheEntriesTable = "api_cache_entries"

var cacheEntryColumns = []string{"cache_key", "endpoint", "params", "payload", "ttl_ms", "created_at_ms"}

type cacheEntryTableModel struct {
	Key         string        `db:"cache_key"`
	Endpoint    string        `db:"endpoint"`
	Params      string        `db:"params"`
	Payload     []byte        `db:"payload"`
	TTLMillis   sql.NullInt64 `db:"ttl_ms"`
	CreatedAtMs int64         `db:"created_at_ms"`
}

func cacheEntryToModel(e cache.Entry) cacheEntryTableModel {
	model := cacheEntryTableModel{
		Key:         e.Key,
		Endpoint:    e.Endpoint,
		Params:      e.Params,
		Payload:     e.Payload,
		CreatedAtMs: e.CreatedAt.UnixMilli(),
	}
	if e.TTL > 0 {
		model.TTLMillis = sql.NullInt64{Int64: e.TTL.Milliseconds(), Valid: true}
	}
	return model
}

func (m cacheEntryTableModel) toEntry() cache.Entry {
	e := cache.Entry{
		Key:       m.Key,
		Endpoint:  m.Endpoint,
		Params:    m.Params,
		Payload:   m.Payload,
		CreatedAt: time.UnixMilli(m.CreatedAtMs).UTC(),
	}
	if m.TTLMillis.Valid && m.TTLMillis.Int64 > 0 {
		e.TTL = time.Duration(m.TTLMillis.Int64) * time.Millisecond
	}
	return e
}
