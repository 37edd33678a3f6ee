package querybuilder

import (
	"database/sql"
	"testing"
)

type cacheRow struct {
	Key      string `db:"cache_key"`
	Endpoint string `db:"endpoint"`
	Payload  []byte `db:"payload"`
	internal string
	Skipped  string `db:"-"`
}

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("cache_key", "payload").
		From("api_cache_entries").
		Where(Eq("endpoint", "standings"), Expr("created_at_ms > ?", int64(10))).
		OrderBy("created_at_ms").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT cache_key, payload FROM api_cache_entries WHERE endpoint = ? AND created_at_ms > ? ORDER BY created_at_ms LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "standings" || args[1] != int64(10) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("api_cache_entries").
		Columns("cache_key", "endpoint").
		Values("standings?league=94", "standings").
		Suffix("ON CONFLICT (cache_key) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO api_cache_entries (cache_key, endpoint) VALUES (?, ?) ON CONFLICT (cache_key) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "standings?league=94" || args[1] != "standings" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RejectsShortRow(t *testing.T) {
	_, _, err := InsertInto("api_cache_entries").
		Columns("cache_key", "endpoint").
		Values("only-one").
		ToSQL()
	if err == nil {
		t.Fatalf("expected error for mismatched row")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("api_cache_entries").Where(Eq("cache_key", "k1")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM api_cache_entries WHERE cache_key = ?" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "k1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	query, args, err = DeleteFrom("api_cache_entries").ToSQL()
	if err != nil {
		t.Fatalf("build delete all query: %v", err)
	}
	if query != "DELETE FROM api_cache_entries" || len(args) != 0 {
		t.Fatalf("unexpected delete all query: %s %+v", query, args)
	}
}

func TestInsertModel(t *testing.T) {
	row := cacheRow{Key: "k1", Endpoint: "teams", Payload: []byte("{}"), internal: "x", Skipped: "y"}
	query, args, err := InsertModel("api_cache_entries", &row, "")
	if err != nil {
		t.Fatalf("build model insert: %v", err)
	}

	wantQuery := "INSERT INTO api_cache_entries (cache_key, endpoint, payload) VALUES (?, ?, ?)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "k1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModel("api_cache_entries", (*cacheRow)(nil), ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}

type nullableRow struct {
	Key   string        `db:"cache_key"`
	TTLMs sql.NullInt64 `db:"ttl_ms"`
}

func TestInsertModel_NestedStructIsOneColumn(t *testing.T) {
	row := nullableRow{Key: "k1", TTLMs: sql.NullInt64{Int64: 60000, Valid: true}}
	query, args, err := InsertModel("api_cache_entries", row, "")
	if err != nil {
		t.Fatalf("build model insert: %v", err)
	}
	if query != "INSERT INTO api_cache_entries (cache_key, ttl_ms) VALUES (?, ?)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[1] != (sql.NullInt64{Int64: 60000, Valid: true}) {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModel("api_cache_entries", 42, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
}
