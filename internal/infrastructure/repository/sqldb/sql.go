package sqldb

import (
	"strings"

	"github.com/jmoiron/sqlx"
)

func isPostgres(db *sqlx.DB) bool {
	switch strings.ToLower(db.DriverName()) {
	case "postgres", "pgx", "pq":
		return true
	default:
		return false
	}
}

func payloadColumnType(db *sqlx.DB) string {
	if isPostgres(db) {
		return "BYTEA"
	}
	return "BLOB"
}
