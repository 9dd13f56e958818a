// Package cache implements an incremental-analysis cache keyed by a
// file's content hash (SPEC_FULL.md §3.1): `cmd/phpdoctype check` skips
// re-walking a file whose hash it has already recorded findings for.
// This is the domain-stack home for the teacher's three SQL drivers —
// grounded on pkg/pdo's per-backend driver files and DSN-dispatch
// pattern, repurposed from PDO emulation to a small result store.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/wudi/phpdoctype/report"
)

// CachedResult is one file's recorded outcome: its findings as of the
// hash under which it's stored.
type CachedResult struct {
	Findings []report.Finding
}

// Cache stores and retrieves CachedResult by a file's content hash.
type Cache interface {
	Get(fileHash string) (*CachedResult, bool, error)
	Put(fileHash string, result *CachedResult) error
	Close() error
}

// MemCache is the zero-configuration default: an in-process map, gone
// when the run exits. Used when the host names no --cache-dsn.
type MemCache struct {
	entries map[string]*CachedResult
}

// NewMemCache returns an empty in-process cache.
func NewMemCache() *MemCache {
	return &MemCache{entries: map[string]*CachedResult{}}
}

func (c *MemCache) Get(fileHash string) (*CachedResult, bool, error) {
	r, ok := c.entries[fileHash]
	return r, ok, nil
}

func (c *MemCache) Put(fileHash string, result *CachedResult) error {
	c.entries[fileHash] = result
	return nil
}

func (c *MemCache) Close() error { return nil }

// sqlCache is a database/sql-backed Cache shared by every SQL driver;
// only the driver name, the DSN passed to sql.Open and the query
// dialect differ between backends, mirroring pkg/pdo's per-driver Open
// functions.
// sqlDialect papers over the three backends' placeholder and upsert
// syntax — the one place this package's three-driver ambition touches
// real incompatibility (MySQL has no ON CONFLICT, Postgres numbers its
// placeholders).
type sqlDialect struct {
	getQuery string
	putQuery string
}

var dialects = map[string]sqlDialect{
	"sqlite": {
		getQuery: `SELECT findings_json FROM phpdoctype_cache WHERE file_hash = ?`,
		putQuery: `INSERT INTO phpdoctype_cache (file_hash, findings_json) VALUES (?, ?)
			ON CONFLICT(file_hash) DO UPDATE SET findings_json = excluded.findings_json`,
	},
	"mysql": {
		getQuery: `SELECT findings_json FROM phpdoctype_cache WHERE file_hash = ?`,
		putQuery: `INSERT INTO phpdoctype_cache (file_hash, findings_json) VALUES (?, ?)
			ON DUPLICATE KEY UPDATE findings_json = VALUES(findings_json)`,
	},
	"postgres": {
		getQuery: `SELECT findings_json FROM phpdoctype_cache WHERE file_hash = $1`,
		putQuery: `INSERT INTO phpdoctype_cache (file_hash, findings_json) VALUES ($1, $2)
			ON CONFLICT (file_hash) DO UPDATE SET findings_json = excluded.findings_json`,
	},
}

type sqlCache struct {
	db      *sql.DB
	dialect sqlDialect
}

const createTableStmt = `CREATE TABLE IF NOT EXISTS phpdoctype_cache (
	file_hash TEXT PRIMARY KEY,
	findings_json TEXT NOT NULL
)`

func newSQLCache(driverName, dataSourceName string) (*sqlCache, error) {
	dialect, ok := dialects[driverName]
	if !ok {
		return nil, fmt.Errorf("cache: unsupported driver %q", driverName)
	}
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("cache: opening %s: %w", driverName, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: pinging %s: %w", driverName, err)
	}
	if _, err := db.Exec(createTableStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: preparing schema: %w", err)
	}
	return &sqlCache{db: db, dialect: dialect}, nil
}

// NewSQLiteCache opens (creating if absent) a local SQLite-backed
// cache at path — the default persistent backend (pure Go, no cgo),
// mirroring pkg/pdo/sqlite_driver.go's embedding of modernc.org/sqlite.
func NewSQLiteCache(path string) (Cache, error) {
	return newSQLCache("sqlite", path)
}

// NewDSNCache dispatches to the driver named by driverName ("pgsql" is
// accepted as an alias for "postgres") and opens it with dsn, mirroring pkg/pdo's mysql_driver.go/pgsql_driver.go
// DSN-dispatch pattern — a shared-cache backend for a CI fleet of
// analyzer runs.
func NewDSNCache(driverName, dsn string) (Cache, error) {
	if driverName == "pgsql" {
		driverName = "postgres"
	}
	return newSQLCache(driverName, dsn)
}

func (c *sqlCache) Get(fileHash string) (*CachedResult, bool, error) {
	var payload string
	err := c.db.QueryRow(c.dialect.getQuery, fileHash).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: querying %s: %w", fileHash, err)
	}
	var result CachedResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, false, fmt.Errorf("cache: decoding %s: %w", fileHash, err)
	}
	return &result, true, nil
}

func (c *sqlCache) Put(fileHash string, result *CachedResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("cache: encoding %s: %w", fileHash, err)
	}
	if _, err := c.db.Exec(c.dialect.putQuery, fileHash, string(payload)); err != nil {
		return fmt.Errorf("cache: storing %s: %w", fileHash, err)
	}
	return nil
}

func (c *sqlCache) Close() error {
	return c.db.Close()
}
