package storage

import (
	"database/sql"
	"fmt"
	"solobill/internal/providers"

	_ "github.com/mattn/go-sqlite3"
)

const kvSchema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// SqliteAdapter stores each key as a row in a single kv table. SQLite only
// supports one writer at a time, so the pool is capped at one connection.
type SqliteAdapter struct {
	db     *sql.DB
	logger providers.Logger
}

func NewSqliteAdapter(path string, logger providers.Logger) (*SqliteAdapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(kvSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Infof(providers.TypeStore, "SQLite storage opened at %s", path)
	return &SqliteAdapter{db: db, logger: logger}, nil
}

func (s *SqliteAdapter) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *SqliteAdapter) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

func (s *SqliteAdapter) Close() error {
	return s.db.Close()
}
