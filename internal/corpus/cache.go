// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/briefing-engine/pkg/types"
)

const cacheDBFile = "corpus-cache.db"

// Cache stores raw corpus payloads fetched from the endpoint so a later
// run can degrade gracefully when the endpoint is down. It never stores
// generated decks.
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates the fetch cache at dir/corpus-cache.db.
func OpenCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, cacheDBFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS corpus_cache (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source_url TEXT NOT NULL,
		fetched_at TEXT NOT NULL,
		payload BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close releases the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Put records a fetched payload. Older entries are kept; Latest always
// returns the newest.
func (c *Cache) Put(sourceURL string, payload []byte) error {
	_, err := c.db.Exec(
		`INSERT INTO corpus_cache (source_url, fetched_at, payload) VALUES (?, ?, ?)`,
		sourceURL, time.Now().UTC().Format(time.RFC3339), payload,
	)
	if err != nil {
		return fmt.Errorf("caching corpus payload: %w", err)
	}
	return nil
}

// Latest returns the most recently fetched corpus, or ok=false when the
// cache is empty.
func (c *Cache) Latest() (*types.Corpus, bool, error) {
	var payload []byte
	err := c.db.QueryRow(
		`SELECT payload FROM corpus_cache ORDER BY fetched_at DESC, id DESC LIMIT 1`,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading corpus cache: %w", err)
	}

	var corpus types.Corpus
	if err := json.Unmarshal(payload, &corpus); err != nil {
		return nil, false, fmt.Errorf("decoding cached corpus: %w", err)
	}
	return &corpus, true, nil
}
