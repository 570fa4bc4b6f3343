// Copyright 2025 The go-appledict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "modernc.org/sqlite"
)

// Schema for the parse_cache table, applied by OpenSQLite.
const Schema = `
CREATE TABLE IF NOT EXISTS parse_cache (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated INTEGER NOT NULL
);
`

// frontSize is the capacity of the in-process read-through cache. Values
// are whole parsed containers, so a handful is plenty.
const frontSize = 4

// SQLite is a Store persisted in a SQLite database file, fronted by a
// small in-process LRU so repeated reads of the same key skip the database.
type SQLite struct {
	db    *sql.DB
	front *lru.Cache[string, []byte]
}

// OpenSQLite opens (creating if needed) a SQLite-backed store at path.
// The store should be closed with Close.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache %q: %w", path, err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache %q: %w", path, err)
	}
	front, err := lru.New[string, []byte](frontSize)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache front: %w", err)
	}
	return &SQLite{
		db:    db,
		front: front,
	}, nil
}

// Get implements [Store.Get].
func (s *SQLite) Get(key string) ([]byte, bool, error) {
	if value, ok := s.front.Get(key); ok {
		return value, true, nil
	}
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM parse_cache WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache key %q: %w", key, err)
	}
	s.front.Add(key, value)
	return value, true, nil
}

// Put implements [Store.Put].
func (s *SQLite) Put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO parse_cache (key, value, updated) VALUES (?, ?, ?)`,
		key, value, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("writing cache key %q: %w", key, err)
	}
	s.front.Add(key, value)
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing cache: %w", err)
	}
	return nil
}
