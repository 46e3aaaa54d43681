package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Collections adapts DB to the collection.Backend interface. Each collection
// is one row; a write is a single UPSERT statement.
type Collections struct {
	db *DB
}

// NewCollections returns a collection backend over db.
func NewCollections(db *DB) *Collections {
	return &Collections{db: db}
}

func (c *Collections) Read(name string) ([]byte, error) {
	var payload string
	err := c.db.QueryRow(`SELECT payload FROM collections WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", name, err)
	}
	return []byte(payload), nil
}

func (c *Collections) Write(name string, payload []byte) error {
	_, err := c.db.Exec(`
		INSERT INTO collections (name, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		name, string(payload), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("upsert %s: %w", name, err)
	}
	return nil
}

func (c *Collections) Remove(name string) error {
	if _, err := c.db.Exec(`DELETE FROM collections WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}

func (c *Collections) Names() ([]string, error) {
	rows, err := c.db.Query(`SELECT name FROM collections ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// UpdatedAt returns when a collection was last written, or the zero time if absent.
func (c *Collections) UpdatedAt(name string) (time.Time, error) {
	var ts int64
	err := c.db.QueryRow(`SELECT updated_at FROM collections WHERE name = ?`, name).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(ts, 0), nil
}
