package store

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"github.com/matheus3301/estate/internal/store/migrations"
)

// ErrDirtySchema is returned when a previous migration stopped half way.
var ErrDirtySchema = errors.New("collections schema is dirty")

// DB is the per-profile estate.db holding every collection.
type DB struct {
	*sql.DB
	path string
}

// MigrateResult reports the schema version after Migrate.
type MigrateResult struct {
	Version uint
	// Changed is false when the schema was already current.
	Changed bool
}

// Open connects to the database at path. WAL lets a CLI read while the TUI
// writes; busy_timeout covers the short write windows.
func Open(path string) (*DB, error) {
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "5000")
	q.Set("_synchronous", "NORMAL")

	db, err := sql.Open("sqlite3", "file:"+path+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// One writer per process; collection writes are whole-row upserts.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	return &DB{DB: db, path: path}, nil
}

// OpenMigrated opens the database and brings its schema up to date.
func OpenMigrated(path string) (*DB, MigrateResult, error) {
	db, err := Open(path)
	if err != nil {
		return nil, MigrateResult{}, err
	}
	res, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, MigrateResult{}, err
	}
	return db, res, nil
}

// Migrate applies pending embedded migrations.
func (db *DB) Migrate() (MigrateResult, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return MigrateResult{}, fmt.Errorf("migration source: %w", err)
	}
	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		return MigrateResult{}, fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return MigrateResult{}, fmt.Errorf("migration instance: %w", err)
	}

	if _, dirty, err := m.Version(); err == nil && dirty {
		return MigrateResult{}, fmt.Errorf("%s: %w", db.path, ErrDirtySchema)
	}

	var res MigrateResult
	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
	case err != nil:
		return MigrateResult{}, fmt.Errorf("migrate %s: %w", db.path, err)
	default:
		res.Changed = true
	}

	version, _, err := m.Version()
	if err != nil {
		return MigrateResult{}, fmt.Errorf("schema version: %w", err)
	}
	res.Version = version
	return res, nil
}
