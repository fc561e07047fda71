package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"chrono/internal/tzdata"
	"chrono/internal/zone"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS zones (
	id     TEXT PRIMARY KEY,
	record BLOB NOT NULL
);`

const dataVersionKey = "data_version"

// SQLiteSource serves zone rules from a sqlite database holding one
// compact rules record per zone.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens a zone database created by WriteSQLite.
func OpenSQLite(dsn string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	return &SQLiteSource{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// DataVersion implements Source.
func (s *SQLiteSource) DataVersion() (string, error) {
	var version string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, dataVersionKey).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("store: database has no %s entry", dataVersionKey)
	}
	if err != nil {
		return "", err
	}
	return version, nil
}

// ZoneIDs implements Source.
func (s *SQLiteSource) ZoneIDs() ([]string, error) {
	rows, err := s.db.Query(`SELECT id FROM zones ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Load implements Source.
func (s *SQLiteSource) Load(id string) (*zone.Rules, error) {
	var record []byte
	err := s.db.QueryRow(`SELECT record FROM zones WHERE id = ?`, id).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}
	if err != nil {
		return nil, err
	}
	rules, err := tzdata.DecodeRules(record)
	if err != nil {
		return nil, fmt.Errorf("zone %q: %w", id, err)
	}
	return rules, nil
}

// WriteSQLite creates or replaces a zone database at dsn with the given
// data version and zones, one tagged rules record per row.
func WriteSQLite(dsn, dataVersion string, zones map[string]*zone.Rules) (err error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); err == nil {
			err = closeErr
		}
	}()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, dataVersionKey, dataVersion); err != nil {
		return err
	}
	for id, rules := range zones {
		record, err := tzdata.EncodeRules(nil, rules)
		if err != nil {
			return fmt.Errorf("zone %q: %w", id, err)
		}
		if _, err := tx.Exec(`INSERT OR REPLACE INTO zones (id, record) VALUES (?, ?)`, id, record); err != nil {
			return err
		}
	}
	return tx.Commit()
}

var _ Source = (*SQLiteSource)(nil)
