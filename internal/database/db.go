package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a Home Assistant recorder database connection
type DB struct {
	conn *sql.DB
}

// New opens the recorder database and makes sure the long-term statistics
// tables exist. Against a real recorder database the CREATEs are no-ops;
// against a fresh file they produce a minimal compatible schema.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the statistics tables used by generated artifacts
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS statistics_meta (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		statistic_id TEXT NOT NULL,
		source TEXT,
		unit_of_measurement TEXT,
		has_mean INTEGER,
		has_sum INTEGER,
		name TEXT,
		UNIQUE(statistic_id)
	);
	CREATE TABLE IF NOT EXISTS statistics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_ts REAL,
		metadata_id INTEGER NOT NULL,
		start_ts REAL,
		state REAL,
		sum REAL,
		UNIQUE(metadata_id, start_ts)
	);
	CREATE INDEX IF NOT EXISTS ix_statistics_metadata_id ON statistics(metadata_id);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// ApplyScript executes a generated SQL artifact inside one transaction,
// so a failing statement leaves the database untouched
func (db *DB) ApplyScript(script string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if _, err := tx.Exec(script); err != nil {
		tx.Rollback()
		return fmt.Errorf("executing artifact: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing artifact: %w", err)
	}

	return nil
}

// SeriesCount holds the stored row count for one statistic
type SeriesCount struct {
	StatisticID string
	Rows        int
}

// CountBySeries reports stored statistics rows per statistic id for one
// source tag, ordered by statistic id
func (db *DB) CountBySeries(source string) ([]SeriesCount, error) {
	query := `
	SELECT m.statistic_id, COUNT(s.id)
	FROM statistics_meta m
	LEFT JOIN statistics s ON s.metadata_id = m.id
	WHERE m.source = ?
	GROUP BY m.statistic_id
	ORDER BY m.statistic_id
	`

	rows, err := db.conn.Query(query, source)
	if err != nil {
		return nil, fmt.Errorf("querying statistics counts: %w", err)
	}
	defer rows.Close()

	var results []SeriesCount
	for rows.Next() {
		var c SeriesCount
		if err := rows.Scan(&c.StatisticID, &c.Rows); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, c)
	}

	return results, rows.Err()
}
