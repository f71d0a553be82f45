// Package history provides SQLite-backed storage of rendered timelines.
// The database lives under the XDG data dir
// (~/.local/share/asciitl/history.db) unless a path override is configured.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no entry exists for the requested id.
var ErrNotFound = errors.New("history: entry not found")

// timeLayout keeps nanoseconds fixed width so that string ordering of the
// created_at column matches chronological ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one saved render: the raw input text alongside the table it
// produced.
type Entry struct {
	// ID is the unique identifier for this entry.
	ID string `yaml:"id"`
	// CreatedAt is when the render was saved.
	CreatedAt time.Time `yaml:"created_at"`
	// Input is the raw timeline text.
	Input string `yaml:"input"`
	// Table is the rendered ASCII table.
	Table string `yaml:"table"`
	// Activities is the number of activities parsed from the input.
	Activities int `yaml:"activities"`
}

// Store wraps an SQLite database connection holding saved renders.
type Store struct {
	conn *sql.DB
	path string
	mu   sync.RWMutex
}

// DefaultPath returns the XDG data path for the history database.
func DefaultPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "asciitl", "history.db")
}

// Open opens the history database at the given path, creating parent
// directories and the schema as needed. An empty path means DefaultPath.
// WAL mode is enabled for concurrent reads.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	s := &Store{
		conn: conn,
		path: path,
	}

	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Close()
}

// Path returns the path to the database file.
func (s *Store) Path() string {
	return s.path
}

// migrate applies pending schema migrations, tracked in a schema_version
// table so future versions can add columns without data loss.
func (s *Store) migrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}

	var currentVersion int
	row := s.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("get schema version: %w", err)
	}

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS renders (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			activities INTEGER NOT NULL
		)`,
	}

	for i, stmt := range migrations {
		version := i + 1
		if version <= currentVersion {
			continue
		}
		if _, err := s.conn.Exec(stmt); err != nil {
			return fmt.Errorf("apply migration %d: %w", version, err)
		}
		if _, err := s.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("record migration %d: %w", version, err)
		}
	}

	return nil
}

// Save records a render and returns the new entry's id.
func (s *Store) Save(input, table string, activities int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	createdAt := time.Now().UTC().Format(timeLayout)

	_, err := s.conn.Exec(
		"INSERT INTO renders (id, created_at, input, output, activities) VALUES (?, ?, ?, ?, ?)",
		id, createdAt, input, table, activities,
	)
	if err != nil {
		return "", fmt.Errorf("insert render: %w", err)
	}

	return id, nil
}

// List returns the most recent entries, newest first. A limit of 0 or less
// means no limit.
func (s *Store) List(limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT id, created_at, input, output, activities FROM renders ORDER BY created_at DESC"
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query renders: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate renders: %w", err)
	}

	return entries, nil
}

// Get returns the entry with the given id, or ErrNotFound.
func (s *Store) Get(id string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.conn.QueryRow(
		"SELECT id, created_at, input, output, activities FROM renders WHERE id = ?", id,
	)

	var entry Entry
	var createdAt string
	err := row.Scan(&entry.ID, &createdAt, &entry.Input, &entry.Table, &entry.Activities)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan render: %w", err)
	}

	entry.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	return &entry, nil
}

// Clear deletes all saved renders.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.conn.Exec("DELETE FROM renders"); err != nil {
		return fmt.Errorf("clear renders: %w", err)
	}
	return nil
}

// scanEntry reads one row from a List query.
func scanEntry(rows *sql.Rows) (Entry, error) {
	var entry Entry
	var createdAt string
	if err := rows.Scan(&entry.ID, &createdAt, &entry.Input, &entry.Table, &entry.Activities); err != nil {
		return Entry{}, fmt.Errorf("scan render: %w", err)
	}

	parsed, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parse created_at: %w", err)
	}
	entry.CreatedAt = parsed

	return entry, nil
}
