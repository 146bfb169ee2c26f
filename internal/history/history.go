// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists generated reports in a local SQLite
// database so they can be listed and re-downloaded later.
package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a report ID is absent from the store.
var ErrNotFound = errors.New("report not found")

// Record is one generated report: identity, provenance, and the
// rendered bytes.
type Record struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Format    string    `json:"format"`
	CreatedAt time.Time `json:"created_at"`
	StudyIDs  []string  `json:"study_ids"`
	Content   []byte    `json:"-"`
}

// Store manages the report history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at dbPath, creating
// parent directories and the schema as needed.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS report_history (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		format TEXT NOT NULL,
		created_at TEXT NOT NULL,
		study_ids TEXT NOT NULL,
		content BLOB NOT NULL
	)`)
	return err
}

// Save inserts a record, assigning a fresh UUID and timestamp when the
// record carries none, and returns the stored record.
func (s *Store) Save(rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	ids, err := json.Marshal(rec.StudyIDs)
	if err != nil {
		return Record{}, fmt.Errorf("encoding study ids: %w", err)
	}

	query, args, err := sq.Insert("report_history").
		Columns("id", "title", "format", "created_at", "study_ids", "content").
		Values(rec.ID, rec.Title, rec.Format, rec.CreatedAt.Format(time.RFC3339Nano), string(ids), rec.Content).
		ToSql()
	if err != nil {
		return Record{}, fmt.Errorf("building insert: %w", err)
	}
	if _, err := s.db.Exec(query, args...); err != nil {
		return Record{}, fmt.Errorf("saving report: %w", err)
	}
	return rec, nil
}

// List returns all records without their content, newest first.
func (s *Store) List() ([]Record, error) {
	query, args, err := sq.Select("id", "title", "format", "created_at", "study_ids").
		From("report_history").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan, false)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Get returns one record including its rendered content.
func (s *Store) Get(id string) (Record, error) {
	query, args, err := sq.Select("id", "title", "format", "created_at", "study_ids", "content").
		From("report_history").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return Record{}, fmt.Errorf("building select: %w", err)
	}

	rec, err := scanRecord(s.db.QueryRow(query, args...).Scan, true)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rec, err
}

// Delete removes one record.
func (s *Store) Delete(id string) error {
	query, args, err := sq.Delete("report_history").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete: %w", err)
	}

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func scanRecord(scan func(...any) error, withContent bool) (Record, error) {
	var rec Record
	var created, ids string

	dest := []any{&rec.ID, &rec.Title, &rec.Format, &created, &ids}
	if withContent {
		dest = append(dest, &rec.Content)
	}
	if err := scan(dest...); err != nil {
		return Record{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Record{}, fmt.Errorf("parsing created_at: %w", err)
	}
	rec.CreatedAt = t
	if err := json.Unmarshal([]byte(ids), &rec.StudyIDs); err != nil {
		return Record{}, fmt.Errorf("decoding study ids: %w", err)
	}
	return rec, nil
}
