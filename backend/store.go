package backend

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT    NOT NULL,
	email      TEXT    NOT NULL,
	message    TEXT    NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS faq (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	question TEXT    NOT NULL,
	answer   TEXT    NOT NULL
);
CREATE TABLE IF NOT EXISTS counters (
	name  TEXT    PRIMARY KEY,
	value INTEGER NOT NULL
);`

const visitorCounter = "visitors"

// SQLStore is a Backend on a sqlite database.
type SQLStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ Backend = (*SQLStore)(nil)

// OpenSQLite opens (creating if needed) the sqlite database at path and
// applies the schema. Use ":memory:" for a throwaway store.
func OpenSQLite(ctx context.Context, path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases alive and serialises writers.
	db.SetMaxOpenConns(1)
	s, err := NewSQLStore(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLStore wraps an open database and applies the schema.
func NewSQLStore(ctx context.Context, db *sql.DB) (*SQLStore, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLStore{db: db, now: time.Now}, nil
}

// Close closes the underlying database.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// SubmitMessage stores a contact message.
func (s *SQLStore) SubmitMessage(ctx context.Context, name, email, message string) error {
	if err := ValidateMessage(name, email, message); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (name, email, message, created_at) VALUES (?, ?, ?, ?)`,
		name, email, message, s.now().UnixNano())
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// GetMessages returns every message, oldest first.
func (s *SQLStore) GetMessages(ctx context.Context) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, email, message, created_at FROM messages ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	out := []Message{}
	for rows.Next() {
		var m Message
		var ts int64
		if err := rows.Scan(&m.Name, &m.Email, &m.Message, &ts); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.Timestamp = time.Unix(0, ts).UTC()
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return out, nil
}

// GetFAQAnswer returns the answer of the oldest entry whose question contains
// keyword. An empty keyword matches nothing.
func (s *SQLStore) GetFAQAnswer(ctx context.Context, keyword string) (string, bool, error) {
	kw := normalizeKeyword(keyword)
	if kw == "" {
		return "", false, nil
	}
	var answer string
	err := s.db.QueryRowContext(ctx,
		`SELECT answer FROM faq WHERE instr(lower(question), ?) > 0 ORDER BY id LIMIT 1`, kw).
		Scan(&answer)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup faq %q: %w", kw, err)
	}
	return answer, true, nil
}

// GetAllFAQEntries returns every entry in insertion order.
func (s *SQLStore) GetAllFAQEntries(ctx context.Context) ([]FAQEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT question, answer FROM faq ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query faq: %w", err)
	}
	defer rows.Close()

	out := []FAQEntry{}
	for rows.Next() {
		var e FAQEntry
		if err := rows.Scan(&e.Question, &e.Answer); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate faq: %w", err)
	}
	return out, nil
}

// AddFAQEntry appends an entry.
func (s *SQLStore) AddFAQEntry(ctx context.Context, question, answer string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO faq (question, answer) VALUES (?, ?)`, question, answer)
	if err != nil {
		return fmt.Errorf("insert faq: %w", err)
	}
	return nil
}

// AddInitialFAQEntries installs InitialFAQ, skipping questions already
// present.
func (s *SQLStore) AddInitialFAQEntries(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, e := range InitialFAQ {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO faq (question, answer)
			SELECT ?, ?
			WHERE NOT EXISTS (SELECT 1 FROM faq WHERE question = ?)`,
			e.Question, e.Answer, e.Question)
		if err != nil {
			return fmt.Errorf("seed faq %q: %w", e.Question, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

// GetVisitorCount returns the visitor counter.
func (s *SQLStore) GetVisitorCount(ctx context.Context) (uint64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT value FROM counters WHERE name = ?`, visitorCounter).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read visitor count: %w", err)
	}
	return uint64(n), nil
}

// IncrementVisitorCount adds one to the visitor counter and returns the new
// value.
func (s *SQLStore) IncrementVisitorCount(ctx context.Context) (uint64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO counters (name, value) VALUES (?, 1)
		ON CONFLICT(name) DO UPDATE SET value = value + 1
		RETURNING value`, visitorCounter).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("increment visitor count: %w", err)
	}
	return uint64(n), nil
}
