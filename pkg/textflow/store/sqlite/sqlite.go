// Package sqlite implements store.Store on a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/textflow/textflow/pkg/textflow/internalerr"
	"github.com/textflow/textflow/pkg/textflow/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and creates the
// schema if needed.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT,
	email TEXT UNIQUE NOT NULL,
	password TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS inbox (
	id TEXT PRIMARY KEY,
	title TEXT,
	message TEXT,
	type TEXT,
	report_data TEXT,
	email_sent INTEGER DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS activity_history (
	id TEXT PRIMARY KEY,
	filename TEXT,
	operations TEXT,
	status TEXT,
	records_count INTEGER,
	processing_time REAL,
	report_data TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS processed_history (
	id TEXT PRIMARY KEY,
	content TEXT,
	score REAL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_content ON processed_history(content);

CREATE TABLE IF NOT EXISTS contact_messages (
	id TEXT PRIMARY KEY,
	name TEXT,
	email TEXT,
	message TEXT,
	created_at TEXT NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

const timeLayout = time.RFC3339Nano

func encodeTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// CreateUser inserts a new account. A duplicate email reports
// internalerr.ErrDuplicate.
func (s *sqliteStore) CreateUser(ctx context.Context, u store.User) error {
	if u.ID == "" {
		u.ID = store.NewID()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.Password, encodeTime(u.CreatedAt))
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return internalerr.ErrDuplicate
	}
	return err
}

// GetUserByEmail returns the account registered under email.
func (s *sqliteStore) GetUserByEmail(ctx context.Context, email string) (store.User, error) {
	var u store.User
	var created string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, created_at
		FROM users WHERE email = ?`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &created)
	if err == sql.ErrNoRows {
		return store.User{}, internalerr.ErrNotFound
	}
	if err != nil {
		return store.User{}, err
	}
	u.CreatedAt = decodeTime(created)
	return u, nil
}

// AddInboxEntry stores a report notification.
func (s *sqliteStore) AddInboxEntry(ctx context.Context, e store.InboxEntry) error {
	if e.ID == "" {
		e.ID = store.NewID()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO inbox (id, title, message, type, report_data, email_sent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Message, e.Type, e.ReportData, e.EmailSent, encodeTime(e.CreatedAt))
	return err
}

// SetInboxEmailStatus updates the delivery state of an inbox entry.
func (s *sqliteStore) SetInboxEmailStatus(ctx context.Context, id string, status int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE inbox SET email_sent = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return internalerr.ErrNotFound
	}
	return nil
}

// ListInbox returns inbox entries, newest first.
func (s *sqliteStore) ListInbox(ctx context.Context, limit int) ([]store.InboxEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, message, type, report_data, email_sent, created_at
		FROM inbox ORDER BY created_at DESC, id DESC LIMIT ?`, queryLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []store.InboxEntry
	for rows.Next() {
		var e store.InboxEntry
		var created string
		if err := rows.Scan(&e.ID, &e.Title, &e.Message, &e.Type,
			&e.ReportData, &e.EmailSent, &created); err != nil {
			return nil, err
		}
		e.CreatedAt = decodeTime(created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AddActivity records one analysis run.
func (s *sqliteStore) AddActivity(ctx context.Context, a store.Activity) error {
	if a.ID == "" {
		a.ID = store.NewID()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO activity_history
			(id, filename, operations, status, records_count, processing_time, report_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Filename, strings.Join(a.Operations, ","), a.Status,
		a.RecordsCount, a.ProcessingTime, a.ReportData, encodeTime(a.CreatedAt))
	return err
}

// ListActivity returns analysis runs, newest first.
func (s *sqliteStore) ListActivity(ctx context.Context, limit int) ([]store.Activity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, operations, status, records_count, processing_time, report_data, created_at
		FROM activity_history ORDER BY created_at DESC, id DESC LIMIT ?`, queryLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []store.Activity
	for rows.Next() {
		var a store.Activity
		var operations, created string
		if err := rows.Scan(&a.ID, &a.Filename, &operations, &a.Status,
			&a.RecordsCount, &a.ProcessingTime, &a.ReportData, &created); err != nil {
			return nil, err
		}
		if operations != "" {
			a.Operations = strings.Split(operations, ",")
		}
		a.CreatedAt = decodeTime(created)
		items = append(items, a)
	}
	return items, rows.Err()
}

// AddProcessedRows stores scored rows in one transaction.
func (s *sqliteStore) AddProcessedRows(ctx context.Context, items []store.ProcessedRow) error {
	if len(items) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO processed_history (id, content, score, created_at)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range items {
		if r.ID == "" {
			r.ID = store.NewID()
		}
		if _, err := stmt.ExecContext(ctx, r.ID, r.Content, r.Score, encodeTime(r.CreatedAt)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SearchProcessed runs a substring search over stored row content.
func (s *sqliteStore) SearchProcessed(ctx context.Context, query string, limit int) ([]store.ProcessedRow, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, content, score, created_at
		FROM processed_history WHERE content LIKE ?
		ORDER BY created_at DESC, id DESC LIMIT ?`, pattern, queryLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []store.ProcessedRow
	for rows.Next() {
		var r store.ProcessedRow
		var created string
		if err := rows.Scan(&r.ID, &r.Content, &r.Score, &created); err != nil {
			return nil, err
		}
		r.CreatedAt = decodeTime(created)
		items = append(items, r)
	}
	return items, rows.Err()
}

// AddContactMessage stores a contact-form message.
func (s *sqliteStore) AddContactMessage(ctx context.Context, m store.ContactMessage) error {
	if m.ID == "" {
		m.ID = store.NewID()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, message, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Message, encodeTime(m.CreatedAt))
	return err
}

func queryLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	return limit
}
