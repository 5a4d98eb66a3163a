// Package store defines the persistence interface for accounts, inbox
// notifications, analysis history, and contact messages.
package store

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// Email delivery states for an inbox entry.
const (
	EmailNotSent = 0
	EmailSent    = 1
	EmailFailed  = 2
)

// Store is the main interface for persisting TextFlow data.
type Store interface {
	Close() error

	// Users
	CreateUser(ctx context.Context, u User) error
	GetUserByEmail(ctx context.Context, email string) (User, error)

	// Inbox
	AddInboxEntry(ctx context.Context, e InboxEntry) error
	SetInboxEmailStatus(ctx context.Context, id string, status int) error
	ListInbox(ctx context.Context, limit int) ([]InboxEntry, error)

	// Activity history
	AddActivity(ctx context.Context, a Activity) error
	ListActivity(ctx context.Context, limit int) ([]Activity, error)

	// Processed rows
	AddProcessedRows(ctx context.Context, rows []ProcessedRow) error
	SearchProcessed(ctx context.Context, query string, limit int) ([]ProcessedRow, error)

	// Contact messages
	AddContactMessage(ctx context.Context, m ContactMessage) error
}

// User is a registered account. Password holds the bcrypt hash, never
// the cleartext.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}

// InboxEntry is a report notification shown in the user's inbox.
// EmailSent tracks delivery: 0 not attempted, 1 delivered, 2 failed.
type InboxEntry struct {
	ID         string
	Title      string
	Message    string
	Type       string
	ReportData string
	EmailSent  int
	CreatedAt  time.Time
}

// Activity records one analysis run.
type Activity struct {
	ID             string
	Filename       string
	Operations     []string
	Status         string
	RecordsCount   int
	ProcessingTime float64
	ReportData     string
	CreatedAt      time.Time
}

// ProcessedRow is a scored dataset row kept for search.
type ProcessedRow struct {
	ID        string
	Content   string
	Score     float64
	CreatedAt time.Time
}

// ContactMessage is a message from the contact form.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// NewID returns a sortable unique record ID.
func NewID() string {
	return ulid.Make().String()
}
