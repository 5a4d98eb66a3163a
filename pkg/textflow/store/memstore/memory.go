// Package memstore is an in-memory implementation of store.Store for tests.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/textflow/textflow/pkg/textflow/internalerr"
	"github.com/textflow/textflow/pkg/textflow/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu       sync.RWMutex
	users    map[string]store.User // keyed by email
	inbox    []store.InboxEntry
	activity []store.Activity
	rows     []store.ProcessedRow
	contact  []store.ContactMessage
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{users: make(map[string]store.User)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// CreateUser inserts a new account, rejecting duplicate emails.
func (s *Store) CreateUser(ctx context.Context, u store.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.Email]; ok {
		return internalerr.ErrDuplicate
	}
	if u.ID == "" {
		u.ID = store.NewID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	s.users[u.Email] = u
	return nil
}

// GetUserByEmail returns the account registered under email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (store.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return store.User{}, internalerr.ErrNotFound
	}
	return u, nil
}

// AddInboxEntry stores a report notification.
func (s *Store) AddInboxEntry(ctx context.Context, e store.InboxEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = store.NewID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	s.inbox = append(s.inbox, e)
	return nil
}

// SetInboxEmailStatus updates the delivery state of an inbox entry.
func (s *Store) SetInboxEmailStatus(ctx context.Context, id string, status int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inbox {
		if s.inbox[i].ID == id {
			s.inbox[i].EmailSent = status
			return nil
		}
	}
	return internalerr.ErrNotFound
}

// ListInbox returns inbox entries, newest first.
func (s *Store) ListInbox(ctx context.Context, limit int) ([]store.InboxEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.InboxEntry, len(s.inbox))
	copy(out, s.inbox)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return clip(out, limit), nil
}

// AddActivity records one analysis run.
func (s *Store) AddActivity(ctx context.Context, a store.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = store.NewID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	s.activity = append(s.activity, a)
	return nil
}

// ListActivity returns analysis runs, newest first.
func (s *Store) ListActivity(ctx context.Context, limit int) ([]store.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Activity, len(s.activity))
	copy(out, s.activity)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return clip(out, limit), nil
}

// AddProcessedRows stores scored rows.
func (s *Store) AddProcessedRows(ctx context.Context, items []store.ProcessedRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range items {
		if r.ID == "" {
			r.ID = store.NewID()
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = time.Now()
		}
		s.rows = append(s.rows, r)
	}
	return nil
}

// SearchProcessed runs a substring search over stored row content.
func (s *Store) SearchProcessed(ctx context.Context, query string, limit int) ([]store.ProcessedRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.ProcessedRow
	for i := len(s.rows) - 1; i >= 0; i-- {
		if strings.Contains(s.rows[i].Content, query) {
			out = append(out, s.rows[i])
		}
	}
	return clip(out, limit), nil
}

// AddContactMessage stores a contact-form message.
func (s *Store) AddContactMessage(ctx context.Context, m store.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		m.ID = store.NewID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	s.contact = append(s.contact, m)
	return nil
}

// ContactMessages returns stored contact messages, in insertion order.
// Test helper; not part of store.Store.
func (s *Store) ContactMessages() []store.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.ContactMessage, len(s.contact))
	copy(out, s.contact)
	return out
}

func clip[T any](items []T, limit int) []T {
	if limit <= 0 {
		limit = 50
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
