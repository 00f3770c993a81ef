// Package session holds the active ("selected") user of the playground.
//
// The selection is the only state the playground owns. It is read from the
// preference store once, when the session is loaded, and written back on
// every explicit Select or Clear.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/Vasu1712/spring-playground/internal/models"
)

// Key is the fixed preference key the selected user is stored under.
const Key = "selectedUser"

// PreferenceStore is a persistent string key/value store.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Session tracks the selected user. It is safe for concurrent use.
type Session struct {
	store PreferenceStore

	mu   sync.RWMutex
	user *models.User
}

// Load restores the persisted selection. A corrupt entry is removed and the
// session starts with no user.
func Load(ctx context.Context, store PreferenceStore) (*Session, error) {
	s := &Session{store: store}

	raw, ok, err := store.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("load selected user: %w", err)
	}
	if !ok {
		return s, nil
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.ID == "" {
		log.Printf("[Session] Discarding unreadable selected user %q: %v", raw, err)
		if err := store.Delete(ctx, Key); err != nil {
			return nil, fmt.Errorf("discard selected user: %w", err)
		}
		return s, nil
	}
	s.user = &u
	return s, nil
}

// Current returns the selected user, or nil.
func (s *Session) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// UserID returns the selected user's id, or "" when none is selected.
func (s *Session) UserID() string {
	if u := s.Current(); u != nil {
		return u.ID
	}
	return ""
}

// Select makes u the active user and persists it.
func (s *Session) Select(ctx context.Context, u models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode selected user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("save selected user: %w", err)
	}
	s.user = &u
	return nil
}

// Clear deselects the active user and removes the persisted entry.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear selected user: %w", err)
	}
	s.user = nil
	return nil
}
