// Package store is a file-backed key-value store mirroring the browser
// localStorage the planner's state originally lived in: one JSON document
// per key, read in full and written in full.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
)

// SessionKey is the key the planner persists its own state under.
const SessionKey = "calc_realestate"

// Store persists JSON documents under named keys in a directory.
type Store struct {
	dir string
}

// Open prepares a store rooted at dir, creating it if needed.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("store directory is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) keyPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid store key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Get unmarshals the document stored under key into v. The boolean
// reports whether the key existed; a missing key is not an error.
func (s *Store) Get(key string, v any) (bool, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode key %s: %w", key, err)
	}
	return true, nil
}

// Put marshals v and stores it under key, replacing any prior value.
func (s *Store) Put(key string, v any) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode key %s: %w", key, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes the document stored under key, if any.
func (s *Store) Delete(key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// LoadSession restores the persisted planner state, reporting whether a
// prior session existed.
func (s *Store) LoadSession() (*domain.SessionState, bool, error) {
	var state domain.SessionState
	ok, err := s.Get(SessionKey, &state)
	if err != nil || !ok {
		return nil, false, err
	}
	return &state, true, nil
}

// SaveSession persists the planner state.
func (s *Store) SaveSession(state *domain.SessionState) error {
	return s.Put(SessionKey, state)
}
