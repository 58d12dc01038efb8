package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

// Key prefixes of the per-user preference blobs.
const (
	KeyVisibility = "calendarVisibility"
	KeyCategories = "categoryFilters"
	KeyColors     = "calendarColors"
	KeyGroups     = "calendarGroups"
)

// ErrEmptyUser is returned when a preference is addressed without a user id.
var ErrEmptyUser = errors.New("prefs: user id is required")

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// Store persists per-user JSON preference blobs as files under dir.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore creates a Store rooted at dir. The directory is created on first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load decodes the blob stored under key for userID into v.
// found is false when nothing was saved yet.
func (s *Store) Load(userID, key string, v any) (found bool, err error) {
	path, err := s.pathFor(userID, key)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	raw, err := os.ReadFile(path)
	s.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Save encodes v and replaces the blob stored under key for userID.
func (s *Store) Save(userID, key string, v any) error {
	path, err := s.pathFor(userID, key)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	return writeFileAtomically(path, payload)
}

// Clear removes every blob of userID.
func (s *Store) Clear(userID string) error {
	for _, key := range []string{KeyVisibility, KeyCategories, KeyColors, KeyGroups} {
		path, err := s.pathFor(userID, key)
		if err != nil {
			return err
		}
		s.mu.Lock()
		err = os.Remove(path)
		s.mu.Unlock()
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}

func (s *Store) pathFor(userID, key string) (string, error) {
	if userID == "" {
		return "", ErrEmptyUser
	}
	name := unsafeChars.ReplaceAllString(key+"_"+userID, "_") + ".json"
	return filepath.Join(s.dir, name), nil
}

func writeFileAtomically(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
