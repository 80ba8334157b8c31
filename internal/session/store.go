// Package session holds the authenticated identity and credential for the
// lifetime of use, persisted under a fixed key so separate invocations share
// one browsing session.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/letsdodifferent/HCLTech/internal/model"
)

// storageKey is the fixed name the credential is stored under.
const storageKey = "session.json"

// Store persists the session credential and identity.
type Store interface {
	Load() (*model.Session, error)
	Save(*model.Session) error
	Clear() error
}

// FileStore keeps the session in a JSON file under the state directory.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore builds a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, storageKey)}
}

// Load returns the stored session, or nil when none exists.
func (s *FileStore) Load() (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess model.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		// Corrupt state counts as logged out.
		return nil, nil
	}
	if sess.Token == "" {
		return nil, nil
	}
	return &sess, nil
}

// Save writes the session, creating the state directory when needed.
func (s *FileStore) Save(sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Clear removes the stored session. Clearing an absent session is a no-op.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStore is an in-process Store for tests.
type MemoryStore struct {
	mu   sync.Mutex
	sess *model.Session
}

func (s *MemoryStore) Load() (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess, nil
}

func (s *MemoryStore) Save(sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = sess
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
	return nil
}
