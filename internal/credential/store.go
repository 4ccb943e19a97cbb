// Package credential persists the single bearer credential the client
// holds between runs. The token is the only client-side persisted state;
// everything else lives on the backend.
package credential

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// StorageKey names the credential entry. It doubles as the file name of
// the file-backed store.
const StorageKey = "auth_token"

// Store reads and writes the bearer credential. Token never fails: a
// missing or unreadable credential reads as empty, which the transport
// treats as "send no Authorization header".
type Store interface {
	Token() string
	SetToken(token string) error
	Clear() error
}

// FileStore keeps the credential in a single flat file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed store at path. An empty path
// resolves to <user config dir>/storefront/auth_token.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "storefront", StorageKey)
	}
	return &FileStore{path: path}, nil
}

// Token returns the stored credential, or "" when none is stored.
func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SetToken persists the credential, creating parent directories as
// needed. The file is user-readable only.
func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	return nil
}

// Clear removes the credential. Clearing an already-empty store is not
// an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store for tests and short-lived sessions.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Token returns the held credential.
func (s *MemoryStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken replaces the held credential.
func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear drops the held credential.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
