package credential

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), StorageKey)
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	if got := store.Token(); got != "" {
		t.Errorf("Token() on empty store = %q, want empty", got)
	}

	if err := store.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}
	if got := store.Token(); got != "abc123" {
		t.Errorf("Token() = %q, want abc123", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat credential file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("credential file mode = %o, want 600", perm)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := store.Token(); got != "" {
		t.Errorf("Token() after Clear() = %q, want empty", got)
	}
	// Clearing twice must stay silent.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}

func TestFileStoreTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), StorageKey)
	if err := os.WriteFile(path, []byte("tok-42\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := store.Token(); got != "tok-42" {
		t.Errorf("Token() = %q, want tok-42", got)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	if err := store.SetToken("t"); err != nil {
		t.Fatal(err)
	}
	if store.Token() != "t" {
		t.Errorf("Token() = %q, want t", store.Token())
	}
	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if store.Token() != "" {
		t.Errorf("Token() after Clear() = %q, want empty", store.Token())
	}
}
