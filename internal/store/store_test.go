package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/xq773939719/gitbutler/internal/layout"
)

func TestKey_String(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{Key{Layout: "workspace", Role: layout.Left}, "gitbutler-workspace-left"},
		{Key{Layout: "workspace", Role: layout.Preview}, "gitbutler-workspace-preview"},
		{Key{Layout: "history", Role: layout.Right}, "gitbutler-history-right"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.expected {
			t.Errorf("%+v.String() = %q, want %q", tt.key, got, tt.expected)
		}
	}
}

func TestKey_DistinctLayoutsDoNotCollide(t *testing.T) {
	a := Key{Layout: "workspace", Role: layout.Left}
	b := Key{Layout: "history", Role: layout.Left}
	if a.String() == b.String() {
		t.Errorf("keys for distinct layouts collide: %q", a.String())
	}
}

func TestParseKey_RoundTrip(t *testing.T) {
	keys := []Key{
		{Layout: "workspace", Role: layout.Left},
		{Layout: "two-part-name", Role: layout.Preview},
	}
	for _, key := range keys {
		parsed, err := ParseKey(key.String())
		if err != nil {
			t.Fatalf("ParseKey(%q) returned error: %v", key.String(), err)
		}
		if parsed != key {
			t.Errorf("ParseKey(%q) = %+v, want %+v", key.String(), parsed, key)
		}
	}
}

func TestParseKey_Invalid(t *testing.T) {
	for _, s := range []string{"", "workspace-left", "gitbutler-", "gitbutler-ws-bottom"} {
		if _, err := ParseKey(s); err == nil {
			t.Errorf("ParseKey(%q) should fail", s)
		}
	}
}

func TestMemStore(t *testing.T) {
	s := NewMemStore()
	key := Key{Layout: "workspace", Role: layout.Left}

	if _, ok := s.Get(key); ok {
		t.Error("Get should report false before any Set")
	}

	if err := s.Set(key, 320); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	px, ok := s.Get(key)
	if !ok || px != 320 {
		t.Errorf("Get = (%v, %v), want (320, true)", px, ok)
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widths.json")

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("OpenFileStore returned error: %v", err)
	}

	if _, ok := s.Get(Key{Layout: "workspace", Role: layout.Left}); ok {
		t.Error("new store should be empty")
	}
}

func TestFileStore_SetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widths.json")
	key := Key{Layout: "workspace", Role: layout.Preview}

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("OpenFileStore returned error: %v", err)
	}
	if err := s.Set(key, 480); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	// A fresh store reading the same file sees the committed width.
	reopened, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("reopening store returned error: %v", err)
	}
	px, ok := reopened.Get(key)
	if !ok || px != 480 {
		t.Errorf("reopened Get = (%v, %v), want (480, true)", px, ok)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widths.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := OpenFileStore(path); err == nil {
		t.Error("OpenFileStore should fail on a corrupt file")
	}
}

func TestFileStore_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widths.json")
	key := Key{Layout: "workspace", Role: layout.Right}

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("OpenFileStore returned error: %v", err)
	}

	// Simulate another window committing a width.
	external := map[string]float64{key.String(): 275}
	data, err := json.Marshal(external)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if err := s.Reload(); err != nil {
		t.Fatalf("Reload returned error: %v", err)
	}
	px, ok := s.Get(key)
	if !ok || px != 275 {
		t.Errorf("Get after Reload = (%v, %v), want (275, true)", px, ok)
	}
}
