package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/xq773939719/gitbutler/internal/layout"
)

// writeStoreFile writes a widths file the way another window would.
func writeStoreFile(t *testing.T, path string, widths map[string]float64) {
	t.Helper()
	data, err := json.Marshal(widths)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestWatcher_ReloadsOnExternalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widths.json")
	fs, err := OpenFileStore(path)
	if err != nil {
		t.Fatal(err)
	}

	var notified atomic.Int32
	w, err := Watch(fs, func() { notified.Add(1) })
	if err != nil {
		t.Fatalf("Watch returned error: %v", err)
	}
	defer w.Close()

	writeStoreFile(t, path, map[string]float64{
		"gitbutler-workspace-left": 260,
	})

	if !waitFor(t, 3*time.Second, func() bool { return notified.Load() > 0 }) {
		t.Fatal("watcher never delivered a change notification")
	}

	px, ok := fs.Get(Key{Layout: "workspace", Role: layout.Left})
	if !ok || px != 260 {
		t.Errorf("reloaded width = (%v, %v), want (260, true)", px, ok)
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	fs, err := OpenFileStore(filepath.Join(dir, "widths.json"))
	if err != nil {
		t.Fatal(err)
	}

	var notified atomic.Int32
	w, err := Watch(fs, func() { notified.Add(1) })
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(2 * DefaultDebounce)
	if notified.Load() != 0 {
		t.Error("writes to sibling files should not trigger a reload")
	}
}

func TestWatcher_CloseStopsDelivery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widths.json")
	fs, err := OpenFileStore(path)
	if err != nil {
		t.Fatal(err)
	}

	var notified atomic.Int32
	w, err := Watch(fs, func() { notified.Add(1) })
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	writeStoreFile(t, path, map[string]float64{"gitbutler-workspace-left": 300})

	time.Sleep(2 * DefaultDebounce)
	if notified.Load() != 0 {
		t.Error("closed watcher should not deliver notifications")
	}
}
