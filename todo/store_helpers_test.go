package todo

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

// newTestStore returns a store backed by a file under a temp dir.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "todos.json")
	return NewStore(path, log.New(io.Discard))
}

// writeDocFile writes raw document JSON to the store's backing file.
func writeDocFile(t *testing.T, store *Store, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o755); err != nil {
		t.Fatalf("create data dir: %v", err)
	}
	if err := os.WriteFile(store.Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("write todo file: %v", err)
	}
}
