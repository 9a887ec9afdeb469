package todo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
)

// Store owns the on-disk todo document.
type Store struct {
	path   string
	logger *log.Logger
}

// NewStore returns a store backed by the JSON document at path.
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) lockPath() string {
	return s.path + ".lock"
}

// Load reads the document from disk. A missing or empty file yields an
// empty document stamped with today's date. When the stored date is not
// today, the daily reset discards every non-persistent todo and
// re-saves immediately, so a second load on the same day is a no-op.
// The read and the reset save run under the store lock, so a reset can
// never interleave with a concurrent Update.
func (s *Store) Load() (*Document, error) {
	var doc *Document
	err := s.withLock(func() error {
		var err error
		doc, err = s.loadLocked()
		return err
	})
	return doc, err
}

func (s *Store) loadLocked() (*Document, error) {
	today := time.Now().Format(DateLayout)

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return emptyDocument(today), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read todo file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return emptyDocument(today), nil
	}

	doc, dropped, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		s.logger.Warn("dropped malformed todo records", "count", dropped)
	}

	if doc.LastUpdated != today {
		kept := make([]Todo, 0, len(doc.Todos))
		for _, item := range doc.Todos {
			if item.Persistent {
				kept = append(kept, item)
			}
		}
		discarded := len(doc.Todos) - len(kept)
		doc.Todos = kept
		if err := s.saveLocked(doc); err != nil {
			return nil, err
		}
		s.logger.Info("daily reset", "kept", len(kept), "discarded", discarded)
	}

	return doc, nil
}

// Save re-validates every record, stamps today's date, and writes the
// document as pretty-printed JSON via a temp file and rename. The
// in-memory document is only updated once the write has succeeded; a
// failed save leaves both the file and the document as they were.
func (s *Store) Save(doc *Document) error {
	return s.withLock(func() error {
		return s.saveLocked(doc)
	})
}

func (s *Store) saveLocked(doc *Document) error {
	sanitized := *doc
	sanitized.LastUpdated = time.Now().Format(DateLayout)

	sanitized.Todos = make([]Todo, 0, len(doc.Todos))
	dropped := 0
	for _, item := range doc.Todos {
		if err := ValidateTodo(&item); err != nil {
			dropped++
			continue
		}
		sanitized.Todos = append(sanitized.Todos, item)
	}
	if dropped > 0 {
		s.logger.Warn("dropped malformed todo records", "count", dropped)
	}

	if sanitized.Repositories == nil {
		sanitized.Repositories = []Repository{}
	}

	data, err := json.MarshalIndent(&sanitized, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal document: %w", ErrPersist, err)
	}
	data = append(data, '\n')

	if existing, err := os.ReadFile(s.path); err == nil && bytes.Equal(existing, data) {
		*doc = sanitized
		return nil
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrPersist, err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("%w: write temp file: %w", ErrPersist, err)
	}

	if err := os.Rename(name, s.path); err != nil {
		os.Remove(name)
		return fmt.Errorf("%w: rename todo file: %w", ErrPersist, err)
	}

	*doc = sanitized
	return nil
}

// Update runs fn against the current on-disk document and saves the
// result. The whole read-modify-write cycle holds the store lock, and
// repository and config fields written by other code paths are re-read
// before every mutation.
func (s *Store) Update(fn func(doc *Document) error) error {
	return s.withLock(func() error {
		doc, err := s.loadLocked()
		if err != nil {
			return err
		}

		if err := fn(doc); err != nil {
			return err
		}

		return s.saveLocked(doc)
	})
}

// withLock runs fn while holding an exclusive lock on the sidecar lock
// file. Load, Save, and Update each hold it for their whole cycle, so
// the process never races against itself and concurrent processes
// serialize on the same lock.
func (s *Store) withLock(fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: create data dir: %w", ErrPersist, err)
	}

	lockFile, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open lock file: %w", ErrPersist, err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("%w: acquire lock: %w", ErrPersist, err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	return fn()
}

func emptyDocument(today string) *Document {
	return &Document{
		Todos:        []Todo{},
		LastUpdated:  today,
		Repositories: []Repository{},
	}
}

// rawDocument defers todo decoding so a malformed record is dropped
// alone instead of poisoning the whole document.
type rawDocument struct {
	Todos        []json.RawMessage `json:"todos"`
	LastUpdated  string            `json:"lastUpdated"`
	Repositories []Repository      `json:"repositories"`
	Settings     Settings          `json:"config"`
}

// rawTodo mirrors Todo with pointer fields so required keys can be
// checked for presence and type before a record is accepted.
type rawTodo struct {
	ID          *int64     `json:"id"`
	Task        *string    `json:"task"`
	Completed   bool       `json:"completed"`
	Priority    *Priority  `json:"priority"`
	Persistent  *bool      `json:"persistent"`
	CreatedAt   *time.Time `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
	Tags        *[]string  `json:"tags"`
}

func decodeDocument(data []byte) (*Document, int, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	if raw.Todos == nil {
		return nil, 0, fmt.Errorf("%w: todos field is missing or not a sequence", ErrCorruptDocument)
	}

	doc := &Document{
		Todos:        make([]Todo, 0, len(raw.Todos)),
		LastUpdated:  raw.LastUpdated,
		Repositories: raw.Repositories,
		Settings:     raw.Settings,
	}
	if doc.Repositories == nil {
		doc.Repositories = []Repository{}
	}

	dropped := 0
	for _, message := range raw.Todos {
		item, err := decodeTodo(message)
		if err != nil {
			dropped++
			continue
		}
		doc.Todos = append(doc.Todos, item)
	}

	return doc, dropped, nil
}

func decodeTodo(raw json.RawMessage) (Todo, error) {
	var record rawTodo
	if err := json.Unmarshal(raw, &record); err != nil {
		return Todo{}, err
	}

	switch {
	case record.ID == nil:
		return Todo{}, fmt.Errorf("todo record missing numeric id")
	case record.Task == nil:
		return Todo{}, fmt.Errorf("todo record missing task")
	case record.Priority == nil:
		return Todo{}, fmt.Errorf("todo record missing priority")
	case record.Persistent == nil:
		return Todo{}, fmt.Errorf("todo record missing persistent flag")
	case record.CreatedAt == nil:
		return Todo{}, fmt.Errorf("todo record missing createdAt")
	case record.Tags == nil:
		return Todo{}, fmt.Errorf("todo record missing tags sequence")
	}

	item := Todo{
		ID:          *record.ID,
		Task:        *record.Task,
		Completed:   record.Completed,
		Priority:    *record.Priority,
		Persistent:  *record.Persistent,
		CreatedAt:   *record.CreatedAt,
		CompletedAt: record.CompletedAt,
		Tags:        *record.Tags,
	}
	if err := ValidateTodo(&item); err != nil {
		return Todo{}, err
	}

	return item, nil
}
