// Package todo implements a daily todo list persisted as a single JSON
// document.
//
// Todos reset every day: on the first load of a new calendar date, all
// non-persistent todos are discarded and the document is re-stamped with
// the new date. Every mutation is a read-modify-write against the
// on-disk document, so the repository and config sections round-trip
// untouched through todo operations.
package todo

import "time"

// Todo is a unit of work.
type Todo struct {
	// ID is a unique numeric identifier assigned at creation.
	ID int64 `json:"id"`

	// Task is the todo text. Hashtags inside it become Tags.
	Task string `json:"task"`

	// Completed marks the todo as done.
	Completed bool `json:"completed"`

	// Priority is the importance level (high, medium, low).
	Priority Priority `json:"priority"`

	// Persistent exempts the todo from the daily reset.
	Persistent bool `json:"persistent"`

	// CreatedAt is when the todo was created.
	CreatedAt time.Time `json:"createdAt"`

	// CompletedAt is when the todo was completed (nil while incomplete).
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	// Tags are the hashtag words extracted from Task at creation time.
	Tags []string `json:"tags"`
}

// Repository is a source repository scanned for commits.
type Repository struct {
	Path    string `json:"path"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Settings holds optional document-level configuration. It is stored
// under the "config" key of the document.
type Settings struct {
	// GitAuthor overrides the ambient identity used to filter commits.
	GitAuthor string `json:"gitAuthor,omitempty"`
}

// Document is the persisted unit: the todo list plus the configuration
// that rides along in the same file.
type Document struct {
	// Todos holds the todo list in insertion order.
	Todos []Todo `json:"todos"`

	// LastUpdated is the calendar date the document was last written.
	LastUpdated string `json:"lastUpdated"`

	// Repositories lists the repositories scanned for commits. Owned by
	// configuration; todo operations only round-trip it.
	Repositories []Repository `json:"repositories"`

	// Settings holds the optional settings object.
	Settings Settings `json:"config"`
}

// DateLayout is the format of Document.LastUpdated.
const DateLayout = "2006-01-02"
