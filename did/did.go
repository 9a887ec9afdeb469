// Package did aggregates finished work into a single activity feed.
//
// Items come from two sources: todos that have been completed and commits
// made to the configured git repositories within a lookback window. The
// merged feed is sorted newest first and grouped into recency buckets for
// display.
package did

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/daydid/daydid/todo"
)

// Kind says which source produced a feed item.
type Kind string

const (
	KindTodo   Kind = "todo"
	KindCommit Kind = "commit"
)

// Item is one entry in the activity feed.
type Item struct {
	Kind Kind
	// ID is stable across refreshes: "todo-<id>" or "commit-<hash>".
	ID string
	// Title is the todo task or the commit subject.
	Title       string
	CompletedAt time.Time

	// Set when Kind is KindTodo.
	Priority todo.Priority
	Tags     []string

	// Set when Kind is KindCommit.
	Author   string
	Hash     string
	RepoName string
	RepoPath string
}

// FromTodos converts completed todos into feed items. Todos that are
// incomplete, or marked completed without a timestamp, produce nothing.
func FromTodos(todos []todo.Todo) []Item {
	items := make([]Item, 0, len(todos))
	for _, td := range todos {
		if !td.Completed || td.CompletedAt == nil {
			continue
		}
		items = append(items, Item{
			Kind:        KindTodo,
			ID:          fmt.Sprintf("todo-%d", td.ID),
			Title:       td.Task,
			CompletedAt: *td.CompletedAt,
			Priority:    td.Priority,
			Tags:        td.Tags,
		})
	}
	return items
}

// FromCommits converts commits into feed items.
func FromCommits(commits []Commit) []Item {
	items := make([]Item, 0, len(commits))
	for _, commit := range commits {
		items = append(items, Item{
			Kind:        KindCommit,
			ID:          "commit-" + commit.Hash,
			Title:       commit.Subject,
			CompletedAt: commit.Time,
			Author:      commit.Author,
			Hash:        commit.Hash,
			RepoName:    commit.RepoName,
			RepoPath:    commit.RepoPath,
		})
	}
	return items
}

// Merge combines todo and commit items into one feed, newest first.
// Items with equal timestamps keep todos ahead of commits.
func Merge(todoItems, commitItems []Item) []Item {
	merged := make([]Item, 0, len(todoItems)+len(commitItems))
	merged = append(merged, todoItems...)
	merged = append(merged, commitItems...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CompletedAt.After(merged[j].CompletedAt)
	})
	return merged
}

// Feed builds the grouped activity feed for a document: completed todos
// plus commits from the document's enabled repositories over the last
// days days.
func Feed(src Source, doc *todo.Document, days int, now time.Time, logger *log.Logger) []Group {
	todoItems := FromTodos(doc.Todos)
	commits := CollectCommits(src, doc.Repositories, doc.Settings.GitAuthor, days, now, logger)
	items := Merge(todoItems, FromCommits(commits))
	return GroupItems(items, now)
}
