package did

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/daydid/daydid/internal/git"
	"github.com/daydid/daydid/todo"
)

func TestFromTodos(t *testing.T) {
	completed := time.Date(2024, time.January, 11, 9, 0, 0, 0, time.UTC)
	todos := []todo.Todo{
		{ID: 1, Task: "still open", Priority: todo.PriorityHigh, Tags: []string{}},
		{ID: 2, Task: "marked done without a time", Completed: true, Priority: todo.PriorityLow, Tags: []string{}},
		{ID: 7, Task: "ship it #release", Completed: true, Priority: todo.PriorityHigh, CompletedAt: &completed, Tags: []string{"release"}},
	}

	items := FromTodos(todos)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.Kind != KindTodo {
		t.Errorf("expected kind todo, got %q", item.Kind)
	}
	if item.ID != "todo-7" {
		t.Errorf("expected id todo-7, got %q", item.ID)
	}
	if item.Title != "ship it #release" {
		t.Errorf("expected title to carry the task, got %q", item.Title)
	}
	if !item.CompletedAt.Equal(completed) {
		t.Errorf("expected completedAt %v, got %v", completed, item.CompletedAt)
	}
	if item.Priority != todo.PriorityHigh {
		t.Errorf("expected priority to carry over, got %q", item.Priority)
	}
	if len(item.Tags) != 1 || item.Tags[0] != "release" {
		t.Errorf("expected tags to carry over, got %+v", item.Tags)
	}
}

func TestFromCommits(t *testing.T) {
	when := time.Date(2024, time.January, 10, 16, 0, 0, 0, time.UTC)
	items := FromCommits([]Commit{
		{Hash: "1a2b3c4d", Subject: "fix watcher races", Author: "Ada", Time: when, RepoName: "daydid", RepoPath: "/src/daydid"},
	})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.Kind != KindCommit {
		t.Errorf("expected kind commit, got %q", item.Kind)
	}
	if item.ID != "commit-1a2b3c4d" {
		t.Errorf("expected id commit-1a2b3c4d, got %q", item.ID)
	}
	if item.Title != "fix watcher races" || item.Author != "Ada" || item.RepoName != "daydid" {
		t.Errorf("expected commit fields to carry over, got %+v", item)
	}
	if !item.CompletedAt.Equal(when) {
		t.Errorf("expected completedAt %v, got %v", when, item.CompletedAt)
	}
}

func TestMergeNewestFirst(t *testing.T) {
	earlier := time.Date(2024, time.January, 11, 9, 0, 0, 0, time.UTC)
	later := earlier.Add(2 * time.Hour)

	todoItems := []Item{{Kind: KindTodo, ID: "todo-1", CompletedAt: earlier}}
	commitItems := []Item{{Kind: KindCommit, ID: "commit-aaaa", CompletedAt: later}}

	merged := Merge(todoItems, commitItems)
	if len(merged) != 2 {
		t.Fatalf("expected 2 items, got %d", len(merged))
	}
	if merged[0].ID != "commit-aaaa" || merged[1].ID != "todo-1" {
		t.Errorf("expected the newer commit first, got %q then %q", merged[0].ID, merged[1].ID)
	}
}

func TestMergeTieKeepsTodosFirst(t *testing.T) {
	when := time.Date(2024, time.January, 11, 9, 0, 0, 0, time.UTC)

	merged := Merge(
		[]Item{{Kind: KindTodo, ID: "todo-1", CompletedAt: when}},
		[]Item{{Kind: KindCommit, ID: "commit-aaaa", CompletedAt: when}},
	)
	if merged[0].ID != "todo-1" || merged[1].ID != "commit-aaaa" {
		t.Errorf("expected the todo ahead of the commit on a tie, got %q then %q", merged[0].ID, merged[1].ID)
	}
}

func TestGroupItems(t *testing.T) {
	now := time.Date(2024, time.January, 11, 15, 0, 0, 0, time.UTC)
	items := []Item{
		{ID: "todo-1", CompletedAt: time.Date(2024, time.January, 11, 9, 0, 0, 0, time.UTC)},
		{ID: "commit-aaaa", CompletedAt: time.Date(2024, time.January, 10, 18, 0, 0, 0, time.UTC)},
		{ID: "commit-bbbb", CompletedAt: time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)},
		{ID: "commit-cccc", CompletedAt: time.Date(2023, time.December, 1, 9, 0, 0, 0, time.UTC)},
	}

	groups := GroupItems(items, now)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Bucket != BucketToday || groups[1].Bucket != BucketYesterday || groups[2].Bucket != BucketOlder {
		t.Errorf("expected today/yesterday/older, got %q %q %q", groups[0].Bucket, groups[1].Bucket, groups[2].Bucket)
	}
	if len(groups[1].Items) != 2 {
		t.Fatalf("expected 2 items yesterday, got %d", len(groups[1].Items))
	}
	if groups[1].Items[0].ID != "commit-aaaa" || groups[1].Items[1].ID != "commit-bbbb" {
		t.Errorf("expected items to keep their order within a group, got %+v", groups[1].Items)
	}
}

func TestFeed(t *testing.T) {
	now := time.Date(2024, time.January, 11, 15, 0, 0, 0, time.UTC)
	completed := time.Date(2024, time.January, 11, 9, 0, 0, 0, time.UTC)
	doc := &todo.Document{
		Todos: []todo.Todo{
			{ID: 1, Task: "review PRs", Completed: true, Priority: todo.PriorityMedium, CompletedAt: &completed, Tags: []string{}},
		},
		Repositories: []todo.Repository{
			{Path: "/src/daydid", Name: "daydid", Enabled: true},
		},
	}
	src := &fakeSource{
		valid: map[string]bool{"/src/daydid": true},
		logs: map[string][]git.Commit{
			"/src/daydid": {{Hash: "aaaabbbbcccc", Subject: "fix tests", Author: "Ada", Time: now.Add(-20 * time.Hour)}},
		},
	}

	groups := Feed(src, doc, 7, now, log.New(io.Discard))
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Bucket != BucketToday || groups[0].Items[0].ID != "todo-1" {
		t.Errorf("expected the completed todo under today, got %+v", groups[0])
	}
	if groups[1].Bucket != BucketYesterday || groups[1].Items[0].Kind != KindCommit {
		t.Errorf("expected the commit under yesterday, got %+v", groups[1])
	}
}
