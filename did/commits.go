package did

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/daydid/daydid/internal/git"
	"github.com/daydid/daydid/todo"
)

// displayHashLen is how much of a commit hash the feed keeps.
const displayHashLen = 8

// Commit is a commit collected from one of the configured repositories.
type Commit struct {
	// Hash is truncated for display.
	Hash     string
	Subject  string
	Author   string
	Time     time.Time
	RepoName string
	RepoPath string
}

// Source answers version-control queries for a repository path. It is
// satisfied by git.Client; tests substitute a fake so the aggregation
// logic runs without invoking any external tool.
type Source interface {
	// IsRepo reports whether path is a valid repository.
	IsRepo(path string) bool
	// LogSince returns the repository's non-merge commits since the
	// given time, newest first.
	LogSince(path string, since time.Time) ([]git.Commit, error)
	// UserName returns the author identity the repository is configured
	// with.
	UserName(path string) (string, error)
}

// CollectCommits queries every enabled repository for commits made in the
// last days days and returns them newest first. A repository that is
// invalid, or whose query fails, contributes zero commits; the failure is
// logged and the remaining repositories still contribute.
//
// Commits are kept only when their author matches the identity filter:
// the configured author if one is set, otherwise the repository's own
// configured identity, otherwise no filter at all. Matching is a
// case-insensitive substring test.
func CollectCommits(src Source, repos []todo.Repository, author string, days int, now time.Time, logger *log.Logger) []Commit {
	if logger == nil {
		logger = log.Default()
	}
	since := now.Add(-time.Duration(days) * 24 * time.Hour)

	var commits []Commit
	for _, repo := range repos {
		if !repo.Enabled {
			continue
		}
		if !src.IsRepo(repo.Path) {
			logger.Warn("skipping invalid repository", "path", repo.Path)
			continue
		}

		entries, err := src.LogSince(repo.Path, since)
		if err != nil {
			logger.Warn("failed to read repository log", "path", repo.Path, "err", err)
			continue
		}

		filter := author
		if filter == "" {
			// Fall back to the identity the repository itself is
			// configured with; without one, keep every commit.
			if name, err := src.UserName(repo.Path); err == nil {
				filter = name
			}
		}

		for _, entry := range entries {
			if !matchesAuthor(entry.Author, filter) {
				continue
			}
			commits = append(commits, Commit{
				Hash:     truncateHash(entry.Hash),
				Subject:  entry.Subject,
				Author:   entry.Author,
				Time:     entry.Time,
				RepoName: displayName(repo),
				RepoPath: repo.Path,
			})
		}
	}

	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].Time.After(commits[j].Time)
	})
	return commits
}

func matchesAuthor(author, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(author), strings.ToLower(filter))
}

func truncateHash(hash string) string {
	if len(hash) > displayHashLen {
		return hash[:displayHashLen]
	}
	return hash
}

func displayName(repo todo.Repository) string {
	if repo.Name != "" {
		return repo.Name
	}
	return filepath.Base(repo.Path)
}
