// Package git provides a wrapper around the git CLI tool.
package git

import (
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Commit is a single entry from a repository's log.
type Commit struct {
	Hash    string
	Subject string
	Author  string
	Time    time.Time
}

// Client wraps the git CLI.
type Client struct{}

// New creates a new git client.
func New() *Client {
	return &Client{}
}

func commandOutput(cmd *exec.Cmd, context string) ([]byte, error) {
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("%s: %w: %s", context, err, exitErr.Stderr)
		}
		return nil, fmt.Errorf("%s: %w", context, err)
	}
	return output, nil
}

func commandOutputString(cmd *exec.Cmd, context string) (string, error) {
	output, err := commandOutput(cmd, context)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// IsRepo reports whether path is inside a git working tree.
func (c *Client) IsRepo(path string) bool {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = path
	output, err := commandOutputString(cmd, "git rev-parse")
	return err == nil && output == "true"
}

// logFormat emits one commit per line. The pipe is assumed not to appear
// in hashes, author names, or ISO timestamps; subjects that contain one
// produce a line that fails to parse and is skipped.
const logFormat = "%H|%s|%an|%aI"

const logFields = 4

// LogSince returns the repository's non-merge commits authored since the
// given time, newest first.
func (c *Client) LogSince(path string, since time.Time) ([]Commit, error) {
	cmd := exec.Command("git", "log",
		"--since="+since.Format(time.RFC3339),
		"--no-merges",
		"--pretty=format:"+logFormat)
	cmd.Dir = path
	output, err := commandOutput(cmd, "git log")
	if err != nil {
		return nil, err
	}
	return parseLog(output), nil
}

func parseLog(output []byte) []Commit {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	commits := make([]Commit, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", logFields)
		if len(parts) != logFields {
			continue
		}
		when, err := time.Parse(time.RFC3339, parts[3])
		if err != nil {
			continue
		}
		commits = append(commits, Commit{
			Hash:    parts[0],
			Subject: parts[1],
			Author:  parts[2],
			Time:    when,
		})
	}
	return commits
}

// UserName returns the author name git is configured with for the
// repository at path.
func (c *Client) UserName(path string) (string, error) {
	cmd := exec.Command("git", "config", "user.name")
	cmd.Dir = path
	return commandOutputString(cmd, "git config user.name")
}
