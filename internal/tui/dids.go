package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"

	"github.com/daydid/daydid/did"
	"github.com/daydid/daydid/internal/ui"
)

func (m *model) refreshFeedView() {
	m.didView.SetContent(renderFeed(m.groups, m.didView.Width, time.Now()))
}

func renderFeed(groups []did.Group, width int, now time.Time) string {
	if len(groups) == 0 {
		return valueMuted.Render("Nothing finished yet. Complete a todo or make a commit.")
	}

	var b strings.Builder
	for i, group := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render(group.Bucket.Label()))
		b.WriteString("\n")
		for _, item := range group.Items {
			b.WriteString(formatFeedItem(item, width, now))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatFeedItem(item did.Item, width int, now time.Time) string {
	mark := "●"
	meta := fmt.Sprintf("%s/%s", item.RepoName, item.Hash)
	if item.Author != "" {
		meta += "/" + item.Author
	}
	if item.Kind == did.KindTodo {
		mark = "✓"
		meta = string(item.Priority)
	}
	age := ui.FormatTimeAgeShort(item.CompletedAt, now)

	line := fmt.Sprintf("%s %s %s", mark, item.Title, valueMuted.Render("["+meta+"/"+age+"]"))
	wrapWidth := width - 2
	if wrapWidth > 0 {
		line = wordwrap.String(line, wrapWidth)
	}
	return indentLines(line, "  ")
}

func indentLines(value, prefix string) string {
	lines := strings.Split(value, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
