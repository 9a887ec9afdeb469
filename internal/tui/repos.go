package tui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/daydid/daydid/todo"
)

type repoItem struct {
	repo todo.Repository
}

func (item repoItem) FilterValue() string {
	return item.repo.Path
}

type repoItemDelegate struct {
	normalStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	disabledStyle lipgloss.Style
}

func newRepoItemDelegate() repoItemDelegate {
	return repoItemDelegate{
		normalStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")),
		disabledStyle: valueMuted,
	}
}

func (d repoItemDelegate) Height() int                             { return 1 }
func (d repoItemDelegate) Spacing() int                            { return 0 }
func (d repoItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d repoItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(repoItem)
	if !ok {
		return
	}

	line := formatRepoLine(item.repo, m.Width())
	style := d.normalStyle
	if index == m.Index() {
		style = d.selectedStyle
	} else if !item.repo.Enabled {
		style = d.disabledStyle
	}
	fmt.Fprint(w, style.Render(line))
}

func formatRepoLine(repo todo.Repository, width int) string {
	state := "[off]"
	if repo.Enabled {
		state = "[on ]"
	}
	line := fmt.Sprintf("%s %s  %s", state, repoDisplayName(repo), repo.Path)
	return truncateText(line, width)
}

func repoDisplayName(repo todo.Repository) string {
	if repo.Name != "" {
		return repo.Name
	}
	return filepath.Base(repo.Path)
}
