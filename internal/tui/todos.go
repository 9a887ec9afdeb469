package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/daydid/daydid/internal/ui"
	"github.com/daydid/daydid/todo"
)

type todoItem struct {
	todo todo.Todo
}

func (item todoItem) FilterValue() string {
	return item.todo.Task
}

type todoItemDelegate struct {
	normalStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	doneStyle     lipgloss.Style
}

func newTodoItemDelegate() todoItemDelegate {
	return todoItemDelegate{
		normalStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")),
		doneStyle:     valueMuted,
	}
}

func (d todoItemDelegate) Height() int                             { return 1 }
func (d todoItemDelegate) Spacing() int                            { return 0 }
func (d todoItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d todoItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(todoItem)
	if !ok {
		return
	}

	line := formatTodoLine(item.todo, m.Width(), time.Now())
	style := d.normalStyle
	if index == m.Index() {
		style = d.selectedStyle
	} else if item.todo.Completed {
		style = d.doneStyle
	}
	fmt.Fprint(w, style.Render(line))
}

func formatTodoLine(td todo.Todo, width int, now time.Time) string {
	check := "[ ]"
	if td.Completed {
		check = "[x]"
	}
	task := strings.TrimSpace(td.Task)
	if task == "" {
		task = "(empty)"
	}
	suffix := persistentMarker(td)
	age := ui.FormatTimeAgeShort(td.CreatedAt, now)
	line := fmt.Sprintf("%s %-6s %s%s  (%s)", check, td.Priority, task, suffix, age)
	return truncateText(line, width)
}

func persistentMarker(td todo.Todo) string {
	if td.Persistent {
		return " *"
	}
	return ""
}

// orderTodos puts incomplete todos first, then sorts by priority within
// each half, keeping insertion order for equal keys.
func orderTodos(todos []todo.Todo) []todo.Todo {
	ordered := make([]todo.Todo, len(todos))
	copy(ordered, todos)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Completed != ordered[j].Completed {
			return !ordered[i].Completed
		}
		return ordered[i].Priority.Rank() < ordered[j].Priority.Rank()
	})
	return ordered
}

func nextPriority(priority todo.Priority) todo.Priority {
	order := todo.ValidPriorities()
	for i, candidate := range order {
		if candidate == priority {
			return order[(i+1)%len(order)]
		}
	}
	return todo.PriorityMedium
}

func truncateText(value string, width int) string {
	if width <= 0 {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}
