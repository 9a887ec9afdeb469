// Package tui implements the interactive terminal interface: a todo list,
// the DID activity feed, and the repository configuration, one tab each.
package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/daydid/daydid/did"
	"github.com/daydid/daydid/todo"
)

type tabKind int

const (
	tabTodos tabKind = iota
	tabDids
	tabRepos
)

const tabCount = 3

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalDeleteTodo
	modalDeleteRepo
)

type inputKind int

const (
	inputNone inputKind = iota
	inputAddTodo
	inputAddRepo
)

// statusTimeout is how long a transient status message stays visible.
const statusTimeout = 4 * time.Second

type model struct {
	ctx    context.Context
	store  *todo.Store
	source did.Source
	days   int
	logger *log.Logger

	width     int
	height    int
	activeTab tabKind

	todoList list.Model
	repoList list.Model
	didView  viewport.Model
	groups   []did.Group
	// feedStale forces a fresh collection next time the Did tab shows.
	feedStale bool

	input         textinput.Model
	inputMode     inputKind
	draftPriority todo.Priority
	draftPersist  bool

	modal           confirmModal
	pendingTodoID   int64
	pendingRepoPath string

	status       string
	statusLevel  statusLevel
	statusSticky bool
	statusSeq    int
}

type confirmModal struct {
	kind        modalKind
	message     string
	confirmText string
	cancelText  string
	selected    int
}

// Run starts the interactive interface and blocks until the user quits.
func Run(ctx context.Context, store *todo.Store, source did.Source, days int, logger *log.Logger) error {
	if store == nil {
		return fmt.Errorf("todo store is required")
	}
	if source == nil {
		return fmt.Errorf("commit source is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(newModel(ctx, store, source, days, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newModel(ctx context.Context, store *todo.Store, source did.Source, days int, logger *log.Logger) model {
	if logger == nil {
		logger = log.Default()
	}

	todoList := list.New(nil, newTodoItemDelegate(), 0, 0)
	todoList.Title = "Todos"
	todoList.SetShowStatusBar(false)
	todoList.SetFilteringEnabled(false)
	todoList.SetShowHelp(false)
	todoList.SetShowPagination(false)

	repoList := list.New(nil, newRepoItemDelegate(), 0, 0)
	repoList.Title = "Repositories"
	repoList.SetShowStatusBar(false)
	repoList.SetFilteringEnabled(false)
	repoList.SetShowHelp(false)
	repoList.SetShowPagination(false)

	return model{
		ctx:       ctx,
		store:     store,
		source:    source,
		days:      days,
		logger:    logger,
		activeTab: tabTodos,
		todoList:  todoList,
		repoList:  repoList,
		didView:   viewport.New(0, 0),
		feedStale: true,
		modal:     confirmModal{kind: modalNone},
	}
}

func (m model) Init() tea.Cmd {
	return m.loadDocumentCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal.kind != modalNone {
		return m.updateModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case tea.KeyMsg:
		updated, cmd, handled := m.handleKey(msg)
		if handled {
			return updated, cmd
		}
		m = updated
	case documentLoadedMsg:
		return m.handleDocumentLoaded(msg)
	case todoAddedMsg:
		return m.handleTodoAdded(msg)
	case todoToggledMsg:
		return m.handleTodoToggled(msg)
	case todoRemovedMsg:
		return m.handleTodoRemoved(msg)
	case feedLoadedMsg:
		return m.handleFeedLoaded(msg)
	case repoAddedMsg:
		return m.handleRepoAdded(msg)
	case repoToggledMsg:
		return m.handleRepoToggled(msg)
	case repoRemovedMsg:
		return m.handleRepoRemoved(msg)
	case statusExpiredMsg:
		if msg.seq == m.statusSeq && !m.statusSticky {
			m.status = ""
			m.statusLevel = statusNone
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case tabTodos:
		m.todoList, cmd = m.todoList.Update(msg)
	case tabDids:
		m.didView, cmd = m.didView.Update(msg)
	case tabRepos:
		m.repoList, cmd = m.repoList.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading daydid UI..."
	}

	contentHeight := m.height - 3
	if m.inputMode != inputNone {
		contentHeight--
	}
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	switch m.activeTab {
	case tabTodos:
		content = m.todoList.View()
	case tabDids:
		content = m.didView.View()
	case tabRepos:
		content = m.repoList.View()
	}
	pane := m.renderPane(content, m.width-2, contentHeight-2)

	sections := []string{m.renderTabs(), m.renderHelpLine(), pane}
	if m.inputMode != inputNone {
		sections = append(sections, m.renderInputLine())
	}
	sections = append(sections, m.renderStatusLine())
	view := strings.Join(sections, "\n")
	if m.modal.kind != modalNone {
		view = m.renderModalOverlay(view)
	}
	return view
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd, bool) {
	if m.inputMode != inputNone {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "?":
		m.modal = confirmModal{kind: modalHelp}
		return m, nil, true
	case "ctrl+c", "q":
		return m, tea.Quit, true
	case "tab":
		updated, cmd := m.switchTab(1)
		return updated, cmd, true
	case "shift+tab", "backtab":
		updated, cmd := m.switchTab(-1)
		return updated, cmd, true
	case "1":
		updated, cmd := m.activateTab(tabTodos)
		return updated, cmd, true
	case "2":
		updated, cmd := m.activateTab(tabDids)
		return updated, cmd, true
	case "3":
		updated, cmd := m.activateTab(tabRepos)
		return updated, cmd, true
	case "a":
		switch m.activeTab {
		case tabTodos:
			return m.startAddTodo(), nil, true
		case tabRepos:
			return m.startAddRepo(), nil, true
		}
	case "r":
		return m.reloadActiveTab()
	case " ", "enter":
		switch m.activeTab {
		case tabTodos:
			return m.toggleSelectedTodo()
		case tabRepos:
			return m.toggleSelectedRepo()
		}
	case "x":
		switch m.activeTab {
		case tabTodos:
			return m.promptDeleteTodo(), nil, true
		case tabRepos:
			return m.promptDeleteRepo(), nil, true
		}
	}

	return m, nil, false
}

func (m model) handleInputKey(msg tea.KeyMsg) (model, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		m = m.closeInput()
		return m, nil, true
	case "enter":
		return m.submitInput()
	case "ctrl+p":
		if m.inputMode == inputAddTodo {
			m.draftPriority = nextPriority(m.draftPriority)
		}
		return m, nil, true
	case "ctrl+s":
		if m.inputMode == inputAddTodo {
			m.draftPersist = !m.draftPersist
		}
		return m, nil, true
	case "ctrl+c":
		return m, tea.Quit, true
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, true
}

func (m model) switchTab(delta int) (model, tea.Cmd) {
	next := (int(m.activeTab) + delta + tabCount) % tabCount
	return m.activateTab(tabKind(next))
}

func (m model) activateTab(target tabKind) (model, tea.Cmd) {
	if target == m.activeTab {
		return m, nil
	}
	if m.inputMode != inputNone {
		m = m.closeInput()
	}
	m.activeTab = target
	if target == tabDids && m.feedStale {
		statusCmd := m.setStatus("Collecting commits...", statusInfo)
		return m, tea.Batch(statusCmd, m.collectFeedCmd())
	}
	return m, nil
}

func (m model) reloadActiveTab() (model, tea.Cmd, bool) {
	if m.activeTab == tabDids {
		statusCmd := m.setStatus("Collecting commits...", statusInfo)
		return m, tea.Batch(statusCmd, m.collectFeedCmd()), true
	}
	return m, m.loadDocumentCmd(), true
}

func (m model) startAddTodo() model {
	input := textinput.New()
	input.Prompt = "add todo> "
	input.Placeholder = "task text, #tags welcome"
	input.Focus()
	m.input = input
	m.inputMode = inputAddTodo
	m.draftPriority = todo.PriorityMedium
	m.draftPersist = false
	m.resize()
	return m
}

func (m model) startAddRepo() model {
	input := textinput.New()
	input.Prompt = "add repo> "
	input.Placeholder = "/path/to/repository"
	input.Focus()
	m.input = input
	m.inputMode = inputAddRepo
	m.resize()
	return m
}

func (m model) closeInput() model {
	m.inputMode = inputNone
	m.input.Blur()
	m.resize()
	return m
}

func (m model) submitInput() (model, tea.Cmd, bool) {
	value := strings.TrimSpace(m.input.Value())
	mode := m.inputMode
	m = m.closeInput()
	if value == "" {
		return m, nil, true
	}
	switch mode {
	case inputAddTodo:
		return m, m.addTodoCmd(value, m.draftPriority, m.draftPersist), true
	case inputAddRepo:
		return m, m.addRepoCmd(value), true
	}
	return m, nil, true
}

func (m model) toggleSelectedTodo() (model, tea.Cmd, bool) {
	item, ok := m.todoList.SelectedItem().(todoItem)
	if !ok {
		return m, nil, true
	}
	return m, m.toggleTodoCmd(item.todo.ID), true
}

func (m model) toggleSelectedRepo() (model, tea.Cmd, bool) {
	item, ok := m.repoList.SelectedItem().(repoItem)
	if !ok {
		return m, nil, true
	}
	return m, m.toggleRepoCmd(item.repo.Path), true
}

func (m model) promptDeleteTodo() model {
	item, ok := m.todoList.SelectedItem().(todoItem)
	if !ok {
		return m
	}
	m.pendingTodoID = item.todo.ID
	m.modal = confirmModal{
		kind:        modalDeleteTodo,
		message:     fmt.Sprintf("Delete todo %q?", truncateText(item.todo.Task, 40)),
		confirmText: "Delete",
		cancelText:  "Cancel",
		selected:    1,
	}
	return m
}

func (m model) promptDeleteRepo() model {
	item, ok := m.repoList.SelectedItem().(repoItem)
	if !ok {
		return m
	}
	m.pendingRepoPath = item.repo.Path
	m.modal = confirmModal{
		kind:        modalDeleteRepo,
		message:     fmt.Sprintf("Remove repository %q?", repoDisplayName(item.repo)),
		confirmText: "Remove",
		cancelText:  "Cancel",
		selected:    1,
	}
	return m
}

func (m model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.modal.kind == modalHelp {
		switch key.String() {
		case "?", "esc":
			m.modal = confirmModal{kind: modalNone}
			return m, nil
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		return m, nil
	}
	switch key.String() {
	case "left", "right", "tab", "shift+tab", "backtab":
		if m.modal.selected == 0 {
			m.modal.selected = 1
		} else {
			m.modal.selected = 0
		}
		return m, nil
	case "enter":
		return m.resolveModal(m.modal.selected == 0)
	case "esc":
		return m.resolveModal(false)
	}
	return m, nil
}

func (m model) resolveModal(confirm bool) (tea.Model, tea.Cmd) {
	kind := m.modal.kind
	m.modal = confirmModal{kind: modalNone}
	if !confirm {
		return m, nil
	}
	switch kind {
	case modalDeleteTodo:
		return m, m.removeTodoCmd(m.pendingTodoID)
	case modalDeleteRepo:
		return m, m.removeRepoCmd(m.pendingRepoPath)
	default:
		return m, nil
	}
}

func (m model) handleDocumentLoaded(msg documentLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		cmd := m.statusFromErr("Load failed", msg.err)
		return m, cmd
	}
	m.setTodoItems(msg.doc.Todos)
	m.setRepoItems(msg.doc.Repositories)
	return m, nil
}

func (m model) handleTodoAdded(msg todoAddedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		cmd := m.statusFromErr("Add failed", msg.err)
		return m, cmd
	}
	m.setTodoItems(msg.todos)
	m.feedStale = true
	status := "Added todo"
	if len(msg.todos) > 0 {
		added := msg.todos[len(msg.todos)-1]
		m.selectTodoByID(added.ID)
		status = fmt.Sprintf("Added todo %d", added.ID)
	}
	cmd := m.setStatus(status, statusInfo)
	return m, cmd
}

func (m model) handleTodoToggled(msg todoToggledMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		cmd := m.statusFromErr("Toggle failed", msg.err)
		return m, cmd
	}
	m.setTodoItems(msg.todos)
	m.feedStale = true
	return m, nil
}

func (m model) handleTodoRemoved(msg todoRemovedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		cmd := m.statusFromErr("Delete failed", msg.err)
		return m, cmd
	}
	m.setTodoItems(msg.todos)
	m.feedStale = true
	cmd := m.setStatus("Deleted todo", statusInfo)
	return m, cmd
}

func (m model) handleFeedLoaded(msg feedLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		cmd := m.statusFromErr("Feed failed", msg.err)
		return m, cmd
	}
	m.groups = msg.groups
	m.feedStale = false
	m.refreshFeedView()
	if m.statusLevel == statusInfo {
		m.status = ""
		m.statusLevel = statusNone
	}
	return m, nil
}

func (m model) handleRepoAdded(msg repoAddedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		cmd := m.statusFromErr("Add failed", msg.err)
		return m, cmd
	}
	m.setRepoItems(msg.repos)
	m.feedStale = true
	cmd := m.setStatus("Added repository", statusInfo)
	return m, cmd
}

func (m model) handleRepoToggled(msg repoToggledMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		cmd := m.statusFromErr("Toggle failed", msg.err)
		return m, cmd
	}
	m.setRepoItems(msg.repos)
	m.feedStale = true
	return m, nil
}

func (m model) handleRepoRemoved(msg repoRemovedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		cmd := m.statusFromErr("Remove failed", msg.err)
		return m, cmd
	}
	m.setRepoItems(msg.repos)
	m.feedStale = true
	cmd := m.setStatus("Removed repository", statusInfo)
	return m, cmd
}

func (m *model) setTodoItems(todos []todo.Todo) {
	var selectedID int64
	if item, ok := m.todoList.SelectedItem().(todoItem); ok {
		selectedID = item.todo.ID
	}
	ordered := orderTodos(todos)
	items := make([]list.Item, 0, len(ordered))
	for _, td := range ordered {
		items = append(items, todoItem{todo: td})
	}
	m.todoList.SetItems(items)
	if selectedID != 0 {
		m.selectTodoByID(selectedID)
	}
}

func (m *model) setRepoItems(repos []todo.Repository) {
	var selectedPath string
	if item, ok := m.repoList.SelectedItem().(repoItem); ok {
		selectedPath = item.repo.Path
	}
	items := make([]list.Item, 0, len(repos))
	for _, repo := range repos {
		items = append(items, repoItem{repo: repo})
	}
	m.repoList.SetItems(items)
	if selectedPath != "" {
		m.selectRepoByPath(selectedPath)
	}
}

func (m *model) selectTodoByID(id int64) {
	for i, item := range m.todoList.Items() {
		if todoItem, ok := item.(todoItem); ok && todoItem.todo.ID == id {
			m.todoList.Select(i)
			return
		}
	}
}

func (m *model) selectRepoByPath(path string) {
	for i, item := range m.repoList.Items() {
		if repoItem, ok := item.(repoItem); ok && repoItem.repo.Path == path {
			m.repoList.Select(i)
			return
		}
	}
}

func (m *model) resize() {
	contentHeight := m.height - 3
	if m.inputMode != inputNone {
		contentHeight--
	}
	if contentHeight < 1 {
		contentHeight = 1
	}
	innerWidth := m.width - 4
	if innerWidth < 1 {
		innerWidth = 1
	}
	innerHeight := contentHeight - 2
	if innerHeight < 1 {
		innerHeight = 1
	}
	m.todoList.SetSize(innerWidth, innerHeight)
	m.repoList.SetSize(innerWidth, innerHeight)
	m.didView.Width = innerWidth
	m.didView.Height = innerHeight
	inputWidth := m.width - 40
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth
	m.refreshFeedView()
}

func (m model) renderTabs() string {
	labels := []string{"[1] Todos", "[2] Did", "[3] Repos"}
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		style := tabInactiveStyle
		if tabKind(i) == m.activeTab {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(label))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	helpHint := valueMuted.Render("Press ? for help")
	spacerWidth := m.width - lipgloss.Width(content) - lipgloss.Width(helpHint)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := strings.Repeat(" ", spacerWidth)
	return tabBarStyle.Width(m.width).Render(content + spacer + helpHint)
}

func (m model) renderPane(content string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return paneStyle.Width(width).Height(height).Render(content)
}

func (m model) renderHelpLine() string {
	return helpBarStyle.Width(m.width).Render(truncateText(m.helpSummary(), m.width))
}

func (m model) helpSummary() string {
	if m.inputMode == inputAddTodo {
		return "Keys: enter save | esc cancel | ctrl+p cycle priority | ctrl+s toggle persistent"
	}
	if m.inputMode == inputAddRepo {
		return "Keys: enter save | esc cancel"
	}
	switch m.activeTab {
	case tabDids:
		return "Keys: up/down scroll | r refresh | tab switch tabs | ? help | q quit"
	case tabRepos:
		return "Keys: up/down move | a add | space enable/disable | x remove | tab switch tabs | ? help | q quit"
	default:
		return "Keys: up/down move | a add | space toggle done | x delete | r reload | tab switch tabs | ? help | q quit"
	}
}

func (m model) renderInputLine() string {
	if m.inputMode == inputAddTodo {
		meta := string(m.draftPriority)
		if m.draftPersist {
			meta += ", persistent"
		}
		return m.input.View() + valueMuted.Render("  ["+meta+"]")
	}
	return m.input.View()
}

func (m model) renderStatusLine() string {
	if strings.TrimSpace(m.status) == "" {
		return ""
	}
	style := valueMuted
	switch m.statusLevel {
	case statusError:
		style = statusErrorStyle
	case statusInfo:
		style = statusSuccessStyle
	}
	return style.Render(m.status)
}

func (m *model) setStatus(text string, level statusLevel) tea.Cmd {
	m.status = text
	m.statusLevel = level
	m.statusSticky = false
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

// setStickyStatus keeps a store-level error on screen until something
// succeeds after it.
func (m *model) setStickyStatus(text string) {
	m.status = text
	m.statusLevel = statusError
	m.statusSticky = true
	m.statusSeq++
}

func (m *model) statusFromErr(prefix string, err error) tea.Cmd {
	if errors.Is(err, todo.ErrPersist) || errors.Is(err, todo.ErrCorruptDocument) {
		m.setStickyStatus(fmt.Sprintf("%s: %v", prefix, err))
		return nil
	}
	return m.setStatus(fmt.Sprintf("%s: %v", prefix, err), statusError)
}

func (m model) renderModalOverlay(content string) string {
	if m.modal.kind == modalNone {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modalView())
}

func (m model) modalView() string {
	modalStyle := lipgloss.NewStyle().Border(borderASCII).Padding(1, 2)
	if m.modal.kind == modalHelp {
		return modalStyle.Render(m.helpContent())
	}
	buttons := make([]string, 0, 2)
	for i, option := range []string{m.modal.confirmText, m.modal.cancelText} {
		style := valueMuted
		if i == m.modal.selected {
			style = selectedStyle
		}
		buttons = append(buttons, style.Render("["+option+"]"))
	}
	content := strings.Join([]string{m.modal.message, "", strings.Join(buttons, " ")}, "\n")
	return modalStyle.Render(content)
}

func (m model) helpContent() string {
	sections := []string{
		labelStyle.Render("Global"),
		"q or ctrl+c: quit",
		"1/2/3 or tab: switch tabs",
		"?: toggle help",
		"",
		labelStyle.Render("Todos"),
		"up/down or j/k: move selection",
		"a: add a todo (#tags inline, ctrl+p priority, ctrl+s persistent)",
		"space or enter: toggle done",
		"x: delete",
		"r: reload from disk",
		"",
		labelStyle.Render("Did"),
		"up/down: scroll",
		"r: refresh commits and completed todos",
		"",
		labelStyle.Render("Repos"),
		"a: add a repository by path",
		"space or enter: enable/disable",
		"x: remove",
		"",
		labelStyle.Render("Help"),
		"press ? or esc to close",
	}
	return strings.Join(sections, "\n")
}

func (m model) loadDocumentCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		doc, err := store.Load()
		return documentLoadedMsg{doc: doc, err: err}
	}
}

func (m model) addTodoCmd(task string, priority todo.Priority, persistent bool) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		todos, err := store.Add(task, priority, persistent)
		return todoAddedMsg{todos: todos, err: err}
	}
}

func (m model) toggleTodoCmd(id int64) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		todos, err := store.Toggle(id)
		return todoToggledMsg{todos: todos, err: err}
	}
}

func (m model) removeTodoCmd(id int64) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		todos, err := store.Remove(id)
		return todoRemovedMsg{todos: todos, err: err}
	}
}

func (m model) collectFeedCmd() tea.Cmd {
	store, source, days, logger := m.store, m.source, m.days, m.logger
	return func() tea.Msg {
		doc, err := store.Load()
		if err != nil {
			return feedLoadedMsg{err: err}
		}
		return feedLoadedMsg{groups: did.Feed(source, doc, days, time.Now(), logger)}
	}
}

func (m model) addRepoCmd(path string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		var repos []todo.Repository
		err := store.Update(func(doc *todo.Document) error {
			for _, repo := range doc.Repositories {
				if repo.Path == path {
					return fmt.Errorf("repository already configured: %s", path)
				}
			}
			doc.Repositories = append(doc.Repositories, todo.Repository{
				Path:    path,
				Name:    filepath.Base(path),
				Enabled: true,
			})
			repos = doc.Repositories
			return nil
		})
		return repoAddedMsg{repos: repos, err: err}
	}
}

func (m model) toggleRepoCmd(path string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		var repos []todo.Repository
		err := store.Update(func(doc *todo.Document) error {
			for i := range doc.Repositories {
				if doc.Repositories[i].Path == path {
					doc.Repositories[i].Enabled = !doc.Repositories[i].Enabled
					repos = doc.Repositories
					return nil
				}
			}
			return fmt.Errorf("repository not configured: %s", path)
		})
		return repoToggledMsg{repos: repos, err: err}
	}
}

func (m model) removeRepoCmd(path string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		var repos []todo.Repository
		err := store.Update(func(doc *todo.Document) error {
			for i := range doc.Repositories {
				if doc.Repositories[i].Path == path {
					doc.Repositories = append(doc.Repositories[:i], doc.Repositories[i+1:]...)
					repos = doc.Repositories
					return nil
				}
			}
			return fmt.Errorf("repository not configured: %s", path)
		})
		return repoRemovedMsg{repos: repos, err: err}
	}
}

type documentLoadedMsg struct {
	doc *todo.Document
	err error
}

type todoAddedMsg struct {
	todos []todo.Todo
	err   error
}

type todoToggledMsg struct {
	todos []todo.Todo
	err   error
}

type todoRemovedMsg struct {
	todos []todo.Todo
	err   error
}

type feedLoadedMsg struct {
	groups []did.Group
	err    error
}

type repoAddedMsg struct {
	repos []todo.Repository
	err   error
}

type repoToggledMsg struct {
	repos []todo.Repository
	err   error
}

type repoRemovedMsg struct {
	repos []todo.Repository
	err   error
}

type statusExpiredMsg struct {
	seq int
}
