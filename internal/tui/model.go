package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"taskboard/internal/board"
	"taskboard/internal/model"
	"taskboard/internal/store"
)

type mode int

const (
	modeBoard mode = iota
	modeInput
	modeConfirm
	modeBulk
)

type inputPurpose int

const (
	inputNewTask inputPurpose = iota
	inputNewColumn
	inputRenameTask
	inputRenameColumn
	inputSearch
)

type Options struct {
	Logger *log.Logger
	// Now is used for task creation times; defaults to time.Now.
	Now func() time.Time
	// Clipboard receives copied task ids; defaults to the system clipboard.
	Clipboard func(text string) error
	// ViewState restores filter and focus on start and records them on quit.
	ViewState *store.ViewStateFile
}

// Model is the bubbletea model for the board. Every mutation goes through the
// store, so observers (persistence) see exactly what the screen shows.
type Model struct {
	store     *board.Store
	logger    *log.Logger
	now       func() time.Time
	viewState *store.ViewStateFile
	clipboard func(string) error

	keys     keyMap
	bulkKeys bulkKeys
	help     help.Model
	input    textinput.Model

	snap   model.Snapshot
	filter board.FilterStatus

	col       int
	row       int
	focusTask string

	mode     mode
	purpose  inputPurpose
	targetID string
	confirm  confirmState

	flash  string
	width  int
	height int
}

func New(st *board.Store, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	ti := textinput.New()
	ti.CharLimit = 200

	m := Model{
		store:     st,
		logger:    logger,
		now:       now,
		viewState: opts.ViewState,
		clipboard: copyText,
		keys:      defaultKeys(),
		bulkKeys:  defaultBulkKeys(),
		help:      help.New(),
		input:     ti,
		snap:      st.Snapshot(),
		filter:    board.FilterAll,
		width:     100,
		height:    30,
	}
	m.restoreViewState()
	m.clampFocus()
	return m
}

func (m *Model) restoreViewState() {
	if m.viewState == nil {
		return
	}
	vs, err := m.viewState.Load()
	if err != nil {
		m.logger.Warn("load view state", "err", err)
		return
	}
	if f, err := board.ParseFilterStatus(vs.Filter); err == nil && vs.Filter != "" {
		m.filter = f
	}
	if i := board.ColumnIndex(m.snap, vs.FocusColumnID); i >= 0 {
		m.col = i
	}
	m.focusTask = vs.FocusTaskID
	m.help.ShowAll = vs.ShowFullHelp
}

func (m Model) saveViewState() {
	if m.viewState == nil {
		return
	}
	vs := store.ViewState{
		Filter:       string(m.filter),
		FocusTaskID:  m.focusTask,
		ShowFullHelp: m.help.ShowAll,
	}
	if c, ok := m.focusedColumn(); ok {
		vs.FocusColumnID = c.ID
	}
	if err := m.viewState.Save(vs); err != nil {
		m.logger.Warn("save view state", "err", err)
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		m.flash = ""
		switch m.mode {
		case modeInput:
			return m.updateInput(msg)
		case modeConfirm:
			return m.updateConfirm(msg), nil
		case modeBulk:
			return m.updateBulk(msg), nil
		default:
			return m.updateBoard(msg)
		}
	}
	return m, nil
}

func (m *Model) apply(name string, fn board.Transform) {
	if fn == nil {
		return
	}
	m.snap = m.store.Apply(fn)
	m.logger.Debug("apply", "op", name, "columns", len(m.snap.Columns), "tasks", len(m.snap.Tasks), "selected", len(m.snap.SelectedTaskIDs))
	m.clampFocus()
}

func (m *Model) drop(name string, ev board.DropEvent) {
	next, changed := m.store.ApplyDrop(ev)
	m.snap = next
	if changed {
		m.logger.Debug("drop", "op", name, "source", ev.SourceID, "dest", ev.DestID)
	}
	m.clampFocus()
}

func (m Model) panes() []columnPane {
	return buildPanes(m.snap, m.filter)
}

// clampFocus keeps the cursor on a visible task, preferring the focused task id
// so focus survives reorders and moves.
func (m *Model) clampFocus() {
	panes := m.panes()
	if len(panes) == 0 {
		m.col, m.row, m.focusTask = 0, 0, ""
		return
	}
	if m.focusTask != "" {
		for ci, p := range panes {
			if i := p.indexOf(m.focusTask); i >= 0 {
				m.col, m.row = ci, i
				return
			}
		}
	}
	m.col = clamp(m.col, 0, len(panes)-1)
	tasks := panes[m.col].tasks
	if len(tasks) == 0 {
		m.row, m.focusTask = 0, ""
		return
	}
	m.row = clamp(m.row, 0, len(tasks)-1)
	m.focusTask = tasks[m.row].ID
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m Model) focusedColumn() (model.Column, bool) {
	panes := m.panes()
	if m.col < 0 || m.col >= len(panes) {
		return model.Column{}, false
	}
	return panes[m.col].column, true
}

func (m Model) focusedTask() (model.Task, bool) {
	if m.focusTask == "" {
		return model.Task{}, false
	}
	return board.FindTask(m.snap, m.focusTask)
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.saveViewState()
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, k.Left):
		m.moveFocus(-1, 0)
	case key.Matches(msg, k.Right):
		m.moveFocus(1, 0)
	case key.Matches(msg, k.Up):
		m.moveFocus(0, -1)
	case key.Matches(msg, k.Down):
		m.moveFocus(0, 1)

	case key.Matches(msg, k.Select):
		if t, ok := m.focusedTask(); ok {
			m.apply("select", board.ToggleSelect(t.ID))
		}
	case key.Matches(msg, k.SelectColumn):
		if c, ok := m.focusedColumn(); ok {
			m.apply("select-column", board.SelectAllInColumn(c.ID))
		}
	case key.Matches(msg, k.ClearSelection):
		if len(m.snap.SelectedTaskIDs) > 0 {
			m.apply("clear-selection", board.ClearSelection())
		}

	case key.Matches(msg, k.Toggle):
		if t, ok := m.focusedTask(); ok {
			m.apply("toggle", board.ToggleComplete(t.ID))
		}
	case key.Matches(msg, k.Yank):
		if t, ok := m.focusedTask(); ok {
			if err := m.clipboard(t.ID); err != nil {
				m.logger.Warn("copy task id", "err", err)
				m.flash = "Clipboard unavailable"
				break
			}
			m.flash = "Copied " + t.ID
		}
	case key.Matches(msg, k.Delete):
		if t, ok := m.focusedTask(); ok {
			m.askConfirm("Delete task", fmt.Sprintf("Delete %q?", t.Title), "Delete", board.DeleteTask(t.ID))
		}
	case key.Matches(msg, k.DeleteColumn):
		if c, ok := m.focusedColumn(); ok {
			n := board.TaskCount(m.snap, c.ID)
			m.askConfirm("Delete column", fmt.Sprintf("Delete column %q and its %d task(s)?", c.Title, n), "Delete", board.DeleteColumn(c.ID))
		}

	case key.Matches(msg, k.NewTask):
		if c, ok := m.focusedColumn(); ok {
			return m, m.openInput(inputNewTask, c.ID, "New task in "+c.Title+": ", "")
		}
		m.flash = "Add a column first (N)"
	case key.Matches(msg, k.NewColumn):
		return m, m.openInput(inputNewColumn, "", "New column: ", "")
	case key.Matches(msg, k.Rename):
		if t, ok := m.focusedTask(); ok {
			return m, m.openInput(inputRenameTask, t.ID, "Rename task: ", t.Title)
		}
	case key.Matches(msg, k.RenameColumn):
		if c, ok := m.focusedColumn(); ok {
			return m, m.openInput(inputRenameColumn, c.ID, "Rename column: ", c.Title)
		}
	case key.Matches(msg, k.Search):
		return m, m.openInput(inputSearch, "", "Search: ", m.snap.SearchQuery)
	case key.Matches(msg, k.Filter):
		m.filter = m.filter.Next()
		m.clampFocus()

	case key.Matches(msg, k.MoveLeft):
		m.moveTaskToColumn(-1)
	case key.Matches(msg, k.MoveRight):
		m.moveTaskToColumn(1)
	case key.Matches(msg, k.MoveUp):
		m.moveTaskWithinColumn(-1)
	case key.Matches(msg, k.MoveDown):
		m.moveTaskWithinColumn(1)
	case key.Matches(msg, k.ColumnLeft):
		m.moveColumn(-1)
	case key.Matches(msg, k.ColumnRight):
		m.moveColumn(1)

	case key.Matches(msg, k.Bulk):
		if len(m.snap.SelectedTaskIDs) == 0 {
			m.flash = "Nothing selected (space selects a task, a selects a column)"
			break
		}
		m.mode = modeBulk
	}
	return m, nil
}

func (m *Model) moveFocus(dc, dr int) {
	panes := m.panes()
	if len(panes) == 0 {
		return
	}
	m.col = clamp(m.col+dc, 0, len(panes)-1)
	if dc != 0 {
		m.row = clamp(m.row, 0, max(len(panes[m.col].tasks)-1, 0))
	}
	m.row += dr
	m.focusTask = ""
	m.clampFocus()
}

// moveTaskToColumn drops the focused task onto the adjacent column (appending).
func (m *Model) moveTaskToColumn(dir int) {
	t, ok := m.focusedTask()
	if !ok {
		return
	}
	cols := board.ColumnsInOrder(m.snap)
	src := board.ColumnIndex(m.snap, t.ColumnID)
	dst := src + dir
	if src < 0 || dst < 0 || dst >= len(cols) {
		return
	}
	m.drop("move-task", board.DropEvent{
		SourceKind:     board.DropTask,
		SourceID:       t.ID,
		SourceColumnID: t.ColumnID,
		SourceIndex:    board.TaskIndex(m.snap, t.ID),
		DestKind:       board.DropColumn,
		DestID:         cols[dst].ID,
		DestColumnID:   cols[dst].ID,
	})
}

// moveTaskWithinColumn swaps the focused task with its neighbour in the full
// (unfiltered) column order.
func (m *Model) moveTaskWithinColumn(dir int) {
	t, ok := m.focusedTask()
	if !ok {
		return
	}
	tasks := board.TasksInColumn(m.snap, t.ColumnID)
	src := board.TaskIndex(m.snap, t.ID)
	dst := src + dir
	if src < 0 || dst < 0 || dst >= len(tasks) {
		return
	}
	m.drop("reorder-task", board.DropEvent{
		SourceKind:     board.DropTask,
		SourceID:       t.ID,
		SourceColumnID: t.ColumnID,
		SourceIndex:    src,
		DestKind:       board.DropTask,
		DestID:         tasks[dst].ID,
		DestColumnID:   t.ColumnID,
		DestIndex:      dst,
	})
}

func (m *Model) moveColumn(dir int) {
	c, ok := m.focusedColumn()
	if !ok {
		return
	}
	cols := board.ColumnsInOrder(m.snap)
	src := board.ColumnIndex(m.snap, c.ID)
	dst := src + dir
	if src < 0 || dst < 0 || dst >= len(cols) {
		return
	}
	m.drop("reorder-column", board.DropEvent{
		SourceKind:  board.DropColumn,
		SourceID:    c.ID,
		SourceIndex: src,
		DestKind:    board.DropColumn,
		DestID:      cols[dst].ID,
		DestIndex:   dst,
	})
	if m.focusTask == "" {
		m.col = dst
	}
}

func (m *Model) askConfirm(title, body, label string, action board.Transform) {
	m.confirm = confirmState{title: title, body: body, label: label, action: action, focus: confirmFocusCancel}
	m.mode = modeConfirm
}

func (m Model) updateConfirm(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y", "Y":
		m.confirm.focus = confirmFocusConfirm
		return m.finishConfirm()
	case "enter":
		return m.finishConfirm()
	case "n", "N", "esc", "ctrl+g", "q":
		m.confirm = confirmState{}
		m.mode = modeBoard
	case "tab", "shift+tab", "left", "right", "h", "l":
		if m.confirm.focus == confirmFocusConfirm {
			m.confirm.focus = confirmFocusCancel
		} else {
			m.confirm.focus = confirmFocusConfirm
		}
	}
	return m
}

func (m Model) finishConfirm() Model {
	c := m.confirm
	m.confirm = confirmState{}
	m.mode = modeBoard
	if c.focus == confirmFocusConfirm {
		m.apply(strings.ToLower(c.title), c.action)
	}
	return m
}

func (m Model) updateBulk(msg tea.KeyMsg) Model {
	k := m.bulkKeys
	n := len(m.snap.SelectedTaskIDs)
	m.mode = modeBoard
	switch {
	case key.Matches(msg, k.Complete):
		m.apply("bulk-complete", board.MarkSelectedComplete())
		m.flash = fmt.Sprintf("Completed %d task(s)", n)
	case key.Matches(msg, k.Incomplete):
		m.apply("bulk-incomplete", board.MarkSelectedIncomplete())
		m.flash = fmt.Sprintf("Reopened %d task(s)", n)
	case key.Matches(msg, k.Delete):
		m.askConfirm("Delete selected", fmt.Sprintf("Delete %d selected task(s)?", n), "Delete", board.DeleteSelected())
	case key.Matches(msg, k.Move):
		if c, ok := m.focusedColumn(); ok {
			m.apply("bulk-move", board.MoveSelectedToColumn(c.ID))
			m.flash = fmt.Sprintf("Moved %d task(s) to %s", n, c.Title)
		}
	case key.Matches(msg, k.Cancel):
	default:
		m.mode = modeBulk
	}
	return m
}

func (m *Model) openInput(p inputPurpose, targetID, prompt, value string) tea.Cmd {
	m.mode = modeInput
	m.purpose = p
	m.targetID = targetID
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.closeInput()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		p, target := m.purpose, m.targetID
		m.closeInput()
		m.submitInput(p, target, value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.purpose == inputSearch && m.input.Value() != m.snap.SearchQuery {
		m.apply("search", board.SetSearchQuery(m.input.Value()))
	}
	return m, cmd
}

func (m *Model) closeInput() {
	m.input.Blur()
	m.input.SetValue("")
	m.mode = modeBoard
}

func (m *Model) submitInput(p inputPurpose, target, value string) {
	if p == inputSearch {
		if value != m.snap.SearchQuery {
			m.apply("search", board.SetSearchQuery(value))
		}
		return
	}
	if value == "" {
		m.flash = "Title is required"
		return
	}
	switch p {
	case inputNewTask:
		t := board.NewTask(value, target, m.now())
		m.focusTask = t.ID
		m.apply("add-task", board.InsertTask(t))
	case inputNewColumn:
		c := board.NewColumn(value)
		m.apply("add-column", board.InsertColumn(c))
		m.col = board.ColumnIndex(m.snap, c.ID)
		m.focusTask = ""
		m.clampFocus()
	case inputRenameTask:
		m.apply("rename-task", board.RenameTask(target, value))
	case inputRenameColumn:
		m.apply("rename-column", board.RenameColumn(target, value))
	}
}

func (m Model) View() string {
	w, h := m.width, m.height
	if w <= 0 {
		w = 100
	}
	if h <= 0 {
		h = 30
	}

	header := m.renderHeader(w)
	footer := m.renderFooter(w)
	bodyH := h - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyH < 3 {
		bodyH = 3
	}

	if m.mode == modeConfirm {
		modal := renderConfirmModal(w, m.confirm)
		body := lipgloss.Place(w, bodyH, lipgloss.Center, lipgloss.Center, modal)
		return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	}

	body := renderColumns(m.panes(), m.snap, m.col, m.focusTask, w, bodyH)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader(width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("taskboard")
	done := 0
	for _, t := range m.snap.Tasks {
		if t.Completed {
			done++
		}
	}
	parts := []string{
		fmt.Sprintf("%d/%d done", done, len(m.snap.Tasks)),
		fmt.Sprintf("%d selected", len(m.snap.SelectedTaskIDs)),
		"filter: " + string(m.filter),
	}
	if q := strings.TrimSpace(m.snap.SearchQuery); q != "" {
		parts = append(parts, fmt.Sprintf("search: %q", q))
	}
	line := title + "  " + styleMuted().Render(strings.Join(parts, " · "))
	return normalizePane(line, width, 1) + "\n"
}

func (m Model) renderFooter(width int) string {
	var lines []string
	switch m.mode {
	case modeInput:
		lines = append(lines, m.input.View())
	case modeBulk:
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Bulk (%d selected): ", len(m.snap.SelectedTaskIDs)))+m.help.ShortHelpView(m.bulkKeys.ShortHelp()))
	default:
		if m.flash != "" {
			lines = append(lines, lipgloss.NewStyle().Foreground(colorMarked).Render(m.flash))
		}
		lines = append(lines, m.help.View(m.keys))
	}
	return truncateLines(strings.Join(lines, "\n"), width)
}

func truncateLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = truncate(ln, width)
	}
	return strings.Join(lines, "\n")
}
