package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/board"
	"taskboard/internal/model"
)

// columnPane is one rendered column: its tasks after search and status filtering.
type columnPane struct {
	column model.Column
	tasks  []model.Task
	total  int
}

func buildPanes(s model.Snapshot, status board.FilterStatus) []columnPane {
	cols := board.ColumnsInOrder(s)
	out := make([]columnPane, 0, len(cols))
	for _, c := range cols {
		all := board.TasksInColumn(s, c.ID)
		out = append(out, columnPane{
			column: c,
			tasks:  board.Filter(all, s.SearchQuery, status),
			total:  len(all),
		})
	}
	return out
}

func (p columnPane) indexOf(taskID string) int {
	for i, t := range p.tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

const (
	columnGap      = 2
	minColumnWidth = 16
)

// renderColumns lays the panes out side by side. When they don't fit, a window of
// columns around the focused one is shown.
func renderColumns(panes []columnPane, s model.Snapshot, focusCol int, focusTask string, width, height int) string {
	if len(panes) == 0 {
		msg := styleMuted().Render("No columns. Press N to add one.")
		return normalizePane(msg, width, height)
	}

	visible := (width + columnGap) / (minColumnWidth + columnGap)
	if visible < 1 {
		visible = 1
	}
	if visible > len(panes) {
		visible = len(panes)
	}
	first := 0
	if focusCol >= visible {
		first = focusCol - visible + 1
	}
	colW := (width - columnGap*(visible-1)) / visible
	if colW < 1 {
		colW = 1
	}

	selected := map[string]bool{}
	for _, id := range s.SelectedTaskIDs {
		selected[id] = true
	}

	parts := make([]string, 0, visible*2)
	for i := first; i < first+visible; i++ {
		if i > first {
			parts = append(parts, normalizePane("", columnGap, height))
		}
		parts = append(parts, renderColumn(panes[i], i == focusCol, focusTask, selected, colW, height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderColumn(p columnPane, focused bool, focusTask string, selected map[string]bool, width, height int) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Background(colorControlBg).Padding(0, 1)
	if focused {
		header = header.Foreground(colorAccentFg).Background(colorAccent)
	}
	count := fmt.Sprintf("%d", p.total)
	if len(p.tasks) != p.total {
		count = fmt.Sprintf("%d/%d", len(p.tasks), p.total)
	}
	title := truncate(p.column.Title, width-len(count)-3)
	lines := []string{header.Width(width).Render(title + " " + styleMuted().Render(count)), ""}

	if len(p.tasks) == 0 {
		lines = append(lines, styleMuted().Render(" (empty)"))
	}
	for _, t := range p.tasks {
		lines = append(lines, renderTaskLine(t, focused && t.ID == focusTask, selected[t.ID], width))
	}
	return normalizePane(strings.Join(lines, "\n"), width, height)
}

func renderTaskLine(t model.Task, focused, marked bool, width int) string {
	mark := "  "
	if marked {
		mark = lipgloss.NewStyle().Foreground(colorMarked).Bold(true).Render("● ")
	}
	box := "[ ] "
	if t.Completed {
		box = "[x] "
	}
	titleW := width - 2 - 4
	title := truncate(t.Title, titleW)

	st := lipgloss.NewStyle()
	if t.Completed {
		st = styleMuted().Strikethrough(true)
	}
	if focused {
		st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	return mark + st.Render(box+title)
}
