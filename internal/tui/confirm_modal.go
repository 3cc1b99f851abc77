package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/board"
)

type confirmFocus int

const (
	confirmFocusConfirm confirmFocus = iota
	confirmFocusCancel
)

// confirmState is a pending destructive action waiting for y/n.
type confirmState struct {
	title  string
	body   string
	label  string
	action board.Transform
	focus  confirmFocus
}

const modalWidth = 52

func renderModalBox(width int, title, content string) string {
	w := modalWidth
	if width > 0 && width-4 < w {
		w = width - 4
	}
	if w < 20 {
		w = 20
	}
	header := lipgloss.NewStyle().Bold(true).Foreground(colorAccentFg).Background(colorAccent).
		Width(w).Padding(0, 1).Render(title)
	body := lipgloss.NewStyle().Width(w).Padding(1, 1).Foreground(colorSurfaceFg).Render(content)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func renderConfirmModal(width int, c confirmState) string {
	btn := lipgloss.NewStyle().Padding(0, 1).Foreground(colorSurfaceFg).Background(colorControlBg)
	active := btn.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	danger := active.Foreground(colorDanger)

	confirm, cancel := btn.Render(c.label), btn.Render("Cancel")
	if c.focus == confirmFocusConfirm {
		confirm = danger.Render(c.label)
	} else {
		cancel = active.Render("Cancel")
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, " ", cancel)
	help := styleMuted().Render("y/enter: confirm   n/esc: cancel   tab: focus")

	return renderModalBox(width, c.title, strings.Join([]string{c.body, "", controls, "", help}, "\n"))
}
