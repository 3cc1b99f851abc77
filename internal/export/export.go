// Package export turns a board snapshot into a Markdown checklist and renders it
// for the terminal.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"taskboard/internal/board"
	"taskboard/internal/model"
)

type Options struct {
	// Title is the document heading; defaults to "Board".
	Title  string
	Query  string
	Status board.FilterStatus
	// SkipEmpty leaves out columns with no (matching) tasks.
	SkipEmpty bool
}

// Markdown writes one "##" section per column in display order, each task as a
// checklist line in column order.
func Markdown(s model.Snapshot, opts Options) string {
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = "Board"
	}
	status := opts.Status
	if status == "" {
		status = board.FilterAll
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", oneLine(title))
	for _, c := range board.ColumnsInOrder(s) {
		tasks := board.Filter(board.TasksInColumn(s, c.ID), opts.Query, status)
		if len(tasks) == 0 && opts.SkipEmpty {
			continue
		}
		done := 0
		for _, t := range tasks {
			if t.Completed {
				done++
			}
		}
		fmt.Fprintf(&b, "\n## %s (%d/%d)\n\n", oneLine(c.Title), done, len(tasks))
		if len(tasks) == 0 {
			b.WriteString("_No tasks_\n")
			continue
		}
		for _, t := range tasks {
			box := " "
			if t.Completed {
				box = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", box, oneLine(t.Title))
		}
	}
	return b.String()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var (
	rendererMu sync.Mutex
	// Renderers are cached by style + wrap width; building one is not free.
	renderers = map[string]*glamour.TermRenderer{}
)

// DefaultStyle avoids glamour's auto style, which queries the terminal.
const DefaultStyle = styles.DarkStyle

// Render formats md for a terminal of the given width using a standard glamour
// style (dark, light, notty, ascii, ...).
func Render(md string, width int, style string) (string, error) {
	if strings.TrimSpace(md) == "" {
		return "", nil
	}
	if width < 20 {
		width = 20
	}
	if style == "" {
		style = DefaultStyle
	}
	key := style + ":" + strconv.Itoa(width)

	rendererMu.Lock()
	defer rendererMu.Unlock()
	r := renderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		renderers[key] = rr
		r = rr
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
