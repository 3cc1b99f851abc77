package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"

	"taskboard/internal/board"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "h"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestNormalizePane_PadsAndClips(t *testing.T) {
	got := normalizePane("ab\ncdefgh\nx\ny", 4, 3)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	for i, ln := range lines {
		if w := xansi.StringWidth(ln); w != 4 {
			t.Fatalf("line %d width = %d, want 4 (%q)", i, w, ln)
		}
	}
	if lines[1] != "cde…" {
		t.Fatalf("line 1 = %q", lines[1])
	}
}

func TestBuildPanes_AppliesSearchAndStatus(t *testing.T) {
	s := testBoard()
	s.Tasks[0].Completed = true
	s.SearchQuery = "IR"

	panes := buildPanes(s, board.FilterAll)
	if len(panes) != 2 {
		t.Fatalf("panes = %d", len(panes))
	}
	// "first" and "third" match; "second" does not.
	if len(panes[0].tasks) != 1 || panes[0].tasks[0].ID != "t1" || panes[0].total != 2 {
		t.Fatalf("pane A = %+v", panes[0])
	}

	panes = buildPanes(s, board.FilterIncomplete)
	if len(panes[0].tasks) != 0 || len(panes[1].tasks) != 1 {
		t.Fatalf("incomplete panes = %+v", panes)
	}
}

func TestRenderColumns_MarksSelectionAndCounts(t *testing.T) {
	s := testBoard()
	s.SelectedTaskIDs = []string{"t2"}
	s.Tasks[2].Completed = true

	out := renderColumns(buildPanes(s, board.FilterAll), s, 0, "t1", 60, 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("height = %d, want 8", len(lines))
	}
	for _, want := range []string{"Todo 2", "Done 1", "[ ] first", "● [ ] second", "[x] third"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderColumns_WindowFollowsFocus(t *testing.T) {
	s := testBoard()
	out := renderColumns(buildPanes(s, board.FilterAll), s, 1, "t3", 20, 5)
	if strings.Contains(out, "Todo") || !strings.Contains(out, "Done") {
		t.Fatalf("narrow view should show only the focused column:\n%s", out)
	}
}

func TestRenderColumns_Empty(t *testing.T) {
	s := testBoard()
	s.Columns = nil
	s.Tasks = nil
	out := renderColumns(nil, s, 0, "", 40, 3)
	if !strings.Contains(out, "No columns") {
		t.Fatalf("got:\n%s", out)
	}
}
