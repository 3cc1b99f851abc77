package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

// board runs taskboard commands against one temp dir and decodes the JSON envelope.
type testBoard struct {
	t    *testing.T
	args []string
}

func newTestBoard(t *testing.T, extra ...string) *testBoard {
	t.Helper()
	return &testBoard{t: t, args: append([]string{"--dir", t.TempDir()}, extra...)}
}

func (b *testBoard) run(args ...string) map[string]any {
	b.t.Helper()
	all := append(append([]string{}, b.args...), args...)
	stdout, stderr, err := runCLI(b.t, all)
	if err != nil {
		b.t.Fatalf("command failed: taskboard %v\nerr: %v\nstderr:\n%s\nstdout:\n%s", all, err, stderr, stdout)
	}
	var env map[string]any
	if err := json.Unmarshal(stdout, &env); err != nil {
		b.t.Fatalf("unmarshal stdout: %v\nstdout:\n%s", err, stdout)
	}
	if _, ok := env["data"]; !ok {
		b.t.Fatalf("expected data key; got %v", env)
	}
	return env
}

func (b *testBoard) fail(args ...string) string {
	b.t.Helper()
	all := append(append([]string{}, b.args...), args...)
	_, stderr, err := runCLI(b.t, all)
	if err == nil {
		b.t.Fatalf("expected taskboard %v to fail", all)
	}
	return string(stderr)
}

func data(env map[string]any) map[string]any {
	m, _ := env["data"].(map[string]any)
	return m
}

func list(env map[string]any) []any {
	xs, _ := env["data"].([]any)
	return xs
}

func str(v any, key string) string {
	m, _ := v.(map[string]any)
	s, _ := m[key].(string)
	return s
}

func num(v any, key string) int {
	m, _ := v.(map[string]any)
	f, _ := m[key].(float64)
	return int(f)
}

func columnIDs(b *testBoard) []string {
	b.t.Helper()
	var out []string
	for _, c := range list(b.run("columns", "list")) {
		out = append(out, str(c, "id"))
	}
	return out
}

func TestInitAndShow(t *testing.T) {
	b := newTestBoard(t)

	env := b.run("init")
	if got := str(data(env), "backend"); got != "sqlite" {
		t.Fatalf("backend = %q, want sqlite", got)
	}

	show := data(b.run("show"))
	cols, _ := show["columns"].([]any)
	if len(cols) != 2 || str(cols[0], "id") != "col-todo" || str(cols[1], "id") != "col-done" {
		t.Fatalf("unexpected columns: %#v", cols)
	}
	if num(cols[0], "taskCount") != 3 {
		t.Fatalf("todo taskCount = %d, want 3", num(cols[0], "taskCount"))
	}
	if sel, _ := show["selectedTaskIds"].([]any); sel == nil || len(sel) != 0 {
		t.Fatalf("selectedTaskIds = %#v, want []", show["selectedTaskIds"])
	}
}

func TestInitTwice_RequiresForce(t *testing.T) {
	b := newTestBoard(t)
	b.run("init")
	b.run("columns", "add", "Extra")

	stderr := b.fail("init")
	if !strings.Contains(stderr, "already initialized") {
		t.Fatalf("stderr = %q", stderr)
	}

	b.run("init", "--force")
	if ids := columnIDs(b); len(ids) != 2 {
		t.Fatalf("--force should reset the board, got columns %v", ids)
	}
}

func TestColumnsFlow(t *testing.T) {
	b := newTestBoard(t)

	added := data(b.run("columns", "add", "  Review  "))
	id := str(added, "id")
	if !strings.HasPrefix(id, "col-") || str(added, "title") != "Review" || num(added, "order") != 2 {
		t.Fatalf("unexpected column: %#v", added)
	}

	renamed := data(b.run("columns", "rename", id, "QA"))
	if str(renamed, "title") != "QA" {
		t.Fatalf("rename: %#v", renamed)
	}

	reordered := list(b.run("columns", "reorder", "2", "0"))
	if str(reordered[0], "id") != id || num(reordered[0], "order") != 0 || num(reordered[2], "order") != 2 {
		t.Fatalf("reorder: %#v", reordered)
	}

	del := data(b.run("columns", "delete", "col-todo"))
	ids, _ := del["deletedTaskIds"].([]any)
	if len(ids) != 3 {
		t.Fatalf("deletedTaskIds = %#v, want 3 ids", ids)
	}
	if got := columnIDs(b); len(got) != 2 || got[0] != id || got[1] != "col-done" {
		t.Fatalf("columns after delete = %v", got)
	}

	if stderr := b.fail("columns", "add", "   "); !strings.Contains(stderr, "title is required") {
		t.Fatalf("stderr = %q", stderr)
	}
	if stderr := b.fail("columns", "rename", "nope", "x"); !strings.Contains(stderr, "column not found: nope") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestTasksFlow(t *testing.T) {
	b := newTestBoard(t)

	added := data(b.run("tasks", "add", "col-todo", "Write notes"))
	id := str(added, "id")
	if num(added, "order") != 3 || added["completed"] != false {
		t.Fatalf("unexpected task: %#v", added)
	}
	if _, ok := added["createdAt"].(float64); !ok {
		t.Fatalf("createdAt should be unix millis: %#v", added["createdAt"])
	}

	toggled := data(b.run("tasks", "toggle", id))
	if toggled["completed"] != true {
		t.Fatalf("toggle: %#v", toggled)
	}

	b.run("tasks", "rename", id, "Write release notes")

	moved := data(b.run("tasks", "move", id, "col-done", "--index", "0"))
	if str(moved, "columnId") != "col-done" || num(moved, "order") != 0 {
		t.Fatalf("move: %#v", moved)
	}
	done := list(b.run("tasks", "list", "--column", "col-done"))
	if len(done) != 2 || str(done[0], "id") != id || str(done[1], "id") != "task-done" || num(done[1], "order") != 1 {
		t.Fatalf("col-done = %#v", done)
	}

	shown := b.run("tasks", "show", id)
	if str(data(shown), "title") != "Write release notes" {
		t.Fatalf("show: %#v", shown)
	}

	reordered := list(b.run("tasks", "reorder", "col-todo", "0", "2"))
	if str(reordered[2], "id") != "task-welcome" {
		t.Fatalf("reorder: %#v", reordered)
	}

	incomplete := list(b.run("tasks", "list", "--status", "incomplete"))
	if len(incomplete) != 3 {
		t.Fatalf("incomplete = %d tasks, want 3", len(incomplete))
	}

	b.run("tasks", "delete", id)
	if stderr := b.fail("tasks", "show", id); !strings.Contains(stderr, "task not found: "+id) {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestSelectAndBulkMove(t *testing.T) {
	b := newTestBoard(t)

	sel := data(b.run("select", "toggle", "task-drag"))
	if ids, _ := sel["selectedTaskIds"].([]any); len(ids) != 1 || ids[0] != "task-drag" {
		t.Fatalf("selection = %#v", sel)
	}

	res := data(b.run("bulk", "move", "col-done"))
	tasks, _ := res["tasks"].([]any)
	if len(tasks) != 1 || str(tasks[0], "columnId") != "col-done" || num(tasks[0], "order") != 1 {
		t.Fatalf("bulk move: %#v", res)
	}

	if got := list(b.run("select", "list")); len(got) != 0 {
		t.Fatalf("selection should be cleared, got %#v", got)
	}

	todo := list(b.run("tasks", "list", "--column", "col-todo"))
	if len(todo) != 2 || num(todo[0], "order") != 0 || num(todo[1], "order") != 2 {
		t.Fatalf("source column keeps its gap: %#v", todo)
	}
}

func TestSelectColumnAndBulkComplete(t *testing.T) {
	b := newTestBoard(t)

	sel := data(b.run("select", "column", "col-todo"))
	if ids, _ := sel["selectedTaskIds"].([]any); len(ids) != 3 {
		t.Fatalf("selection = %#v", sel)
	}
	res := data(b.run("bulk", "complete"))
	if ids, _ := res["affectedTaskIds"].([]any); len(ids) != 3 {
		t.Fatalf("affected = %#v", res)
	}
	if got := list(b.run("tasks", "list", "--status", "incomplete")); len(got) != 0 {
		t.Fatalf("all tasks should be complete, got %#v", got)
	}

	b.run("select", "column", "col-todo")
	b.run("select", "column", "col-done")
	b.run("bulk", "delete")
	if got := list(b.run("tasks", "list")); len(got) != 0 {
		t.Fatalf("all tasks should be gone, got %#v", got)
	}
	if stderr := b.fail("bulk", "move", "nope"); !strings.Contains(stderr, "column not found") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestSearch(t *testing.T) {
	b := newTestBoard(t)

	set := data(b.run("search", "set", "SELECT"))
	if set["searchQuery"] != "SELECT" {
		t.Fatalf("set: %#v", set)
	}
	env := b.run("search", "run")
	res := data(env)
	tasks, _ := res["tasks"].([]any)
	if len(tasks) != 1 || str(tasks[0], "id") != "task-select" || res["hasResults"] != true || num(res, "total") != 1 {
		t.Fatalf("run: %#v", res)
	}
	if meta, _ := env["meta"].(map[string]any); meta["query"] != "SELECT" {
		t.Fatalf("meta: %#v", env["meta"])
	}

	res = data(b.run("search", "run", "--status", "completed"))
	if res["hasResults"] != false {
		t.Fatalf("completed run: %#v", res)
	}

	b.run("search", "clear")
	if got := data(b.run("show"))["searchQuery"]; got != "" {
		t.Fatalf("searchQuery = %#v", got)
	}
	if stderr := b.fail("search", "run", "--status", "bogus"); stderr == "" {
		t.Fatalf("expected an error for a bad status")
	}
}

func TestDrop(t *testing.T) {
	b := newTestBoard(t)

	res := data(b.run("drop",
		"--source-kind", "task", "--source-id", "task-welcome", "--source-column", "col-todo", "--source-index", "0",
		"--dest-kind", "column", "--dest-id", "col-done"))
	if res["changed"] != true {
		t.Fatalf("drop: %#v", res)
	}
	done := list(b.run("tasks", "list", "--column", "col-done"))
	if len(done) != 2 || str(done[1], "id") != "task-welcome" {
		t.Fatalf("col-done = %#v", done)
	}

	res = data(b.run("drop", "--event", `{"sourceKind":"column","sourceId":"col-todo","sourceIndex":0,"destKind":"column","destId":"col-todo","destIndex":0}`))
	if res["changed"] != false {
		t.Fatalf("same-position drop should be a no-op: %#v", res)
	}

	res = data(b.run("drop", "--event", `{"sourceKind":"column","sourceId":"col-todo","sourceIndex":0,"destKind":"column","destId":"col-done","destIndex":1}`))
	if res["changed"] != true {
		t.Fatalf("column drop: %#v", res)
	}
	if got := columnIDs(b); got[0] != "col-done" {
		t.Fatalf("columns = %v", got)
	}

	if stderr := b.fail("drop", "--source-kind", "card", "--dest-kind", "task"); stderr == "" {
		t.Fatalf("expected an error for an unknown kind")
	}
}

func TestFormatEDN(t *testing.T) {
	b := newTestBoard(t)
	stdout, _, err := runCLI(t, append(b.args, "--format", "edn", "show"))
	if err != nil {
		t.Fatalf("show --format edn: %v", err)
	}
	out := string(stdout)
	for _, want := range []string{":data", ":selected-task-ids []", `:id "col-todo"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("edn output missing %q:\n%s", want, out)
		}
	}
}

func TestExport(t *testing.T) {
	b := newTestBoard(t)
	stdout, _, err := runCLI(t, append(b.args, "export", "--status", "incomplete", "--skip-empty"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	out := string(stdout)
	if !strings.HasPrefix(out, "# Board\n") || !strings.Contains(out, "- [ ] Welcome to your board") {
		t.Fatalf("export:\n%s", out)
	}
	if strings.Contains(out, "## Done") {
		t.Fatalf("empty column should be skipped:\n%s", out)
	}
}

func TestFileBackend(t *testing.T) {
	dir := t.TempDir()
	b := &testBoard{t: t, args: []string{"--dir", dir, "--backend", "file"}}
	b.run("init")
	b.run("columns", "add", "Later")

	if _, err := os.Stat(filepath.Join(dir, "taskboard-state.json")); err != nil {
		t.Fatalf("expected board file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "taskboard.sqlite")); !os.IsNotExist(err) {
		t.Fatalf("file backend should not create sqlite db (err=%v)", err)
	}
	if got := columnIDs(b); len(got) != 3 {
		t.Fatalf("columns = %v", got)
	}
}

func TestRedisBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	b := newTestBoard(t, "--backend", "redis", "--dsn", "redis://"+mr.Addr(), "--key", "team-board")
	b.run("init")
	b.run("tasks", "add", "col-done", "Ship it")

	raw, err := mr.Get("team-board")
	if err != nil {
		t.Fatalf("redis key: %v", err)
	}
	if !strings.Contains(raw, `"Ship it"`) {
		t.Fatalf("stored board missing new task: %s", raw)
	}
}

func TestConfigFileSetsFormat(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("format: yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stdout, _, err := runCLI(t, []string{"--dir", dir, "columns", "list"})
	if err != nil {
		t.Fatalf("columns list: %v", err)
	}
	if !strings.Contains(string(stdout), "data:") || !strings.Contains(string(stdout), "col-todo") {
		t.Fatalf("expected yaml output:\n%s", stdout)
	}
}

func TestUnknownBackend(t *testing.T) {
	b := newTestBoard(t, "--backend", "floppy")
	if stderr := b.fail("show"); stderr == "" {
		t.Fatalf("expected an error")
	}
}

func TestDocs(t *testing.T) {
	b := newTestBoard(t)
	if topics := list(b.run("docs")); len(topics) == 0 {
		t.Fatalf("expected topics")
	}
	stdout, _, err := runCLI(t, append(b.args, "docs", "keys"))
	if err != nil || !strings.HasPrefix(string(stdout), "# Keys") {
		t.Fatalf("docs keys: err=%v\n%s", err, stdout)
	}
	if stderr := b.fail("docs", "nope"); !strings.Contains(stderr, "topic not found: nope") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestBadIndex(t *testing.T) {
	b := newTestBoard(t)
	stderr := b.fail("columns", "reorder", "one", "0")
	if !strings.Contains(stderr, `invalid from-index: "one" (expected an integer)`) {
		t.Fatalf("stderr = %q", stderr)
	}
}
