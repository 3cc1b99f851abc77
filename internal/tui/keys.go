package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left, Right, Up, Down key.Binding

	Select, SelectColumn, ClearSelection key.Binding

	Toggle, Delete, NewTask, NewColumn, Rename, RenameColumn, DeleteColumn, Yank key.Binding

	MoveLeft, MoveRight, MoveUp, MoveDown, ColumnLeft, ColumnRight key.Binding

	Bulk, Search, Filter, Help, Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev column")),
		Right: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next column")),
		Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),

		Select:         key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select")),
		SelectColumn:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select column")),
		ClearSelection: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),

		Toggle:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "toggle done")),
		Delete:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete task")),
		NewTask:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new task")),
		NewColumn:    key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new column")),
		Rename:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename task")),
		RenameColumn: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "rename column")),
		DeleteColumn: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete column")),
		Yank:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy task id")),

		MoveLeft:    key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "move task left")),
		MoveRight:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "move task right")),
		MoveUp:      key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move task up")),
		MoveDown:    key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move task down")),
		ColumnLeft:  key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "move column left")),
		ColumnRight: key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "move column right")),

		Bulk:   key.NewBinding(key.WithKeys("B"), key.WithHelp("B", "bulk actions")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter status")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.NewTask, k.Toggle, k.MoveRight, k.Bulk, k.Search, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Select, k.SelectColumn, k.ClearSelection, k.Bulk},
		{k.NewTask, k.Rename, k.Toggle, k.Delete, k.Yank},
		{k.NewColumn, k.RenameColumn, k.DeleteColumn},
		{k.MoveLeft, k.MoveRight, k.MoveUp, k.MoveDown, k.ColumnLeft, k.ColumnRight},
		{k.Search, k.Filter, k.Help, k.Quit},
	}
}

// bulkKeys are only active after B.
type bulkKeys struct {
	Complete, Incomplete, Delete, Move, Cancel key.Binding
}

func defaultBulkKeys() bulkKeys {
	return bulkKeys{
		Complete:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
		Incomplete: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "incomplete")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Move:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move here")),
		Cancel:     key.NewBinding(key.WithKeys("esc", "B", "q"), key.WithHelp("esc", "cancel")),
	}
}

func (k bulkKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.Incomplete, k.Delete, k.Move, k.Cancel}
}

func (k bulkKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
