package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const viewStateFileName = "tui_state.json"

// ViewState is the interactive board's UI state, restored on relaunch.
// It is best effort: missing or corrupt files load as the zero state.
type ViewState struct {
	Version int `json:"version"`

	// Filter is one of: all|completed|incomplete
	Filter string `json:"filter,omitempty"`

	FocusColumnID string `json:"focusColumnId,omitempty"`
	FocusTaskID   string `json:"focusTaskId,omitempty"`

	ShowFullHelp bool `json:"showFullHelp,omitempty"`
}

// ViewStateFile reads and writes ViewState next to the board data.
type ViewStateFile struct {
	Fs  afero.Fs
	Dir string
}

func (f ViewStateFile) fs() afero.Fs {
	if f.Fs == nil {
		return afero.NewOsFs()
	}
	return f.Fs
}

func (f ViewStateFile) path() string {
	return filepath.Join(f.Dir, viewStateFileName)
}

func (f ViewStateFile) Load() (ViewState, error) {
	if strings.TrimSpace(f.Dir) == "" {
		return ViewState{Version: 1}, nil
	}
	b, err := afero.ReadFile(f.fs(), f.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ViewState{Version: 1}, nil
		}
		return ViewState{Version: 1}, err
	}
	var st ViewState
	if err := json.Unmarshal(b, &st); err != nil {
		return ViewState{Version: 1}, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return st, nil
}

func (f ViewStateFile) Save(st ViewState) error {
	if strings.TrimSpace(f.Dir) == "" {
		return nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	fs := f.fs()
	if err := fs.MkdirAll(f.Dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	path := f.path()
	tmp := path + ".tmp"
	if err := afero.WriteFile(fs, tmp, b, 0o644); err != nil {
		return err
	}
	return fs.Rename(tmp, path)
}
