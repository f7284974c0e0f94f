package chat

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// StateStore persists the full chat aggregate as a single snapshot slot.
// Save overwrites the previous snapshot entirely; Load returns ok=false for
// both absence and any malformed content.
type StateStore interface {
	Load() (State, bool)
	Save(State) error
}

const stateFileName = "state.json"

// DefaultStateRoot resolves the snapshot directory.
// Prefer XDG data dir (Linux/macOS). If unavailable, fall back to ~/.local/share.
func DefaultStateRoot() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, "docchat")
	}
	if base, err := os.UserHomeDir(); err == nil && base != "" {
		return filepath.Join(base, ".local", "share", "docchat")
	}
	return filepath.Join(os.TempDir(), "docchat")
}

// FileStateStore keeps the aggregate in one JSON file under Root.
type FileStateStore struct {
	Root string
}

func NewFileStateStore(root string) *FileStateStore {
	if strings.TrimSpace(root) == "" {
		root = DefaultStateRoot()
	}
	return &FileStateStore{Root: root}
}

func (s *FileStateStore) path() string {
	return filepath.Join(s.Root, stateFileName)
}

// Load restores the snapshot. Malformed or structurally invalid content is
// treated the same as a missing file so the caller falls back to a fresh
// session rather than surfacing an error.
func (s *FileStateStore) Load() (State, bool) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		return State{}, false
	}
	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		return State{}, false
	}
	if !validState(&st) {
		return State{}, false
	}
	// Loading never survives a restart.
	st.IsLoading = false
	return st, true
}

// validState is the strict decode step: the pointer must reference an
// existing session and every session needs an id.
func validState(st *State) bool {
	if strings.TrimSpace(st.CurrentSessionID) == "" {
		return false
	}
	if len(st.Sessions) == 0 {
		return false
	}
	found := false
	for i := range st.Sessions {
		if strings.TrimSpace(st.Sessions[i].ID) == "" {
			return false
		}
		if st.Sessions[i].ID == st.CurrentSessionID {
			found = true
		}
	}
	return found
}

// Save writes the snapshot atomically via a temp file rename. The loading
// flag is forced to false on the way out.
func (s *FileStateStore) Save(st State) error {
	st.IsLoading = false
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(&st, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.Root, stateFileName+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path())
}

// Reset removes the persisted snapshot, if any.
func (s *FileStateStore) Reset() error {
	err := os.Remove(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// memStateStore backs tests and ephemeral runs.
type memStateStore struct {
	state State
	ok    bool
}

func NewMemStateStore() StateStore {
	return &memStateStore{}
}

func (m *memStateStore) Load() (State, bool) {
	return m.state, m.ok
}

func (m *memStateStore) Save(st State) error {
	st.IsLoading = false
	m.state = st
	m.ok = true
	return nil
}
