package input

import (
	"path/filepath"
	"strings"

	"github.com/josephlewis42/fesh/core/logger"
	"github.com/spf13/afero"
)

// History holds the lines entered in this and previous sessions. Lines are
// persisted by the line editor, History only mirrors the file so the history
// builtin can show it.
type History struct {
	fs      afero.Fs
	path    string
	log     *logger.Logger
	entries []string
}

// NewHistory loads the history stored at path. If the directory holding the
// file can't be created the history is kept in memory only and Path returns
// "".
func NewHistory(fs afero.Fs, path string, log *logger.Logger) *History {
	h := &History{fs: fs, path: path, log: log}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Debugf(component, "history directory can't be created: %v", err)
		h.path = ""
		return h
	}

	contents, err := afero.ReadFile(fs, path)
	if err != nil {
		log.Debugf(component, "no previous history found")
		return h
	}

	for _, line := range strings.Split(string(contents), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			h.entries = append(h.entries, line)
		}
	}
	return h
}

// Path is the file backing the history.
func (h *History) Path() string {
	return h.path
}

// Add records a line.
func (h *History) Add(line string) {
	h.entries = append(h.entries, line)
}

// Entries returns the recorded lines, oldest first.
func (h *History) Entries() []string {
	return h.entries
}

// Clear deletes every entry, including the ones in the history file.
func (h *History) Clear() error {
	h.entries = nil
	if h.path == "" {
		return nil
	}
	return afero.WriteFile(h.fs, h.path, nil, 0600)
}
