package input

import (
	"path/filepath"
	"strings"

	"github.com/josephlewis42/fesh/core/shell"
	"github.com/spf13/afero"
)

// FilenameCompleter completes the word under the cursor to the paths that
// start with it.
type FilenameCompleter struct {
	fs    afero.Fs
	env   shell.Env
	getwd func() (string, error)
}

// NewFilenameCompleter creates a completer resolving relative paths against
// the directory returned by getwd.
func NewFilenameCompleter(fs afero.Fs, env shell.Env, getwd func() (string, error)) *FilenameCompleter {
	return &FilenameCompleter{fs: fs, env: env, getwd: getwd}
}

// Do implements readline.AutoCompleter. It returns the suffixes that complete
// the word ending at pos and the length of that word's last path element.
func (c *FilenameCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	if pos > len(line) {
		pos = len(line)
	}
	head := string(line[:pos])

	word := head
	if i := strings.LastIndexAny(head, " \t"); i >= 0 {
		word = head[i+1:]
	}

	dir, prefix := "", word
	if i := strings.LastIndex(word, "/"); i >= 0 {
		dir, prefix = word[:i+1], word[i+1:]
	}

	lookup := shell.ExpandTilde(dir, c.env)
	if !filepath.IsAbs(lookup) {
		wd, err := c.getwd()
		if err != nil {
			return nil, 0
		}
		lookup = filepath.Join(wd, lookup)
	}

	entries, err := afero.ReadDir(c.fs, filepath.Clean(lookup))
	if err != nil {
		return nil, 0
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}

		suffix := name[len(prefix):]
		if entry.IsDir() {
			suffix += "/"
		} else {
			suffix += " "
		}
		newLine = append(newLine, []rune(suffix))
	}

	return newLine, len([]rune(prefix))
}
