package sheet

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/snapsheet/internal/config"
)

// ConfigWatcher reports changes to a drawer config file. The parent directory is
// watched so editors that replace the file on save are still seen.
type ConfigWatcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// WatchConfig starts watching path.
func WatchConfig(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	return &ConfigWatcher{path: filepath.Clean(abs), watcher: w}, nil
}

// Path returns the absolute path being watched.
func (c *ConfigWatcher) Path() string {
	return c.path
}

// Next blocks until the file changes and returns a ConfigChangedMsg or a
// ConfigErrorMsg. It returns nil once the watcher is closed.
func (c *ConfigWatcher) Next() tea.Msg {
	for {
		select {
		case ev, ok := <-c.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != c.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			cfg, err := config.ParseConfig(c.path)
			if err != nil {
				return ConfigErrorMsg{Err: err}
			}
			return ConfigChangedMsg{Config: *cfg}
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return nil
			}
			return ConfigErrorMsg{Err: err}
		}
	}
}

// Close stops the watcher and unblocks Next.
func (c *ConfigWatcher) Close() error {
	return c.watcher.Close()
}
