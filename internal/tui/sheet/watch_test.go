package sheet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drawer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("snap_points: [0.5]\n"), 0o600))

	w, err := WatchConfig(path)
	require.NoError(t, err)
	defer w.Close()

	msgs := make(chan tea.Msg, 8)
	go func() {
		for {
			msg := w.Next()
			msgs <- msg
			if msg == nil {
				return
			}
		}
	}()

	tmp := filepath.Join(dir, "drawer.yaml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("snap_points: [0.25, 0.75]\n"), 0o600))
	require.NoError(t, os.Rename(tmp, path))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case msg := <-msgs:
			if changed, ok := msg.(ConfigChangedMsg); ok {
				assert.Equal(t, []float64{0.25, 0.75}, changed.Config.SnapPoints)
				return
			}
		case <-timeout:
			t.Fatal("no config change reported")
		}
	}
}

func TestConfigWatcherCloseUnblocksNext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drawer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("snap_points: [0.5]\n"), 0o600))

	w, err := WatchConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())

	done := make(chan tea.Msg, 1)
	go func() { done <- w.Next() }()

	require.NoError(t, w.Close())
	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("Next did not return after Close")
	}
}
