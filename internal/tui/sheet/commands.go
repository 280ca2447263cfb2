package sheet

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameCmd schedules the next animation frame.
func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg{at: t}
	})
}

// watchCmd waits for the next config change.
func watchCmd(w *ConfigWatcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return w.Next
}
