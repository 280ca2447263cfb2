package sheet

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/snapsheet/internal/drawer/gesture"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if err := m.ctl.Resize(float64(m.stageHeight())); err != nil {
			m.errMsg = err.Error()
		}
		m.layoutContent()
		return m, m.ensureTicking()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		m.ctl.Advance(m.frame)
		m.layoutContent()
		if m.ctl.Busy() {
			return m, frameCmd(m.frame)
		}
		m.ticking = false
		return m, nil

	case ConfigChangedMsg:
		return m.remount(msg)

	case ConfigErrorMsg:
		m.errMsg = msg.Err.Error()
		m.log.Error(msg.Err, "config reload failed")
		return m, watchCmd(m.watcher)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "o", " ":
		if err := m.ctl.Open(); err != nil {
			m.errMsg = err.Error()
		}
	case "c", "esc":
		m.ctl.Close()
	case "up", "k":
		m.scrollBy(-1)
	case "down", "j":
		m.scrollBy(1)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if err := m.ctl.SnapTo(int(key[0] - '1')); err != nil {
			m.errMsg = err.Error()
		}
	}
	return m, m.ensureTicking()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.press(msg)
	case msg.Action == tea.MouseActionMotion && m.touch.active:
		m.move(msg)
	case msg.Action == tea.MouseActionRelease && m.touch.active:
		m.release(msg)
	}
	return m, m.ensureTicking()
}

func (m *Model) press(msg tea.MouseMsg) {
	src, ok := m.hitTest(msg)
	if !ok {
		// A tap on the backdrop dismisses.
		if m.ctl.State().Visible && msg.Y < m.sheetTop() {
			m.ctl.Close()
		}
		return
	}

	switch m.ctl.Gestures().Down(src) {
	case gesture.Ignored, gesture.Refused:
		return
	}

	m.touch = touchState{active: true, source: src, startY: msg.Y, lastY: msg.Y}
	m.tracker.Reset()
	m.tracker.Add(m.clock(), float64(msg.Y))
}

func (m *Model) move(msg tea.MouseMsg) {
	dy := msg.Y - m.touch.startY
	step := msg.Y - m.touch.lastY
	m.touch.lastY = msg.Y
	m.tracker.Add(m.clock(), float64(msg.Y))

	outcome := m.ctl.Gestures().Move(float64(dy))
	if outcome == gesture.Refused && m.touch.source == gesture.SourceContent {
		// The content keeps the gesture: dragging down reveals earlier lines.
		m.scrollBy(-step)
		return
	}
	m.layoutContent()
}

func (m *Model) release(msg tea.MouseMsg) {
	dy := msg.Y - m.touch.startY
	m.tracker.Add(m.clock(), float64(msg.Y))
	velocity := m.tracker.Velocity()

	res := m.ctl.Gestures().Up(float64(dy), velocity)
	m.touch = touchState{}
	m.layoutContent()

	if res.Outcome == gesture.Released {
		m.log.WithFields(map[string]any{
			"target":   res.Target,
			"offset":   res.Offset,
			"velocity": velocity,
		}).Debug("pointer released")
	}
}

// hitTest resolves which drawer region a pointer landed in. Zones are used once a
// frame has been scanned; before that the layout rows decide.
func (m Model) hitTest(msg tea.MouseMsg) (gesture.Source, bool) {
	if !m.ctl.State().Visible {
		return gesture.SourceHandle, false
	}

	if handle := m.zones.Get(m.handleID); handle != nil && !handle.IsZero() {
		if handle.InBounds(msg) {
			return gesture.SourceHandle, true
		}
		if content := m.zones.Get(m.contentID); content != nil && content.InBounds(msg) {
			return gesture.SourceContent, true
		}
		return gesture.SourceHandle, false
	}

	top := m.sheetTop()
	switch {
	case msg.Y == top:
		return gesture.SourceHandle, true
	case msg.Y > top && msg.Y < m.stageHeight():
		return gesture.SourceContent, true
	default:
		return gesture.SourceHandle, false
	}
}

func (m *Model) scrollBy(lines int) {
	if lines == 0 {
		return
	}
	m.content.SetYOffset(m.content.YOffset + lines)
	m.ctl.ReportScroll(float64(m.content.YOffset))
}

// ensureTicking starts the frame loop if an animation needs it and none is running.
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || !m.ctl.Busy() {
		return nil
	}
	m.ticking = true
	return frameCmd(m.frame)
}

// remount swaps in a controller built from the reloaded config. An open drawer is
// reopened under the new configuration.
func (m Model) remount(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	wasOpen := m.ctl.State().Visible && !m.ctl.State().Closing

	if err := m.mount(msg.Config); err != nil {
		m.errMsg = err.Error()
		m.log.Error(err, "remount failed")
		return m, watchCmd(m.watcher)
	}
	m.errMsg = ""
	m.activity.add("config reloaded")

	if wasOpen {
		if err := m.ctl.Open(); err != nil {
			m.errMsg = err.Error()
		}
	}
	m.layoutContent()
	return m, tea.Batch(m.ensureTicking(), watchCmd(m.watcher))
}
