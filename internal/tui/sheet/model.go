// Package sheet hosts a drawer in a terminal. Rows are pixels: the drawer engine
// sees the terminal height as its viewport and mouse rows as pointer positions.
package sheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/snapsheet/internal/config"
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer"
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer/gesture"
	"github.com/alexisbeaulieu97/snapsheet/internal/ids"
	"github.com/alexisbeaulieu97/snapsheet/internal/logger"
)

const (
	handleRows     = 1
	footerRows     = 1
	velocityWindow = 100 * time.Millisecond
	activityLimit  = 3
)

// Options configures a Model.
type Options struct {
	// Config is the drawer configuration. Without snap points TerminalConfig is used.
	Config config.Drawer
	// Content is the scrollable sheet body. Empty means a generated list.
	Content   string
	FrameRate int
	StartOpen bool
	Logger    *logger.Logger
	IDs       ids.Generator
	Watcher   *ConfigWatcher
	// Clock timestamps pointer samples for release velocity.
	Clock func() time.Time
}

// TerminalConfig is a drawer tuned for rows rather than pixels: a fixed eight-row
// peek, half height and most of the screen, with velocity thresholds scaled down to
// what a mouse drag across a terminal produces.
func TerminalConfig() config.Drawer {
	cfg := config.Default()
	cfg.SnapPoints = []float64{8, 0.5, 0.85}
	cfg.InitialSnapIndex = 1
	cfg.Drag.MinDistance = 1
	cfg.Drag.CloseDistance = 4
	cfg.Drag.FlingVelocity = 0.02
	cfg.Drag.DismissVelocity = 0.05
	return cfg
}

// Model is the bubbletea model for the drawer demo.
type Model struct {
	cfg   config.Drawer
	log   *logger.Logger
	ids   ids.Generator
	clock func() time.Time

	ctl       *drawer.Controller
	zones     *zone.Manager
	handleID  string
	contentID string
	content   viewport.Model
	tracker   *gesture.VelocityTracker
	watcher   *ConfigWatcher
	activity  *activityLog

	touch   touchState
	frame   time.Duration
	ticking bool

	width  int
	height int
	errMsg string
}

type touchState struct {
	active bool
	source gesture.Source
	startY int
	lastY  int
}

// activityLog keeps the latest drawer callbacks for the footer. It is shared by
// pointer so controller callbacks can write to it from inside Update.
type activityLog struct {
	lines []string
}

func (a *activityLog) add(format string, args ...any) {
	a.lines = append(a.lines, fmt.Sprintf(format, args...))
	if len(a.lines) > activityLimit {
		a.lines = a.lines[len(a.lines)-activityLimit:]
	}
}

func (a *activityLog) last() string {
	if len(a.lines) == 0 {
		return ""
	}
	return a.lines[len(a.lines)-1]
}

// New creates the model with a 80x24 terminal until the first WindowSizeMsg.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if len(cfg.SnapPoints) == 0 {
		cfg = TerminalConfig()
	}
	frameRate := opts.FrameRate
	if frameRate <= 0 {
		frameRate = 60
	}
	gen := opts.IDs
	if gen == nil {
		gen = ids.UUID{}
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	body := opts.Content
	if body == "" {
		body = defaultContent(60)
	}

	prefix := gen.NewID()
	m := Model{
		log:       opts.Logger,
		ids:       gen,
		clock:     clock,
		zones:     zone.New(),
		handleID:  prefix + "-handle",
		contentID: prefix + "-content",
		content:   viewport.New(80, 0),
		tracker:   gesture.NewVelocityTracker(velocityWindow),
		watcher:   opts.Watcher,
		activity:  &activityLog{},
		frame:     time.Second / time.Duration(frameRate),
		width:     80,
		height:    24,
	}
	m.content.SetContent(body)

	if err := m.mount(cfg); err != nil {
		return Model{}, err
	}
	if opts.StartOpen {
		if err := m.ctl.Open(); err != nil {
			return Model{}, err
		}
		m.ticking = true
	}
	m.layoutContent()
	return m, nil
}

// mount builds a fresh controller for cfg at the current terminal height.
func (m *Model) mount(cfg config.Drawer) error {
	activity := m.activity
	ctl, err := drawer.New(cfg, float64(m.stageHeight()),
		drawer.WithLogger(m.log),
		drawer.WithIDs(m.ids),
		drawer.WithCallbacks(drawer.Callbacks{
			OnOpenChange: func(open bool) { activity.add("open: %t", open) },
			OnSnapChange: func(index int) { activity.add("snap: %d", index) },
		}),
	)
	if err != nil {
		return err
	}
	m.cfg = ctl.Config()
	m.ctl = ctl
	m.touch = touchState{}
	m.log.WithFields(map[string]any{"drawer_id": ctl.ID(), "snap_points": m.cfg.SnapPoints}).Debug("drawer mounted")
	return nil
}

// Init starts the frame loop when the drawer opens on start, and the config watch.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.ticking {
		cmds = append(cmds, frameCmd(m.frame))
	}
	if m.watcher != nil {
		cmds = append(cmds, watchCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Controller exposes the mounted drawer.
func (m Model) Controller() *drawer.Controller {
	return m.ctl
}

// Close releases the zone manager.
func (m Model) Close() {
	m.zones.Close()
}

func (m Model) stageHeight() int {
	h := m.height - footerRows
	if h < 1 {
		h = 1
	}
	return h
}

// sheetTop is the row of the drawer handle.
func (m Model) sheetTop() int {
	top := int(m.ctl.Position() + 0.5)
	if top < 0 {
		top = 0
	}
	return top
}

func (m Model) contentHeight() int {
	h := m.stageHeight() - m.sheetTop() - handleRows
	if h < 0 {
		h = 0
	}
	return h
}

// layoutContent fits the viewport to the visible part of the sheet and reports the
// scroll offset to the drawer.
func (m *Model) layoutContent() {
	m.content.Width = m.width
	m.content.Height = m.contentHeight()
	m.content.SetYOffset(m.content.YOffset)
	m.ctl.ReportScroll(float64(m.content.YOffset))
}

func defaultContent(lines int) string {
	var b strings.Builder
	for i := 1; i <= lines; i++ {
		fmt.Fprintf(&b, "Item %02d\n", i)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
