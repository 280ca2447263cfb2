// Package scenario replays scripted drawer traces headlessly.
package scenario

import (
	"time"

	"github.com/alexisbeaulieu97/snapsheet/internal/config"
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer"
)

// Action names a scenario step.
type Action string

const (
	ActionOpen    Action = "open"
	ActionClose   Action = "close"
	ActionSnap    Action = "snap"
	ActionDrag    Action = "drag"
	ActionScroll  Action = "scroll"
	ActionResize  Action = "resize"
	ActionAdvance Action = "advance"
	ActionSettle  Action = "settle"
)

// Scenario is a scripted trace against one drawer.
type Scenario struct {
	Name           string         `yaml:"name" validate:"required"`
	Description    string         `yaml:"description,omitempty"`
	ViewportHeight float64        `yaml:"viewport_height" validate:"gt=0"`
	FrameRate      int            `yaml:"frame_rate,omitempty" validate:"omitempty,min=1,max=240"`
	Drawer         *config.Drawer `yaml:"drawer,omitempty" validate:"-"`
	Steps          []Step         `yaml:"steps" validate:"required,min=1,dive"`
}

// Step is a single action. Only the fields its action reads are used.
type Step struct {
	Action Action `yaml:"action" validate:"required,oneof=open close snap drag scroll resize advance settle"`

	// snap
	Index *int `yaml:"index,omitempty"`

	// drag
	Source   string    `yaml:"source,omitempty" validate:"omitempty,oneof=handle content"`
	Moves    []float64 `yaml:"moves,omitempty"`
	Velocity float64   `yaml:"velocity,omitempty"`
	Cancel   bool      `yaml:"cancel,omitempty"`

	// scroll
	Offset float64 `yaml:"offset,omitempty" validate:"gte=0"`

	// resize
	Height float64 `yaml:"height,omitempty"`

	// advance
	Duration time.Duration `yaml:"duration,omitempty" validate:"gte=0"`
}

// Event is a callback observed while a step ran.
type Event struct {
	Step  int    `json:"step"`
	Kind  string `json:"kind"`
	Open  *bool  `json:"open,omitempty"`
	Index *int   `json:"index,omitempty"`
}

// Record is the outcome of one step.
type Record struct {
	Step    int          `json:"step"`
	Action  Action       `json:"action"`
	Outcome string       `json:"outcome,omitempty"`
	Target  *int         `json:"target,omitempty"`
	Frames  int          `json:"frames,omitempty"`
	Error   string       `json:"error,omitempty"`
	State   drawer.State `json:"state"`
}

// Result is the full timeline of a run.
type Result struct {
	Name     string       `json:"name"`
	DrawerID string       `json:"drawer_id"`
	Records  []Record     `json:"records"`
	Events   []Event      `json:"events"`
	Final    drawer.State `json:"final"`
}

// EventsOf returns the events of kind in order.
func (r *Result) EventsOf(kind string) []Event {
	var out []Event
	for _, ev := range r.Events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}
