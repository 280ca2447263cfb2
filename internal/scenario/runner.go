package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/snapsheet/internal/config"
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer"
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer/gesture"
	"github.com/alexisbeaulieu97/snapsheet/internal/ids"
	"github.com/alexisbeaulieu97/snapsheet/internal/logger"
)

const (
	defaultFrameRate = 60
	// maxSettle bounds a settle step so a misconfigured spring cannot spin forever.
	maxSettle = 30 * time.Second
)

// Runner replays scenarios.
type Runner struct {
	log *logger.Logger
	ids ids.Generator
}

// NewRunner creates a Runner. A nil generator numbers drawers per runner.
func NewRunner(log *logger.Logger, gen ids.Generator) *Runner {
	if gen == nil {
		gen = ids.NewSequence("drawer")
	}
	return &Runner{log: log, ids: gen}
}

// Run replays sc against a fresh drawer. Step errors are recorded, not returned;
// the returned error is reserved for setup failures and cancellation.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Result, error) {
	if err := Validate(sc); err != nil {
		return nil, err
	}

	cfg := config.Default()
	if sc.Drawer != nil {
		cfg = *sc.Drawer
	}

	res := &Result{Name: sc.Name}
	step := 0
	ctl, err := drawer.New(cfg, sc.ViewportHeight,
		drawer.WithLogger(r.log),
		drawer.WithIDs(r.ids),
		drawer.WithCallbacks(drawer.Callbacks{
			OnOpenChange: func(open bool) {
				v := open
				res.Events = append(res.Events, Event{Step: step, Kind: "open_change", Open: &v})
			},
			OnSnapChange: func(index int) {
				v := index
				res.Events = append(res.Events, Event{Step: step, Kind: "snap_change", Index: &v})
			},
		}),
	)
	if err != nil {
		return nil, err
	}
	res.DrawerID = ctl.ID()

	frameRate := sc.FrameRate
	if frameRate == 0 {
		frameRate = defaultFrameRate
	}
	frame := time.Second / time.Duration(frameRate)

	log := r.log.WithFields(map[string]any{"scenario": sc.Name, "drawer_id": ctl.ID()})
	log.Debug("scenario started")

	for i, s := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		step = i
		rec := Record{Step: i, Action: s.Action}
		applyStep(ctl, s, frame, &rec)
		rec.State = ctl.State()
		res.Records = append(res.Records, rec)

		if rec.Error != "" {
			log.WithFields(map[string]any{"step": i, "action": string(s.Action), "error": rec.Error}).Warn("step failed")
		}
	}

	res.Final = ctl.State()
	log.WithFields(map[string]any{"steps": len(sc.Steps), "events": len(res.Events)}).Debug("scenario finished")
	return res, nil
}

func applyStep(ctl *drawer.Controller, s Step, frame time.Duration, rec *Record) {
	switch s.Action {
	case ActionOpen:
		recordErr(rec, ctl.Open())
	case ActionClose:
		ctl.Close()
	case ActionSnap:
		recordErr(rec, ctl.SnapTo(*s.Index))
	case ActionScroll:
		ctl.ReportScroll(s.Offset)
	case ActionResize:
		recordErr(rec, ctl.Resize(s.Height))
	case ActionAdvance:
		rec.Frames = advance(ctl, s.Duration, frame)
	case ActionSettle:
		rec.Frames = settle(ctl, frame)
	case ActionDrag:
		runDrag(ctl, s, rec)
	default:
		rec.Error = fmt.Sprintf("unknown action %q", s.Action)
	}
}

func runDrag(ctl *drawer.Controller, s Step, rec *Record) {
	src := gesture.SourceHandle
	if s.Source == "content" {
		src = gesture.SourceContent
	}

	g := ctl.Gestures()
	if down := g.Down(src); down == gesture.Refused || down == gesture.Ignored {
		rec.Outcome = down.String()
		return
	}

	last := 0.0
	for _, dy := range s.Moves {
		last = dy
		g.Move(dy)
	}

	var res gesture.Result
	if s.Cancel {
		res = g.Terminate()
	} else {
		res = g.Up(last, s.Velocity)
	}

	rec.Outcome = res.Outcome.String()
	if res.Outcome == gesture.Released {
		target := res.Target
		rec.Target = &target
	}
}

func advance(ctl *drawer.Controller, d, frame time.Duration) int {
	frames := 0
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		ctl.Advance(frame)
		frames++
	}
	return frames
}

func settle(ctl *drawer.Controller, frame time.Duration) int {
	frames := 0
	for elapsed := time.Duration(0); elapsed < maxSettle; elapsed += frame {
		if !ctl.Busy() {
			return frames
		}
		ctl.Advance(frame)
		frames++
	}
	return frames
}

func recordErr(rec *Record, err error) {
	if err != nil {
		rec.Error = err.Error()
	}
}
