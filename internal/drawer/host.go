package drawer

import (
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer/gesture"
)

// host adapts a Controller to gesture.Host without widening its public API.
type host struct {
	c *Controller
}

func (h host) Snapshot() gesture.Snapshot {
	return gesture.Snapshot{
		Layout:      h.c.resolver.Layout(),
		ActiveIndex: h.c.driver.ActiveIndex(),
		Visible:     h.c.visible,
		Closing:     h.c.driver.Closing(),
		Animating:   h.c.driver.Animating(),
	}
}

func (h host) BeginDrag() float64 {
	h.c.opening = false
	return h.c.driver.BeginDrag()
}

func (h host) DragTo(offset float64) {
	h.c.driver.DragTo(offset)
}

func (h host) EndDrag() {
	h.c.driver.EndDrag()
}

func (h host) Settle(index int, velocity float64) {
	if !h.c.visible {
		return
	}
	h.c.driver.SnapTo(index, velocity)
}

func (h host) Dismiss() {
	h.c.pendingOpen = false
	if h.c.visible {
		h.c.closeWithVelocity(0)
	}
}
