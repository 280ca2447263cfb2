package drawer

import (
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer/gesture"
	"github.com/alexisbeaulieu97/snapsheet/internal/ids"
	"github.com/alexisbeaulieu97/snapsheet/internal/logger"
)

// Callbacks are notified of state changes. Both are optional.
type Callbacks struct {
	OnOpenChange func(open bool)
	OnSnapChange func(index int)
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for lifecycle tracing.
func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithIDs sets the generator the controller draws its instance ID from.
func WithIDs(gen ids.Generator) Option {
	return func(c *Controller) {
		if gen != nil {
			c.ids = gen
		}
	}
}

// WithCallbacks registers change notifications.
func WithCallbacks(cb Callbacks) Option {
	return func(c *Controller) {
		c.callbacks = cb
	}
}

// WithScrollReader makes the gesture arbiter read the content scroll offset from r
// instead of the values pushed through ReportScroll.
func WithScrollReader(r gesture.ScrollReader) Option {
	return func(c *Controller) {
		if r != nil {
			c.scrollReader = r
		}
	}
}
