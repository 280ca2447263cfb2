package sheet

import (
	"time"

	"github.com/alexisbeaulieu97/snapsheet/internal/config"
)

// frameMsg drives the animation loop.
type frameMsg struct {
	at time.Time
}

// ConfigChangedMsg carries a reloaded drawer configuration. The model remounts
// the drawer with it.
type ConfigChangedMsg struct {
	Config config.Drawer
}

// ConfigErrorMsg reports a reload that could not be used.
type ConfigErrorMsg struct {
	Err error
}
