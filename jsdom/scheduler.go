//go:build js

package jsdom

import (
	"time"

	"github.com/gopherjs/gopherjs/js"

	tooltip "github.com/rvx-apps/ToolTip"
)

// Scheduler defers callbacks with requestAnimationFrame and setTimeout.
type Scheduler struct{}

func (Scheduler) NextFrame(fn func()) {
	js.Global.Call("requestAnimationFrame", func() {
		fn()
	})
}

// AfterFunc uses time.AfterFunc, which GopherJS runs on setTimeout.
func (Scheduler) AfterFunc(d time.Duration, fn func()) tooltip.Timer {
	return time.AfterFunc(d, fn)
}
