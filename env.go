package tooltip

import (
	"time"

	"github.com/rvx-apps/ToolTip/placement"
)

// Pointer events the controller subscribes to on its anchor.
const (
	EventPointerEnter = "mouseenter"
	EventPointerLeave = "mouseleave"
	EventPointerMove  = "mousemove"
)

// Event carries the cursor position of a pointer event in viewport pixels.
type Event struct {
	ClientX float64
	ClientY float64
}

// Element is an anchor owned by the page. Implementations must return the
// same Element value for the same underlying node, since the registry keys
// on it.
type Element interface {
	Attribute(name string) (string, bool)
	BoundingRect() placement.Rect
	// On subscribes fn to event and returns a function that unsubscribes it.
	On(event string, fn func(Event)) (off func())
}

// Node is the tooltip element created by a controller.
type Node interface {
	SetText(s string)
	SetHTML(s string)
	SetData(key, value string)
	AddClass(name string)
	RemoveClass(name string)
	// Size is the rendered size; it is only meaningful after layout.
	Size() placement.Size
	MoveTo(x, y float64)
	Remove()
}

// Document creates nodes and answers queries about the page.
type Document interface {
	// CreateNode creates a div with the given class names and appends it
	// to the body.
	CreateNode(className string) Node
	Viewport() placement.Size
	QueryAll(selector string) []Element
	HasStylesheet(marker string) bool
	AppendStylesheet(href, marker string)
}

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from running. It reports false if the
	// callback already ran or was stopped.
	Stop() bool
}

// Scheduler defers work on the event loop.
type Scheduler interface {
	// NextFrame runs fn before the next repaint, after layout settles.
	NextFrame(fn func())
	AfterFunc(d time.Duration, fn func()) Timer
}

// Env is everything a controller needs from the browser.
type Env struct {
	Document  Document
	Scheduler Scheduler
}
