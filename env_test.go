package tooltip

import (
	"sort"
	"strings"
	"time"

	"github.com/rvx-apps/ToolTip/placement"
)

type fakeTimer struct {
	at      time.Duration
	fn      func()
	fired   bool
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// fakeClock runs frames and timers only when the test says so.
type fakeClock struct {
	now    time.Duration
	timers []*fakeTimer
	frames []func()
}

func (c *fakeClock) NextFrame(fn func()) {
	c.frames = append(c.frames, fn)
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	t := &fakeTimer{at: c.now + d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Frame() {
	frames := c.frames
	c.frames = nil
	for _, fn := range frames {
		fn()
	}
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now += d
	for {
		sort.SliceStable(c.timers, func(i, j int) bool { return c.timers[i].at < c.timers[j].at })
		var due *fakeTimer
		for _, t := range c.timers {
			if !t.fired && !t.stopped && t.at <= c.now {
				due = t
				break
			}
		}
		if due == nil {
			return
		}
		due.fired = true
		due.fn()
	}
}

type fakeNode struct {
	classes map[string]bool
	data    map[string]string
	text    string
	html    string
	size    placement.Size
	x, y    float64
	moved   bool
	removed bool
}

func (n *fakeNode) SetText(s string)          { n.text = s }
func (n *fakeNode) SetHTML(s string)          { n.html = s }
func (n *fakeNode) SetData(key, value string) { n.data[key] = value }
func (n *fakeNode) AddClass(name string)      { n.classes[name] = true }
func (n *fakeNode) RemoveClass(name string)   { delete(n.classes, name) }
func (n *fakeNode) Size() placement.Size      { return n.size }
func (n *fakeNode) Remove()                   { n.removed = true }

func (n *fakeNode) MoveTo(x, y float64) {
	n.x, n.y, n.moved = x, y, true
}

type stylesheet struct {
	href   string
	marker string
}

type fakeDoc struct {
	viewport    placement.Size
	nodeSize    placement.Size
	nodes       []*fakeNode
	elements    map[string][]Element
	stylesheets []stylesheet
}

func newFakeDoc() *fakeDoc {
	return &fakeDoc{
		viewport: placement.Size{Width: 800, Height: 600},
		nodeSize: placement.Size{Width: 60, Height: 30},
		elements: make(map[string][]Element),
	}
}

func (d *fakeDoc) CreateNode(className string) Node {
	n := &fakeNode{
		classes: make(map[string]bool),
		data:    make(map[string]string),
		size:    d.nodeSize,
	}
	for _, name := range strings.Fields(className) {
		n.classes[name] = true
	}
	d.nodes = append(d.nodes, n)
	return n
}

func (d *fakeDoc) Viewport() placement.Size { return d.viewport }

func (d *fakeDoc) QueryAll(selector string) []Element { return d.elements[selector] }

func (d *fakeDoc) HasStylesheet(marker string) bool {
	for _, s := range d.stylesheets {
		if s.marker == marker {
			return true
		}
	}
	return false
}

func (d *fakeDoc) AppendStylesheet(href, marker string) {
	d.stylesheets = append(d.stylesheets, stylesheet{href: href, marker: marker})
}

// attached returns the nodes that have not been removed.
func (d *fakeDoc) attached() []*fakeNode {
	var out []*fakeNode
	for _, n := range d.nodes {
		if !n.removed {
			out = append(out, n)
		}
	}
	return out
}

type handler struct {
	fn func(Event)
}

type fakeElement struct {
	attrs    map[string]string
	rect     placement.Rect
	handlers map[string][]*handler
}

func newFakeElement(attrs map[string]string) *fakeElement {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &fakeElement{
		attrs:    attrs,
		rect:     placement.Rect{Left: 0, Top: 0, Width: 100, Height: 20},
		handlers: make(map[string][]*handler),
	}
}

func (e *fakeElement) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *fakeElement) BoundingRect() placement.Rect { return e.rect }

func (e *fakeElement) On(event string, fn func(Event)) func() {
	h := &handler{fn: fn}
	e.handlers[event] = append(e.handlers[event], h)
	return func() {
		hs := e.handlers[event]
		for i := range hs {
			if hs[i] == h {
				e.handlers[event] = append(hs[:i], hs[i+1:]...)
				return
			}
		}
	}
}

func (e *fakeElement) fire(event string, ev Event) {
	for _, h := range e.handlers[event] {
		h.fn(ev)
	}
}

func (e *fakeElement) subscriptions() int {
	n := 0
	for _, hs := range e.handlers {
		n += len(hs)
	}
	return n
}

func newTestEnv() (Env, *fakeDoc, *fakeClock) {
	doc := newFakeDoc()
	clock := &fakeClock{}
	return Env{Document: doc, Scheduler: clock}, doc, clock
}
