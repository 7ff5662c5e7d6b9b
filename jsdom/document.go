//go:build js

// Package jsdom backs the tooltip environment with the browser DOM through
// GopherJS.
package jsdom

import (
	"github.com/gopherjs/gopherjs/js"

	tooltip "github.com/rvx-apps/ToolTip"
	"github.com/rvx-apps/ToolTip/placement"
)

// Document wraps window.document. It hands out one *Element per DOM node
// so elements can be used as map keys.
type Document struct {
	self     *js.Object
	ids      *js.Object // WeakMap from DOM node to element id
	elements map[int]*Element
	nextID   int
}

func NewDocument() *Document {
	return &Document{
		self:     js.Global.Get("document"),
		ids:      js.Global.Get("WeakMap").New(),
		elements: make(map[int]*Element),
	}
}

// CreateNode appends a new div with the given classes at the end of body.
func (d *Document) CreateNode(className string) tooltip.Node {
	n := d.self.Call("createElement", "div")
	n.Set("className", className)
	d.self.Get("body").Call("appendChild", n)
	return &Node{self: n}
}

func (d *Document) Viewport() placement.Size {
	return placement.Size{
		Width:  js.Global.Get("innerWidth").Float(),
		Height: js.Global.Get("innerHeight").Float(),
	}
}

func (d *Document) QueryAll(selector string) []tooltip.Element {
	list := d.self.Call("querySelectorAll", selector)
	length := list.Get("length").Int()
	out := make([]tooltip.Element, 0, length)
	for i := 0; i < length; i++ {
		out = append(out, d.element(list.Call("item", i)))
	}
	return out
}

func (d *Document) element(obj *js.Object) *Element {
	if id := d.ids.Call("get", obj); id != js.Undefined {
		return d.elements[id.Int()]
	}
	d.nextID++
	el := &Element{self: obj}
	d.elements[d.nextID] = el
	d.ids.Call("set", obj, d.nextID)
	return el
}

func (d *Document) HasStylesheet(marker string) bool {
	return d.self.Call("querySelector", "link["+marker+"]") != nil
}

func (d *Document) AppendStylesheet(href, marker string) {
	link := d.self.Call("createElement", "link")
	link.Set("rel", "stylesheet")
	link.Set("href", href)
	link.Call("setAttribute", marker, "true")
	d.self.Get("head").Call("appendChild", link)
}

// NewEnv returns an environment bound to the current page.
func NewEnv() tooltip.Env {
	return tooltip.Env{
		Document:  NewDocument(),
		Scheduler: Scheduler{},
	}
}
