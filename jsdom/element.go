//go:build js

package jsdom

import (
	"github.com/gopherjs/gopherjs/js"

	tooltip "github.com/rvx-apps/ToolTip"
	"github.com/rvx-apps/ToolTip/placement"
)

type Element struct {
	self *js.Object
}

func (e *Element) Attribute(name string) (string, bool) {
	if !e.self.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.self.Call("getAttribute", name).String(), true
}

func (e *Element) BoundingRect() placement.Rect {
	r := e.self.Call("getBoundingClientRect")
	return placement.Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func (e *Element) On(event string, fn func(tooltip.Event)) func() {
	listener := js.MakeFunc(func(this *js.Object, arguments []*js.Object) interface{} {
		var ev tooltip.Event
		if len(arguments) > 0 {
			ev.ClientX = arguments[0].Get("clientX").Float()
			ev.ClientY = arguments[0].Get("clientY").Float()
		}
		fn(ev)
		return nil
	})
	e.self.Call("addEventListener", event, listener)
	return func() {
		e.self.Call("removeEventListener", event, listener)
	}
}

func (e *Element) Text() string {
	return e.self.Get("textContent").String()
}
