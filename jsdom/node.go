//go:build js

package jsdom

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"

	"github.com/rvx-apps/ToolTip/placement"
)

// Node is a tooltip div attached to the body.
type Node struct {
	self *js.Object
}

func (n *Node) SetText(s string) { n.self.Set("textContent", s) }

func (n *Node) SetHTML(s string) { n.self.Set("innerHTML", s) }

func (n *Node) SetData(key, value string) { n.self.Get("dataset").Set(key, value) }

func (n *Node) AddClass(name string) { n.self.Get("classList").Call("add", name) }

func (n *Node) RemoveClass(name string) { n.self.Get("classList").Call("remove", name) }

func (n *Node) Size() placement.Size {
	return placement.Size{
		Width:  n.self.Get("offsetWidth").Float(),
		Height: n.self.Get("offsetHeight").Float(),
	}
}

func (n *Node) MoveTo(x, y float64) {
	style := n.self.Get("style")
	style.Set("left", px(x))
	style.Set("top", px(y))
}

func (n *Node) Remove() { n.self.Call("remove") }

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
