// Package tooltip shows a tooltip next to an anchor element, flipping to
// the opposite side when the preferred side would leave the viewport.
//
// The browser is reached through the Document and Scheduler interfaces;
// package jsdom implements them with GopherJS.
package tooltip

import (
	"time"

	"github.com/rvx-apps/ToolTip/placement"
)

const (
	// ClassName is the class every tooltip node carries, followed by the
	// theme name.
	ClassName = "rvx-tooltip"
	// ClassShow is toggled to run the enter and exit transitions.
	ClassShow = "show"
	// FadeDuration is how long a hidden tooltip stays attached so the exit
	// transition can finish.
	FadeDuration = 150 * time.Millisecond
	// Pad is the minimum distance kept from the viewport edges.
	Pad = 4
)

type state int

const (
	stateHidden state = iota
	stateVisible
	stateFading
)

// Controller owns the tooltip of one anchor element.
type Controller struct {
	el    Element
	doc   Document
	sched Scheduler
	cfg   Config

	node    Node
	state   state
	removal Timer // fade-out removal of node
	pending Timer // delayed show after pointer enter

	offs      []func()
	destroyed bool
}

// New resolves the configuration of el and subscribes to its pointer
// events.
func New(env Env, el Element, opts ...Option) *Controller {
	c := &Controller{
		el:    el,
		doc:   env.Document,
		sched: env.Scheduler,
		cfg:   ResolveConfig(el, DefaultConfig(), opts...),
	}
	c.bind()
	return c
}

func (c *Controller) bind() {
	c.offs = append(c.offs,
		c.el.On(EventPointerEnter, c.onPointerEnter),
		c.el.On(EventPointerLeave, c.onPointerLeave),
	)
	if c.cfg.Follow {
		c.offs = append(c.offs, c.el.On(EventPointerMove, c.follow))
	}
}

func (c *Controller) Config() Config { return c.cfg }

// Visible reports whether the tooltip is shown and not fading out.
func (c *Controller) Visible() bool { return c.state == stateVisible }

// Show creates the tooltip node and positions it on the next frame, once
// its size is known. Calling Show while visible does nothing. Calling it
// while the previous node is fading out replaces that node.
func (c *Controller) Show() {
	if c.destroyed || c.state == stateVisible {
		return
	}
	if c.state == stateFading {
		c.stopRemoval()
		c.node.Remove()
		c.node = nil
	}

	node := c.create()
	c.node = node
	c.state = stateVisible

	c.sched.NextFrame(func() {
		// hidden or replaced before the frame
		if c.node != node || c.state != stateVisible {
			return
		}
		c.position()
		node.AddClass(ClassShow)
	})
}

// Hide starts the exit transition and removes the node after
// FadeDuration.
func (c *Controller) Hide() {
	if c.state != stateVisible {
		return
	}

	node := c.node
	node.RemoveClass(ClassShow)
	c.state = stateFading
	c.removal = c.sched.AfterFunc(FadeDuration, func() {
		if c.node != node {
			return
		}
		node.Remove()
		c.node = nil
		c.removal = nil
		c.state = stateHidden
	})
}

// Destroy hides the tooltip and unsubscribes from the anchor. The
// controller cannot be shown again.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.stopPending()
	c.Hide()
	for _, off := range c.offs {
		off()
	}
	c.offs = nil
	c.destroyed = true
}

func (c *Controller) create() Node {
	node := c.doc.CreateNode(ClassName + " " + c.cfg.Theme)
	node.SetData("placement", string(c.cfg.Placement))
	if c.cfg.HTML {
		node.SetHTML(c.cfg.Content)
	} else {
		node.SetText(c.cfg.Content)
	}
	return node
}

func (c *Controller) position() {
	res := placement.Place(
		c.el.BoundingRect(),
		c.node.Size(),
		c.cfg.Placement,
		c.doc.Viewport(),
		c.cfg.Offset,
		Pad,
	)
	c.node.SetData("placement", string(res.Side))
	c.node.MoveTo(res.X, res.Y)
}

func (c *Controller) follow(ev Event) {
	if c.node == nil {
		return
	}
	p := placement.Follow(
		placement.Point{X: ev.ClientX, Y: ev.ClientY},
		c.node.Size(),
		c.doc.Viewport(),
	)
	c.node.MoveTo(p.X, p.Y)
}

func (c *Controller) onPointerEnter(Event) {
	if c.cfg.Delay <= 0 {
		c.Show()
		return
	}
	if c.pending != nil {
		return
	}

	var t Timer
	t = c.sched.AfterFunc(c.cfg.Delay, func() {
		if c.pending != t {
			return
		}
		c.pending = nil
		c.Show()
	})
	c.pending = t
}

func (c *Controller) onPointerLeave(Event) {
	c.stopPending()
	c.Hide()
}

func (c *Controller) stopPending() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Controller) stopRemoval() {
	if c.removal != nil {
		c.removal.Stop()
		c.removal = nil
	}
}
