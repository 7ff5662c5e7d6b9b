//go:build js

package main

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"

	tooltip "github.com/rvx-apps/ToolTip"
	"github.com/rvx-apps/ToolTip/jsdom"
)

func main() {
	env := jsdom.NewEnv()

	css := ""
	if meta := js.Global.Get("document").Call("querySelector", "meta[name=tooltip-css]"); meta != nil {
		css = meta.Get("content").String()
	}
	r := tooltip.Init(env, tooltip.DefaultSelector, css)

	// words in #container without declared content get one built from their text
	for _, el := range env.Document.QueryAll("#container span") {
		word := strings.ToLower(el.(*jsdom.Element).Text())
		tooltipContent := word + " " + word + "<br>" + "<span>" + word + "</span>" + " " + word
		r.Bind(el, tooltip.WithContent(tooltipContent), tooltip.WithHTML(true))
	}
}
